// ABOUTME: One-time migration of legacy flat entries into Swimmer and Time entities.
// ABOUTME: Gated by a persisted version marker; the marker is written last.
package store

import (
	"strings"
	"time"

	"github.com/harperreed/swim/internal/models"
)

// CurrentMigrationVersion is the marker value written once the legacy entry
// log has been migrated to entities.
const CurrentMigrationVersion = "1"

// MigrationSummary holds counts of migrated entities.
type MigrationSummary struct {
	Swimmers int
	Times    int
}

// MigrationVersion returns the persisted marker, empty when never migrated.
func (s *Store) MigrationVersion() string {
	return s.getValue(KeyMigrationVersion)
}

// RunMigrationIfNeeded transforms legacy entries into Swimmer and Time
// entities exactly once per installation. It reports whether entity writes
// happened. On any storage error the marker is not written, so a later start
// retries from scratch; a retry after a partial failure can therefore
// re-create swimmers for the same names.
func (s *Store) RunMigrationIfNeeded() (bool, *MigrationSummary, error) {
	s.migrateMu.Lock()
	defer s.migrateMu.Unlock()

	if s.getValue(KeyMigrationVersion) == CurrentMigrationVersion {
		return false, nil, nil
	}

	entries := s.Entries.Load()
	if len(entries) == 0 {
		// No legacy data; mark as migrated without entity writes.
		if err := s.setValue(KeyMigrationVersion, CurrentMigrationVersion); err != nil {
			return false, nil, err
		}
		return false, nil, nil
	}

	// Load (and seed if empty) strokes so name lookups below can resolve.
	strokes := s.Strokes.Load()
	strokeByName := make(map[string]string, len(strokes))
	for _, st := range strokes {
		strokeByName[strings.ToLower(st.Name)] = st.ID
	}

	// Distinct trimmed swimmer names in first-seen order. The set is
	// case-sensitive; case folding happens only at lookup time.
	var names []string
	seen := make(map[string]bool)
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	now := models.NowMillis()
	swimmers := make([]*models.Swimmer, 0, len(names))
	swimmerByName := make(map[string]*models.Swimmer, len(names))
	for _, name := range names {
		sw := &models.Swimmer{Name: name, TeamIDs: []string{}, GroupIDs: []string{}}
		sw.ID = models.NewID()
		sw.CreatedAt = now
		swimmers = append(swimmers, sw)
		swimmerByName[strings.ToLower(name)] = sw
	}

	var times []*models.Time
	for _, e := range entries {
		// The swimmer lookup uses the raw name; an entry whose name
		// carries surrounding whitespace creates a swimmer above but
		// resolves to nothing here and is dropped.
		sw := swimmerByName[strings.ToLower(e.Name)]
		strokeID := strokeByName[strings.ToLower(e.Stroke)]
		if sw == nil || strokeID == "" {
			// Drop policy: unresolved entries are skipped, not errors.
			continue
		}

		date := e.Timestamp
		if date == "" {
			date = time.Now().Format(time.RFC3339)
		}
		tm := &models.Time{
			SwimmerID:     sw.ID,
			StrokeID:      strokeID,
			Distance:      e.Distance,
			TimeSeconds:   e.BestSeconds,
			ResultSeconds: e.ResultSeconds,
			Effort:        e.Effort,
			Date:          date,
			LegacyID:      e.ID,
		}
		tm.ID = models.NewID()
		if e.ID != 0 {
			tm.CreatedAt = e.ID
		} else {
			tm.CreatedAt = now
		}
		times = append(times, tm)
	}

	if len(swimmers) > 0 {
		if _, err := s.Swimmers.BulkInsert(swimmers); err != nil {
			return false, nil, err
		}
	}
	if len(times) > 0 {
		if _, err := s.Times.BulkInsert(times); err != nil {
			return false, nil, err
		}
	}

	// Marker last, unconditionally, even when filtering dropped everything.
	if err := s.setValue(KeyMigrationVersion, CurrentMigrationVersion); err != nil {
		return false, nil, err
	}

	return true, &MigrationSummary{Swimmers: len(swimmers), Times: len(times)}, nil
}
