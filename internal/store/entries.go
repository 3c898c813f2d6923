// ABOUTME: Legacy flat swim-entry log: the v1 feature kept alongside entities.
// ABOUTME: Entries compute a result time from best time and effort on add.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/harperreed/swim/internal/kv"
	"github.com/harperreed/swim/internal/models"
	"github.com/harperreed/swim/internal/timeutil"
)

// EntryLog manages the flat v1 swim log under the swimEntries key. Migration
// reads these records but never mutates or deletes them.
type EntryLog struct {
	mu      sync.Mutex
	store   kv.Store
	entries []*models.Entry
}

// NewEntryLog binds the entry log to the legacy storage key.
func NewEntryLog(store kv.Store) *EntryLog {
	return &EntryLog{store: store}
}

// Load reads the entry log from storage, replacing in-memory state.
// Failures are logged and degrade to an empty log.
func (l *EntryLog) Load() []*models.Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := l.store.Get(KeyLegacyEntries)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			log.Warn("loading entries failed", "key", KeyLegacyEntries, "err", err)
		}
		l.entries = nil
		return nil
	}
	var entries []*models.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Warn("corrupt entry log, starting empty", "err", err)
		l.entries = nil
		return nil
	}
	l.entries = entries
	return l.snapshot()
}

// List returns a copy of the in-memory entries, newest first.
func (l *EntryLog) List() []*models.Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot()
}

// Count reports the number of entries.
func (l *EntryLog) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Add validates the form fields, parses the best time, computes the result
// time for the given effort percentage (defaulting to 80%), and prepends and
// persists the new entry.
func (l *EntryLog) Add(name, stroke, distance, effort, bestTimeInput string) (*models.Entry, error) {
	if name == "" || stroke == "" || distance == "" || bestTimeInput == "" {
		return nil, fmt.Errorf("%w: all fields are required", ErrInvalid)
	}

	bestSeconds, err := timeutil.ParseInput(bestTimeInput)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	effortPercent := timeutil.EffortPercent(effort)
	resultSeconds := timeutil.ResultSeconds(bestSeconds, effortPercent)

	now := time.Now()
	entry := &models.Entry{
		ID:            now.UnixMilli(),
		Timestamp:     now.Format("2006-01-02 15:04:05"),
		Name:          name,
		Stroke:        stroke,
		Distance:      distance,
		Effort:        effort,
		BestTime:      timeutil.FormatSeconds(bestSeconds),
		ResultTime:    timeutil.FormatSeconds(resultSeconds),
		BestSeconds:   bestSeconds,
		ResultSeconds: resultSeconds,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append([]*models.Entry{entry}, l.entries...)
	if err := l.write(); err != nil {
		return entry, err
	}
	return entry, nil
}

// Clear deletes all entries.
func (l *EntryLog) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
	return l.write()
}

func (l *EntryLog) snapshot() []*models.Entry {
	out := make([]*models.Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *EntryLog) write() error {
	entries := l.entries
	if entries == nil {
		entries = []*models.Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}
	if err := l.store.Set(KeyLegacyEntries, data); err != nil {
		log.Warn("saving entries failed", "err", err)
		return fmt.Errorf("save entries: %w", err)
	}
	return nil
}
