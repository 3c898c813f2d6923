// ABOUTME: Export and import of the full swim dataset.
// ABOUTME: Supports JSON and YAML snapshots of every collection.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harperreed/swim/internal/models"
)

// ExportData is the full backup format: every collection plus the unit
// preference and migration marker.
type ExportData struct {
	Version          string             `json:"version" yaml:"version"`
	ExportedAt       time.Time          `json:"exported_at" yaml:"exported_at"`
	Tool             string             `json:"tool" yaml:"tool"`
	Teams            []*models.Team     `json:"teams" yaml:"teams"`
	Groups           []*models.Group    `json:"groups" yaml:"groups"`
	Strokes          []*models.Stroke   `json:"strokes" yaml:"strokes"`
	Swimmers         []*models.Swimmer  `json:"swimmers" yaml:"swimmers"`
	Times            []*models.Time     `json:"times" yaml:"times"`
	Trainings        []*models.Training `json:"trainings" yaml:"trainings"`
	Entries          []*models.Entry    `json:"swimEntries" yaml:"swim_entries"`
	Unit             string             `json:"unitPreference,omitempty" yaml:"unit_preference,omitempty"`
	MigrationVersion string             `json:"migrationVersion,omitempty" yaml:"migration_version,omitempty"`
}

// Export snapshots all collections from memory.
func (s *Store) Export() *ExportData {
	return &ExportData{
		Version:          "1.0",
		ExportedAt:       time.Now(),
		Tool:             "swim",
		Teams:            s.Teams.List(),
		Groups:           s.Groups.List(),
		Strokes:          s.Strokes.List(),
		Swimmers:         s.Swimmers.List(),
		Times:            s.Times.List(),
		Trainings:        s.Trainings.List(),
		Entries:          s.Entries.List(),
		Unit:             s.Prefs.Unit(),
		MigrationVersion: s.MigrationVersion(),
	}
}

// ExportJSON renders the snapshot as indented JSON.
func (s *Store) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(s.Export(), "", "  ")
}

// ExportYAML renders the snapshot as YAML.
func (s *Store) ExportYAML() ([]byte, error) {
	return yaml.Marshal(s.Export())
}

// Import replaces every collection with the snapshot's contents. The
// destination is overwritten wholesale; this is a restore, not a merge.
func (s *Store) Import(data *ExportData) error {
	if err := s.Teams.replaceAll(data.Teams); err != nil {
		return fmt.Errorf("import teams: %w", err)
	}
	if err := s.Groups.replaceAll(data.Groups); err != nil {
		return fmt.Errorf("import groups: %w", err)
	}
	if err := s.Strokes.replaceAll(data.Strokes); err != nil {
		return fmt.Errorf("import strokes: %w", err)
	}
	if err := s.Swimmers.replaceAll(data.Swimmers); err != nil {
		return fmt.Errorf("import swimmers: %w", err)
	}
	if err := s.Times.replaceAll(data.Times); err != nil {
		return fmt.Errorf("import times: %w", err)
	}
	if err := s.Trainings.replaceAll(data.Trainings); err != nil {
		return fmt.Errorf("import trainings: %w", err)
	}
	if err := s.importEntries(data.Entries); err != nil {
		return fmt.Errorf("import entries: %w", err)
	}
	if data.Unit != "" {
		if err := s.Prefs.SetUnit(data.Unit); err != nil {
			return fmt.Errorf("import unit preference: %w", err)
		}
	}
	if data.MigrationVersion != "" {
		if err := s.setValue(KeyMigrationVersion, data.MigrationVersion); err != nil {
			return fmt.Errorf("import migration marker: %w", err)
		}
	}
	return nil
}

// ImportJSON imports a snapshot from JSON bytes.
func (s *Store) ImportJSON(raw []byte) error {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return s.Import(&data)
}

func (s *Store) importEntries(entries []*models.Entry) error {
	l := s.Entries
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = entries
	return l.write()
}
