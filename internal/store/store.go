// ABOUTME: Store aggregates every entity facade over one key-value store.
// ABOUTME: Defines the storage keys and opens/loads all collections.
package store

import (
	"errors"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/harperreed/swim/internal/kv"
)

// Storage keys for all collections and single values. Each key is owned by
// exactly one facade; there are no cross-key transactions.
const (
	KeyTeams            = "teams"
	KeyGroups           = "groups"
	KeyStrokes          = "strokes"
	KeySwimmers         = "swimmers"
	KeyTimes            = "times"
	KeyTrainings        = "trainings"
	KeyLegacyEntries    = "swimEntries"
	KeyMigrationVersion = "migrationVersion"
	KeyUnitPreference   = "unitPreference"
)

// Store bundles all facades over a single key-value store.
type Store struct {
	kv kv.Store

	Teams     *Teams
	Groups    *Groups
	Strokes   *Strokes
	Swimmers  *Swimmers
	Times     *Times
	Trainings *Trainings
	Entries   *EntryLog
	Prefs     *Prefs

	migrateMu sync.Mutex
}

// Open builds all facades over the given key-value store and loads every
// collection into memory. Strokes are seeded on first launch.
func Open(store kv.Store) *Store {
	s := &Store{
		kv:        store,
		Teams:     NewTeams(store),
		Groups:    NewGroups(store),
		Strokes:   NewStrokes(store),
		Swimmers:  NewSwimmers(store),
		Times:     NewTimes(store),
		Trainings: NewTrainings(store),
		Entries:   NewEntryLog(store),
		Prefs:     NewPrefs(store),
	}

	s.Teams.Load()
	s.Groups.Load()
	s.Strokes.Load()
	s.Swimmers.Load()
	s.Times.Load()
	s.Trainings.Load()
	s.Entries.Load()

	return s
}

// Close closes the underlying key-value store.
func (s *Store) Close() error {
	return s.kv.Close()
}

// getValue reads a plain-string key, degrading to empty on any failure.
func (s *Store) getValue(key string) string {
	data, err := s.kv.Get(key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			log.Warn("reading value failed", "key", key, "err", err)
		}
		return ""
	}
	return string(data)
}

// setValue writes a plain-string key.
func (s *Store) setValue(key, value string) error {
	return s.kv.Set(key, []byte(value))
}
