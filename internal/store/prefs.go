// ABOUTME: Distance unit preference stored as a plain string value.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/harperreed/swim/internal/kv"
)

// Unit preference values: meters or yards.
const (
	UnitMeters = "m"
	UnitYards  = "y"
)

// Prefs manages the unit preference under the unitPreference key.
type Prefs struct {
	mu    sync.Mutex
	store kv.Store
}

// NewPrefs binds the preferences to the key-value store.
func NewPrefs(store kv.Store) *Prefs {
	return &Prefs{store: store}
}

// Unit returns the stored unit preference, defaulting to meters when unset
// or unreadable.
func (p *Prefs) Unit() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := p.store.Get(KeyUnitPreference)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			log.Warn("reading unit preference failed", "err", err)
		}
		return UnitMeters
	}
	unit := string(data)
	if unit != UnitMeters && unit != UnitYards {
		return UnitMeters
	}
	return unit
}

// SetUnit stores the unit preference. Only "m" and "y" are accepted.
func (p *Prefs) SetUnit(unit string) error {
	if unit != UnitMeters && unit != UnitYards {
		return fmt.Errorf("%w: unit must be %q or %q", ErrInvalid, UnitMeters, UnitYards)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.store.Set(KeyUnitPreference, []byte(unit))
}
