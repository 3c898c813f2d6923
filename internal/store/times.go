// ABOUTME: Time facade with per-swimmer, per-stroke, and best-time queries.
package store

import (
	"github.com/harperreed/swim/internal/kv"
	"github.com/harperreed/swim/internal/models"
)

// Times manages the time collection.
type Times struct {
	*Repository[*models.Time]
}

// NewTimes binds a Times facade to the times storage key.
func NewTimes(store kv.Store) *Times {
	return &Times{newRepository(store, KeyTimes, (*models.Time).Validate, nil)}
}

// BySwimmer returns all times recorded for a swimmer.
func (t *Times) BySwimmer(swimmerID string) []*models.Time {
	var out []*models.Time
	for _, tm := range t.List() {
		if tm.SwimmerID == swimmerID {
			out = append(out, tm)
		}
	}
	return out
}

// ByStroke returns all times recorded for a stroke.
func (t *Times) ByStroke(strokeID string) []*models.Time {
	var out []*models.Time
	for _, tm := range t.List() {
		if tm.StrokeID == strokeID {
			out = append(out, tm)
		}
	}
	return out
}

// Best returns the fastest time for the swimmer/stroke/distance combination.
// Distance is compared as stored, without normalization. On exactly equal
// times, whichever record the reduction meets first wins; that order is not
// a documented guarantee.
func (t *Times) Best(swimmerID, strokeID, distance string) (*models.Time, bool) {
	var best *models.Time
	for _, tm := range t.List() {
		if tm.SwimmerID != swimmerID || tm.StrokeID != strokeID || tm.Distance != distance {
			continue
		}
		if best == nil || tm.TimeSeconds < best.TimeSeconds {
			best = tm
		}
	}
	return best, best != nil
}
