// ABOUTME: Stroke facade; seeds the five default strokes on first launch.
package store

import (
	"strings"

	"github.com/harperreed/swim/internal/kv"
	"github.com/harperreed/swim/internal/models"
)

// Strokes manages the stroke collection.
type Strokes struct {
	*Repository[*models.Stroke]
}

// NewStrokes binds a Strokes facade to the strokes storage key with the
// default strokes as first-launch seed data.
func NewStrokes(store kv.Store) *Strokes {
	return &Strokes{newRepository(store, KeyStrokes, (*models.Stroke).Validate, models.DefaultStrokes)}
}

// ByName finds a stroke by case-insensitive exact name match.
func (s *Strokes) ByName(name string) (*models.Stroke, bool) {
	lower := strings.ToLower(name)
	for _, st := range s.List() {
		if strings.ToLower(st.Name) == lower {
			return st, true
		}
	}
	return nil, false
}
