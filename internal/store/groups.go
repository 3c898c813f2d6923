// ABOUTME: Group facade with the by-team membership query.
package store

import (
	"github.com/harperreed/swim/internal/kv"
	"github.com/harperreed/swim/internal/models"
)

// Groups manages the group collection.
type Groups struct {
	*Repository[*models.Group]
}

// NewGroups binds a Groups facade to the groups storage key.
func NewGroups(store kv.Store) *Groups {
	return &Groups{newRepository(store, KeyGroups, (*models.Group).Validate, nil)}
}

// ByTeam returns the groups attached to a team, newest first.
func (g *Groups) ByTeam(teamID string) []*models.Group {
	var out []*models.Group
	for _, grp := range g.List() {
		if grp.TeamID == teamID {
			out = append(out, grp)
		}
	}
	return out
}
