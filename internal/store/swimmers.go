// ABOUTME: Swimmer facade with team/group membership and name queries.
package store

import (
	"slices"
	"strings"

	"github.com/harperreed/swim/internal/kv"
	"github.com/harperreed/swim/internal/models"
)

// Swimmers manages the swimmer collection.
type Swimmers struct {
	*Repository[*models.Swimmer]
}

// NewSwimmers binds a Swimmers facade to the swimmers storage key.
func NewSwimmers(store kv.Store) *Swimmers {
	return &Swimmers{newRepository(store, KeySwimmers, (*models.Swimmer).Validate, nil)}
}

// Add normalizes nil membership lists to empty before storing.
func (s *Swimmers) Add(sw *models.Swimmer) (*models.Swimmer, error) {
	sw.Normalize()
	return s.Repository.Add(sw)
}

// ByTeam returns swimmers whose team memberships include teamID.
func (s *Swimmers) ByTeam(teamID string) []*models.Swimmer {
	var out []*models.Swimmer
	for _, sw := range s.List() {
		if slices.Contains(sw.TeamIDs, teamID) {
			out = append(out, sw)
		}
	}
	return out
}

// ByGroup returns swimmers whose group memberships include groupID.
func (s *Swimmers) ByGroup(groupID string) []*models.Swimmer {
	var out []*models.Swimmer
	for _, sw := range s.List() {
		if slices.Contains(sw.GroupIDs, groupID) {
			out = append(out, sw)
		}
	}
	return out
}

// ByName finds a swimmer by case-insensitive exact name match. The first
// match in collection order wins; with duplicate names the winner is not
// guaranteed stable.
func (s *Swimmers) ByName(name string) (*models.Swimmer, bool) {
	lower := strings.ToLower(name)
	for _, sw := range s.List() {
		if strings.ToLower(sw.Name) == lower {
			return sw, true
		}
	}
	return nil, false
}
