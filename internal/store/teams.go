// ABOUTME: Team facade over the generic repository.
package store

import (
	"github.com/harperreed/swim/internal/kv"
	"github.com/harperreed/swim/internal/models"
)

// Teams manages the team collection.
type Teams struct {
	*Repository[*models.Team]
}

// NewTeams binds a Teams facade to the teams storage key.
func NewTeams(store kv.Store) *Teams {
	return &Teams{newRepository(store, KeyTeams, (*models.Team).Validate, nil)}
}
