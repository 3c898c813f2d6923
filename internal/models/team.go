// ABOUTME: Team and Group entities for organizing swimmers.
// ABOUTME: Groups hold a weak reference to their team; dangling ids are tolerated.
package models

import (
	"fmt"
	"strings"
)

// Team is a named collection of swimmers.
type Team struct {
	Meta
	Name string `json:"name"`
}

// Validate reports whether the team is storable.
func (t *Team) Validate() error {
	return validateName(t.Name)
}

// Group is a training group, optionally attached to a team by id.
// The reference is weak: deleting the team does not cascade, and consumers
// resolve a missing team to "unknown".
type Group struct {
	Meta
	Name   string `json:"name"`
	TeamID string `json:"teamId,omitempty"`
}

// Validate reports whether the group is storable.
func (g *Group) Validate() error {
	return validateName(g.Name)
}

// validateName requires a non-empty name after trimming whitespace.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty or whitespace")
	}
	return nil
}
