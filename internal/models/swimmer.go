// ABOUTME: Swimmer entity with weak many-to-many team and group links.
// ABOUTME: Memberships are id lists with no referential integrity enforcement.
package models

// Swimmer is a person whose times are tracked. TeamIDs and GroupIDs are weak
// references; they may dangle after a team or group is deleted.
type Swimmer struct {
	Meta
	Name      string   `json:"name"`
	BirthDate string   `json:"birthDate,omitempty"`
	TeamIDs   []string `json:"teamIds"`
	GroupIDs  []string `json:"groupIds"`
}

// Validate reports whether the swimmer is storable.
func (s *Swimmer) Validate() error {
	return validateName(s.Name)
}

// Normalize replaces nil membership lists with empty ones so the stored
// JSON always carries arrays.
func (s *Swimmer) Normalize() {
	if s.TeamIDs == nil {
		s.TeamIDs = []string{}
	}
	if s.GroupIDs == nil {
		s.GroupIDs = []string{}
	}
}
