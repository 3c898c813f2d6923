// ABOUTME: Stroke entity and the default strokes seeded on first launch.
// ABOUTME: Also holds the distance and effort option lists used by the CLI.
package models

// Stroke is a named swim stroke.
type Stroke struct {
	Meta
	Name string `json:"name"`
}

// Validate reports whether the stroke is storable.
func (s *Stroke) Validate() error {
	return validateName(s.Name)
}

// DefaultStrokes returns the five strokes seeded when the strokes
// collection is first found empty. IDs are assigned by the repository.
func DefaultStrokes() []*Stroke {
	return []*Stroke{
		{Name: "Freestyle"},
		{Name: "Backstroke"},
		{Name: "Breaststroke"},
		{Name: "Butterfly"},
		{Name: "Individual Medley"},
	}
}

// Distance options by unit preference.
var (
	DistancesMeters = []string{"50", "100", "200", "400", "800", "1500"}
	DistancesYards  = []string{"25", "50", "100", "200", "500", "1000", "1650"}
)

// Efforts are the effort-percentage options offered when logging an entry.
var Efforts = []string{"50%", "60%", "70%", "80%", "90%", "100%"}
