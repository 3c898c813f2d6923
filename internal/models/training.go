// ABOUTME: Training entity with embedded exercises.
// ABOUTME: Exercises are owned by their training; their ids are only locally unique.
package models

// Exercise modes.
const (
	ModeInterval = "Interval"
	ModeEffort   = "Effort"
)

// Exercise is a sub-entity embedded in a Training. It never lives in its own
// collection; its id is unique within the parent training only.
type Exercise struct {
	ID       string `json:"id"`
	StrokeID string `json:"strokeId,omitempty"`
	Distance string `json:"distance,omitempty"`
	Sets     int    `json:"sets,omitempty"`
	Mode     string `json:"mode,omitempty"`
	Interval string `json:"interval,omitempty"`
	Effort   string `json:"effort,omitempty"`
}

// Training is a planned session assigned to swimmers and groups by id.
type Training struct {
	Meta
	Name       string      `json:"name"`
	SwimmerIDs []string    `json:"swimmerIds"`
	GroupIDs   []string    `json:"groupIds"`
	Exercises  []*Exercise `json:"exercises"`
}

// Validate reports whether the training is storable. Exercises are not
// validated beyond the parent; only presence of an id is guaranteed, and
// that is assigned when the exercise is added.
func (t *Training) Validate() error {
	return validateName(t.Name)
}

// Normalize replaces nil lists with empty ones so the stored JSON always
// carries arrays.
func (t *Training) Normalize() {
	if t.SwimmerIDs == nil {
		t.SwimmerIDs = []string{}
	}
	if t.GroupIDs == nil {
		t.GroupIDs = []string{}
	}
	if t.Exercises == nil {
		t.Exercises = []*Exercise{}
	}
}
