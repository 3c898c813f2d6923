// ABOUTME: Time entity: one recorded swim for a swimmer/stroke/distance.
// ABOUTME: Carries the legacy entry id when created by migration.
package models

import (
	"fmt"
	"math"
)

// Time is a recorded swim time. SwimmerID and StrokeID are weak references.
// Distance is kept as the string the user entered; no unit normalization.
type Time struct {
	Meta
	SwimmerID     string  `json:"swimmerId"`
	StrokeID      string  `json:"strokeId"`
	Distance      string  `json:"distance"`
	TimeSeconds   float64 `json:"timeSeconds"`
	ResultSeconds float64 `json:"resultSeconds,omitempty"`
	Effort        string  `json:"effort,omitempty"`
	Date          string  `json:"date"`

	// LegacyID preserves the numeric id of the pre-migration entry this
	// time was derived from. Zero for times created directly.
	LegacyID int64 `json:"legacyId,omitempty"`
}

// Validate reports whether the time is storable. Distance may be any string,
// including empty; TimeSeconds must be a finite number.
func (t *Time) Validate() error {
	if t.SwimmerID == "" {
		return fmt.Errorf("swimmerId is required")
	}
	if t.StrokeID == "" {
		return fmt.Errorf("strokeId is required")
	}
	if math.IsNaN(t.TimeSeconds) || math.IsInf(t.TimeSeconds, 0) {
		return fmt.Errorf("timeSeconds must be a finite number")
	}
	return nil
}
