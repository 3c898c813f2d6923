// ABOUTME: Legacy flat swim-entry record from the pre-entity log.
// ABOUTME: Read-only input to migration; name and stroke are free text, not ids.
package models

// Entry is a v1 swim log record. The id is the creation timestamp in epoch
// milliseconds, and swimmer/stroke are unstructured strings. Entries are
// never mutated or deleted by migration.
type Entry struct {
	ID            int64   `json:"id"`
	Timestamp     string  `json:"timestamp"`
	Name          string  `json:"name"`
	Stroke        string  `json:"stroke"`
	Distance      string  `json:"distance"`
	Effort        string  `json:"effort"`
	BestTime      string  `json:"bestTime"`
	ResultTime    string  `json:"resultTime"`
	BestSeconds   float64 `json:"bestSeconds"`
	ResultSeconds float64 `json:"resultSeconds"`
}
