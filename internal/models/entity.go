// ABOUTME: Shared entity metadata and ID generation for swim records.
// ABOUTME: Meta is embedded by every persisted entity type.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Entity is implemented by every persisted record. The repository owns ID
// assignment and timestamping; entities only expose the fields.
type Entity interface {
	EntityID() string
	SetEntityID(id string)
	Created() int64
	SetCreated(ms int64)
	SetUpdated(ms int64)
}

// Meta carries the common persisted fields of an entity. Timestamps are
// epoch milliseconds, matching the stored JSON layout.
type Meta struct {
	ID        string `json:"id"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	UpdatedAt int64  `json:"updatedAt,omitempty"`
}

func (m *Meta) EntityID() string      { return m.ID }
func (m *Meta) SetEntityID(id string) { m.ID = id }
func (m *Meta) Created() int64        { return m.CreatedAt }
func (m *Meta) SetCreated(ms int64)   { m.CreatedAt = ms }
func (m *Meta) SetUpdated(ms int64)   { m.UpdatedAt = ms }

// NewID returns a fresh opaque entity ID.
func NewID() string {
	return uuid.NewString()
}

// NowMillis returns the current time in epoch milliseconds.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
