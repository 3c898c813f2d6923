// ABOUTME: Generic persisted collection with validation, seeding, and bulk insert.
// ABOUTME: Each repository owns one storage key; a mutex serializes all mutation.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/harperreed/swim/internal/kv"
	"github.com/harperreed/swim/internal/models"
)

// Repository persists one entity collection as a JSON array under a single
// key. Records are kept newest-first. The in-memory collection is the source
// of truth for reads between Load and the next storage failure; read failures
// are logged and degrade to an empty collection rather than propagating.
type Repository[T models.Entity] struct {
	mu       sync.RWMutex
	store    kv.Store
	key      string
	validate func(T) error
	seed     func() []T
	records  []T
}

func newRepository[T models.Entity](store kv.Store, key string, validate func(T) error, seed func() []T) *Repository[T] {
	return &Repository[T]{
		store:    store,
		key:      key,
		validate: validate,
		seed:     seed,
	}
}

// Key returns the storage key this repository owns.
func (r *Repository[T]) Key() string { return r.key }

// Load reads the collection from storage, seeding configured defaults when
// the stored collection is empty. It replaces the in-memory state.
func (r *Repository[T]) Load() []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.read()
	if len(records) == 0 && r.seed != nil {
		records = r.seed()
		for _, item := range records {
			if item.EntityID() == "" {
				item.SetEntityID(models.NewID())
			}
		}
		// A failed seed write is logged by write; the seeded collection
		// still serves reads and the next mutation retries persistence.
		_ = r.write(records)
	}
	r.records = records
	return r.snapshot()
}

// Reload re-runs Load, discarding in-memory state in favor of storage.
func (r *Repository[T]) Reload() []T {
	return r.Load()
}

// List returns a copy of the in-memory collection, newest first.
func (r *Repository[T]) List() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot()
}

// Count reports the number of records.
func (r *Repository[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// GetByID looks up a record in the in-memory collection. No I/O.
func (r *Repository[T]) GetByID(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.EntityID() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Add validates the record, assigns a fresh id and creation timestamp,
// prepends it, and persists the collection. A validation failure returns
// ErrInvalid and leaves both memory and storage untouched.
func (r *Repository[T]) Add(rec T) (T, error) {
	var zero T
	if r.validate != nil {
		if err := r.validate(rec); err != nil {
			return zero, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec.SetEntityID(models.NewID())
	rec.SetCreated(models.NowMillis())
	r.records = append([]T{rec}, r.records...)
	if err := r.write(r.records); err != nil {
		// In-memory state stands; Reload rolls back to storage.
		return rec, err
	}
	return rec, nil
}

// Update applies mutate to a deep copy of the record, stamps the update
// timestamp, and re-validates. On validation failure the stored record is
// preserved unchanged and ErrInvalid is returned.
func (r *Repository[T]) Update(id string, mutate func(T)) (T, error) {
	var zero T

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, rec := range r.records {
		if rec.EntityID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return zero, ErrNotFound
	}

	merged, err := clone(r.records[idx])
	if err != nil {
		return zero, fmt.Errorf("clone %s record: %w", r.key, err)
	}
	mutate(merged)
	merged.SetEntityID(id)
	merged.SetUpdated(models.NowMillis())

	if r.validate != nil {
		if err := r.validate(merged); err != nil {
			return zero, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}

	r.records[idx] = merged
	if err := r.write(r.records); err != nil {
		return merged, err
	}
	return merged, nil
}

// Remove filters out the matching record. Removing a missing id returns
// ErrNotFound without writing.
func (r *Repository[T]) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	filtered := make([]T, 0, len(r.records))
	for _, rec := range r.records {
		if rec.EntityID() != id {
			filtered = append(filtered, rec)
		}
	}
	if len(filtered) == len(r.records) {
		return ErrNotFound
	}
	r.records = filtered
	return r.write(r.records)
}

// Clear replaces the collection with empty and persists.
func (r *Repository[T]) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
	return r.write(r.records)
}

// BulkInsert assigns ids and creation timestamps to any item missing them
// and prepends the whole batch with a single storage write. Intended for
// migration-scale inserts.
func (r *Repository[T]) BulkInsert(items []T) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := models.NowMillis()
	for _, item := range items {
		if item.EntityID() == "" {
			item.SetEntityID(models.NewID())
		}
		if item.Created() == 0 {
			item.SetCreated(now)
		}
	}
	combined := make([]T, 0, len(items)+len(r.records))
	combined = append(combined, items...)
	combined = append(combined, r.records...)
	r.records = combined
	if err := r.write(r.records); err != nil {
		return items, err
	}
	return items, nil
}

// replaceAll swaps in a full collection (import path).
func (r *Repository[T]) replaceAll(records []T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = records
	return r.write(r.records)
}

func (r *Repository[T]) snapshot() []T {
	out := make([]T, len(r.records))
	copy(out, r.records)
	return out
}

func (r *Repository[T]) read() []T {
	data, err := r.store.Get(r.key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			log.Warn("loading collection failed", "key", r.key, "err", err)
		}
		return nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		log.Warn("corrupt collection, starting empty", "key", r.key, "err", err)
		return nil
	}
	return records
}

func (r *Repository[T]) write(records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", r.key, err)
	}
	if err := r.store.Set(r.key, data); err != nil {
		log.Warn("saving collection failed", "key", r.key, "err", err)
		return fmt.Errorf("save %s: %w", r.key, err)
	}
	return nil
}

// clone deep-copies a record through its JSON form.
func clone[T models.Entity](src T) (T, error) {
	var out T
	data, err := json.Marshal(src)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, err
	}
	return out, nil
}
