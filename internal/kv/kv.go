// ABOUTME: Key-value store interface for swim data persistence.
// ABOUTME: Defines the contract shared by the Charm, Badger, and memory backends.
package kv

import "errors"

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// Store is the persistence substrate for all swim data. Values are opaque
// bytes; the store layer above encodes collections as JSON arrays.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}
