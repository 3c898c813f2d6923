// ABOUTME: Common store errors.
// ABOUTME: Enables consistent error handling across facades and callers.
package store

import "errors"

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalid is returned when a record fails its type's validation.
var ErrInvalid = errors.New("invalid record")
