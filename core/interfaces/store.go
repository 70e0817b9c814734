// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Store.Get when a slot holds no value
var ErrKeyNotFound = errors.New("key not found")

// Store defines persistent named-slot storage.
// Each slot holds one opaque value that is always read and written whole.
// Implementations can be in-memory, SQLite, Redis, or a storage bucket.
//
// Example usage:
//
//	// Write the bookmark list
//	err := store.Set(ctx, "gistfm_bookmarks", data)
//
//	// Read it back
//	data, err := store.Get(ctx, "gistfm_bookmarks")
//	if errors.Is(err, interfaces.ErrKeyNotFound) {
//		// slot is empty
//	}
type Store interface {
	// Get retrieves the value held in a slot.
	// Returns ErrKeyNotFound if the slot is empty.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value held in a slot.
	Set(ctx context.Context, key string, value []byte) error

	// Delete empties a slot.
	// Returns nil if the slot is already empty.
	Delete(ctx context.Context, key string) error
}
