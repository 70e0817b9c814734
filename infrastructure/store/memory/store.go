// ABOUTME: In-memory slot store backed by go-cache
// ABOUTME: Slots never expire; contents are lost when the process exits

package memory

import (
	"context"

	"gistfm-api/core/interfaces"

	"github.com/patrickmn/go-cache"
)

// Store implements the Store interface in process memory
type Store struct {
	cache *cache.Cache
}

// NewStore creates a new in-memory store
func NewStore() *Store {
	return &Store{cache: cache.New(cache.NoExpiration, 0)}
}

// Get retrieves a copy of the value held in a slot
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, found := s.cache.Get(key)
	if !found {
		return nil, interfaces.ErrKeyNotFound
	}

	value := v.([]byte)
	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

// Set stores a copy of value in a slot
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	s.cache.Set(key, valueCopy, cache.NoExpiration)
	return nil
}

// Delete empties a slot
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cache.Delete(key)
	return nil
}

// Len returns the number of occupied slots
func (s *Store) Len() int {
	return s.cache.ItemCount()
}
