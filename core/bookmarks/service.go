// ABOUTME: Bookmark service keeps saved scripts as one ordered list in a named store slot
// ABOUTME: Persistence failures are logged and degrade to an empty list or a no-op

package bookmarks

import (
	"context"
	"encoding/json"
	"errors"

	"gistfm-api/core/domain"
	"gistfm-api/core/interfaces"
)

// DefaultKey is the slot holding the bookmark list
const DefaultKey = "gistfm_bookmarks"

// Service handles bookmark operations. Every call reads the whole list and
// mutations rewrite it whole.
type Service struct {
	store  interfaces.Store
	logger interfaces.Logger
	key    string
}

// NewService creates a new bookmark service over the given slot
func NewService(store interfaces.Store, logger interfaces.Logger, key string) *Service {
	if key == "" {
		key = DefaultKey
	}
	return &Service{
		store:  store,
		logger: logger,
		key:    key,
	}
}

// List returns all bookmarks, newest first. Unreadable data yields an empty list.
func (s *Service) List(ctx context.Context) []domain.Bookmark {
	data, err := s.store.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, interfaces.ErrKeyNotFound) {
			s.logger.Warn("Failed to load bookmarks", map[string]interface{}{
				"key":   s.key,
				"error": err.Error(),
			})
		}
		return []domain.Bookmark{}
	}

	var list []domain.Bookmark
	if err := json.Unmarshal(data, &list); err != nil {
		s.logger.Warn("Stored bookmarks are corrupt", map[string]interface{}{
			"key":   s.key,
			"error": err.Error(),
		})
		return []domain.Bookmark{}
	}
	if list == nil {
		list = []domain.Bookmark{}
	}
	return list
}

// Get returns the bookmark with the given id
func (s *Service) Get(ctx context.Context, id string) (*domain.Bookmark, bool) {
	for _, b := range s.List(ctx) {
		if b.ID == id {
			b := b
			return &b, true
		}
	}
	return nil, false
}

// Save prepends b. It is a no-op when a bookmark with the same id exists.
func (s *Service) Save(ctx context.Context, b domain.Bookmark) {
	list := s.List(ctx)
	for _, existing := range list {
		if existing.ID == b.ID {
			return
		}
	}

	updated := make([]domain.Bookmark, 0, len(list)+1)
	updated = append(updated, b)
	updated = append(updated, list...)

	s.write(ctx, updated, "save")
}

// Remove deletes the bookmark with the given id. Absent ids are a no-op.
func (s *Service) Remove(ctx context.Context, id string) {
	list := s.List(ctx)
	updated := make([]domain.Bookmark, 0, len(list))
	for _, b := range list {
		if b.ID != id {
			updated = append(updated, b)
		}
	}
	if len(updated) == len(list) {
		return
	}

	s.write(ctx, updated, "remove")
}

// IsScriptBookmarked reports whether any bookmark holds exactly this script
func (s *Service) IsScriptBookmarked(ctx context.Context, script string) bool {
	for _, b := range s.List(ctx) {
		if b.Script == script {
			return true
		}
	}
	return false
}

func (s *Service) write(ctx context.Context, list []domain.Bookmark, op string) {
	data, err := json.Marshal(list)
	if err != nil {
		s.logger.Warn("Failed to encode bookmarks", map[string]interface{}{
			"op":    op,
			"error": err.Error(),
		})
		return
	}

	if err := s.store.Set(ctx, s.key, data); err != nil {
		s.logger.Warn("Failed to persist bookmarks", map[string]interface{}{
			"op":    op,
			"key":   s.key,
			"error": err.Error(),
		})
	}
}
