package mappers

import (
	"time"

	"gistfm-api/api/dto/responses"
	"gistfm-api/core/domain"

	"github.com/jinzhu/copier"
)

// ToBookmarkResponse converts a domain Bookmark to its DTO
func ToBookmarkResponse(b *domain.Bookmark) *responses.BookmarkResponse {
	if b == nil {
		return nil
	}

	resp := &responses.BookmarkResponse{}
	// Field names match; named string types convert to plain strings
	_ = copier.Copy(resp, b)
	resp.Created = b.Created().UTC().Format(time.RFC3339)
	return resp
}

// ToBookmarkListResponse converts bookmarks, preserving order
func ToBookmarkListResponse(list []domain.Bookmark) *responses.BookmarkListResponse {
	out := make([]responses.BookmarkResponse, 0, len(list))
	for i := range list {
		if r := ToBookmarkResponse(&list[i]); r != nil {
			out = append(out, *r)
		}
	}
	return &responses.BookmarkListResponse{Bookmarks: out, Count: len(out)}
}
