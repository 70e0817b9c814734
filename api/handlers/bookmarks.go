// ABOUTME: Bookmark handlers for the Huma API
// ABOUTME: Lists, toggles, opens, and deletes saved scripts

package handlers

import (
	"context"
	"net/http"
	"time"

	"gistfm-api/api/dto/mappers"
	"gistfm-api/api/dto/responses"
	"gistfm-api/core/domain"

	"github.com/danielgtaylor/huma/v2"
)

// BookmarkLister reads the saved bookmarks
type BookmarkLister interface {
	List(ctx context.Context) []domain.Bookmark
}

// BookmarkSession is the part of the orchestrator that manages bookmark associations
type BookmarkSession interface {
	SessionService
	LoadBookmark(ctx context.Context, id string) error
	ToggleBookmark(ctx context.Context) (bool, error)
	RemoveBookmark(ctx context.Context, id string)
}

// BookmarkHandler handles bookmark-related HTTP requests
type BookmarkHandler struct {
	bookmarks BookmarkLister
	session   BookmarkSession
}

// NewBookmarkHandler creates a new bookmark handler
func NewBookmarkHandler(bookmarks BookmarkLister, svc BookmarkSession) *BookmarkHandler {
	return &BookmarkHandler{bookmarks: bookmarks, session: svc}
}

// RegisterRoutes registers all bookmark routes
func (h *BookmarkHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listBookmarks",
		Method:      http.MethodGet,
		Path:        "/bookmarks",
		Summary:     "List saved scripts, newest first",
		Tags:        []string{"Bookmarks"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "toggleBookmark",
		Method:      http.MethodPost,
		Path:        "/bookmarks",
		Summary:     "Bookmark or un-bookmark the current script",
		Tags:        []string{"Bookmarks"},
	}, h.Toggle)

	huma.Register(api, huma.Operation{
		OperationID:   "deleteBookmark",
		Method:        http.MethodDelete,
		Path:          "/bookmarks/{id}",
		Summary:       "Delete a bookmark",
		Tags:          []string{"Bookmarks"},
		DefaultStatus: http.StatusNoContent,
	}, h.Delete)

	huma.Register(api, huma.Operation{
		OperationID: "openBookmark",
		Method:      http.MethodPost,
		Path:        "/bookmarks/{id}/open",
		Summary:     "Load a bookmark into the session",
		Description: "Restores script, tone and voice; audio must be generated again",
		Tags:        []string{"Bookmarks"},
	}, h.Open)
}

// ListBookmarksOutput defines the output for List
type ListBookmarksOutput struct {
	Body responses.BookmarkListResponse
}

// List handles GET /bookmarks
func (h *BookmarkHandler) List(ctx context.Context, input *struct{}) (*ListBookmarksOutput, error) {
	return &ListBookmarksOutput{Body: *mappers.ToBookmarkListResponse(h.bookmarks.List(ctx))}, nil
}

// ToggleBookmarkOutput defines the output for Toggle
type ToggleBookmarkOutput struct {
	Body responses.ToggleBookmarkResponse
}

// Toggle handles POST /bookmarks
func (h *BookmarkHandler) Toggle(ctx context.Context, input *struct{}) (*ToggleBookmarkOutput, error) {
	bookmarked, err := h.session.ToggleBookmark(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ToggleBookmarkOutput{Body: responses.ToggleBookmarkResponse{
		Bookmarked: bookmarked,
		BookmarkID: h.session.Snapshot().BookmarkID,
	}}, nil
}

// BookmarkIDInput identifies a bookmark
type BookmarkIDInput struct {
	ID string `path:"id" minLength:"1" doc:"Bookmark ID"`
}

// Delete handles DELETE /bookmarks/{id}. Unknown ids succeed.
func (h *BookmarkHandler) Delete(ctx context.Context, input *BookmarkIDInput) (*struct{}, error) {
	h.session.RemoveBookmark(ctx, input.ID)
	return nil, nil
}

// Open handles POST /bookmarks/{id}/open
func (h *BookmarkHandler) Open(ctx context.Context, input *BookmarkIDInput) (*SessionOutput, error) {
	if err := h.session.LoadBookmark(ctx, input.ID); err != nil {
		return nil, toHumaError(err)
	}
	return &SessionOutput{Body: *mappers.ToSessionResponse(h.session.Snapshot(), time.Now())}, nil
}
