// ABOUTME: Response DTOs for bookmark endpoints

package responses

// BookmarkResponse is a saved script
type BookmarkResponse struct {
	ID        string `json:"id"`
	CreatedAt int64  `json:"createdAt" doc:"Unix milliseconds"`
	Created   string `json:"created" doc:"RFC 3339 creation time"`
	Script    string `json:"script"`
	Tone      string `json:"tone"`
	Voice     string `json:"voice"`
	Preview   string `json:"preview"`
}

// BookmarkListResponse lists bookmarks newest first
type BookmarkListResponse struct {
	Bookmarks []BookmarkResponse `json:"bookmarks"`
	Count     int                `json:"count"`
}

// ToggleBookmarkResponse reports the bookmark state of the current script
type ToggleBookmarkResponse struct {
	Bookmarked bool   `json:"bookmarked"`
	BookmarkID string `json:"bookmark_id,omitempty"`
}
