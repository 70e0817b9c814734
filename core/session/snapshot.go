// ABOUTME: Read-only view of a generation session
// ABOUTME: Snapshots are copies and never alias orchestrator state

package session

import (
	"time"

	"gistfm-api/core/domain"
)

// Snapshot is the observable state of a session
type Snapshot struct {
	State        domain.GenerationState
	ErrorKind    string
	ErrorMessage string

	ArticleText  domain.ArticleText
	ArticleTitle string
	ArticleSite  string
	URLInput     string

	Tone  domain.Tone
	Voice domain.Voice

	Script *domain.Script

	AudioID       string
	AudioDuration time.Duration

	BookmarkID string
}

// Loading reports whether any pipeline stage is in flight
func (s Snapshot) Loading() bool {
	return s.State.Loading()
}

// Processing reports whether generation or synthesis is in flight
func (s Snapshot) Processing() bool {
	return s.State.Processing()
}

// HasAudio reports whether a playable clip exists
func (s Snapshot) HasAudio() bool {
	return s.AudioID != ""
}

// Bookmarked reports whether the current script is associated with a saved bookmark
func (s Snapshot) Bookmarked() bool {
	return s.BookmarkID != ""
}
