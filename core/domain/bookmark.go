// ABOUTME: Bookmark domain model is a saved snapshot of a script with its tone and voice
// ABOUTME: Audio is never part of a bookmark

package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// PreviewLength is the number of script characters kept as a bookmark preview
const PreviewLength = 150

// Bookmark represents a persisted script snapshot
type Bookmark struct {
	// ID is the unique identifier (UUID) generated at save time
	ID string `json:"id"`

	// CreatedAt is the creation time in unix milliseconds
	CreatedAt int64 `json:"createdAt"`

	// Script is the full script text
	Script string `json:"script"`

	// Tone the script was generated with
	Tone Tone `json:"tone"`

	// Voice selected when the bookmark was saved
	Voice Voice `json:"voice"`

	// Preview holds the first PreviewLength characters of the script
	Preview string `json:"preview"`
}

// NewBookmark creates a new Bookmark with a fresh ID and preview
func NewBookmark(script string, tone Tone, voice Voice) (*Bookmark, error) {
	if script == "" {
		return nil, errors.New("script cannot be empty")
	}

	return &Bookmark{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UnixMilli(),
		Script:    script,
		Tone:      tone,
		Voice:     voice,
		Preview:   preview(script),
	}, nil
}

// Created returns CreatedAt as a time value
func (b *Bookmark) Created() time.Time {
	return time.UnixMilli(b.CreatedAt)
}

func preview(script string) string {
	r := []rune(script)
	if len(r) <= PreviewLength {
		return script
	}
	return string(r[:PreviewLength])
}
