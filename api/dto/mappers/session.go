// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Keeps session, bookmark, and playback state out of the wire format

package mappers

import (
	"time"

	"gistfm-api/api/dto/responses"
	"gistfm-api/core/audio"
	"gistfm-api/core/playback"
	"gistfm-api/core/session"
	"gistfm-api/pkg/utils/duration"
)

// ToSessionResponse converts a session snapshot to its DTO
func ToSessionResponse(s session.Snapshot, now time.Time) *responses.SessionResponse {
	resp := &responses.SessionResponse{
		State:      string(s.State),
		Loading:    s.Loading(),
		Processing: s.Processing(),
		Article: responses.ArticleInfo{
			Text:   string(s.ArticleText),
			Title:  s.ArticleTitle,
			Site:   s.ArticleSite,
			Length: len([]rune(string(s.ArticleText))),
		},
		URLInput:   s.URLInput,
		Tone:       string(s.Tone),
		Voice:      string(s.Voice),
		BookmarkID: s.BookmarkID,
		Bookmarked: s.Bookmarked(),
	}

	if s.ErrorKind != "" || s.ErrorMessage != "" {
		resp.Error = &responses.ErrorInfo{Kind: s.ErrorKind, Message: s.ErrorMessage}
	}

	if s.Script != nil {
		resp.Script = &responses.ScriptInfo{
			Text:      s.Script.Text,
			Tone:      string(s.Script.Tone),
			WordCount: s.Script.WordCount(),
		}
	}

	if s.HasAudio() {
		resp.Audio = &responses.AudioInfo{
			ID:              s.AudioID,
			DurationSeconds: s.AudioDuration.Seconds(),
			Duration:        duration.FormatDuration(s.AudioDuration),
			Spoken:          duration.SecondsToHumanReadable(int(s.AudioDuration.Round(time.Second).Seconds())),
			ContentType:     audio.ContentType,
			Filename:        playback.AudioFilename(now),
		}
	}

	return resp
}
