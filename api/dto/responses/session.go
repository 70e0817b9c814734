// ABOUTME: Response DTOs for session endpoints
// ABOUTME: Durations are reported in seconds with display labels alongside

package responses

// SessionResponse is the observable state of the generation session
type SessionResponse struct {
	State      string `json:"state" doc:"IDLE, FETCHING_URL, SUMMARIZING, GENERATING_AUDIO, PLAYING or ERROR"`
	Loading    bool   `json:"loading"`
	Processing bool   `json:"processing"`

	Error *ErrorInfo `json:"error,omitempty"`

	Article  ArticleInfo `json:"article"`
	URLInput string      `json:"url_input"`

	Tone  string `json:"tone"`
	Voice string `json:"voice"`

	Script *ScriptInfo `json:"script,omitempty"`
	Audio  *AudioInfo  `json:"audio,omitempty"`

	BookmarkID string `json:"bookmark_id,omitempty"`
	Bookmarked bool   `json:"bookmarked"`
}

// ErrorInfo is the message shown in the error stage
type ErrorInfo struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ArticleInfo describes the current article text
type ArticleInfo struct {
	Text   string `json:"text"`
	Title  string `json:"title,omitempty"`
	Site   string `json:"site,omitempty"`
	Length int    `json:"length" doc:"Length in characters"`
}

// ScriptInfo is the generated spoken-word script
type ScriptInfo struct {
	Text      string `json:"text"`
	Tone      string `json:"tone"`
	WordCount int    `json:"word_count"`
}

// AudioInfo describes the playable clip
type AudioInfo struct {
	ID              string  `json:"id"`
	DurationSeconds float64 `json:"duration_seconds"`
	Duration        string  `json:"duration" doc:"mm:ss"`
	Spoken          string  `json:"spoken" doc:"Human readable duration"`
	ContentType     string  `json:"content_type"`
	Filename        string  `json:"filename"`
}
