// ABOUTME: Response DTOs for playback and catalog endpoints

package responses

// PlaybackResponse is the transport state
type PlaybackResponse struct {
	Loaded   bool      `json:"loaded"`
	SourceID string    `json:"source_id,omitempty"`
	Playing  bool      `json:"playing"`
	Position float64   `json:"position" doc:"Seconds"`
	Duration float64   `json:"duration" doc:"Seconds"`
	Elapsed  string    `json:"elapsed" doc:"mm:ss"`
	Total    string    `json:"total" doc:"mm:ss"`
	Rate     float64   `json:"rate"`
	Rates    []float64 `json:"rates"`
	Volume   float64   `json:"volume"`
	Muted    bool      `json:"muted"`
}

// ToneInfo describes a selectable tone
type ToneInfo struct {
	Name        string `json:"name"`
	Instruction string `json:"instruction"`
}

// TonesResponse lists the tones
type TonesResponse struct {
	Tones   []ToneInfo `json:"tones"`
	Default string     `json:"default"`
}

// VoicesResponse lists the voices
type VoicesResponse struct {
	Voices  []string `json:"voices"`
	Default string   `json:"default"`
	Current string   `json:"current"`
}
