// ABOUTME: Generation state machine values shared by the orchestrator and the API
// ABOUTME: Stage is a tagged union of the current state plus its payload

package domain

// GenerationState drives which operations are legal
type GenerationState string

const (
	StateIdle            GenerationState = "IDLE"
	StateFetchingURL     GenerationState = "FETCHING_URL"
	StateSummarizing     GenerationState = "SUMMARIZING"
	StateGeneratingAudio GenerationState = "GENERATING_AUDIO"
	StatePlaying         GenerationState = "PLAYING"
	StateError           GenerationState = "ERROR"
)

// Loading reports whether any pipeline stage is in flight
func (s GenerationState) Loading() bool {
	return s == StateFetchingURL || s.Processing()
}

// Processing reports whether script generation or synthesis is in flight
func (s GenerationState) Processing() bool {
	return s == StateSummarizing || s == StateGeneratingAudio
}

// Stage is the current state together with the data that belongs to it.
// Only the fields relevant to State are set.
type Stage struct {
	State GenerationState

	// ErrorKind and ErrorMessage are set in StateError
	ErrorKind    string
	ErrorMessage string

	// Script is set from StateGeneratingAudio onwards
	Script *Script
}

// IdleStage returns the initial stage
func IdleStage() Stage {
	return Stage{State: StateIdle}
}

// ErrorStage builds a stage in StateError
func ErrorStage(kind, message string) Stage {
	return Stage{State: StateError, ErrorKind: kind, ErrorMessage: message}
}
