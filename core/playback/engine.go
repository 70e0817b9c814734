// ABOUTME: Playback engine contract and the events it emits
// ABOUTME: Controllers learn about progress only through engine events

package playback

import "time"

// EventType names an engine event
type EventType string

const (
	EventPlay           EventType = "play"
	EventPause          EventType = "pause"
	EventTimeUpdate     EventType = "timeupdate"
	EventDurationChange EventType = "durationchange"
	EventEnded          EventType = "ended"
)

// Event is emitted by an engine when its playback state changes
type Event struct {
	Type     EventType
	Position time.Duration
	Duration time.Duration
}

// Source is a loadable clip
type Source struct {
	ID       string
	Duration time.Duration
}

// Engine plays one source at a time.
// Implementations must not hold internal locks while invoking the listener.
type Engine interface {
	// Load replaces the current source; nil unloads. Position returns to zero.
	Load(src *Source)

	Play()
	Pause()

	// Seek moves the position; out-of-range values are clamped
	Seek(position time.Duration)

	// Position reports the live position, which may be ahead of the last event
	Position() time.Duration

	SetRate(rate float64)
	SetVolume(volume float64)

	// Subscribe sets the function receiving every event
	Subscribe(listener func(Event))
}
