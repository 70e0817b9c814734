// ABOUTME: Software media clock engine used where no audio device is attached
// ABOUTME: Position advances with wall time scaled by rate and is reported from a ticker

package playback

import (
	"sync"
	"time"
)

// DefaultTickInterval matches the cadence of browser time updates
const DefaultTickInterval = 250 * time.Millisecond

// ClockOption configures a ClockEngine
type ClockOption func(*ClockEngine)

// WithNow replaces the wall clock
func WithNow(now func() time.Time) ClockOption {
	return func(e *ClockEngine) {
		e.now = now
	}
}

// WithTickInterval sets how often time updates are emitted while playing.
// Zero disables the background ticker; Tick can still be called directly.
func WithTickInterval(d time.Duration) ClockOption {
	return func(e *ClockEngine) {
		e.interval = d
	}
}

// ClockEngine tracks playback position without producing sound
type ClockEngine struct {
	now      func() time.Time
	interval time.Duration

	mu       sync.Mutex
	listener func(Event)
	src      *Source
	playing  bool
	rate     float64
	volume   float64
	base     time.Duration
	since    time.Time
	stop     chan struct{}
}

// NewClockEngine creates an engine with nothing loaded
func NewClockEngine(opts ...ClockOption) *ClockEngine {
	e := &ClockEngine{
		now:      time.Now,
		interval: DefaultTickInterval,
		rate:     1,
		volume:   1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Subscribe implements Engine
func (e *ClockEngine) Subscribe(listener func(Event)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listener = listener
}

// Load implements Engine
func (e *ClockEngine) Load(src *Source) {
	e.mu.Lock()
	e.stopTickerLocked()
	e.playing = false
	e.base = 0
	e.src = nil
	var events []Event
	if src != nil {
		s := *src
		e.src = &s
		events = append(events,
			Event{Type: EventDurationChange, Duration: s.Duration},
			Event{Type: EventTimeUpdate, Duration: s.Duration},
		)
	}
	e.mu.Unlock()

	e.emit(events...)
}

// Play implements Engine. Playing at the end restarts from zero.
func (e *ClockEngine) Play() {
	e.mu.Lock()
	if e.src == nil || e.playing {
		e.mu.Unlock()
		return
	}
	if e.base >= e.src.Duration {
		e.base = 0
	}
	e.playing = true
	e.since = e.now()
	e.startTickerLocked()
	ev := e.eventLocked(EventPlay)
	e.mu.Unlock()

	e.emit(ev)
}

// Pause implements Engine
func (e *ClockEngine) Pause() {
	e.mu.Lock()
	if !e.playing {
		e.mu.Unlock()
		return
	}
	e.base = e.positionLocked()
	e.playing = false
	e.stopTickerLocked()
	ev := e.eventLocked(EventPause)
	e.mu.Unlock()

	e.emit(ev)
}

// Seek implements Engine
func (e *ClockEngine) Seek(position time.Duration) {
	e.mu.Lock()
	if e.src == nil {
		e.mu.Unlock()
		return
	}
	e.base = clamp(position, 0, e.src.Duration)
	e.since = e.now()
	ev := e.eventLocked(EventTimeUpdate)
	e.mu.Unlock()

	e.emit(ev)
}

// Position implements Engine
func (e *ClockEngine) Position() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.positionLocked()
}

// SetRate implements Engine
func (e *ClockEngine) SetRate(rate float64) {
	if rate <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.playing {
		e.base = e.positionLocked()
		e.since = e.now()
	}
	e.rate = rate
}

// SetVolume implements Engine
func (e *ClockEngine) SetVolume(volume float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.volume = volume
}

// Volume returns the applied volume
func (e *ClockEngine) Volume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.volume
}

// Rate returns the applied playback rate
func (e *ClockEngine) Rate() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rate
}

// Tick emits a time update, or the end of playback once the clip is exhausted
func (e *ClockEngine) Tick() {
	e.mu.Lock()
	if e.src == nil || !e.playing {
		e.mu.Unlock()
		return
	}

	pos := e.positionLocked()
	if pos < e.src.Duration {
		ev := e.eventLocked(EventTimeUpdate)
		e.mu.Unlock()
		e.emit(ev)
		return
	}

	e.base = e.src.Duration
	e.playing = false
	e.stopTickerLocked()
	update := e.eventLocked(EventTimeUpdate)
	ended := e.eventLocked(EventEnded)
	e.mu.Unlock()

	e.emit(update, ended)
}

// Close stops the background ticker
func (e *ClockEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopTickerLocked()
}

func (e *ClockEngine) positionLocked() time.Duration {
	if e.src == nil {
		return 0
	}
	pos := e.base
	if e.playing {
		elapsed := e.now().Sub(e.since)
		pos += time.Duration(float64(elapsed) * e.rate)
	}
	return clamp(pos, 0, e.src.Duration)
}

func (e *ClockEngine) eventLocked(t EventType) Event {
	ev := Event{Type: t, Position: e.positionLocked()}
	if e.src != nil {
		ev.Duration = e.src.Duration
	}
	return ev
}

func (e *ClockEngine) startTickerLocked() {
	if e.interval <= 0 || e.stop != nil {
		return
	}
	stop := make(chan struct{})
	e.stop = stop
	go func() {
		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				e.Tick()
			}
		}
	}()
}

func (e *ClockEngine) stopTickerLocked() {
	if e.stop != nil {
		close(e.stop)
		e.stop = nil
	}
}

func (e *ClockEngine) emit(events ...Event) {
	e.mu.Lock()
	listener := e.listener
	e.mu.Unlock()
	if listener == nil {
		return
	}
	for _, ev := range events {
		listener(ev)
	}
}

func clamp(d, lo, hi time.Duration) time.Duration {
	if d < lo {
		return lo
	}
	if d > hi {
		return hi
	}
	return d
}
