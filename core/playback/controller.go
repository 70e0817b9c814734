// ABOUTME: Playback controller exposes transport controls over a single audio clip
// ABOUTME: Progress comes from engine events; commands are clamped before reaching the engine

package playback

import (
	"fmt"
	"sync"
	"time"

	"gistfm-api/core/audio"
	"gistfm-api/core/errors"
	"gistfm-api/core/interfaces"
)

// SkipInterval is the size of one relative skip
const SkipInterval = 10 * time.Second

// Rates lists the selectable playback rates
var Rates = []float64{1, 1.5, 2}

// State is the observable transport state
type State struct {
	SourceID string
	Playing  bool
	Position time.Duration
	Duration time.Duration
	Rate     float64
	Volume   float64
	Muted    bool
}

// Loaded reports whether a clip is loaded
func (s State) Loaded() bool {
	return s.SourceID != ""
}

// Controller drives an Engine on behalf of the user
type Controller struct {
	eng    Engine
	logger interfaces.Logger

	mu         sync.Mutex
	state      State
	prevVolume float64
}

// NewController creates a controller with rate 1 and full volume
func NewController(engine Engine, logger interfaces.Logger) *Controller {
	c := &Controller{
		eng:        engine,
		logger:     logger,
		state:      State{Rate: 1, Volume: 1},
		prevVolume: 1,
	}
	engine.Subscribe(c.handle)
	return c
}

// State returns a copy of the transport state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Load swaps in a new clip, or unloads when a is nil. Position resets to zero
// and the current volume and rate are reapplied.
func (c *Controller) Load(a *audio.Artifact) {
	c.mu.Lock()
	c.state.Playing = false
	c.state.Position = 0
	c.state.Duration = 0
	c.state.SourceID = ""
	var src *Source
	if a != nil {
		src = &Source{ID: a.ID(), Duration: a.Duration()}
		c.state.SourceID = src.ID
	}
	volume, rate := c.state.Volume, c.state.Rate
	c.mu.Unlock()

	c.eng.Load(src)
	c.eng.SetVolume(volume)
	c.eng.SetRate(rate)

	if src != nil {
		c.logger.Debug("Clip loaded", map[string]interface{}{
			"id":       src.ID,
			"duration": src.Duration.String(),
		})
	}
}

// TogglePlay pauses a playing clip and plays a paused one
func (c *Controller) TogglePlay() error {
	c.mu.Lock()
	if !c.state.Loaded() {
		c.mu.Unlock()
		return errors.ErrNoAudio
	}
	playing := c.state.Playing
	c.mu.Unlock()

	if playing {
		c.eng.Pause()
	} else {
		c.eng.Play()
	}
	return nil
}

// Seek moves to position, clamped to [0, duration]
func (c *Controller) Seek(position time.Duration) error {
	c.mu.Lock()
	if !c.state.Loaded() {
		c.mu.Unlock()
		return errors.ErrNoAudio
	}
	target := clamp(position, 0, c.state.Duration)
	c.state.Position = target
	c.mu.Unlock()

	c.eng.Seek(target)
	return nil
}

// Skip moves by delta relative to the live engine position, clamped to [0, duration]
func (c *Controller) Skip(delta time.Duration) error {
	c.mu.Lock()
	loaded := c.state.Loaded()
	c.mu.Unlock()
	if !loaded {
		return errors.ErrNoAudio
	}
	return c.Seek(c.eng.Position() + delta)
}

// SetRate selects one of Rates
func (c *Controller) SetRate(rate float64) error {
	valid := false
	for _, r := range Rates {
		if r == rate {
			valid = true
			break
		}
	}
	if !valid {
		return &errors.ValidationError{Field: "rate", Message: fmt.Sprintf("unsupported rate %v", rate)}
	}

	c.mu.Lock()
	c.state.Rate = rate
	c.mu.Unlock()

	c.eng.SetRate(rate)
	return nil
}

// SetVolume sets volume in [0, 1]. Zero marks the clip muted.
func (c *Controller) SetVolume(volume float64) error {
	if volume < 0 || volume > 1 {
		return &errors.ValidationError{Field: "volume", Message: "volume must be between 0 and 1"}
	}

	c.mu.Lock()
	c.state.Volume = volume
	c.state.Muted = volume == 0
	c.mu.Unlock()

	c.eng.SetVolume(volume)
	return nil
}

// ToggleMute mutes, remembering the volume, or restores the remembered volume
func (c *Controller) ToggleMute() {
	c.mu.Lock()
	var volume float64
	if c.state.Muted {
		volume = c.prevVolume
		if volume == 0 {
			volume = 1
		}
		c.state.Muted = false
	} else {
		c.prevVolume = c.state.Volume
		volume = 0
		c.state.Muted = true
	}
	c.state.Volume = volume
	c.mu.Unlock()

	c.eng.SetVolume(volume)
}

func (c *Controller) handle(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch ev.Type {
	case EventPlay:
		c.state.Playing = true
	case EventPause, EventEnded:
		c.state.Playing = false
	case EventDurationChange:
		c.state.Duration = ev.Duration
	}
	c.state.Position = ev.Position
	if ev.Duration > 0 {
		c.state.Duration = ev.Duration
	}
}
