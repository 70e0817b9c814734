// ABOUTME: Audio artifact is the single playable clip owned by a generation session
// ABOUTME: Releasing an artifact frees its buffer; released artifacts report no data

package audio

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// ContentType of artifact data
const ContentType = "audio/wav"

// Artifact is a playable WAV clip
type Artifact struct {
	id       string
	format   Format
	duration time.Duration

	mu       sync.RWMutex
	data     []byte
	released bool
}

// NewArtifact packages raw PCM into a WAV artifact
func NewArtifact(pcm []byte, f Format) *Artifact {
	return &Artifact{
		id:       uuid.New().String(),
		format:   f,
		duration: f.Duration(len(pcm)),
		data:     EncodeWAV(pcm, f),
	}
}

// ID identifies the artifact; a new generation always yields a new ID
func (a *Artifact) ID() string {
	return a.id
}

// Format returns the PCM format of the clip
func (a *Artifact) Format() Format {
	return a.format
}

// Duration returns the playing time of the clip
func (a *Artifact) Duration() time.Duration {
	return a.duration
}

// Bytes returns the WAV data, or nil once released
func (a *Artifact) Bytes() []byte {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.data
}

// Size returns the WAV size in bytes
func (a *Artifact) Size() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.data)
}

// Release frees the clip. Calling it more than once is safe.
func (a *Artifact) Release() {
	if a == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.data = nil
	a.released = true
}

// Released reports whether Release has been called
func (a *Artifact) Released() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.released
}
