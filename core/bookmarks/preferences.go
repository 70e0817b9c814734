// ABOUTME: Voice preference persisted as a raw string in its own store slot
// ABOUTME: Missing or unknown values resolve to the default voice

package bookmarks

import (
	"context"

	"gistfm-api/core/domain"
	"gistfm-api/core/interfaces"
)

// DefaultVoiceKey is the slot holding the current voice preference
const DefaultVoiceKey = "gistfm_voice"

// Preferences reads and writes the persisted voice choice
type Preferences struct {
	store  interfaces.Store
	logger interfaces.Logger
	key    string
}

// NewPreferences creates a preference accessor over the given slot
func NewPreferences(store interfaces.Store, logger interfaces.Logger, key string) *Preferences {
	if key == "" {
		key = DefaultVoiceKey
	}
	return &Preferences{store: store, logger: logger, key: key}
}

// Voice returns the stored voice, or the default when absent or invalid
func (p *Preferences) Voice(ctx context.Context) domain.Voice {
	data, err := p.store.Get(ctx, p.key)
	if err != nil {
		return domain.DefaultVoice
	}

	v := domain.Voice(data)
	if !v.Valid() {
		p.logger.Debug("Ignoring stored voice", map[string]interface{}{
			"value": string(data),
		})
		return domain.DefaultVoice
	}
	return v
}

// SetVoice persists v; failures are logged only
func (p *Preferences) SetVoice(ctx context.Context, v domain.Voice) {
	if err := p.store.Set(ctx, p.key, []byte(v)); err != nil {
		p.logger.Warn("Failed to persist voice preference", map[string]interface{}{
			"voice": string(v),
			"error": err.Error(),
		})
	}
}
