// ABOUTME: Playback transport handlers for the Huma API
// ABOUTME: Drives the media clock for the current clip

package handlers

import (
	"context"
	"net/http"
	"time"

	"gistfm-api/api/dto/mappers"
	"gistfm-api/api/dto/requests"
	"gistfm-api/api/dto/responses"
	"gistfm-api/core/playback"

	"github.com/danielgtaylor/huma/v2"
)

// PlaybackService interface defines the methods needed from the playback controller
type PlaybackService interface {
	State() playback.State
	TogglePlay() error
	Seek(position time.Duration) error
	Skip(delta time.Duration) error
	SetRate(rate float64) error
	SetVolume(volume float64) error
	ToggleMute()
}

// PlaybackHandler handles transport HTTP requests
type PlaybackHandler struct {
	player PlaybackService
}

// NewPlaybackHandler creates a new playback handler
func NewPlaybackHandler(player PlaybackService) *PlaybackHandler {
	return &PlaybackHandler{player: player}
}

// RegisterRoutes registers all playback routes
func (h *PlaybackHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getPlayback",
		Method:      http.MethodGet,
		Path:        "/playback",
		Summary:     "Get transport state",
		Tags:        []string{"Playback"},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID: "togglePlay",
		Method:      http.MethodPost,
		Path:        "/playback/toggle",
		Summary:     "Play or pause",
		Tags:        []string{"Playback"},
	}, h.Toggle)

	huma.Register(api, huma.Operation{
		OperationID: "seek",
		Method:      http.MethodPost,
		Path:        "/playback/seek",
		Summary:     "Seek to a position",
		Tags:        []string{"Playback"},
	}, h.Seek)

	huma.Register(api, huma.Operation{
		OperationID: "skip",
		Method:      http.MethodPost,
		Path:        "/playback/skip",
		Summary:     "Skip ten seconds forward or backward",
		Tags:        []string{"Playback"},
	}, h.Skip)

	huma.Register(api, huma.Operation{
		OperationID: "setRate",
		Method:      http.MethodPut,
		Path:        "/playback/rate",
		Summary:     "Set the playback rate",
		Tags:        []string{"Playback"},
	}, h.SetRate)

	huma.Register(api, huma.Operation{
		OperationID: "setVolume",
		Method:      http.MethodPut,
		Path:        "/playback/volume",
		Summary:     "Set the volume",
		Tags:        []string{"Playback"},
	}, h.SetVolume)

	huma.Register(api, huma.Operation{
		OperationID: "toggleMute",
		Method:      http.MethodPost,
		Path:        "/playback/mute",
		Summary:     "Mute or restore the volume",
		Tags:        []string{"Playback"},
	}, h.ToggleMute)
}

// PlaybackOutput is returned by every transport operation
type PlaybackOutput struct {
	Body responses.PlaybackResponse
}

func (h *PlaybackHandler) output() *PlaybackOutput {
	return &PlaybackOutput{Body: *mappers.ToPlaybackResponse(h.player.State())}
}

// Get handles GET /playback
func (h *PlaybackHandler) Get(ctx context.Context, input *struct{}) (*PlaybackOutput, error) {
	return h.output(), nil
}

// Toggle handles POST /playback/toggle
func (h *PlaybackHandler) Toggle(ctx context.Context, input *struct{}) (*PlaybackOutput, error) {
	if err := h.player.TogglePlay(); err != nil {
		return nil, toHumaError(err)
	}
	return h.output(), nil
}

// SeekInput defines the input for Seek
type SeekInput struct {
	Body requests.SeekRequest
}

// Seek handles POST /playback/seek
func (h *PlaybackHandler) Seek(ctx context.Context, input *SeekInput) (*PlaybackOutput, error) {
	if err := h.player.Seek(seconds(input.Body.Position)); err != nil {
		return nil, toHumaError(err)
	}
	return h.output(), nil
}

// SkipInput defines the input for Skip
type SkipInput struct {
	Body requests.SkipRequest
}

// Skip handles POST /playback/skip
func (h *PlaybackHandler) Skip(ctx context.Context, input *SkipInput) (*PlaybackOutput, error) {
	delta := playback.SkipInterval
	if input.Body.Direction == "backward" {
		delta = -delta
	}
	if err := h.player.Skip(delta); err != nil {
		return nil, toHumaError(err)
	}
	return h.output(), nil
}

// SetRateInput defines the input for SetRate
type SetRateInput struct {
	Body requests.RateRequest
}

// SetRate handles PUT /playback/rate
func (h *PlaybackHandler) SetRate(ctx context.Context, input *SetRateInput) (*PlaybackOutput, error) {
	if err := h.player.SetRate(input.Body.Rate); err != nil {
		return nil, toHumaError(err)
	}
	return h.output(), nil
}

// SetVolumeInput defines the input for SetVolume
type SetVolumeInput struct {
	Body requests.VolumeRequest
}

// SetVolume handles PUT /playback/volume
func (h *PlaybackHandler) SetVolume(ctx context.Context, input *SetVolumeInput) (*PlaybackOutput, error) {
	if err := h.player.SetVolume(input.Body.Volume); err != nil {
		return nil, toHumaError(err)
	}
	return h.output(), nil
}

// ToggleMute handles POST /playback/mute
func (h *PlaybackHandler) ToggleMute(ctx context.Context, input *struct{}) (*PlaybackOutput, error) {
	h.player.ToggleMute()
	return h.output(), nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
