// ABOUTME: Session handlers for the Huma API
// ABOUTME: Drives the generation state machine and serves the clip and transcript downloads

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gistfm-api/api/dto/mappers"
	"gistfm-api/api/dto/requests"
	"gistfm-api/api/dto/responses"
	"gistfm-api/core/audio"
	"gistfm-api/core/domain"
	"gistfm-api/core/playback"
	"gistfm-api/core/session"

	"github.com/danielgtaylor/huma/v2"
)

// SessionService interface defines the methods needed from the orchestrator
type SessionService interface {
	Snapshot() session.Snapshot
	SetArticleText(text string) error
	SetURLInput(raw string) error
	SetTone(t domain.Tone) error
	SetVoice(ctx context.Context, v domain.Voice) error
	FetchURL(ctx context.Context) error
	Generate(ctx context.Context) error
	Reset()
	DismissError()
	Artifact() (*audio.Artifact, error)
	Transcript() (string, error)
}

// SessionHandler handles session-related HTTP requests
type SessionHandler struct {
	session SessionService
	now     func() time.Time
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(svc SessionService) *SessionHandler {
	return &SessionHandler{session: svc, now: time.Now}
}

// RegisterRoutes registers all session routes
func (h *SessionHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getSession",
		Method:      http.MethodGet,
		Path:        "/session",
		Summary:     "Get session state",
		Tags:        []string{"Session"},
	}, h.GetSession)

	huma.Register(api, huma.Operation{
		OperationID: "setArticle",
		Method:      http.MethodPut,
		Path:        "/session/article",
		Summary:     "Replace the article text",
		Tags:        []string{"Session"},
	}, h.SetArticle)

	huma.Register(api, huma.Operation{
		OperationID: "setURL",
		Method:      http.MethodPut,
		Path:        "/session/url",
		Summary:     "Replace the URL input",
		Tags:        []string{"Session"},
	}, h.SetURL)

	huma.Register(api, huma.Operation{
		OperationID: "setOptions",
		Method:      http.MethodPut,
		Path:        "/session/options",
		Summary:     "Change tone and voice",
		Description: "The voice choice is remembered across sessions",
		Tags:        []string{"Session"},
	}, h.SetOptions)

	huma.Register(api, huma.Operation{
		OperationID: "fetchURL",
		Method:      http.MethodPost,
		Path:        "/session/fetch",
		Summary:     "Extract article text from the URL input",
		Description: "Extraction failures are reported in the returned session state",
		Tags:        []string{"Session"},
	}, h.Fetch)

	huma.Register(api, huma.Operation{
		OperationID: "generate",
		Method:      http.MethodPost,
		Path:        "/session/generate",
		Summary:     "Generate the script and audio",
		Description: "Blocks until the clip is ready; other clients observe progress through GET /session",
		Tags:        []string{"Session"},
	}, h.Generate)

	huma.Register(api, huma.Operation{
		OperationID: "resetSession",
		Method:      http.MethodPost,
		Path:        "/session/reset",
		Summary:     "Start over",
		Tags:        []string{"Session"},
	}, h.Reset)

	huma.Register(api, huma.Operation{
		OperationID: "dismissError",
		Method:      http.MethodPost,
		Path:        "/session/dismiss",
		Summary:     "Dismiss the current error",
		Tags:        []string{"Session"},
	}, h.Dismiss)

	huma.Register(api, huma.Operation{
		OperationID: "downloadAudio",
		Method:      http.MethodGet,
		Path:        "/session/audio",
		Summary:     "Download the clip as WAV",
		Tags:        []string{"Session"},
	}, h.DownloadAudio)

	huma.Register(api, huma.Operation{
		OperationID: "downloadTranscript",
		Method:      http.MethodGet,
		Path:        "/session/transcript",
		Summary:     "Download the script as plain text",
		Tags:        []string{"Session"},
	}, h.DownloadTranscript)
}

// SessionOutput is returned by every state-changing session operation
type SessionOutput struct {
	Body responses.SessionResponse
}

func (h *SessionHandler) output() *SessionOutput {
	return &SessionOutput{Body: *mappers.ToSessionResponse(h.session.Snapshot(), h.now())}
}

// GetSession handles GET /session
func (h *SessionHandler) GetSession(ctx context.Context, input *struct{}) (*SessionOutput, error) {
	return h.output(), nil
}

// SetArticleInput defines the input for SetArticle
type SetArticleInput struct {
	Body requests.ArticleRequest
}

// SetArticle handles PUT /session/article
func (h *SessionHandler) SetArticle(ctx context.Context, input *SetArticleInput) (*SessionOutput, error) {
	if err := h.session.SetArticleText(input.Body.Text); err != nil {
		return nil, toHumaError(err)
	}
	return h.output(), nil
}

// SetURLInput defines the input for SetURL
type SetURLInput struct {
	Body requests.URLRequest
}

// SetURL handles PUT /session/url
func (h *SessionHandler) SetURL(ctx context.Context, input *SetURLInput) (*SessionOutput, error) {
	if err := h.session.SetURLInput(input.Body.URL); err != nil {
		return nil, toHumaError(err)
	}
	return h.output(), nil
}

// SetOptionsInput defines the input for SetOptions
type SetOptionsInput struct {
	Body requests.OptionsRequest
}

// SetOptions handles PUT /session/options
func (h *SessionHandler) SetOptions(ctx context.Context, input *SetOptionsInput) (*SessionOutput, error) {
	if input.Body.Tone != "" {
		tone, err := domain.ParseTone(input.Body.Tone)
		if err != nil {
			return nil, huma.Error400BadRequest(err.Error())
		}
		if err := h.session.SetTone(tone); err != nil {
			return nil, toHumaError(err)
		}
	}

	if input.Body.Voice != "" {
		voice, err := domain.ParseVoice(input.Body.Voice)
		if err != nil {
			return nil, huma.Error400BadRequest(err.Error())
		}
		if err := h.session.SetVoice(ctx, voice); err != nil {
			return nil, toHumaError(err)
		}
	}

	return h.output(), nil
}

// Fetch handles POST /session/fetch
func (h *SessionHandler) Fetch(ctx context.Context, input *struct{}) (*SessionOutput, error) {
	if err := h.session.FetchURL(ctx); err != nil {
		return nil, toHumaError(err)
	}
	return h.output(), nil
}

// Generate handles POST /session/generate
func (h *SessionHandler) Generate(ctx context.Context, input *struct{}) (*SessionOutput, error) {
	if err := h.session.Generate(ctx); err != nil {
		return nil, toHumaError(err)
	}
	return h.output(), nil
}

// Reset handles POST /session/reset
func (h *SessionHandler) Reset(ctx context.Context, input *struct{}) (*SessionOutput, error) {
	h.session.Reset()
	return h.output(), nil
}

// Dismiss handles POST /session/dismiss
func (h *SessionHandler) Dismiss(ctx context.Context, input *struct{}) (*SessionOutput, error) {
	h.session.DismissError()
	return h.output(), nil
}

// DownloadOutput carries a file attachment
type DownloadOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

func attachment(filename string) string {
	return fmt.Sprintf("attachment; filename=%q", filename)
}

// DownloadAudio handles GET /session/audio
func (h *SessionHandler) DownloadAudio(ctx context.Context, input *struct{}) (*DownloadOutput, error) {
	artifact, err := h.session.Artifact()
	if err != nil {
		return nil, toHumaError(err)
	}

	data := artifact.Bytes()
	if data == nil {
		// released between lookup and read
		return nil, huma.Error404NotFound("no audio available")
	}

	return &DownloadOutput{
		ContentType:        audio.ContentType,
		ContentDisposition: attachment(playback.AudioFilename(h.now())),
		Body:               data,
	}, nil
}

// DownloadTranscript handles GET /session/transcript
func (h *SessionHandler) DownloadTranscript(ctx context.Context, input *struct{}) (*DownloadOutput, error) {
	text, err := h.session.Transcript()
	if err != nil {
		return nil, toHumaError(err)
	}

	return &DownloadOutput{
		ContentType:        "text/plain; charset=utf-8",
		ContentDisposition: attachment(playback.TranscriptFilename(h.now())),
		Body:               []byte(text),
	}, nil
}
