// ABOUTME: Speech synthesis over the Gemini generateContent REST endpoint
// ABOUTME: Returns the raw 16-bit mono PCM decoded from the inline audio part

package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"gistfm-api/core/domain"
	"gistfm-api/core/errors"
	"gistfm-api/core/interfaces"
)

const (
	// DefaultSpeechModel is the text-to-speech model
	DefaultSpeechModel = "gemini-2.5-flash-preview-tts"

	// DefaultBaseURL is the models collection of the Generative Language API
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

	maxErrorBody = 2048
)

// SpeechConfig configures the REST synthesizer
type SpeechConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// SpeechSynthesizer implements interfaces.SpeechSynthesizer
type SpeechSynthesizer struct {
	client HeaderPoster
	cfg    SpeechConfig
	logger interfaces.Logger
}

// apiKeyHeader carries the key so it never appears in request URLs
const apiKeyHeader = "x-goog-api-key"

// HeaderPoster posts a JSON body with per-request headers
type HeaderPoster interface {
	PostWithHeaders(ctx context.Context, url string, body io.Reader, headers map[string]string) (interfaces.Response, error)
}

// NewSpeechSynthesizer creates a synthesizer over client
func NewSpeechSynthesizer(client HeaderPoster, cfg SpeechConfig, logger interfaces.Logger) *SpeechSynthesizer {
	if cfg.Model == "" {
		cfg.Model = DefaultSpeechModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &SpeechSynthesizer{client: client, cfg: cfg, logger: logger}
}

type speechRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseModalities []string     `json:"responseModalities"`
	SpeechConfig       speechConfig `json:"speechConfig"`
}

type speechConfig struct {
	VoiceConfig voiceConfig `json:"voiceConfig"`
}

type voiceConfig struct {
	PrebuiltVoiceConfig prebuiltVoiceConfig `json:"prebuiltVoiceConfig"`
}

type prebuiltVoiceConfig struct {
	VoiceName string `json:"voiceName"`
}

type speechResponse struct {
	Candidates []struct {
		Content      *content `json:"content"`
		FinishReason string   `json:"finishReason"`
	} `json:"candidates"`
}

// Synthesize renders script in voice
func (s *SpeechSynthesizer) Synthesize(ctx context.Context, script string, voice domain.Voice) ([]byte, error) {
	if s.cfg.APIKey == "" {
		return nil, errors.ErrMissingAPIKey
	}

	body, err := json.Marshal(speechRequest{
		Contents: []content{{Parts: []part{{Text: script}}}},
		GenerationConfig: generationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: speechConfig{
				VoiceConfig: voiceConfig{
					PrebuiltVoiceConfig: prebuiltVoiceConfig{VoiceName: string(voice)},
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode speech request: %w", err)
	}

	resp, err := s.client.PostWithHeaders(ctx, s.endpoint(), bytes.NewReader(body), map[string]string{
		apiKeyHeader: s.cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("network error calling speech model: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body(), maxErrorBody))
		return nil, &errors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    strings.TrimSpace(string(detail)),
			API:        "gemini-tts",
		}
	}

	var decoded speechResponse
	if err := json.NewDecoder(resp.Body()).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode speech response: %w", err)
	}

	return s.audioFrom(decoded, voice)
}

func (s *SpeechSynthesizer) endpoint() string {
	return fmt.Sprintf("%s/%s:generateContent", s.cfg.BaseURL, url.PathEscape(s.cfg.Model))
}

func (s *SpeechSynthesizer) audioFrom(res speechResponse, voice domain.Voice) ([]byte, error) {
	var finishReason string
	if len(res.Candidates) > 0 {
		candidate := res.Candidates[0]
		finishReason = candidate.FinishReason
		if candidate.Content != nil {
			for _, p := range candidate.Content.Parts {
				if p.InlineData == nil || p.InlineData.Data == "" {
					continue
				}
				pcm, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
				if err != nil {
					return nil, fmt.Errorf("failed to decode audio data: %w", err)
				}
				return pcm, nil
			}
		}
	}

	s.logger.Error("Speech model returned no audio", map[string]interface{}{
		"voice":         string(voice),
		"finish_reason": finishReason,
	})

	if finishReason != "" && finishReason != "STOP" {
		return nil, fmt.Errorf("Generation stopped due to: %s", finishReason)
	}
	return nil, fmt.Errorf("No audio data returned from the speech model. The model may have failed to generate audio for this text.")
}
