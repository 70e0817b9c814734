// ABOUTME: Speech synthesis over Google Cloud Text-to-Speech
// ABOUTME: Requests LINEAR16 chunks and concatenates their raw PCM

package cloudtts

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"gistfm-api/core/audio"
	"gistfm-api/core/domain"
	"gistfm-api/core/interfaces"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"
)

// maxChunkSize keeps each request under the service's input limit
const maxChunkSize = 1000

type synthesizeFunc func(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest) (*texttospeechpb.SynthesizeSpeechResponse, error)

// Config configures the Cloud Text-to-Speech synthesizer
type Config struct {
	LanguageCode string
	SampleRate   int
}

// Synthesizer implements interfaces.SpeechSynthesizer
type Synthesizer struct {
	client     *texttospeech.Client
	synthesize synthesizeFunc
	cfg        Config
	logger     interfaces.Logger
}

// NewSynthesizer creates a client using application default credentials
func NewSynthesizer(ctx context.Context, cfg Config, logger interfaces.Logger, opts ...option.ClientOption) (*Synthesizer, error) {
	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create TTS client: %w", err)
	}

	s := newSynthesizer(func(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest) (*texttospeechpb.SynthesizeSpeechResponse, error) {
		return client.SynthesizeSpeech(ctx, req)
	}, cfg, logger)
	s.client = client
	return s, nil
}

func newSynthesizer(fn synthesizeFunc, cfg Config, logger interfaces.Logger) *Synthesizer {
	if cfg.LanguageCode == "" {
		cfg.LanguageCode = "en-US"
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = audio.DefaultFormat.SampleRate
	}
	return &Synthesizer{synthesize: fn, cfg: cfg, logger: logger}
}

// Close releases the underlying client
func (s *Synthesizer) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// VoiceName maps a narrator to the Chirp 3 HD voice of the same name
func (s *Synthesizer) VoiceName(voice domain.Voice) string {
	return fmt.Sprintf("%s-Chirp3-HD-%s", s.cfg.LanguageCode, voice)
}

// Synthesize renders script in voice as raw 16-bit mono PCM
func (s *Synthesizer) Synthesize(ctx context.Context, script string, voice domain.Voice) ([]byte, error) {
	chunks := splitTextIntoChunks(script, maxChunkSize)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no text to synthesize")
	}

	var pcm bytes.Buffer
	for i, chunk := range chunks {
		req := &texttospeechpb.SynthesizeSpeechRequest{
			Input: &texttospeechpb.SynthesisInput{
				InputSource: &texttospeechpb.SynthesisInput_Text{Text: chunk},
			},
			Voice: &texttospeechpb.VoiceSelectionParams{
				LanguageCode: s.cfg.LanguageCode,
				Name:         s.VoiceName(voice),
			},
			AudioConfig: &texttospeechpb.AudioConfig{
				AudioEncoding:   texttospeechpb.AudioEncoding_LINEAR16,
				SampleRateHertz: int32(s.cfg.SampleRate),
			},
		}

		resp, err := s.synthesize(ctx, req)
		if err != nil {
			s.logger.Error("Failed to synthesize speech", map[string]interface{}{
				"chunk": i,
				"voice": string(voice),
				"error": err.Error(),
			})
			return nil, fmt.Errorf("cloud text-to-speech failed: %w", err)
		}

		// LINEAR16 responses carry a WAV header per chunk
		pcm.Write(audio.StripWAVHeader(resp.AudioContent))
	}

	s.logger.Debug("Speech synthesized", map[string]interface{}{
		"chunks": len(chunks),
		"bytes":  pcm.Len(),
	})
	return pcm.Bytes(), nil
}

// splitTextIntoChunks packs whole words into chunks of at most maxChunkSize bytes
func splitTextIntoChunks(text string, maxChunkSize int) []string {
	var chunks []string
	var chunk strings.Builder

	for _, word := range strings.Fields(text) {
		if chunk.Len() > 0 && chunk.Len()+len(word)+1 > maxChunkSize {
			chunks = append(chunks, chunk.String())
			chunk.Reset()
		}
		if chunk.Len() > 0 {
			chunk.WriteByte(' ')
		}
		chunk.WriteString(word)
	}
	if chunk.Len() > 0 {
		chunks = append(chunks, chunk.String())
	}

	return chunks
}
