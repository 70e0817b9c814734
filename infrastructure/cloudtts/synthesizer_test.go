package cloudtts

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gistfm-api/core/audio"
	"gistfm-api/core/domain"

	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

func TestSplitTextIntoChunks(t *testing.T) {
	tests := []struct {
		name string
		text string
		size int
		want []string
	}{
		{"empty", "   ", 10, nil},
		{"fits", "one two", 10, []string{"one two"}},
		{"splits on words", "alpha beta gamma delta", 11, []string{"alpha beta", "gamma delta"}},
		{"oversized word kept whole", "supercalifragilistic ok", 5, []string{"supercalifragilistic", "ok"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitTextIntoChunks(tt.text, tt.size))
		})
	}
}

func TestSynthesizer_Synthesize(t *testing.T) {
	var requests []*texttospeechpb.SynthesizeSpeechRequest
	s := newSynthesizer(func(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest) (*texttospeechpb.SynthesizeSpeechResponse, error) {
		requests = append(requests, req)
		wav := audio.EncodeWAV([]byte{byte(len(requests)), 0}, audio.DefaultFormat)
		return &texttospeechpb.SynthesizeSpeechResponse{AudioContent: wav}, nil
	}, Config{}, nopLogger{})

	script := strings.Repeat("word ", 300)
	pcm, err := s.Synthesize(context.Background(), script, domain.VoiceCharon)
	require.NoError(t, err)

	require.Len(t, requests, 2)
	assert.Equal(t, []byte{1, 0, 2, 0}, pcm)

	req := requests[0]
	assert.Equal(t, "en-US", req.Voice.LanguageCode)
	assert.Equal(t, "en-US-Chirp3-HD-Charon", req.Voice.Name)
	assert.Equal(t, texttospeechpb.AudioEncoding_LINEAR16, req.AudioConfig.AudioEncoding)
	assert.Equal(t, int32(24000), req.AudioConfig.SampleRateHertz)
}

func TestSynthesizer_Errors(t *testing.T) {
	s := newSynthesizer(func(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest) (*texttospeechpb.SynthesizeSpeechResponse, error) {
		return nil, errors.New("rpc error: code = ResourceExhausted desc = quota exceeded")
	}, Config{LanguageCode: "en-GB"}, nopLogger{})

	_, err := s.Synthesize(context.Background(), "hello", domain.VoiceKore)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota")

	_, err = s.Synthesize(context.Background(), "  ", domain.VoiceKore)
	assert.Error(t, err)
	assert.Equal(t, "en-GB-Chirp3-HD-Kore", s.VoiceName(domain.VoiceKore))
}
