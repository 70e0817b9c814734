package gemini

import (
	"context"

	"github.com/google/generative-ai-go/genai"
)

// mockModel is a mock implementation of contentGenerator
type mockModel struct {
	generateFunc func(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
	lastParts    []genai.Part
}

func (m *mockModel) GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	m.lastParts = parts
	if m.generateFunc != nil {
		return m.generateFunc(ctx, parts...)
	}
	return &genai.GenerateContentResponse{}, nil
}

func textResponse(chunks ...string) *genai.GenerateContentResponse {
	parts := make([]genai.Part, 0, len(chunks))
	for _, c := range chunks {
		parts = append(parts, genai.Text(c))
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}},
	}
}

// mockLogger discards everything
type mockLogger struct {
	errors []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.errors = append(m.errors, msg)
}
