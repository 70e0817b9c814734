package session

import (
	"context"
	"sync"

	"gistfm-api/core/domain"
	"gistfm-api/core/interfaces"
)

type mockExtractor struct {
	extractFunc func(ctx context.Context, rawURL string) (*domain.Article, error)
}

func (m *mockExtractor) Extract(ctx context.Context, rawURL string) (*domain.Article, error) {
	if m.extractFunc != nil {
		return m.extractFunc(ctx, rawURL)
	}
	return nil, nil
}

type mockGenerator struct {
	generateFunc func(ctx context.Context, text domain.ArticleText, tone domain.Tone) (string, error)
}

func (m *mockGenerator) GenerateScript(ctx context.Context, text domain.ArticleText, tone domain.Tone) (string, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, text, tone)
	}
	return "A short script.", nil
}

type mockSynthesizer struct {
	synthesizeFunc func(ctx context.Context, script string, voice domain.Voice) ([]byte, error)
}

func (m *mockSynthesizer) Synthesize(ctx context.Context, script string, voice domain.Voice) ([]byte, error) {
	if m.synthesizeFunc != nil {
		return m.synthesizeFunc(ctx, script, voice)
	}
	return make([]byte, 4800), nil
}

// mockStore is a map-backed Store
type mockStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMockStore() *mockStore {
	return &mockStore{data: map[string][]byte{}}
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, interfaces.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *mockStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
