package handlers

import (
	"context"
	"time"

	"gistfm-api/core/audio"
	"gistfm-api/core/domain"
	"gistfm-api/core/errors"
	"gistfm-api/core/playback"
	"gistfm-api/core/session"
)

// mockSession is a mock implementation of BookmarkSession
type mockSession struct {
	snapshot session.Snapshot
	artifact *audio.Artifact

	setTextFunc  func(text string) error
	setURLFunc   func(raw string) error
	setToneFunc  func(t domain.Tone) error
	setVoiceFunc func(ctx context.Context, v domain.Voice) error
	fetchFunc    func(ctx context.Context) error
	generateFunc func(ctx context.Context) error
	loadFunc     func(ctx context.Context, id string) error
	toggleFunc   func(ctx context.Context) (bool, error)

	resetCalls   int
	dismissCalls int
	removed      []string
}

func (m *mockSession) Snapshot() session.Snapshot { return m.snapshot }

func (m *mockSession) SetArticleText(text string) error {
	if m.setTextFunc != nil {
		return m.setTextFunc(text)
	}
	m.snapshot.ArticleText = domain.ArticleText(text)
	return nil
}

func (m *mockSession) SetURLInput(raw string) error {
	if m.setURLFunc != nil {
		return m.setURLFunc(raw)
	}
	m.snapshot.URLInput = raw
	return nil
}

func (m *mockSession) SetTone(t domain.Tone) error {
	if m.setToneFunc != nil {
		return m.setToneFunc(t)
	}
	m.snapshot.Tone = t
	return nil
}

func (m *mockSession) SetVoice(ctx context.Context, v domain.Voice) error {
	if m.setVoiceFunc != nil {
		return m.setVoiceFunc(ctx, v)
	}
	m.snapshot.Voice = v
	return nil
}

func (m *mockSession) FetchURL(ctx context.Context) error {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx)
	}
	return nil
}

func (m *mockSession) Generate(ctx context.Context) error {
	if m.generateFunc != nil {
		return m.generateFunc(ctx)
	}
	return nil
}

func (m *mockSession) Reset()        { m.resetCalls++ }
func (m *mockSession) DismissError() { m.dismissCalls++ }

func (m *mockSession) Artifact() (*audio.Artifact, error) {
	if m.artifact == nil {
		return nil, errors.ErrNoAudio
	}
	return m.artifact, nil
}

func (m *mockSession) Transcript() (string, error) {
	if m.snapshot.Script == nil {
		return "", errors.ErrNoScript
	}
	return m.snapshot.Script.Text, nil
}

func (m *mockSession) LoadBookmark(ctx context.Context, id string) error {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, id)
	}
	return nil
}

func (m *mockSession) ToggleBookmark(ctx context.Context) (bool, error) {
	if m.toggleFunc != nil {
		return m.toggleFunc(ctx)
	}
	return false, nil
}

func (m *mockSession) RemoveBookmark(ctx context.Context, id string) {
	m.removed = append(m.removed, id)
}

// mockBookmarks is a mock implementation of BookmarkLister
type mockBookmarks struct {
	list []domain.Bookmark
}

func (m *mockBookmarks) List(ctx context.Context) []domain.Bookmark { return m.list }

// mockPlayer is a mock implementation of PlaybackService
type mockPlayer struct {
	state     playback.State
	toggleErr error
	rateErr   error
	seeks     []time.Duration
	skips     []time.Duration
	mutes     int
}

func (m *mockPlayer) State() playback.State { return m.state }
func (m *mockPlayer) TogglePlay() error {
	if m.toggleErr != nil {
		return m.toggleErr
	}
	m.state.Playing = !m.state.Playing
	return nil
}
func (m *mockPlayer) Seek(position time.Duration) error {
	m.seeks = append(m.seeks, position)
	m.state.Position = position
	return nil
}
func (m *mockPlayer) Skip(delta time.Duration) error {
	m.skips = append(m.skips, delta)
	return nil
}
func (m *mockPlayer) SetRate(rate float64) error {
	if m.rateErr != nil {
		return m.rateErr
	}
	m.state.Rate = rate
	return nil
}
func (m *mockPlayer) SetVolume(volume float64) error {
	m.state.Volume = volume
	return nil
}
func (m *mockPlayer) ToggleMute() { m.mutes++ }

// mockPrefs is a mock implementation of VoicePreference
type mockPrefs struct {
	voice domain.Voice
}

func (m *mockPrefs) Voice(ctx context.Context) domain.Voice { return m.voice }
