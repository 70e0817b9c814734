// ABOUTME: Generation orchestrator sequences URL import, script generation, and speech synthesis
// ABOUTME: State gating under one mutex keeps at most one pipeline in flight

package session

import (
	"context"
	"strings"
	"sync"

	"gistfm-api/core/audio"
	"gistfm-api/core/bookmarks"
	"gistfm-api/core/domain"
	"gistfm-api/core/errors"
	"gistfm-api/core/extractor"
	"gistfm-api/core/interfaces"
	"gistfm-api/pkg/messages"
)

// Dependencies holds the collaborators of an orchestrator
type Dependencies struct {
	Extractor   interfaces.ArticleExtractor
	Generator   interfaces.ScriptGenerator
	Synthesizer interfaces.SpeechSynthesizer
	Bookmarks   *bookmarks.Service
	Preferences *bookmarks.Preferences
	Messages    *messages.Catalog
	Logger      interfaces.Logger
}

// Option configures an orchestrator
type Option func(*Orchestrator)

// WithFormat sets the PCM format returned by the synthesizer
func WithFormat(f audio.Format) Option {
	return func(o *Orchestrator) {
		o.format = f
	}
}

// WithClassifier replaces the generation failure rule table
func WithClassifier(c errors.Classifier) Option {
	return func(o *Orchestrator) {
		o.classifier = c
	}
}

// WithArtifactListener registers fn to receive every artifact change.
// fn receives nil when the clip is released without a replacement.
func WithArtifactListener(fn func(*audio.Artifact)) Option {
	return func(o *Orchestrator) {
		o.listener = fn
	}
}

// Orchestrator owns the state of one generation session.
// Operations that are illegal in the current state return ErrBusy and change nothing.
// Pipeline failures are not returned; they move the session to StateError.
//
// Reset is accepted at any time. A pipeline still in flight after a reset keeps
// the session busy until it returns, and its results are discarded.
type Orchestrator struct {
	deps       Dependencies
	format     audio.Format
	classifier errors.Classifier
	listener   func(*audio.Artifact)

	mu         sync.Mutex
	running    bool
	epoch      uint64
	stage      domain.Stage
	article    domain.Article
	urlInput   string
	tone       domain.Tone
	voice      domain.Voice
	script     *domain.Script
	artifact   *audio.Artifact
	bookmarkID string
}

// NewOrchestrator creates an idle session. The voice starts from the persisted preference.
func NewOrchestrator(ctx context.Context, deps Dependencies, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		deps:       deps,
		format:     audio.DefaultFormat,
		classifier: errors.DefaultClassifier,
		stage:      domain.IdleStage(),
		tone:       domain.DefaultTone,
		voice:      deps.Preferences.Voice(ctx),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Snapshot returns a copy of the current session state
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotLocked()
}

func (o *Orchestrator) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:        o.stage.State,
		ErrorKind:    o.stage.ErrorKind,
		ErrorMessage: o.stage.ErrorMessage,
		ArticleText:  o.article.Text,
		ArticleTitle: o.article.Title,
		ArticleSite:  o.article.SiteName,
		URLInput:     o.urlInput,
		Tone:         o.tone,
		Voice:        o.voice,
		BookmarkID:   o.bookmarkID,
	}
	if o.script != nil {
		s := *o.script
		snap.Script = &s
	}
	if o.artifact != nil {
		snap.AudioID = o.artifact.ID()
		snap.AudioDuration = o.artifact.Duration()
	}
	return snap
}

// SetArticleText replaces the article text typed by the user
func (o *Orchestrator) SetArticleText(text string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.stage.State.Loading() {
		return errors.ErrBusy
	}
	o.article = domain.Article{Text: domain.ArticleText(text)}
	return nil
}

// SetURLInput replaces the pending URL input
func (o *Orchestrator) SetURLInput(raw string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.stage.State.Loading() {
		return errors.ErrBusy
	}
	o.urlInput = raw
	return nil
}

// SetTone selects the tone for the next generation
func (o *Orchestrator) SetTone(t domain.Tone) error {
	if !t.Valid() {
		return &errors.ValidationError{Field: "tone", Message: "unknown tone " + string(t)}
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.stage.State.Loading() {
		return errors.ErrBusy
	}
	o.tone = t
	return nil
}

// SetVoice selects the narrator and persists the preference
func (o *Orchestrator) SetVoice(ctx context.Context, v domain.Voice) error {
	if !v.Valid() {
		return &errors.ValidationError{Field: "voice", Message: "unknown voice " + string(v)}
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.stage.State.Loading() {
		return errors.ErrBusy
	}
	o.voice = v
	o.deps.Preferences.SetVoice(ctx, v)
	return nil
}

// FetchURL imports the article at the current URL input.
// Malformed input fails locally without a network call.
func (o *Orchestrator) FetchURL(ctx context.Context) error {
	o.mu.Lock()
	if o.running || o.stage.State.Loading() {
		o.mu.Unlock()
		return errors.ErrBusy
	}
	raw := strings.TrimSpace(o.urlInput)
	if raw == "" {
		o.mu.Unlock()
		return errors.ErrEmptyURL
	}
	if _, err := extractor.ValidateInput(raw); err != nil {
		o.stage = domain.ErrorStage(string(errors.KindInvalidURL), o.deps.Messages.Text(messages.InvalidURLFormat, nil))
		o.mu.Unlock()
		return nil
	}
	epoch := o.beginLocked(domain.Stage{State: domain.StateFetchingURL})
	o.mu.Unlock()

	article, err := o.deps.Extractor.Extract(ctx, raw)

	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.finishLocked(epoch) {
		return nil
	}

	if err != nil {
		kind := string(errors.ExtractionKindOf(err))
		if kind == "" {
			kind = string(errors.KindUnexpected)
		}
		o.stage = domain.ErrorStage(kind, o.deps.Messages.Extraction(err))
		return nil
	}

	o.article = *article
	o.urlInput = ""
	o.stage = domain.IdleStage()
	return nil
}

// Generate produces a script from the article text and synthesizes it.
// Both upstream calls run to completion even if ctx is cancelled.
func (o *Orchestrator) Generate(ctx context.Context) error {
	o.mu.Lock()
	if o.running || o.stage.State.Loading() {
		o.mu.Unlock()
		return errors.ErrBusy
	}
	text := o.article.Text
	if strings.TrimSpace(string(text)) == "" {
		o.mu.Unlock()
		return errors.ErrEmptyArticle
	}
	tone, voice := o.tone, o.voice

	o.script = nil
	o.bookmarkID = ""
	released := o.releaseArtifactLocked()
	epoch := o.beginLocked(domain.Stage{State: domain.StateSummarizing})
	o.mu.Unlock()
	if released {
		o.notify(nil)
	}

	detached := context.WithoutCancel(ctx)

	o.deps.Logger.Info("Generating script", map[string]interface{}{
		"tone":  string(tone),
		"chars": len([]rune(string(text))),
	})
	scriptText, err := o.deps.Generator.GenerateScript(detached, text, tone)
	if err != nil {
		o.fail(epoch, "script", err)
		return nil
	}

	script := domain.Script{Text: scriptText, Tone: tone}
	o.mu.Lock()
	if o.epoch != epoch {
		o.running = false
		o.mu.Unlock()
		return nil
	}
	o.script = &script
	o.stage = domain.Stage{State: domain.StateGeneratingAudio, Script: &script}
	o.mu.Unlock()

	o.deps.Logger.Info("Synthesizing speech", map[string]interface{}{
		"voice": string(voice),
		"words": script.WordCount(),
	})
	pcm, err := o.deps.Synthesizer.Synthesize(detached, script.Text, voice)
	if err != nil {
		o.fail(epoch, "speech", err)
		return nil
	}

	artifact := audio.NewArtifact(pcm, o.format)

	o.mu.Lock()
	if !o.finishLocked(epoch) {
		o.mu.Unlock()
		artifact.Release()
		return nil
	}
	o.artifact = artifact
	o.stage = domain.Stage{State: domain.StatePlaying, Script: &script}
	o.mu.Unlock()
	o.notify(artifact)

	return nil
}

// beginLocked marks a pipeline as in flight and returns its epoch
func (o *Orchestrator) beginLocked(stage domain.Stage) uint64 {
	o.running = true
	o.epoch++
	o.stage = stage
	return o.epoch
}

// finishLocked ends the pipeline started at epoch and reports whether its
// results still apply
func (o *Orchestrator) finishLocked(epoch uint64) bool {
	o.running = false
	return o.epoch == epoch
}

// fail classifies a generation failure and records it
func (o *Orchestrator) fail(epoch uint64, stage string, err error) {
	kind := o.classifier.Classify(err)

	o.deps.Logger.Error("Generation failed", map[string]interface{}{
		"stage": stage,
		"kind":  string(kind),
		"error": err.Error(),
	})

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.finishLocked(epoch) {
		o.stage = domain.ErrorStage(string(kind), o.deps.Messages.Generation(kind, err))
	}
}

// Reset releases the clip and clears everything except tone and voice
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	if o.running {
		o.epoch++
	}
	released := o.releaseArtifactLocked()
	o.article = domain.Article{}
	o.script = nil
	o.urlInput = ""
	o.bookmarkID = ""
	o.stage = domain.IdleStage()
	o.mu.Unlock()

	if released {
		o.notify(nil)
	}
}

// DismissError returns from StateError to StateIdle; otherwise it does nothing
func (o *Orchestrator) DismissError() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.stage.State == domain.StateError {
		o.stage = domain.IdleStage()
	}
}

// LoadBookmark restores a saved script with its tone and voice. No audio is restored.
func (o *Orchestrator) LoadBookmark(ctx context.Context, id string) error {
	b, ok := o.deps.Bookmarks.Get(ctx, id)
	if !ok {
		return &errors.NotFoundError{Resource: "bookmark", ID: id}
	}

	o.mu.Lock()
	if o.running || o.stage.State.Loading() {
		o.mu.Unlock()
		return errors.ErrBusy
	}
	script := domain.Script{Text: b.Script, Tone: b.Tone}
	o.script = &script
	if b.Tone.Valid() {
		o.tone = b.Tone
	}
	if b.Voice.Valid() {
		o.voice = b.Voice
		o.deps.Preferences.SetVoice(ctx, b.Voice)
	}
	released := o.releaseArtifactLocked()
	o.bookmarkID = b.ID
	o.stage = domain.Stage{State: domain.StatePlaying, Script: &script}
	o.mu.Unlock()

	if released {
		o.notify(nil)
	}
	return nil
}

// ToggleBookmark removes the associated bookmark, or saves the current script as a
// new one. It reports whether the script is bookmarked afterwards.
func (o *Orchestrator) ToggleBookmark(ctx context.Context) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.bookmarkID != "" {
		o.deps.Bookmarks.Remove(ctx, o.bookmarkID)
		o.bookmarkID = ""
		return false, nil
	}

	if o.script == nil || o.script.Empty() {
		return false, errors.ErrNoScript
	}

	b, err := domain.NewBookmark(o.script.Text, o.tone, o.voice)
	if err != nil {
		return false, err
	}
	o.deps.Bookmarks.Save(ctx, *b)
	o.bookmarkID = b.ID
	return true, nil
}

// RemoveBookmark deletes a bookmark and drops the association if it was current
func (o *Orchestrator) RemoveBookmark(ctx context.Context, id string) {
	o.deps.Bookmarks.Remove(ctx, id)

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.bookmarkID == id {
		o.bookmarkID = ""
	}
}

// Artifact returns the current clip
func (o *Orchestrator) Artifact() (*audio.Artifact, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.artifact == nil {
		return nil, errors.ErrNoAudio
	}
	return o.artifact, nil
}

// Transcript returns the current script text
func (o *Orchestrator) Transcript() (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.script == nil || o.script.Empty() {
		return "", errors.ErrNoScript
	}
	return o.script.Text, nil
}

// releaseArtifactLocked frees the current clip and reports whether there was one
func (o *Orchestrator) releaseArtifactLocked() bool {
	if o.artifact == nil {
		return false
	}
	o.artifact.Release()
	o.artifact = nil
	return true
}

func (o *Orchestrator) notify(a *audio.Artifact) {
	if o.listener != nil {
		o.listener(a)
	}
}
