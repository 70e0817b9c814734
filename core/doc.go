// Package core contains the business logic for the GistFM API.
// It is framework-agnostic and can be used independently of any web
// framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Tone, Voice, Script, Bookmark, State)
// - extractor: Article fetching through the content proxy and text extraction
// - session: The generation state machine that drives extraction, scripting and synthesis
// - bookmarks: Persisted bookmark list and voice preference
// - playback: Transport controller over a pluggable playback engine
// - audio: WAV container assembly and audio artifacts
// - errors: Typed errors and generation failure classification
// - interfaces: Contracts for external dependencies (store, HTTP, models, logger)
//
// # Design Principles
//
// All external dependencies are injected via interfaces so the business
// logic is testable in isolation with func-field mocks.
//
// # Usage Example
//
//	orch := session.NewOrchestrator(ctx, session.Dependencies{
//	    Extractor:   extractor.NewService(httpClient, logger),
//	    Generator:   generator,
//	    Synthesizer: synthesizer,
//	    Bookmarks:   bookmarks.NewService(store, logger, "gistfm_bookmarks"),
//	    Preferences: bookmarks.NewPreferences(store, logger, "gistfm_voice"),
//	    Messages:    catalog,
//	    Logger:      logger,
//	})
//	_ = orch.SetURLInput("https://example.com/story")
//	if err := orch.FetchURL(ctx); err != nil {
//	    // rejected: busy or empty input
//	}
//	_ = orch.Generate(ctx)
package core
