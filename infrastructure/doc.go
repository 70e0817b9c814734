// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - store/memory: Process-local slot store backed by go-cache
// - store/sqlite: SQLite slot table
// - store/redis: Redis-backed slots
// - store/gcs: Cloud Storage objects as slots
// - gemini: Script generation and speech synthesis against the Gemini models
// - cloudtts: Alternative synthesizer using Cloud Text-to-Speech
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: Structured logger with optional rotated file output
//
// # Stores
//
//	store, err := sqlite.NewStore("gistfm.db")
//	err = store.Set(ctx, "gistfm_voice", []byte(`"Puck"`))
//	value, err := store.Get(ctx, "gistfm_voice")
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := logrus.NewLogger(logrus.Options{Level: "info", Format: "json"})
//	logger.Info("Generation finished", map[string]interface{}{
//	    "tone":  "Professional",
//	    "voice": "Kore",
//	})
package infrastructure
