// ABOUTME: Main entry point for the GistFM API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gistfm-api/api"
	"gistfm-api/api/handlers"
	"gistfm-api/api/middleware"
	"gistfm-api/core/audio"
	"gistfm-api/core/bookmarks"
	"gistfm-api/core/extractor"
	"gistfm-api/core/interfaces"
	"gistfm-api/core/playback"
	"gistfm-api/core/session"
	stdhttp "gistfm-api/infrastructure/http/standard"
	logruslogger "gistfm-api/infrastructure/logger/logrus"
	"gistfm-api/pkg/config"
	"gistfm-api/pkg/featureflags"
	"gistfm-api/pkg/messages"
)

func main() {
	// Load configuration (.env first, then the environment)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogger(logruslogger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	logger.Info("Starting GistFM API", map[string]interface{}{
		"port":            cfg.Server.Port,
		"store_type":      cfg.Store.Type,
		"speech_provider": cfg.Speech.Provider,
		"api_key_set":     cfg.Gemini.APIKey != "",
	})
	if cfg.Gemini.APIKey == "" {
		logger.Warn("No Gemini API key configured; generation will fail until one is set", nil)
	}

	ctx := context.Background()
	flags := featureflags.NewEnvManager("FEATURE_")
	logger.Info("Feature flags resolved", map[string]interface{}{
		"flags": flags.GetAllFlags(),
	})

	var closers []func() error

	store, closeStore, err := newStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create store: %v", err)
	}
	closers = append(closers, closeStore)

	// Proxy fetches and model calls use separate clients; only the extractor bounds its fetch
	transport := &middleware.LoggingRoundTripper{Transport: http.DefaultTransport, Logger: logger}
	deps := interfaces.Dependencies{
		Store:      store,
		HTTPClient: stdhttp.NewStandardHTTPClient(0).WithTransport(transport),
		Logger:     logger,
	}
	modelClient := newModelClient(transport)

	catalog, err := messages.New("en")
	if err != nil {
		log.Fatalf("Failed to load messages: %v", err)
	}

	generator, closeGenerator, err := newGenerator(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create script generator: %v", err)
	}
	closers = append(closers, closeGenerator)

	synthesizer, closeSynthesizer, err := newSynthesizer(ctx, cfg, modelClient, logger)
	if err != nil {
		log.Fatalf("Failed to create speech synthesizer: %v", err)
	}
	closers = append(closers, closeSynthesizer)

	bookmarkService := bookmarks.NewService(deps.Store, deps.Logger, cfg.Store.BookmarksKey)
	preferences := bookmarks.NewPreferences(deps.Store, deps.Logger, cfg.Store.VoiceKey)

	engine := playback.NewClockEngine()
	defer engine.Close()
	controller := playback.NewController(engine, logger)

	orchestrator := session.NewOrchestrator(ctx, session.Dependencies{
		Extractor:   extractor.NewService(deps.HTTPClient, deps.Logger, extractorOptions(cfg)...),
		Generator:   generator,
		Synthesizer: synthesizer,
		Bookmarks:   bookmarkService,
		Preferences: preferences,
		Messages:    catalog,
		Logger:      logger,
	},
		session.WithFormat(audio.Format{SampleRate: cfg.Speech.SampleRate, Channels: 1, BitsPerSample: 16}),
		session.WithArtifactListener(controller.Load),
	)

	rateLimit := cfg.Server.RateLimit
	if !flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		rateLimit = 0
	}

	humaAPI, router, limiter := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:     logger,
		RateLimit:  rateLimit,
		RateWindow: time.Minute,
		RateBurst:  cfg.Server.RateBurst,
	})
	if limiter != nil {
		defer limiter.Stop()
	}

	registrars := []api.Registrar{
		handlers.NewSessionHandler(orchestrator),
		handlers.NewCatalogHandler(preferences),
	}
	if flags.IsEnabled(ctx, featureflags.BookmarkRoutes) {
		registrars = append(registrars, handlers.NewBookmarkHandler(bookmarkService, orchestrator))
	}
	if flags.IsEnabled(ctx, featureflags.PlaybackRoutes) {
		registrars = append(registrars, handlers.NewPlaybackHandler(controller))
	}
	api.Register(humaAPI, registrars...)

	errorLog := logger.Writer()
	defer errorLog.Close()

	// Generation blocks on the model, so the write timeout is generous
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     log.New(errorLog, "", 0),
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	orchestrator.Reset()
	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			logger.Warn("Failed to release resource", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	logger.Info("Server stopped", nil)
}

func init() {
	fmt.Println(`
   ____ _     _   _____ __  __
  / ___(_)___| |_|  ___|  \/  |
 | |  _| / __| __| |_  | |\/| |
 | |_| | \__ \ |_|  _| | |  | |
  \____|_|___/\__|_|   |_|  |_|
	`)
}
