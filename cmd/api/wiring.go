// ABOUTME: Construction of configurable backends for the API server
// ABOUTME: Selects the slot store and speech provider from configuration

package main

import (
	"context"
	"net/http"
	"time"

	"gistfm-api/core/config"
	"gistfm-api/core/errors"
	"gistfm-api/core/interfaces"
	"gistfm-api/infrastructure/cloudtts"
	"gistfm-api/infrastructure/gemini"
	stdhttp "gistfm-api/infrastructure/http/standard"
	"gistfm-api/infrastructure/store/gcs"
	"gistfm-api/infrastructure/store/memory"
	"gistfm-api/infrastructure/store/redis"
	"gistfm-api/infrastructure/store/sqlite"
	appconfig "gistfm-api/pkg/config"
)

func noClose() error { return nil }

// newModelClient builds the client for model calls. Synthesis runs to completion or
// failure, so the client carries no timeout of its own.
func newModelClient(rt http.RoundTripper) *stdhttp.StandardHTTPClient {
	return stdhttp.NewStandardHTTPClient(0).WithTransport(rt)
}

// newStore opens the configured slot store
func newStore(ctx context.Context, cfg *appconfig.Config) (interfaces.Store, func() error, error) {
	switch cfg.Store.Type {
	case "sqlite":
		s, err := sqlite.NewStore(cfg.Store.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case "redis":
		s, err := redis.NewStore(cfg.Store.Redis)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case "gcs":
		s, err := gcs.NewStore(ctx, cfg.Store.GCS)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return memory.NewStore(), noClose, nil
	}
}

// newGenerator creates the script generator
func newGenerator(ctx context.Context, cfg *appconfig.Config, logger interfaces.Logger) (interfaces.ScriptGenerator, func() error, error) {
	g, err := gemini.NewScriptGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.ScriptModel, logger)
	if err != nil {
		return nil, nil, err
	}
	return g, g.Close, nil
}

// newSynthesizer creates the configured speech synthesizer
func newSynthesizer(ctx context.Context, cfg *appconfig.Config, client gemini.HeaderPoster, logger interfaces.Logger) (interfaces.SpeechSynthesizer, func() error, error) {
	if cfg.Speech.Provider == "cloudtts" {
		s, err := cloudtts.NewSynthesizer(ctx, cloudtts.Config{
			LanguageCode: cfg.Speech.LanguageCode,
			SampleRate:   cfg.Speech.SampleRate,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	}

	return gemini.NewSpeechSynthesizer(client, gemini.SpeechConfig{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.SpeechModel,
		BaseURL: cfg.Gemini.BaseURL,
	}, logger), noClose, nil
}

// extractorOptions maps configuration onto extraction options; empty lists keep the defaults
func extractorOptions(cfg *appconfig.Config) []config.ExtractionOption {
	ex := cfg.Extractor
	opts := []config.ExtractionOption{
		config.WithProxyURL(ex.ProxyURL),
		config.WithTimeout(time.Duration(ex.TimeoutSeconds) * time.Second),
		config.WithMinLength(ex.MinLength),
	}
	if len(ex.NoiseSelectors) > 0 {
		opts = append(opts, config.WithNoiseSelectors(ex.NoiseSelectors))
	}

	phrases := []struct {
		kind errors.ExtractionKind
		list []string
	}{
		{errors.KindBotChallenge, ex.BotPhrases},
		{errors.KindPaywalled, ex.PaywallPhrases},
		{errors.KindJSRequired, ex.JSPhrases},
		{errors.KindForbidden, ex.ForbiddenPhrases},
	}
	for _, p := range phrases {
		if len(p.list) > 0 {
			opts = append(opts, config.WithIndicatorPhrases(p.kind, p.list))
		}
	}
	return opts
}
