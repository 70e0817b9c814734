// ABOUTME: Extraction configuration for service-level control of the scraping heuristics
// ABOUTME: Thresholds, selector denylist, and blocking-phrase lists are values, not constants

package config

import (
	"time"

	"gistfm-api/core/errors"
)

// DefaultProxyURL is the CORS-bridging proxy returning a {contents, status} envelope
const DefaultProxyURL = "https://api.allorigins.win/get"

// IndicatorRule maps any of its phrases, found in short page text, to an extraction kind
type IndicatorRule struct {
	Kind    errors.ExtractionKind
	Phrases []string
}

// ExtractionConfig controls how the extractor fetches and judges a page
type ExtractionConfig struct {
	// ProxyURL is the proxy endpoint; the target URL is passed in the url query parameter
	ProxyURL string

	// Timeout bounds the proxy fetch
	Timeout time.Duration

	// MinLength is the minimum number of characters for a successful extraction
	MinLength int

	// NoiseSelectors are removed from the document before text is taken
	NoiseSelectors []string

	// Indicators are checked in order when the text is shorter than MinLength
	Indicators []IndicatorRule

	// ExtractMetadata controls whether title and site name are read from the page
	ExtractMetadata bool
}

// DefaultNoiseSelectors lists markup that never carries article text
func DefaultNoiseSelectors() []string {
	return []string{
		"script", "style", "noscript", "iframe", "svg",
		"header", "footer", "nav", "aside",
		".ad", ".advertisement", "#sidebar", ".menu",
		".cookie-banner", "#cookie-consent",
		`[role="alert"]`, `[role="banner"]`, `[role="navigation"]`,
		"button", "input", "textarea", "form",
	}
}

// DefaultIndicators returns the blocking-message checklist in priority order
func DefaultIndicators() []IndicatorRule {
	return []IndicatorRule{
		{Kind: errors.KindBotChallenge, Phrases: []string{"captcha", "robot", "human verification"}},
		{Kind: errors.KindPaywalled, Phrases: []string{"subscribe", "sign in", "log in", "paywall", "member-only"}},
		{Kind: errors.KindJSRequired, Phrases: []string{"enable javascript", "browser is not supported"}},
		{Kind: errors.KindForbidden, Phrases: []string{"403 forbidden", "access denied"}},
	}
}

// DefaultExtractionConfig returns the default configuration
func DefaultExtractionConfig() ExtractionConfig {
	return ExtractionConfig{
		ProxyURL:        DefaultProxyURL,
		Timeout:         15 * time.Second,
		MinLength:       200,
		NoiseSelectors:  DefaultNoiseSelectors(),
		Indicators:      DefaultIndicators(),
		ExtractMetadata: true,
	}
}

// ExtractionOption is a functional option for configuring extraction
type ExtractionOption func(*ExtractionConfig)

// WithProxyURL sets the proxy endpoint; empty keeps the current value
func WithProxyURL(proxyURL string) ExtractionOption {
	return func(c *ExtractionConfig) {
		if proxyURL != "" {
			c.ProxyURL = proxyURL
		}
	}
}

// WithTimeout sets the fetch timeout; non-positive keeps the current value
func WithTimeout(d time.Duration) ExtractionOption {
	return func(c *ExtractionConfig) {
		if d > 0 {
			c.Timeout = d
		}
	}
}

// WithMinLength sets the quality gate threshold
func WithMinLength(n int) ExtractionOption {
	return func(c *ExtractionConfig) {
		if n >= 0 {
			c.MinLength = n
		}
	}
}

// WithNoiseSelectors replaces the selector denylist; empty keeps the defaults
func WithNoiseSelectors(selectors []string) ExtractionOption {
	return func(c *ExtractionConfig) {
		if len(selectors) > 0 {
			c.NoiseSelectors = selectors
		}
	}
}

// WithIndicatorPhrases replaces the phrases of one indicator kind; empty keeps the defaults
func WithIndicatorPhrases(kind errors.ExtractionKind, phrases []string) ExtractionOption {
	return func(c *ExtractionConfig) {
		if len(phrases) == 0 {
			return
		}
		for i := range c.Indicators {
			if c.Indicators[i].Kind == kind {
				c.Indicators[i].Phrases = phrases
				return
			}
		}
		c.Indicators = append(c.Indicators, IndicatorRule{Kind: kind, Phrases: phrases})
	}
}

// WithMetadata enables or disables metadata extraction
func WithMetadata(enabled bool) ExtractionOption {
	return func(c *ExtractionConfig) {
		c.ExtractMetadata = enabled
	}
}

// WithoutMetadata disables metadata extraction
func WithoutMetadata() ExtractionOption {
	return WithMetadata(false)
}

// NewExtractionConfig creates a new extraction configuration with the given options
func NewExtractionConfig(opts ...ExtractionOption) ExtractionConfig {
	config := DefaultExtractionConfig()

	for _, opt := range opts {
		opt(&config)
	}

	return config
}
