// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, storage, extraction, and model settings

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Log contains logging configuration
	Log LogConfig

	// Store contains persistent slot storage configuration
	Store StoreConfig

	// Extractor contains article extraction settings
	Extractor ExtractorConfig

	// Gemini contains hosted model configuration
	Gemini GeminiConfig

	// Speech contains speech synthesis configuration
	Speech SpeechConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the number of requests allowed per IP per minute (0 disables)
	RateLimit int

	// RateBurst is the burst size for the per-IP limiter
	RateBurst int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string

	// File enables rotated file output when set
	File string
}

// StoreConfig holds slot store backend configuration
type StoreConfig struct {
	// Type specifies the backend (memory/sqlite/redis/gcs)
	Type string

	// BookmarksKey names the slot holding the bookmark list
	BookmarksKey string

	// VoiceKey names the slot holding the voice preference
	VoiceKey string

	SQLite SQLiteConfig
	Redis  RedisConfig
	GCS    GCSConfig
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	Path string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// GCSConfig holds Cloud Storage configuration
type GCSConfig struct {
	Bucket string
	Prefix string
}

// ExtractorConfig holds article extraction settings.
// Empty phrase lists fall back to the extractor defaults.
type ExtractorConfig struct {
	// ProxyURL is the content-fetching proxy endpoint; the target is passed as ?url=
	ProxyURL string

	// TimeoutSeconds bounds the proxy fetch
	TimeoutSeconds int

	// MinLength is the quality gate in characters
	MinLength int

	NoiseSelectors   []string
	BotPhrases       []string
	PaywallPhrases   []string
	JSPhrases        []string
	ForbiddenPhrases []string
}

// GeminiConfig holds hosted model settings
type GeminiConfig struct {
	APIKey      string
	ScriptModel string
	SpeechModel string
	BaseURL     string
}

// SpeechConfig holds speech synthesis settings
type SpeechConfig struct {
	// Provider selects the synthesizer (gemini/cloudtts)
	Provider string

	// SampleRate of the raw PCM returned by the synthesizer
	SampleRate int

	// LanguageCode used by Cloud Text-to-Speech
	LanguageCode string
}

// Load reads a .env file when present and then loads configuration from the environment
func Load(files ...string) (*Config, error) {
	// a missing .env is fine; real environment variables still apply
	_ = godotenv.Load(files...)
	return LoadFromEnv()
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsIntOrDefault("RATE_LIMIT", 60),
			RateBurst: getEnvAsIntOrDefault("RATE_BURST", 10),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
		Store: StoreConfig{
			Type:         getEnvOrDefault("STORE_TYPE", "sqlite"),
			BookmarksKey: getEnvOrDefault("BOOKMARKS_KEY", "gistfm_bookmarks"),
			VoiceKey:     getEnvOrDefault("VOICE_KEY", "gistfm_voice"),
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "gistfm.db"),
			},
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			GCS: GCSConfig{
				Bucket: getEnvOrDefault("GCS_BUCKET", ""),
				Prefix: getEnvOrDefault("GCS_PREFIX", "gistfm/"),
			},
		},
		Extractor: ExtractorConfig{
			ProxyURL:         getEnvOrDefault("EXTRACTOR_PROXY_URL", "https://api.allorigins.win/get"),
			TimeoutSeconds:   getEnvAsIntOrDefault("EXTRACTOR_TIMEOUT_SECONDS", 15),
			MinLength:        getEnvAsIntOrDefault("EXTRACTOR_MIN_LENGTH", 200),
			NoiseSelectors:   getEnvAsListOrDefault("EXTRACTOR_NOISE_SELECTORS", nil),
			BotPhrases:       getEnvAsListOrDefault("EXTRACTOR_BOT_PHRASES", nil),
			PaywallPhrases:   getEnvAsListOrDefault("EXTRACTOR_PAYWALL_PHRASES", nil),
			JSPhrases:        getEnvAsListOrDefault("EXTRACTOR_JS_PHRASES", nil),
			ForbiddenPhrases: getEnvAsListOrDefault("EXTRACTOR_FORBIDDEN_PHRASES", nil),
		},
		Gemini: GeminiConfig{
			APIKey:      firstEnv("GEMINI_API_KEY", "API_KEY"),
			ScriptModel: getEnvOrDefault("GEMINI_SCRIPT_MODEL", "gemini-2.5-flash"),
			SpeechModel: getEnvOrDefault("GEMINI_SPEECH_MODEL", "gemini-2.5-flash-preview-tts"),
			BaseURL:     getEnvOrDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/models"),
		},
		Speech: SpeechConfig{
			Provider:     getEnvOrDefault("SPEECH_PROVIDER", "gemini"),
			SampleRate:   getEnvAsIntOrDefault("SPEECH_SAMPLE_RATE", 24000),
			LanguageCode: getEnvOrDefault("SPEECH_LANGUAGE_CODE", "en-US"),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsListOrDefault splits a comma-separated variable, dropping blank entries
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

// Validate checks if the configuration is valid.
// A missing Gemini key is allowed; generation reports it as a configuration error.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 0 {
		return errors.New("rate limit cannot be negative")
	}

	switch c.Store.Type {
	case "memory":
	case "sqlite":
		if c.Store.SQLite.Path == "" {
			return errors.New("sqlite path cannot be empty when using sqlite store")
		}
	case "redis":
		if c.Store.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis store")
		}
	case "gcs":
		if c.Store.GCS.Bucket == "" {
			return errors.New("gcs bucket cannot be empty when using gcs store")
		}
	default:
		return errors.New("store type must be 'memory', 'sqlite', 'redis' or 'gcs'")
	}

	if c.Store.BookmarksKey == "" || c.Store.VoiceKey == "" {
		return errors.New("slot keys cannot be empty")
	}

	if c.Extractor.ProxyURL == "" {
		return errors.New("extractor proxy url cannot be empty")
	}

	if c.Extractor.TimeoutSeconds < 1 {
		return errors.New("extractor timeout must be at least 1 second")
	}

	if c.Extractor.MinLength < 0 {
		return errors.New("extractor min length cannot be negative")
	}

	if c.Speech.Provider != "gemini" && c.Speech.Provider != "cloudtts" {
		return errors.New("speech provider must be 'gemini' or 'cloudtts'")
	}

	if c.Speech.SampleRate <= 0 {
		return errors.New("speech sample rate must be positive")
	}

	return nil
}
