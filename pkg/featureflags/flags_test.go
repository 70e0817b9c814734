package featureflags

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvManager_DefaultsWhenUnset(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, RateLimitEnabled))
	assert.True(t, manager.IsEnabled(ctx, BookmarkRoutes))
	assert.True(t, manager.IsEnabled(ctx, PlaybackRoutes))
	assert.False(t, manager.IsEnabled(ctx, "unknown_flag"))
}

func TestEnvManager_DisabledFromEnv(t *testing.T) {
	os.Setenv("TEST_FEATURE_PLAYBACK_ROUTES", "false")
	defer os.Unsetenv("TEST_FEATURE_PLAYBACK_ROUTES")

	manager := NewEnvManager("TEST_FEATURE_")
	assert.False(t, manager.IsEnabled(context.Background(), PlaybackRoutes))
}

func TestEnvManager_MultipleValues(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"true lowercase", "true", true},
		{"TRUE uppercase", "TRUE", true},
		{"1 numeric", "1", true},
		{"enabled", "enabled", true},
		{"false", "false", false},
		{"0", "0", false},
		{"DISABLED", "DISABLED", false},
		{"empty falls back to default", "", false},
		{"unrecognised falls back to default", "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("TEST_FLAG", tt.value)
			defer os.Unsetenv("TEST_FLAG")

			manager := NewEnvManager("TEST_")
			assert.Equal(t, tt.expected, manager.IsEnabled(context.Background(), "FLAG"))
		})
	}
}

func TestEnvManager_OverrideTakesPrecedence(t *testing.T) {
	os.Setenv("TEST_FEATURE_RATE_LIMIT_ENABLED", "true")
	defer os.Unsetenv("TEST_FEATURE_RATE_LIMIT_ENABLED")

	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, RateLimitEnabled))

	manager.SetEnabled(RateLimitEnabled, false)
	assert.False(t, manager.IsEnabled(ctx, RateLimitEnabled))
}

func TestEnvManager_GetAllFlags(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_")
	manager.SetEnabled(BookmarkRoutes, false)

	flags := manager.GetAllFlags()
	assert.Len(t, flags, 3)
	assert.False(t, flags[BookmarkRoutes])
	assert.True(t, flags[PlaybackRoutes])
}

func TestStaticManager(t *testing.T) {
	manager := NewStaticManager(map[FeatureFlag]bool{
		BookmarkRoutes: true,
	})
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, BookmarkRoutes))
	assert.False(t, manager.IsEnabled(ctx, PlaybackRoutes))

	manager.SetEnabled(PlaybackRoutes, true)
	assert.True(t, manager.IsEnabled(ctx, PlaybackRoutes))
	assert.Len(t, manager.GetAllFlags(), 2)
}
