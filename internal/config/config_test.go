package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Empty(t, cfg.DriveAPIKey)
	assert.Equal(t, 5*time.Second, cfg.CoverTimeout)
	assert.False(t, cfg.DemoRatings)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9999")
	t.Setenv("GOOGLE_DRIVE_API_KEY", "key-123")
	t.Setenv("COVER_LOOKUP_TIMEOUT", "2s")
	t.Setenv("LIBRARY_DEMO_RATINGS", "true")

	cfg := Load()

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "key-123", cfg.DriveAPIKey)
	assert.Equal(t, 2*time.Second, cfg.CoverTimeout)
	assert.True(t, cfg.DemoRatings)
}

func TestLoadBadDuration(t *testing.T) {
	t.Setenv("COVER_LOOKUP_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 5*time.Second, cfg.CoverTimeout)
}
