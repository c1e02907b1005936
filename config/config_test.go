package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT",
		"GIN_MODE",
		"CALENDAR_BASE_URL",
		"CORS_ALLOW_ORIGINS",
		"NEW_RELIC_APP_NAME",
		"NEW_RELIC_LICENSE_KEY",
	} {
		t.Setenv(key, "") // registers restoration of any pre-existing value
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "https://bookings.clearviewexteriors.com", cfg.CalendarBaseURL)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.Equal(t, "Instant Quote API", cfg.NewRelicAppName)
	assert.Empty(t, cfg.NewRelicLicenseKey)
}

func TestLoad_Overrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("CALENDAR_BASE_URL", "https://cal.test")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://cal.test", cfg.CalendarBaseURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
}
