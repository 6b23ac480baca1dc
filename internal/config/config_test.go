package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_FILE", "SERVER_PORT", "APP_ENV", "ALLOWED_ORIGINS",
		"SALON_TIMEZONE", "SALON_OPEN_TIME", "SALON_CLOSE_TIME",
		"SLOT_STEP_MINUTES", "OCCUPANCY_POLICY", "RATE_LIMIT_PER_MINUTE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "America/Bogota", cfg.Salon.Timezone)
	assert.Equal(t, "08:00", cfg.Salon.OpenTime)
	assert.Equal(t, "17:00", cfg.Salon.CloseTime)
	assert.Equal(t, 30, cfg.Salon.SlotStepMinutes)
	assert.Equal(t, "all_statuses", cfg.Salon.OccupancyPolicy)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("SLOT_STEP_MINUTES", "15")
	t.Setenv("OCCUPANCY_POLICY", "exclude_cancelled")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 15, cfg.Salon.SlotStepMinutes)
	assert.Equal(t, "exclude_cancelled", cfg.Salon.OccupancyPolicy)
}

func TestLoadOverlaysYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
salon:
  open_time: "09:00"
  close_time: "19:00"
`), 0o600))

	clearEnv(t)
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("SALON_OPEN_TIME", "07:00")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "09:00", cfg.Salon.OpenTime)
	assert.Equal(t, "19:00", cfg.Salon.CloseTime)
	assert.Equal(t, 30, cfg.Salon.SlotStepMinutes)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	clearEnv(t)

	t.Run("inverted hours", func(t *testing.T) {
		t.Setenv("SALON_OPEN_TIME", "18:00")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unknown policy", func(t *testing.T) {
		t.Setenv("OCCUPANCY_POLICY", "whatever")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad port", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "70000")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
		_, err := Load()
		assert.Error(t, err)
	})
}
