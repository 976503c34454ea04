package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	line := Defaults()

	assert.Equal(t, 4, line.RolloverCutoffHour)
	assert.Equal(t, 90*time.Second, line.StalenessTolerance())
	assert.Equal(t, 60*time.Second, line.CacheTTL())
	assert.Equal(t, "Caltrain Station", line.StationSuffix)
	assert.Contains(t, line.TerminalStations, "Tamien")
}

func TestLoadOverrides(t *testing.T) {
	t.Run("environment beats defaults", func(t *testing.T) {
		t.Setenv("RAILBOARD_TIMEZONE", "UTC")
		t.Setenv("RAILBOARD_STATION_REFERENCE", "/data/stations.csv")
		t.Setenv("RAILBOARD_CACHE_TTL", "120")

		line := Load()

		assert.Equal(t, "UTC", line.Timezone)
		assert.Equal(t, "/data/stations.csv", line.StationReferencePath)
		assert.Equal(t, 120*time.Second, line.CacheTTL())
	})

	t.Run("config file beats defaults, environment beats the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "line.yaml")
		require.NoError(t, os.WriteFile(path, []byte("timezone: America/New_York\nrollover_cutoff_hour: 3\n"), 0644))

		t.Setenv("RAILBOARD_CONFIG", path)
		t.Setenv("RAILBOARD_TIMEZONE", "UTC")

		line := Load()

		assert.Equal(t, 3, line.RolloverCutoffHour)
		assert.Equal(t, "UTC", line.Timezone)
	})
}

func TestLocation(t *testing.T) {
	line := Defaults()
	line.Timezone = "UTC"

	assert.Equal(t, time.UTC, line.Location())
}
