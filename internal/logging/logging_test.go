package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestComponentJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Level: "debug", Format: "json", Output: &buf}))
	t.Cleanup(func() { _ = Init(DefaultConfig()) })

	log := Component("reload")
	log.Debug().Str("path", "/tmp/theme.toml").Msg("theme reloaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "reload", entry["component"])
	require.Equal(t, "debug", entry["level"])
	require.Equal(t, "theme reloaded", entry["message"])
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Level: "warn", Format: "json", Output: &buf}))
	t.Cleanup(func() { _ = Init(DefaultConfig()) })

	log := Component("theme")
	log.Info().Msg("hidden")
	require.Zero(t, buf.Len())

	log.Warn().Msg("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestInitRejectsBadConfig(t *testing.T) {
	require.Error(t, Init(Config{Level: "loud"}))
	require.Error(t, Init(Config{Format: "xml"}))

	level, err := ParseLevel("")
	require.NoError(t, err)
	require.Equal(t, zerolog.InfoLevel, level)
}
