package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(Config{Level: "info", Format: "json"}, &buf)

	log.Info().Str("source", "rss").Int("count", 2).Msg("fetched")
	log.Debug().Msg("hidden")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "fetched", line["message"])
	assert.Equal(t, "rss", line["source"])
	assert.EqualValues(t, 2, line["count"])
	assert.Equal(t, "info", line["level"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(Config{Level: "debug"}, &buf)

	log.Debug().Str("id", "111").Msg("pushed")

	assert.Contains(t, buf.String(), "pushed")
	assert.Contains(t, buf.String(), "111")
}
