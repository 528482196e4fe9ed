package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel_Table(t *testing.T) {
	tests := []struct {
		in   LogLevel
		want zerolog.Level
	}{
		{DebugLevel, zerolog.DebugLevel},
		{InfoLevel, zerolog.InfoLevel},
		{WarnLevel, zerolog.WarnLevel},
		{ErrorLevel, zerolog.ErrorLevel},
		{Disabled, zerolog.Disabled},
		{"bogus", zerolog.WarnLevel},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ParseLevel(tc.in), "level %q", tc.in)
	}
}

func TestGet_ReturnsConfiguredLogger(t *testing.T) {
	t.Cleanup(func() { Configure(Config{Level: WarnLevel, Pretty: true, Output: os.Stderr}) })

	var buf bytes.Buffer
	Configure(Config{Level: DebugLevel, Output: &buf})

	l := Get().With().Str("load_id", "abc").Logger()
	l.Warn().Msg("skipped")

	assert.Contains(t, buf.String(), `"load_id":"abc"`)
}

func TestConfigure_WritesJSONAtLevel(t *testing.T) {
	t.Cleanup(func() { Configure(Config{Level: WarnLevel, Pretty: true, Output: os.Stderr}) })

	var buf bytes.Buffer
	Configure(Config{Level: InfoLevel, Output: &buf})

	Debug().Msg("hidden")
	Info().Str("path", "courses.csv").Msg("catalog loaded")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"path":"courses.csv"`)
	assert.Contains(t, out, `"message":"catalog loaded"`)
}
