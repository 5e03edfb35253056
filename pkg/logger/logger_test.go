package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_NivelDesdeConfig(t *testing.T) {
	cases := []struct {
		level string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"WARN", zerolog.WarnLevel},
		{"  debug ", zerolog.DebugLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		l := New(Config{Env: "production", Level: tc.level})
		assert.Equal(t, tc.want, l.Zerolog().GetLevel(), "nivel %q", tc.level)
	}
}

func TestNew_CampoService(t *testing.T) {
	l := New(Config{Env: "production", Level: "info", Service: "stock-ledger"})
	assert.NotNil(t, l)
	// El sublogger hereda el campo fijo sin error.
	sub := l.With().Str("component", "test").Logger()
	assert.Equal(t, zerolog.InfoLevel, sub.GetLevel())
}
