//go:build unit || !integration

package logger

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestConfigureLogging(t *testing.T) {
	oldLogger := log.Logger
	oldContextLogger := zerolog.DefaultContextLogger
	oldLevel := zerolog.GlobalLevel()

	t.Cleanup(func() {
		log.Logger = oldLogger
		zerolog.DefaultContextLogger = oldContextLogger
		zerolog.SetGlobalLevel(oldLevel)
	})

	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_TYPE", "")

	var logging strings.Builder
	configureLogging(func(w *zerolog.ConsoleWriter) {
		w.Out = &logging
		w.NoColor = true
	})

	log.Debug().Stack().Err(errors.New("testing error logging")).Msg("testing message")

	actual := logging.String()
	t.Log(actual)

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.Contains(t, actual, "testing message", "Log statement doesn't contain the log message")
	assert.Contains(t, actual, "testing error logging", "Log statement doesn't contain the logged error")
	assert.Contains(t, actual, "logger/logger_test.go", "Log statement doesn't contain the caller")
	assert.Contains(t, actual, `"func":"TestConfigureLogging"`, "Log statement didn't include the error's stacktrace")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"fatal":   zerolog.FatalLevel,
		"info":    zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}

	for input, expected := range tests {
		assert.Equal(t, expected, ParseLevel(input), "ParseLevel(%q)", input)
	}
}

func TestShortCaller(t *testing.T) {
	assert.Equal(t, "validate/presence.go:42", shortCaller(0, "/src/presence/pkg/lib/validate/presence.go", 42))
	assert.Equal(t, "logger/logger.go:7", shortCaller(0, "logger/logger.go", 7))
}

func TestLogWriter(t *testing.T) {
	var text strings.Builder
	assert.Same(t, &text, logWriter("", &text))
	assert.Same(t, &text, logWriter("TEXT", &text))
	assert.Equal(t, io.Discard, logWriter("none", &text))
	assert.Equal(t, os.Stderr, logWriter("JSON", &text))
}
