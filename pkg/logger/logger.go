package logger

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

var stderr = struct{ io.Writer }{os.Stderr}

func init() { //nolint:gochecknoinits // init with zerolog is idiomatic
	configureLogging()
}

type tTesting interface {
	Log(args ...interface{})
	Logf(format string, args ...interface{})
	Helper()
	Cleanup(f func())
}

// ConfigureTestLogging allows logs to be associated with individual tests
func ConfigureTestLogging(t tTesting) {
	oldLogger := log.Logger
	oldContextLogger := zerolog.DefaultContextLogger
	oldLevel := zerolog.GlobalLevel()
	configureLogging(zerolog.ConsoleTestWriter(t))
	t.Cleanup(func() {
		log.Logger = oldLogger
		zerolog.DefaultContextLogger = oldContextLogger
		zerolog.SetGlobalLevel(oldLevel)
	})
}

// ParseLevel maps a LOG_LEVEL value onto a zerolog level. Unknown values
// fall back to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

func configureLogging(loggingOptions ...func(w *zerolog.ConsoleWriter)) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.CallerMarshalFunc = shortCaller
	zerolog.SetGlobalLevel(ParseLevel(os.Getenv("LOG_LEVEL")))

	noColor := !isatty.IsTerminal(os.Stderr.Fd())
	loggingOptions = append([]func(w *zerolog.ConsoleWriter){consoleDefaults(noColor)}, loggingOptions...)
	textWriter := zerolog.NewConsoleWriter(loggingOptions...)

	log.Logger = zerolog.New(logWriter(os.Getenv("LOG_TYPE"), textWriter)).With().Timestamp().Caller().Logger()
	zerolog.DefaultContextLogger = &log.Logger
}

func consoleDefaults(noColor bool) func(w *zerolog.ConsoleWriter) {
	return func(w *zerolog.ConsoleWriter) {
		w.Out = stderr
		w.NoColor = noColor
		w.TimeFormat = "15:04:05.999 |"
		w.PartsOrder = []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.CallerFieldName,
			zerolog.MessageFieldName,
		}
	}
}

// logWriter picks the sink for LOG_TYPE: text (default), json, combined or none.
func logWriter(logType string, text io.Writer) io.Writer {
	switch strings.ToLower(logType) {
	case "json":
		return os.Stderr
	case "combined":
		return zerolog.MultiLevelWriter(text, os.Stderr)
	case "none":
		return io.Discard
	default:
		return text
	}
}

// shortCaller keeps the parent directory and file name, e.g. "validate/presence.go:42".
func shortCaller(_ uintptr, file string, line int) string {
	return filepath.ToSlash(filepath.Join(filepath.Base(filepath.Dir(file)), filepath.Base(file))) + ":" + strconv.Itoa(line)
}
