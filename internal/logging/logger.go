package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/0xReLogic/simple-node/internal/config"
)

type logFormat int

const (
	formatText logFormat = iota
	formatJSON
)

var (
	baseLogger   zerolog.Logger
	errorLogger  zerolog.Logger
	baseLoggerMu sync.RWMutex
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	setLoggers(
		newLogger(os.Stdout, zerolog.InfoLevel, formatText),
		newLogger(os.Stderr, zerolog.InfoLevel, formatText),
	)
}

// Init configures the global loggers based on configuration values.
func Init(cfg config.LoggingConfig) {
	setLoggers(New(os.Stdout, cfg), New(os.Stderr, cfg))
}

// New returns a logger writing to w, configured the same way Init
// configures the global loggers.
func New(w io.Writer, cfg config.LoggingConfig) zerolog.Logger {
	return newLogger(w, parseLevel(cfg.Level), parseFormat(cfg.Format))
}

func parseLevel(value string) zerolog.Level {
	switch strings.ToLower(value) {
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

func parseFormat(value string) logFormat {
	switch strings.ToLower(value) {
	case "json":
		return formatJSON
	default:
		return formatText
	}
}

// newLogger builds a logger writing to writer. Text output carries the
// message and any explicit fields only, so a bare Msg produces a bare line.
func newLogger(writer io.Writer, level zerolog.Level, format logFormat) zerolog.Logger {
	if format == formatJSON {
		return zerolog.New(writer).Level(level).With().Timestamp().Logger()
	}

	cw := zerolog.ConsoleWriter{
		Out:        writer,
		NoColor:    true,
		PartsOrder: []string{zerolog.MessageFieldName},
	}
	return zerolog.New(&cw).Level(level)
}

func setLoggers(out, errs zerolog.Logger) {
	baseLoggerMu.Lock()
	baseLogger = out
	errorLogger = errs
	baseLoggerMu.Unlock()
}

// L returns the base logger. It writes to standard output.
func L() zerolog.Logger {
	baseLoggerMu.RLock()
	logger := baseLogger
	baseLoggerMu.RUnlock()
	return logger
}

// Errors returns the logger used for startup faults. It writes to standard error.
func Errors() zerolog.Logger {
	baseLoggerMu.RLock()
	logger := errorLogger
	baseLoggerMu.RUnlock()
	return logger
}
