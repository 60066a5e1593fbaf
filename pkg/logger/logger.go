package logger

import (
	"os"

	"support-desk/pkg/config"

	zl "github.com/rs/zerolog"
)

// log is an unexported package-level global variable that holds the logger instance
var log *logger

type logger struct {
	engine *zl.Logger
}

func init() {
	// default engine so packages can log before InitLogger runs (e.g. in tests)
	engine := newLogger(JSONFormat)
	log = &logger{engine: &engine}
}

// InitLogger initializes the logger with configuration
func InitLogger(cfg *config.Config) {
	logLvl := getLogLevel(cfg.Log.Level)

	zl.SetGlobalLevel(logLvl)
	engine := newLogger(cfg.Log.Format)

	log = &logger{
		engine: &engine,
	}
}

// getLogLevel returns the log level based on the string input
func getLogLevel(level string) zl.Level {
	switch level {
	case DebugLevel:
		return zl.DebugLevel
	case InfoLevel:
		return zl.InfoLevel
	case WarnLevel:
		return zl.WarnLevel
	case ErrorLevel:
		return zl.ErrorLevel
	default:
		return zl.InfoLevel
	}
}

// newLogger creates a logger that outputs JSON by default, or a human-readable
// console format for local development
func newLogger(format string) zl.Logger {
	if format == ConsoleFormat {
		writer := zl.ConsoleWriter{Out: os.Stdout}
		return zl.New(writer).With().
			Timestamp().
			Logger()
	}

	return zl.New(os.Stdout).With().
		Timestamp().
		Logger()
}
