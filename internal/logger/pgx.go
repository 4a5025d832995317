package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// NewPgxLogger builds the logger used for SQL query tracing in local
// environments. Output is console-formatted; queries are noisy enough
// without JSON framing on top.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).Level(level).With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel maps the application log level onto the pgx
// tracelog levels (tracelog.LogLevelNone..Trace as ints).
//
// The mapping keeps SQL tracing quieter than the app logger: full
// query logging only appears at debug and below.
func GetPgxTraceLogLevel(level zerolog.Level) int {
	// tracelog levels: 0 none, 1 error, 2 warn, 3 info, 4 debug, 6 trace.
	switch {
	case level <= zerolog.TraceLevel:
		return 6
	case level <= zerolog.DebugLevel:
		return 4
	case level <= zerolog.InfoLevel:
		return 3
	case level <= zerolog.WarnLevel:
		return 2
	default:
		return 1
	}
}
