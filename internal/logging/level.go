package logging

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Level represents the verbosity of the application log.
// The numeric values are the ones stored in the settings file.
type Level int

const (
	// LevelNone disables logging.
	LevelNone Level = iota
	// LevelError logs errors only.
	LevelError
	// LevelWarn adds warnings.
	LevelWarn
	// LevelInfo adds informational messages.
	LevelInfo
	// LevelDebug adds debugging output.
	LevelDebug
	// LevelMax logs everything, including per-event tracing.
	LevelMax
)

// String returns the level name as accepted by ParseLevel.
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelMax:
		return "max"
	default:
		return "unknown"
	}
}

// Valid reports whether l is a defined level.
func (l Level) Valid() bool {
	return l >= LevelNone && l <= LevelMax
}

// ParseLevel parses a level name or its numeric value.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "off":
		return LevelNone, nil
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "max", "trace":
		return LevelMax, nil
	}

	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && Level(n).Valid() {
		return Level(n), nil
	}
	return LevelNone, fmt.Errorf("invalid log level %q", s)
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelError:
		return zerolog.ErrorLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelMax:
		return zerolog.TraceLevel
	default:
		return zerolog.Disabled
	}
}
