// Package logging provides the application logger.
//
// A Logger writes zerolog events to a stream (stderr by default) and, when a
// log file is configured, to that file as well. The level and the log file
// can be changed at runtime; child loggers obtained before a change keep the
// old configuration, so callers fetch them when needed instead of caching.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for a Logger.
type Config struct {
	Level   Level     // defaults to LevelNone when zero
	Output  io.Writer // defaults to os.Stderr
	Console bool      // human-readable output on the stream
	Service string    // attached to every entry, defaults to "padmap"
}

// Logger is the application logger.
type Logger struct {
	mu       sync.RWMutex
	level    Level
	out      io.Writer
	console  bool
	service  string
	file     *os.File
	filePath string
	base     zerolog.Logger
}

// New creates a logger from cfg.
func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	if cfg.Service == "" {
		cfg.Service = "padmap"
	}
	l := &Logger{
		level:   cfg.Level,
		out:     cfg.Output,
		console: cfg.Console,
		service: cfg.Service,
	}
	l.rebuild()
	return l
}

// rebuild recreates the zerolog logger; callers hold l.mu.
func (l *Logger) rebuild() {
	var stream io.Writer = l.out
	if l.console {
		stream = zerolog.ConsoleWriter{Out: l.out, TimeFormat: time.RFC3339}
	}

	var w io.Writer = stream
	if l.file != nil {
		w = zerolog.MultiLevelWriter(stream, l.file)
	}

	l.base = zerolog.New(w).
		Level(l.level.zerolog()).
		With().
		Timestamp().
		Str("service", l.service).
		Logger()
}

// SetLogLevel changes the minimum level written.
func (l *Logger) SetLogLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	l.rebuild()
}

// LogLevel returns the current level.
func (l *Logger) LogLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// SetCurrentLogFile tees output to the file at path, appending to it.
// An empty path stops writing to a file.
func (l *Logger) SetCurrentLogFile(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if path == l.filePath {
		return nil
	}

	var f *os.File
	if path != "" {
		var err error
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file %s: %w", path, err)
		}
	}

	if l.file != nil {
		_ = l.file.Close()
	}
	l.file = f
	l.filePath = path
	l.rebuild()
	return nil
}

// CurrentLogFile returns the path of the log file, if any.
func (l *Logger) CurrentLogFile() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.filePath
}

// Base returns the configured zerolog logger.
func (l *Logger) Base() zerolog.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.base
}

// Component returns a child logger annotated with the given component name.
func (l *Logger) Component(name string) zerolog.Logger {
	return l.Base().With().Str("component", name).Logger()
}

// Close closes the log file, if one is open.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.filePath = ""
	l.rebuild()
	return err
}

var (
	defaultMu     sync.Mutex
	defaultLogger *Logger
)

// Default returns the process-wide logger, creating it on first use.
func Default() *Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New(Config{Level: LevelWarn, Console: true})
	}
	return defaultLogger
}

// SetDefault replaces the process-wide logger.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}
