// Package logging writes pastel diagnostics to a per-session log file.
//
// The terminal belongs to the UI while pastel runs, so nothing here writes
// to stdout. Logs go to <dir>/<session-id>-pastel.log where dir is
// $PASTEL_LOG_DIR or ~/.pastel/logs.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// EnvLogDir overrides the log directory.
const EnvLogDir = "PASTEL_LOG_DIR"

// Logger is a component-tagged log writer. All levels write unconditionally.
type Logger struct {
	sessionID string
	component string
	file      *os.File
	logger    *log.Logger
	mu        sync.Mutex
	logPath   string
	closeOnce sync.Once
}

var (
	sessionID     string
	sessionIDOnce sync.Once
)

func getSessionID() string {
	sessionIDOnce.Do(func() {
		sessionID = uuid.New().String()
	})
	return sessionID
}

func logDirectory() (string, error) {
	dir := os.Getenv(EnvLogDir)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".pastel", "logs")
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}
	return dir, nil
}

// NewLogger opens the session log for component.
//
// If the file cannot be opened it returns a stderr logger together with the
// error, so callers can keep going.
func NewLogger(component string) (*Logger, error) {
	dir, err := logDirectory()
	if err != nil {
		return newFallbackLogger(component, err), err
	}

	sessID := getSessionID()
	logPath := filepath.Join(dir, fmt.Sprintf("%s-pastel.log", sessID))

	// Append mode: every component shares the session file.
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		err = fmt.Errorf("failed to open log file: %w", err)
		return newFallbackLogger(component, err), err
	}

	return &Logger{
		sessionID: sessID,
		component: component,
		file:      file,
		logger:    log.New(file, "", 0),
		logPath:   logPath,
	}, nil
}

// NewWriterLogger logs to w instead of a file.
func NewWriterLogger(component string, w io.Writer) *Logger {
	return &Logger{
		sessionID: getSessionID(),
		component: component,
		logger:    log.New(w, "", 0),
	}
}

func newFallbackLogger(component string, err error) *Logger {
	fmt.Fprintf(os.Stderr, "[%s] WARNING: Failed to initialize file logging: %v\n", component, err)
	return NewWriterLogger(component, os.Stderr)
}

func (l *Logger) write(level, format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	l.logger.Printf("[%s] [%s] [%s] %s", timestamp, l.component, level, fmt.Sprintf(format, v...))
}

func (l *Logger) Infof(format string, v ...any) { l.write("INFO", format, v...) }

func (l *Logger) Warnf(format string, v ...any) { l.write("WARN", format, v...) }

func (l *Logger) Errorf(format string, v ...any) { l.write("ERROR", format, v...) }

// SessionID returns the id shared by every logger in this process.
func (l *Logger) SessionID() string {
	return l.sessionID
}

// Path is the log file path, empty for writer and fallback loggers.
func (l *Logger) Path() string {
	return l.logPath
}

// Close closes the log file. Safe to call multiple times.
func (l *Logger) Close() error {
	var err error
	l.closeOnce.Do(func() {
		if l.file != nil {
			err = l.file.Close()
		}
	})
	return err
}
