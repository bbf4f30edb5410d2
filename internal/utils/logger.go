package utils

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger is a small levelled logger for resolution diagnostics. Recovered
// fetch failures must always land somewhere observable, even when the UI
// only ever shows the fallback.
type Logger struct {
	file   *os.File
	logger *log.Logger
}

// NewLogger creates a logger appending to the given file.
func NewLogger(filePath string) (*Logger, error) {
	file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return &Logger{
		file:   file,
		logger: log.New(file, "", log.LstdFlags),
	}, nil
}

// NewWriterLogger creates a logger on an arbitrary writer (stderr, a test
// buffer). Close is a no-op for these.
func NewWriterLogger(w io.Writer) *Logger {
	return &Logger{
		logger: log.New(w, "", log.LstdFlags),
	}
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	l.logger.SetPrefix("INFO: ")
	l.logger.Println(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	l.logger.SetPrefix("WARN: ")
	l.logger.Println(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	l.logger.SetPrefix("ERROR: ")
	l.logger.Println(msg)
}

// Close closes the log file, if any.
func (l *Logger) Close() {
	if l.file != nil {
		l.file.Close()
	}
}
