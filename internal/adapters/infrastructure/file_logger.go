package infrastructure

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"weatherlog.app/internal/ports"
)

// FileLoggerAdapter writes structured JSON log lines to an append-only file.
// It mirrors weather provider traffic when WEATHER_ENABLE_LOGGING is set.
type FileLoggerAdapter struct {
	file   *os.File
	logger *slog.Logger
}

// NewFileLoggerAdapter opens (or creates) the log file, creating parent directories as needed
func NewFileLoggerAdapter(logPath string) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, fmt.Errorf("log file path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &FileLoggerAdapter{
		file: file,
		logger: slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})),
	}, nil
}

// Debug logs a debug message to file
func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.logger.Debug(msg, toArgs(fields)...)
}

// Info logs an info message to file
func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.logger.Info(msg, toArgs(fields)...)
}

// Warn logs a warning message to file
func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.logger.Warn(msg, toArgs(fields)...)
}

// Error logs an error message to file
func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.logger.Error(msg, toArgs(fields)...)
}

// Close flushes and closes the underlying file
func (f *FileLoggerAdapter) Close() error {
	return f.file.Close()
}
