// ABOUTME: File-backed structured logger for the TUI
// ABOUTME: Keeps log output off the terminal while the alt screen is active

package debuglog

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// FileName is the log file created inside the config directory
const FileName = "debug.log"

var (
	mu      sync.Mutex
	logFile *os.File
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Init opens the log file under configDir. An empty configDir leaves logging disabled.
func Init(configDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if configDir == "" {
		return nil
	}
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(configDir, FileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With("component", "tui")
	return nil
}

// Close closes the log file and disables logging
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Logger returns the current logger; it discards output until Init succeeds
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Error logs err with the operation that produced it
func Error(op string, err error) {
	if err == nil {
		return
	}
	Logger().Error("Operation failed", "op", op, "error", err)
}
