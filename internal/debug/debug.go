package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// EnvPath names the environment variable holding the log file path. It
	// is read by the config package together with RADTUI_LOG_PATH.
	EnvPath = "RADTUI_LOG"
	// EnvLevel names the environment variable holding the log level.
	EnvLevel = "RADTUI_LOG_LEVEL"
)

var (
	mu      sync.Mutex
	logFile *os.File
	logger  = log.NewWithOptions(io.Discard, log.Options{
		Prefix:          "radicle-tui",
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
	})
)

// Init directs log output to the file at path, creating parent directories
// as needed. An empty level keeps the current level.
func Init(path, level string) error {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		return nil
	}
	if level != "" {
		lvl, err := log.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		logger.SetLevel(lvl)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	closeLocked()
	logFile = f
	logger.SetOutput(f)
	return nil
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	logger.SetOutput(w)
}

// Close closes the log file and discards further output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	err := closeLocked()
	logger.SetOutput(io.Discard)
	return err
}

func closeLocked() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Logger returns the shared structured logger.
func Logger() *log.Logger {
	return logger
}

// Log writes a formatted debug message.
func Log(format string, args ...any) {
	logger.Debugf(format, args...)
}

// Since logs msg with the time elapsed from start.
func Since(msg string, start time.Time, keyvals ...any) {
	logger.Debug(msg, append([]any{"took", time.Since(start)}, keyvals...)...)
}
