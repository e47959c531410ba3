// Package logging provides config-driven categorized logging for guess.
// Logging is controlled by debug_mode - when false, every logger is a no-op
// and nothing but the game itself reaches the terminal.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot    Category = "boot"    // Config loading, startup
	CategorySession Category = "session" // Secret draw, guesses, outcomes
	CategoryInput   Category = "input"   // Line reading, loop termination
	CategoryUI      Category = "ui"      // Terminal UI lifecycle
)

// Categories lists every known category.
var Categories = []Category{CategoryBoot, CategorySession, CategoryInput, CategoryUI}

// Options mirrors config.LoggingConfig to avoid an import cycle.
type Options struct {
	DebugMode  bool
	Level      string // debug, info, warn, error
	JSONFormat bool
	File       string // empty means stderr
	Categories map[string]bool
}

var (
	mu      sync.RWMutex
	opts    Options
	root    *zap.Logger
	loggers = make(map[Category]*zap.Logger)
	closer  func() error
)

// Initialize builds the root logger from o. It is safe to call again; the
// previous logger is synced and its file closed.
func Initialize(o Options) error {
	if !o.DebugMode {
		InitializeWithCore(nil, o)
		return nil
	}

	level := zapcore.InfoLevel
	if o.Level != "" {
		parsed, err := zapcore.ParseLevel(o.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", o.Level, err)
		}
		level = parsed
	}

	var encoder zapcore.Encoder
	if o.JSONFormat {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	sink := zapcore.Lock(os.Stderr)
	var closeFn func() error
	if o.File != "" {
		if err := os.MkdirAll(filepath.Dir(o.File), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(o.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		sink = zapcore.AddSync(f)
		closeFn = f.Close
	}

	InitializeWithCore(zapcore.NewCore(encoder, sink, level), o)

	mu.Lock()
	closer = closeFn
	mu.Unlock()

	Get(CategoryBoot).Debug("logging initialized",
		zap.String("level", level.String()),
		zap.Bool("json", o.JSONFormat),
		zap.String("file", o.File))
	return nil
}

// InitializeWithCore installs core as the root. A nil core disables logging.
// Tests use it with zaptest/observer.
func InitializeWithCore(core zapcore.Core, o Options) {
	mu.Lock()
	defer mu.Unlock()

	resetLocked()
	opts = o
	if core != nil && o.DebugMode {
		root = zap.New(core)
	}
}

// IsCategoryEnabled returns whether a specific category is enabled.
// Categories not listed are enabled once debug mode is on.
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return categoryEnabledLocked(category)
}

func categoryEnabledLocked(category Category) bool {
	if !opts.DebugMode {
		return false
	}
	enabled, exists := opts.Categories[strings.ToLower(string(category))]
	if !exists {
		return true
	}
	return enabled
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if debug mode is disabled or category is disabled.
func Get(category Category) *zap.Logger {
	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l
	}

	l := zap.NewNop()
	if root != nil && categoryEnabledLocked(category) {
		l = root.Named(string(category))
	}
	loggers[category] = l
	return l
}

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func Sync() {
	mu.RLock()
	r := root
	mu.RUnlock()
	if r != nil {
		_ = r.Sync()
	}
}

// Reset flushes and drops every logger, closing the log file if any.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	resetLocked()
	opts = Options{}
}

func resetLocked() {
	if root != nil {
		_ = root.Sync()
	}
	if closer != nil {
		_ = closer()
		closer = nil
	}
	root = nil
	loggers = make(map[Category]*zap.Logger)
}
