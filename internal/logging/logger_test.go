package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDisabledByDefault(t *testing.T) {
	t.Cleanup(Reset)
	require.NoError(t, Initialize(Options{}))

	for _, cat := range Categories {
		assert.False(t, IsCategoryEnabled(cat))
		assert.False(t, Get(cat).Core().Enabled(zapcore.ErrorLevel), "category %s should be no-op", cat)
	}
}

func TestCategoryFilter(t *testing.T) {
	t.Cleanup(Reset)
	core, logs := observer.New(zapcore.DebugLevel)
	InitializeWithCore(core, Options{
		DebugMode:  true,
		Categories: map[string]bool{"input": false, "session": true},
	})

	assert.True(t, IsCategoryEnabled(CategorySession))
	assert.False(t, IsCategoryEnabled(CategoryInput))
	assert.True(t, IsCategoryEnabled(CategoryUI), "unlisted categories default to enabled")

	Get(CategorySession).Info("guess")
	Get(CategoryInput).Info("dropped")
	Get(CategoryUI).Debug("tui started")

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, "session", entries[0].LoggerName)
	assert.Equal(t, "guess", entries[0].Message)
	assert.Equal(t, "ui", entries[1].LoggerName)
}

func TestGetIsCached(t *testing.T) {
	t.Cleanup(Reset)
	core, _ := observer.New(zapcore.InfoLevel)
	InitializeWithCore(core, Options{DebugMode: true})

	assert.Same(t, Get(CategoryBoot), Get(CategoryBoot))
}

func TestInitializeWritesFile(t *testing.T) {
	t.Cleanup(Reset)
	path := filepath.Join(t.TempDir(), "logs", "guess.log")

	require.NoError(t, Initialize(Options{
		DebugMode:  true,
		Level:      "debug",
		JSONFormat: true,
		File:       path,
	}))
	Get(CategorySession).Info("session won")
	Reset()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.Contains(text, `"msg":"session won"`), "log file missing entry: %s", text)
	assert.True(t, strings.Contains(text, `"logger":"session"`), "log file missing logger name: %s", text)
}

func TestInitializeRejectsBadLevel(t *testing.T) {
	t.Cleanup(Reset)
	err := Initialize(Options{DebugMode: true, Level: "loud"})
	assert.Error(t, err)
}

func TestLevelGating(t *testing.T) {
	t.Cleanup(Reset)
	path := filepath.Join(t.TempDir(), "guess.log")
	require.NoError(t, Initialize(Options{DebugMode: true, Level: "warn", File: path}))

	Get(CategoryBoot).Info("hidden")
	Get(CategoryBoot).Warn("shown")
	Reset()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}
