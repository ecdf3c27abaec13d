package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ajramos/promptvault/internal/bridge"
	"github.com/ajramos/promptvault/internal/config"
	"github.com/ajramos/promptvault/internal/kv"
	"github.com/ajramos/promptvault/internal/services"
	"github.com/ajramos/promptvault/internal/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// Test path resolution functions
func TestGetConfigPath_Priority(t *testing.T) {
	// Save original environment
	originalEnv := os.Getenv("PROMPTVAULT_CONFIG")
	defer func() { _ = os.Setenv("PROMPTVAULT_CONFIG", originalEnv) }()

	// Test CLI flag takes precedence
	result := getConfigPath("/custom/config.json")
	assert.Equal(t, "/custom/config.json", result)

	// Test environment variable when no flag
	_ = os.Setenv("PROMPTVAULT_CONFIG", "/env/config.json")
	result = getConfigPath("")
	assert.Equal(t, "/env/config.json", result)

	// Test default when neither flag nor env
	_ = os.Unsetenv("PROMPTVAULT_CONFIG")
	result = getConfigPath("")
	assert.Contains(t, result, "config.json")
}

func TestGetDataDir_Priority(t *testing.T) {
	// Save original environment
	originalEnv := os.Getenv("PROMPTVAULT_DATA_DIR")
	defer func() { _ = os.Setenv("PROMPTVAULT_DATA_DIR", originalEnv) }()

	// Test CLI flag takes precedence
	result := getDataDir("/custom/data", "/config/data")
	assert.Equal(t, "/custom/data", result)

	// Test environment variable when no flag
	_ = os.Setenv("PROMPTVAULT_DATA_DIR", "/env/data")
	result = getDataDir("", "/config/data")
	assert.Equal(t, "/env/data", result)

	// Test config value when no flag or env
	_ = os.Unsetenv("PROMPTVAULT_DATA_DIR")
	result = getDataDir("", "/config/data")
	assert.Equal(t, "/config/data", result)

	// Test default when nothing provided
	result = getDataDir("", "")
	assert.Contains(t, result, "data")
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "/abs/path", expandPath("/abs/path"))
	assert.Equal(t, home, expandPath("~"))
	assert.Equal(t, filepath.Join(home, "x", "y"), expandPath("~/x/y"))
}

func TestSplitTags(t *testing.T) {
	assert.Nil(t, splitTags(""))
	assert.Nil(t, splitTags("   "))
	assert.Equal(t, []string{"a", "b"}, splitTags("a,b"))
	assert.Equal(t, []string{"a", "b"}, splitTags(" a , b , "))
}

func newTestCLIHandler(t *testing.T) (*bridge.Handler, *services.PromptServiceImpl) {
	t.Helper()
	parts, err := kv.OpenPartitions(context.Background(), t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = parts.Close() })

	settings := config.NewManager(parts.Synced)
	st := store.New(parts)
	h := &bridge.Handler{
		Store:    st,
		AI:       services.NewAIService(nil, settings),
		Settings: settings,
	}
	return h, services.NewPromptService(st)
}

func TestRunCommand_AddListDelete(t *testing.T) {
	ctx := context.Background()
	h, files := newTestCLIHandler(t)

	err := runCommand(ctx, h, files, "add", []string{"--title", "T", "--text", "body", "--tags", "a,b"})
	require.NoError(t, err)

	res := h.Store.ListPrompts(ctx, "", store.ListOptions{ExcludeDefaults: true})
	require.Equal(t, 1, res.Total)
	id := res.Prompts[0].ID

	require.NoError(t, runCommand(ctx, h, files, "delete", []string{id}))
	res = h.Store.ListPrompts(ctx, "", store.ListOptions{ExcludeDefaults: true})
	assert.Zero(t, res.Total)
}

func TestRunCommand_UpdateOnlySetFlags(t *testing.T) {
	ctx := context.Background()
	h, files := newTestCLIHandler(t)

	require.NoError(t, runCommand(ctx, h, files, "add", []string{"--title", "old", "--text", "body"}))
	id := h.Store.ListPrompts(ctx, "", store.ListOptions{ExcludeDefaults: true}).Prompts[0].ID

	require.NoError(t, runCommand(ctx, h, files, "update", []string{"--title", "new", id}))

	p := h.Store.GetPromptByID(ctx, id)
	require.NotNil(t, p)
	assert.Equal(t, "new", p.Title)
	assert.Equal(t, "body", p.Text, "unset flags leave fields untouched")
}

func TestRunCommand_Errors(t *testing.T) {
	ctx := context.Background()
	h, files := newTestCLIHandler(t)

	err := runCommand(ctx, h, files, "frobnicate", nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unknown command"))

	assert.Error(t, runCommand(ctx, h, files, "get", nil))
	assert.Error(t, runCommand(ctx, h, files, "favorite", []string{"squash"}))
	assert.Error(t, runCommand(ctx, h, files, "import", []string{filepath.Join(t.TempDir(), "missing.json")}))
}
