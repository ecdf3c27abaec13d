package config

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajramos/promptvault/internal/kv"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.AI.Model)
	assert.Equal(t, "https://api.groq.com/openai/v1/chat/completions", cfg.AI.Endpoint)
	assert.Equal(t, 0.7, cfg.AI.Temperature)
	assert.Equal(t, 2048, cfg.AI.MaxTokens)
	assert.Empty(t, cfg.AI.Timeout)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().AI, cfg.AI)
}

func TestConfig_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultConfig()
	cfg.AI.Provider = "ollama"
	cfg.AI.Endpoint = "http://localhost:11434/api/generate"

	require.NoError(t, cfg.SaveConfig(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "ollama", loaded.AI.Provider)
	assert.Equal(t, "http://localhost:11434/api/generate", loaded.AI.Endpoint)
}

func TestGetAITimeout(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, time.Duration(0), cfg.GetAITimeout())

	cfg.AI.Timeout = "30s"
	assert.Equal(t, 30*time.Second, cfg.GetAITimeout())

	cfg.AI.Timeout = "garbage"
	assert.Equal(t, time.Duration(0), cfg.GetAITimeout())
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "ar", s.Language)
	assert.Equal(t, "dark", s.Theme)
	assert.True(t, s.AutoSave)
	assert.True(t, s.UseAI)
	assert.Equal(t, "Ctrl+Shift+P", s.Shortcuts.OpenPopup)
	assert.Len(t, s.Categories, 8)
}

func TestSettingsPatch_Apply(t *testing.T) {
	theme := "light"
	useAI := false

	got := SettingsPatch{Theme: &theme, UseAI: &useAI}.Apply(DefaultSettings())

	assert.Equal(t, "light", got.Theme)
	assert.False(t, got.UseAI)
	// Unmentioned fields keep their values
	assert.Equal(t, "ar", got.Language)
	assert.True(t, got.AutoSave)
}

func newTestManager(t *testing.T) (*Manager, *kv.Store) {
	t.Helper()
	synced, err := kv.Open(context.Background(), kv.PartitionSynced, filepath.Join(t.TempDir(), "synced.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = synced.Close() })
	return NewManager(synced), synced
}

func TestManager_InitFreshInstall(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	fresh, err := m.Init(ctx)
	require.NoError(t, err)
	assert.True(t, fresh)

	// Second run is not fresh
	fresh, err = m.Init(ctx)
	require.NoError(t, err)
	assert.False(t, fresh)

	assert.Equal(t, DefaultSettings(), m.Load(ctx))
}

func TestManager_LoadMergesPartialBlob(t *testing.T) {
	ctx := context.Background()
	m, synced := newTestManager(t)

	require.NoError(t, synced.Set(ctx, SettingsKey, []byte(`{"theme":"light"}`)))

	s := m.Load(ctx)
	assert.Equal(t, "light", s.Theme)
	assert.Equal(t, "ar", s.Language, "absent fields keep defaults")
	assert.True(t, s.UseAI)
}

func TestManager_LoadMalformedBlobDegradesToDefaults(t *testing.T) {
	ctx := context.Background()
	m, synced := newTestManager(t)

	require.NoError(t, synced.Set(ctx, SettingsKey, []byte(`{not json`)))

	assert.Equal(t, DefaultSettings(), m.Load(ctx))
}

func TestManager_SavePatchDoesNotClobber(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	lang := "en"
	require.NoError(t, m.Save(ctx, SettingsPatch{Language: &lang}))

	key := "sk-test"
	require.NoError(t, m.Save(ctx, SettingsPatch{APIKey: &key}))

	s := m.Load(ctx)
	assert.Equal(t, "en", s.Language)
	assert.Equal(t, "sk-test", s.APIKey)
}

func TestManager_Import(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	blob := json.RawMessage(`{"language":"en","theme":"light","useAI":false}`)
	require.NoError(t, m.Import(ctx, blob))

	s := m.Load(ctx)
	assert.Equal(t, "en", s.Language)
	assert.Equal(t, "light", s.Theme)
	assert.False(t, s.UseAI)

	assert.Error(t, m.Import(ctx, json.RawMessage(`{bad`)))
}
