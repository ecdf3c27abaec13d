package config

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/ajramos/promptvault/internal/kv"
)

// SettingsKey is the synced-partition key the preference blob lives under.
const SettingsKey = "settings"

// Manager owns the settings collection on the synced partition. Reads
// always yield a complete Settings value: stored fields overlay the
// defaults, and a malformed blob degrades to pure defaults rather than
// failing.
type Manager struct {
	synced *kv.Store
}

// NewManager creates a settings manager over the synced partition.
func NewManager(synced *kv.Store) *Manager {
	return &Manager{synced: synced}
}

// Init ensures the settings key exists, writing the defaults on a fresh
// install. It reports whether this was the first run.
func (m *Manager) Init(ctx context.Context) (freshInstall bool, err error) {
	if m == nil || m.synced == nil {
		return false, fmt.Errorf("settings store not available")
	}

	m.synced.Lock()
	defer m.synced.Unlock()

	_, found, err := m.synced.Get(ctx, SettingsKey)
	if err != nil {
		return false, err
	}
	if found {
		return false, nil
	}
	if err := m.writeLocked(ctx, DefaultSettings()); err != nil {
		return false, err
	}
	return true, nil
}

// Load returns the current settings, merged over the defaults.
func (m *Manager) Load(ctx context.Context) Settings {
	defaults := DefaultSettings()
	if m == nil || m.synced == nil {
		return defaults
	}

	raw, found, err := m.synced.Get(ctx, SettingsKey)
	if err != nil || !found {
		return defaults
	}

	// Unmarshal over the defaults so absent fields keep their default
	// values. A malformed blob is logged and ignored.
	merged := defaults
	if err := json.Unmarshal(raw, &merged); err != nil {
		log.Printf("settings: ignoring malformed blob: %v", err)
		return defaults
	}
	return merged
}

// Save overlays the patch on the current settings and persists the whole
// blob. Fields the patch does not mention are untouched.
func (m *Manager) Save(ctx context.Context, patch SettingsPatch) error {
	if m == nil || m.synced == nil {
		return fmt.Errorf("settings store not available")
	}

	m.synced.Lock()
	defer m.synced.Unlock()

	return m.writeLocked(ctx, patch.Apply(m.loadLocked(ctx)))
}

// Import replaces the settings wholesale with an exported blob after
// checking it parses. Used by the data import path.
func (m *Manager) Import(ctx context.Context, raw json.RawMessage) error {
	if m == nil || m.synced == nil {
		return fmt.Errorf("settings store not available")
	}

	var s Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		return fmt.Errorf("invalid settings payload: %w", err)
	}

	m.synced.Lock()
	defer m.synced.Unlock()

	return m.synced.Set(ctx, SettingsKey, raw)
}

// loadLocked is Load without taking the partition lock; the caller holds it.
func (m *Manager) loadLocked(ctx context.Context) Settings {
	defaults := DefaultSettings()
	raw, found, err := m.synced.Get(ctx, SettingsKey)
	if err != nil || !found {
		return defaults
	}
	merged := defaults
	if err := json.Unmarshal(raw, &merged); err != nil {
		return defaults
	}
	return merged
}

func (m *Manager) writeLocked(ctx context.Context, s Settings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return m.synced.Set(ctx, SettingsKey, raw)
}
