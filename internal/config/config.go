package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// AIConfig holds all AI-provider-related configuration
type AIConfig struct {
	Provider    string  `json:"provider"` // openai, ollama, bedrock
	Model       string  `json:"model"`
	Endpoint    string  `json:"endpoint"`
	Region      string  `json:"region"` // For AWS Bedrock
	APIKey      string  `json:"api_key"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	// Timeout as a duration string; empty means no client timeout so the
	// caller's context governs cancellation.
	Timeout string `json:"timeout"`
}

// Config holds all configuration for the prompt vault application
type Config struct {
	// DataDir holds the storage partitions (synced.db, local.db)
	DataDir string `json:"data_dir"`

	// AI provider configuration
	AI AIConfig `json:"ai"`

	// Logging
	LogFile string `json:"log_file"`
}

// DefaultConfig returns a configuration with defaults applied
func DefaultConfig() *Config {
	return &Config{
		DataDir: DefaultDataDir(),
		AI:      DefaultAIConfig(),
		LogFile: "",
	}
}

// DefaultAIConfig returns default AI provider configuration
func DefaultAIConfig() AIConfig {
	return AIConfig{
		Provider:    "openai",
		Model:       "llama-3.3-70b-versatile",
		Endpoint:    "https://api.groq.com/openai/v1/chat/completions",
		APIKey:      "",
		Temperature: 0.7,
		MaxTokens:   2048,
		Timeout:     "",
	}
}

// LoadConfig loads configuration from a file, falling back to defaults
// for anything the file does not set. A missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		}
	}

	return cfg, nil
}

// DefaultConfigPath returns the default configuration file path
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "promptvault", "config.json")
}

// DefaultDataDir returns the default storage directory path
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "promptvault", "data")
}

// DefaultLogDir returns the default log directory path
func DefaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "promptvault")
}

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetAITimeout returns the parsed provider timeout; zero means no timeout.
func (c *Config) GetAITimeout() time.Duration {
	if c.AI.Timeout != "" {
		if d, err := time.ParseDuration(c.AI.Timeout); err == nil {
			return d
		}
	}
	return 0
}
