// Package config holds the on-disk configuration for the hwident CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
)

// DefaultNamespace mirrors the WMI namespace the query layer defaults to.
const DefaultNamespace = `root\cimv2`

// Config holds the collector configuration
type Config struct {
	ClientID  string `json:"client_id"`
	Namespace string `json:"namespace"`
	LogFile   string `json:"log_file,omitempty"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		ClientID:  uuid.New().String(),
		Namespace: DefaultNamespace,
	}
}

// DefaultPath returns the platform-specific config path
func DefaultPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("ProgramData"), "Hwident", "config.json")
	case "darwin":
		return "/Library/Application Support/Hwident/config.json"
	default: // linux
		return "/etc/hwident/config.json"
	}
}

// Load reads the configuration from disk. A missing file yields the default
// configuration; an unreadable or malformed file is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultNamespace
	}
	return cfg, nil
}

// Save writes the configuration to disk
func (c *Config) Save(path string) error {
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
