// Package config loads the global configuration and scans directories for
// media files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mydehq/exifname/internal/types"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the global config location.
const EnvConfigPath = "EXIFNAME_CONFIG"

// DefaultPattern mirrors the classic camera-download naming scheme.
const DefaultPattern = "{y}{m}{D}_{t}_{r}.{e}"

// GetDefaults returns the built-in configuration.
func GetDefaults() types.GlobalConfig {
	return types.GlobalConfig{
		Pattern: DefaultPattern,
		Presets: map[string]string{
			"date":   "{Y}-{m}-{D}_{H}{M}{S}.{e}",
			"camera": "{y}{m}{D}_{t}_{T2}_{r}.{e}",
			"week":   "{Y}-W{W}-{a}_{f}{r}.{e}",
		},
		Formats: []string{
			"jpg", "jpeg", "heic", "heif", "png", "tif", "tiff",
			"dng", "cr2", "cr3", "nef", "arw", "raf", "orf", "rw2",
			"mp4", "mov",
		},
		Concurrency: 4,
	}
}

// GlobalPath returns the config file location, honouring EnvConfigPath.
func GlobalPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config dir: %w", err)
	}
	return filepath.Join(dir, "exifname", "config.yml"), nil
}

// Load reads the config at path on top of the defaults. A missing file
// yields the defaults.
func Load(path string) (*types.GlobalConfig, error) {
	cfg := GetDefaults()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return &cfg, nil
}

// LoadGlobal loads the config from GlobalPath.
func LoadGlobal() (*types.GlobalConfig, error) {
	path, err := GlobalPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Save writes cfg to path, creating parent directories.
func Save(path string, cfg *types.GlobalConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
