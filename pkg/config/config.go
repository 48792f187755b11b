// Package config provides configuration management for dmenu-desktop.
// It handles loading, merging, and accessing configuration from default and user config files.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/lvim-tech/dmenu-desktop/pkg/logging"
	"github.com/lvim-tech/dmenu-desktop/pkg/utils"
)

//go:embed default.toml
var defaultConfigData string

// Config is the merged configuration
type Config struct {
	Selector      string                    `toml:"selector"`
	Selectors     map[string]map[string]any `toml:"selectors"`
	Directories   []string                  `toml:"directories"`
	Exclude       []string                  `toml:"exclude"`
	Shell         string                    `toml:"shell"`
	Log           logging.Config            `toml:"log"`
	Notifications utils.NotificationConfig  `toml:"notifications"`
}

// ConfigFile is read from a user or system file; nil fields are unset
type ConfigFile struct {
	Selector      *string                   `toml:"selector"`
	Selectors     map[string]map[string]any `toml:"selectors"`
	Directories   *[]string                 `toml:"directories"`
	Exclude       *[]string                 `toml:"exclude"`
	Shell         *string                   `toml:"shell"`
	Log           LogConfigFile             `toml:"log"`
	Notifications NotificationConfigFile    `toml:"notifications"`
}

// LogConfigFile is the optional [log] section
type LogConfigFile struct {
	Level  *string `toml:"level"`
	Format *string `toml:"format"`
}

// NotificationConfigFile is the optional [notifications] section
type NotificationConfigFile struct {
	Enabled *bool   `toml:"enabled"`
	Tool    *string `toml:"tool"`
	Timeout *int    `toml:"timeout"`
}

// GetUserConfigPath returns the path of the user config
func GetUserConfigPath() string {
	return filepath.Join(utils.GetConfigDir(), "dmenu-desktop", "config.toml")
}

// GetSystemConfigPath returns the path of the system config
func GetSystemConfigPath() string {
	return "/etc/dmenu-desktop/config.toml"
}

// Load merges the embedded defaults with a config file. An explicit path
// must load. Otherwise the user config is tried, then the system config;
// a broken file only produces a warning and the defaults are used.
func Load(path string) (*Config, error) {
	defaultCfg, err := loadDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	if path != "" {
		fileCfg, err := loadConfigFromFile(utils.ExpandHomeDir(path))
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		return mergeConfigs(defaultCfg, fileCfg), nil
	}

	for _, candidate := range []string{GetUserConfigPath(), GetSystemConfigPath()} {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}

		fileCfg, err := loadConfigFromFile(candidate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load config %s: %v\n", candidate, err)
			fmt.Fprintf(os.Stderr, "Using default configuration\n")
			return defaultCfg, nil
		}
		return mergeConfigs(defaultCfg, fileCfg), nil
	}

	return defaultCfg, nil
}

// loadDefaultConfig decodes the embedded default config
func loadDefaultConfig() (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(defaultConfigData, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadConfigFromFile decodes a config file and rejects unknown keys
func loadConfigFromFile(path string) (*ConfigFile, error) {
	var cfg ConfigFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, err
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
	}

	return &cfg, nil
}

// mergeConfigs merges a file config over the defaults
func mergeConfigs(defaultCfg *Config, fileCfg *ConfigFile) *Config {
	merged := *defaultCfg

	if fileCfg.Selector != nil && *fileCfg.Selector != "" {
		merged.Selector = *fileCfg.Selector
	}
	if fileCfg.Shell != nil && *fileCfg.Shell != "" {
		merged.Shell = *fileCfg.Shell
	}
	if fileCfg.Directories != nil {
		merged.Directories = *fileCfg.Directories
	}
	if fileCfg.Exclude != nil {
		merged.Exclude = *fileCfg.Exclude
	}

	if len(fileCfg.Selectors) > 0 {
		selectors := make(map[string]map[string]any, len(defaultCfg.Selectors)+len(fileCfg.Selectors))
		for name, table := range defaultCfg.Selectors {
			selectors[name] = table
		}
		for name, table := range fileCfg.Selectors {
			selectors[name] = table
		}
		merged.Selectors = selectors
	}

	if fileCfg.Log.Level != nil {
		merged.Log.Level = *fileCfg.Log.Level
	}
	if fileCfg.Log.Format != nil {
		merged.Log.Format = *fileCfg.Log.Format
	}

	if fileCfg.Notifications.Enabled != nil {
		merged.Notifications.Enabled = *fileCfg.Notifications.Enabled
	}
	if fileCfg.Notifications.Tool != nil {
		merged.Notifications.Tool = *fileCfg.Notifications.Tool
	}
	if fileCfg.Notifications.Timeout != nil {
		merged.Notifications.Timeout = *fileCfg.Notifications.Timeout
	}

	return &merged
}

// GetDirectories returns the desktop file directories with ~ expanded
func (c *Config) GetDirectories() []string {
	dirs := c.Directories
	if len(dirs) == 0 {
		return utils.DefaultDesktopDirs()
	}

	expanded := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		expanded = append(expanded, utils.ExpandPath(dir))
	}
	return expanded
}

// GetSelector returns the configured selector name
func (c *Config) GetSelector() string {
	if c.Selector == "" {
		return "dmenu"
	}
	return c.Selector
}

// InitUserConfig copies the default config to the user config directory
func InitUserConfig() error {
	userConfigPath := GetUserConfigPath()
	userConfigDir := filepath.Dir(userConfigPath)

	if _, err := os.Stat(userConfigPath); err == nil {
		return fmt.Errorf("config already exists: %s", userConfigPath)
	}

	if err := os.MkdirAll(userConfigDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(userConfigPath, []byte(defaultConfigData), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetDefaultConfigContent returns the embedded default config
func GetDefaultConfigContent() string {
	return defaultConfigData
}
