/*
Package config manages TOML config for typehint services.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/typehint/internal/utils"
)

const (
	appName  = "typehint"
	fileName = "config.toml"
)

// Config holds the entire config structure
type Config struct {
	Workspace WorkspaceConfig `toml:"workspace"`
	Server    ServerConfig    `toml:"server"`
	CLI       CliConfig       `toml:"cli"`
}

// WorkspaceConfig controls the cross-document search.
type WorkspaceConfig struct {
	SearchEnabled bool   `toml:"search_enabled"`
	SearchLimit   int    `toml:"search_limit"`
	Include       string `toml:"include"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxParamLength   int `toml:"max_param_length"`
	MaxDocumentBytes int `toml:"max_document_bytes"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	ShowRemaining bool `toml:"show_remaining"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. the platform config dir (XDG_CONFIG_HOME, APPDATA, ~/.config)
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.ExecutableDir()
	}
	primaryPath := utils.PlatformConfigDir(homeDir, appName)
	if utils.WritableDir(primaryPath) {
		return primaryPath, nil
	}
	// Not conventional, fallback from ~/.config if not writable
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", appName)
	if utils.WritableDir(macOSPath) {
		return macOSPath, nil
	}
	execDir, err := utils.ExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, fileName), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/typehint/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Workspace: WorkspaceConfig{
			SearchEnabled: true,
			SearchLimit:   10,
			Include:       "**/*.py",
		},
		Server: ServerConfig{
			MaxParamLength:   256,
			MaxDocumentBytes: 4 << 20,
		},
		CLI: CliConfig{
			ShowRemaining: true,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.normalize()
	return config, nil
}

// tryPartialParse keeps every section that still decodes and defaults the rest.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "workspace"); ok {
		extractWorkspaceConfig(section, &config.Workspace)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	config.normalize()
	return config, nil
}

func extractWorkspaceConfig(data map[string]any, ws *WorkspaceConfig) {
	if val, ok := utils.ExtractBool(data, "search_enabled"); ok {
		ws.SearchEnabled = val
	}
	if val, ok := utils.ExtractNumber(data, "search_limit"); ok {
		ws.SearchLimit = val
	}
	if val, ok := utils.ExtractString(data, "include"); ok {
		ws.Include = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractNumber(data, "max_param_length"); ok {
		server.MaxParamLength = val
	}
	if val, ok := utils.ExtractNumber(data, "max_document_bytes"); ok {
		server.MaxDocumentBytes = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractBool(data, "show_remaining"); ok {
		cli.ShowRemaining = val
	}
}

// normalize replaces values that cannot be used with their defaults.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Workspace.SearchLimit < 0 {
		c.Workspace.SearchLimit = 0
	}
	if c.Workspace.Include == "" {
		c.Workspace.Include = def.Workspace.Include
	}
	if c.Server.MaxParamLength <= 0 {
		c.Server.MaxParamLength = def.Server.MaxParamLength
	}
	if c.Server.MaxDocumentBytes <= 0 {
		c.Server.MaxDocumentBytes = def.Server.MaxDocumentBytes
	}
}

// RebuildConfigFile force creates a new config.toml at default
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	return utils.WriteTOMLFile(DefaultConfig(), defaultPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	if abs, err := filepath.Abs(configPath); err == nil {
		return abs
	}
	return configPath
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.WriteTOMLFile(config, configPath)
}
