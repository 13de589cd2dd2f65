package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// Exit codes
	ExitSuccess = iota
	ExitGeneralError
)

// DefaultOutputDir is where backups land when nothing else is configured.
const DefaultOutputDir = "./backups"

// SystemDatabases are the reserved MongoDB databases that are excluded
// from listings and backups unless the user asks for them explicitly.
var SystemDatabases = []string{"admin", "config", "local"}

// Config represents the persisted tool configuration
type Config struct {
	URL    string `mapstructure:"url"`
	Output string `mapstructure:"output"`
	Zip    bool   `mapstructure:"zip"`
}

// Load reads mongovault.yaml from the config directory. A missing file is
// not an error; defaults and MONGOVAULT_* environment variables still apply.
func Load() (*Config, error) {
	configDir, err := Dir()
	if err != nil {
		return nil, err
	}

	v := viper.New()

	v.SetConfigName("mongovault")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("MONGOVAULT")
	v.AutomaticEnv()

	// Defaults register the keys so environment overrides bind.
	v.SetDefault("url", "")
	v.SetDefault("output", DefaultOutputDir)
	v.SetDefault("zip", false)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &config, nil
}

// Save persists the configuration to mongovault.yaml.
// Uses yaml.v3 directly to preserve keys added by hand.
func Save(config *Config) error {
	configDir, err := Dir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "mongovault.yaml")

	// Read existing config if it exists (to preserve any manual edits)
	var existing map[string]interface{}
	if content, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(content, &existing); err != nil {
			return fmt.Errorf("parsing existing config: %w", err)
		}
	}

	if existing == nil {
		existing = make(map[string]interface{})
	}

	if config.URL != "" {
		existing["url"] = config.URL
	}
	if config.Output != "" {
		existing["output"] = config.Output
	}
	existing["zip"] = config.Zip

	content, err := yaml.Marshal(existing)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Dir returns the config directory
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mongovault"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	return filepath.Join(home, ".config", "mongovault"), nil
}
