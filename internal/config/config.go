// Package config provides configuration management for greeter.
// Configuration is loaded from ~/.config/greeter/config.yaml with sensible
// defaults when no config file is present.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config holds the greeter configuration.
type Config struct {
	Recipient string         `yaml:"recipient"`
	Schedule  ScheduleConfig `yaml:"schedule"`
}

// ScheduleConfig holds settings for the schedule command.
type ScheduleConfig struct {
	Cron string `yaml:"cron"`
}

const (
	// DefaultConfigPath is the default location for the config file.
	DefaultConfigPath = "~/.config/greeter/config.yaml"

	// DefaultRecipient is greeted when no name is given and none is configured.
	DefaultRecipient = "Dave"

	// DefaultCron fires the schedule command once an hour.
	DefaultCron = "0 * * * *"
)

var (
	globalConfig *Config
	configOnce   sync.Once
	configErr    error
)

// Load loads the configuration from the default path.
// It returns the cached config on subsequent calls.
func Load() (*Config, error) {
	configOnce.Do(func() {
		globalConfig, configErr = loadFromPath(DefaultConfigPath)
	})
	return globalConfig, configErr
}

// loadFromPath loads configuration from a specific file path.
func loadFromPath(path string) (*Config, error) {
	cfg := &Config{
		Recipient: DefaultRecipient,
		Schedule:  ScheduleConfig{Cron: DefaultCron},
	}

	data, err := os.ReadFile(expandPath(path))
	if err != nil {
		if os.IsNotExist(err) {
			// Config file doesn't exist - use defaults
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// Ensure defaults for values not specified in the config
	if cfg.Recipient == "" {
		cfg.Recipient = DefaultRecipient
	}
	if cfg.Schedule.Cron == "" {
		cfg.Schedule.Cron = DefaultCron
	}

	return cfg, nil
}

// GetRecipient returns the configured default recipient.
// This is who gets greeted when no name is passed on the command line.
func GetRecipient() string {
	cfg, err := Load()
	if err != nil || cfg == nil {
		return DefaultRecipient
	}
	return cfg.Recipient
}

// GetScheduleCron returns the configured cron expression for the schedule
// command.
func GetScheduleCron() string {
	cfg, err := Load()
	if err != nil || cfg == nil {
		return DefaultCron
	}
	return cfg.Schedule.Cron
}

// expandPath expands a leading ~ to the home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// ResetForTesting resets the global config state. Only use in tests.
func ResetForTesting() {
	configOnce = sync.Once{}
	globalConfig = nil
	configErr = nil
}
