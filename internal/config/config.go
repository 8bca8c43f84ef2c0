package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"m3search/internal/domain"
)

// MaxResultCount bounds the placeholder result list
const MaxResultCount = 1000

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version     int        `toml:"version"`
	Title       string     `toml:"title"`
	Prompt      string     `toml:"prompt"`
	Tabs        []string   `toml:"tabs"`
	ResultCount int        `toml:"result_count"`
	UISettings  UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AltScreen   bool `toml:"alt_screen"`
	ShowHelpBar bool `toml:"show_help_bar"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "m3search", "config.toml")
}

// NewConfigService creates a config service backed by the default path
func NewConfigService() ConfigService {
	return NewConfigServiceAt(DefaultPath())
}

// NewConfigServiceAt creates a config service backed by path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, returning defaults if the file doesn't exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unset keys keep their defaults
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that the configuration can drive the landing screen
func (c *Config) Validate() error {
	if len(c.Tabs) == 0 {
		return fmt.Errorf("%w: at least one tab is required", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.Tabs))
	for _, tab := range c.Tabs {
		if tab == "" {
			return fmt.Errorf("%w: empty tab name", ErrInvalidConfig)
		}
		if seen[tab] {
			return fmt.Errorf("%w: duplicate tab %q", ErrInvalidConfig, tab)
		}
		seen[tab] = true
	}

	// The screen always opens on the default tab
	if !seen[domain.DefaultTab] {
		return fmt.Errorf("%w: tabs must include %q", ErrInvalidConfig, domain.DefaultTab)
	}

	if c.ResultCount < 0 || c.ResultCount > MaxResultCount {
		return fmt.Errorf("%w: result_count must be between 0 and %d", ErrInvalidConfig, MaxResultCount)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:     1,
		Title:       "People",
		Prompt:      "Search for an Associate",
		Tabs:        []string{domain.TabRecent, domain.TabFollowed},
		ResultCount: 20,
		UISettings: UISettings{
			AltScreen:   true,
			ShowHelpBar: true,
		},
	}
}
