package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"nbnav/internal/eventbus"
)

// ErrNotFound is returned when an explicitly requested config file does not exist
var ErrNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version    int             `toml:"version" mapstructure:"version"`
	UISettings UISettings      `toml:"ui" mapstructure:"ui"`
	Keys       KeySettings     `toml:"keys" mapstructure:"keys"`
	Kernel     KernelSettings  `toml:"kernel" mapstructure:"kernel"`
	Logging    LoggingSettings `toml:"logging" mapstructure:"logging"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	// AllowInput gates focusing the edit cell when the editor becomes active
	AllowInput        bool `toml:"allow_input" mapstructure:"allow_input"`
	ShowLineNumbers   bool `toml:"show_line_numbers" mapstructure:"show_line_numbers"`
	EditorHeight      int  `toml:"editor_height" mapstructure:"editor_height"`
	ActivationDelayMS int  `toml:"activation_delay_ms" mapstructure:"activation_delay_ms"`
	RefocusDelayMS    int  `toml:"refocus_delay_ms" mapstructure:"refocus_delay_ms"`
	RenderMarkdown    bool `toml:"render_markdown" mapstructure:"render_markdown"`
}

// KeySettings holds configurable key bindings
type KeySettings struct {
	// Submit lists extra keys treated as shift+enter; many terminals cannot report shift on enter
	Submit []string `toml:"submit" mapstructure:"submit"`
}

// KernelSettings configures the shell execution backend
type KernelSettings struct {
	Shell          []string `toml:"shell" mapstructure:"shell"`
	TimeoutSeconds int      `toml:"timeout_seconds" mapstructure:"timeout_seconds"`
	MaxConcurrent  int      `toml:"max_concurrent" mapstructure:"max_concurrent"`
}

// LoggingSettings configures the log file
type LoggingSettings struct {
	Level string `toml:"level" mapstructure:"level"`
	File  string `toml:"file" mapstructure:"file"`
}

// ActivationDelay is the wait before the edit cell takes focus on startup
func (u UISettings) ActivationDelay() time.Duration {
	return time.Duration(u.ActivationDelayMS) * time.Millisecond
}

// RefocusDelay is the wait before a submitted cell regains focus
func (u UISettings) RefocusDelay() time.Duration {
	return time.Duration(u.RefocusDelayMS) * time.Millisecond
}

// Timeout is the per-execution limit; zero means none
func (k KernelSettings) Timeout() time.Duration {
	return time.Duration(k.TimeoutSeconds) * time.Second
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns ~/.config/nbnav/config.toml, falling back to the home directory
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "nbnav", "config.toml")
}

// DefaultLogPath returns nbnav.log in the directory of DefaultPath
func DefaultLogPath() string {
	return filepath.Join(filepath.Dir(DefaultPath()), "nbnav.log")
}

// NewConfigService creates a config service rooted at path; an empty path means DefaultPath
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service path. A missing file yields
// the defaults (with environment overrides applied).
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.read(cs.filePath, false)
	if err != nil {
		return nil, err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to the service path
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path, which must exist
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	return cs.read(path, true)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
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

func (cs *configService) read(path string, mustExist bool) (*Config, error) {
	v := newViper()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if os.IsNotExist(err) {
		if mustExist {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
	} else {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.normalize()
	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")

	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("ui.allow_input", d.UISettings.AllowInput)
	v.SetDefault("ui.show_line_numbers", d.UISettings.ShowLineNumbers)
	v.SetDefault("ui.editor_height", d.UISettings.EditorHeight)
	v.SetDefault("ui.activation_delay_ms", d.UISettings.ActivationDelayMS)
	v.SetDefault("ui.refocus_delay_ms", d.UISettings.RefocusDelayMS)
	v.SetDefault("ui.render_markdown", d.UISettings.RenderMarkdown)
	v.SetDefault("keys.submit", d.Keys.Submit)
	v.SetDefault("kernel.shell", d.Kernel.Shell)
	v.SetDefault("kernel.timeout_seconds", d.Kernel.TimeoutSeconds)
	v.SetDefault("kernel.max_concurrent", d.Kernel.MaxConcurrent)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)

	// NBNAV_UI_ALLOW_INPUT=false etc.
	v.SetEnvPrefix("nbnav")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// normalize clamps values that would break the UI
func (c *Config) normalize() {
	if c.UISettings.EditorHeight < 1 {
		c.UISettings.EditorHeight = 1
	}
	if c.UISettings.ActivationDelayMS < 0 {
		c.UISettings.ActivationDelayMS = 0
	}
	if c.UISettings.RefocusDelayMS < 0 {
		c.UISettings.RefocusDelayMS = 0
	}
	if c.Kernel.MaxConcurrent < 1 {
		c.Kernel.MaxConcurrent = 1
	}
	if len(c.Kernel.Shell) == 0 {
		c.Kernel.Shell = DefaultConfig().Kernel.Shell
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UISettings: UISettings{
			AllowInput:        true,
			ShowLineNumbers:   false,
			EditorHeight:      6,
			ActivationDelayMS: 100,
			RefocusDelayMS:    10,
			RenderMarkdown:    true,
		},
		Keys: KeySettings{
			Submit: []string{"alt+enter", "ctrl+s"},
		},
		Kernel: KernelSettings{
			Shell:          []string{"sh", "-c"},
			TimeoutSeconds: 30,
			MaxConcurrent:  1,
		},
		Logging: LoggingSettings{
			Level: "info",
			File:  DefaultLogPath(),
		},
	}
}
