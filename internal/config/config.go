// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/segfield/internal/field"
	"github.com/bethropolis/segfield/internal/logger"
	"github.com/bethropolis/segfield/internal/types"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config  `toml:"logger"` // [logger] table
	Form   FormConfig     `toml:"form"`   // Terminal form settings
	Fields []field.Config `toml:"fields"` // One [[fields]] table per input
}

// FormConfig holds settings for the terminal form host.
type FormConfig struct {
	SystemClipboard bool   `toml:"system_clipboard"`
	ThemeFile       string `toml:"theme_file"` // Empty uses the built-in theme
	StatusBarHeight int    `toml:"status_bar_height"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Form: FormConfig{
			SystemClipboard: SystemClipboard,
			StatusBarHeight: StatusBarHeight,
		},
	}
}

// DefaultFields is the form shown when the config names no fields.
func DefaultFields() []field.Config {
	card := field.DefaultConfig(types.ContentBankCard)
	card.Label = "Card"
	card.Hint = "6222 0212 3456 7890"

	id := field.DefaultConfig(types.ContentNationalID)
	id.Label = "ID"
	id.Hint = "110101 1990 0101 1234"

	phone := field.DefaultConfig(types.ContentPhone)
	phone.Label = "Phone"
	phone.Hint = "138 1234 5678"

	amount := field.DefaultConfig(types.ContentPlain)
	amount.Label = "Amount"

	return []field.Config{card, id, phone, amount}
}

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName), nil
}

// loadFromFile decodes filePath on top of cfg. A missing file is not an
// error. The undecoded keys are returned so the caller can report them once
// the logger is up.
func loadFromFile(filePath string, cfg *Config) ([]string, error) {
	_, err := os.Stat(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	var unknown []string
	for _, key := range metadata.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return unknown, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Form.StatusBarHeight <= 0 {
		c.Form.StatusBarHeight = defaults.Form.StatusBarHeight
	}

	if len(c.Fields) == 0 {
		c.Fields = DefaultFields()
	}
	for i := range c.Fields {
		f := &c.Fields[i]
		if f.Label == "" {
			f.Label = f.ContentType.String()
		}
		if f.MaxLength <= 0 {
			f.MaxLength = field.DefaultMaxLength
		}
		if f.MaxVisibleLength <= 0 {
			f.MaxVisibleLength = field.DefaultMaxVisibleLength
		}
		if f.TextSize <= 0 {
			f.TextSize = field.DefaultTextSize
		}
	}
}

// Loaded is the result of LoadConfig.
type Loaded struct {
	*Config
	Path         string   // File that was consulted, may not exist
	UnknownKeys  []string // Keys in the file that matched nothing
	FlagsApplied []string // Names of flags that overrode the file
}

// LoadConfig orchestrates loading defaults, file, applying flags, and
// validation. configFilePath may be empty to use DefaultPath; flags may be
// nil. The logger is not initialized yet, so nothing here logs.
func LoadConfig(configFilePath string, flags *Flags) (*Loaded, error) {
	cfg := NewDefaultConfig()
	res := &Loaded{Config: cfg, Path: configFilePath}

	if res.Path == "" {
		if p, err := DefaultPath(); err == nil {
			res.Path = p
		}
	}

	var loadErr error
	if res.Path != "" {
		res.UnknownKeys, loadErr = loadFromFile(res.Path, cfg)
	}

	if flags != nil {
		applied, err := flags.ApplyOverrides(cfg)
		if err != nil && loadErr == nil {
			loadErr = err
		}
		res.FlagsApplied = applied
	}

	cfg.validate()
	return res, loadErr
}
