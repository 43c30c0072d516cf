package field

import "github.com/bethropolis/segfield/internal/types"

const (
	DefaultMaxLength        = 30 // Displayed runes, separators included
	DefaultMaxVisibleLength = 50 // Caret cap after tail input and pastes
	DefaultTextSize         = 36
)

// Config describes one field. It is fixed at construction.
type Config struct {
	ContentType types.ContentType `toml:"type"`
	Label       string            `toml:"label"`
	Hint        string            `toml:"hint"`
	TextColor   string            `toml:"text_color"` // Color name or #rrggbb; empty uses the theme
	// TextSize is kept for hosts that scale glyphs; terminals ignore it.
	TextSize         int `toml:"text_size"`
	MaxLength        int `toml:"max_length"`
	MaxVisibleLength int `toml:"max_visible_length"`
}

// DefaultConfig returns a plain field with the stock limits.
func DefaultConfig(ct types.ContentType) Config {
	return Config{
		ContentType:      ct,
		TextSize:         DefaultTextSize,
		MaxLength:        DefaultMaxLength,
		MaxVisibleLength: DefaultMaxVisibleLength,
	}
}

// withDefaults fills unset limits.
func (c Config) withDefaults() Config {
	if c.MaxLength <= 0 {
		c.MaxLength = DefaultMaxLength
	}
	if c.MaxVisibleLength <= 0 {
		c.MaxVisibleLength = DefaultMaxVisibleLength
	}
	if c.TextSize <= 0 {
		c.TextSize = DefaultTextSize
	}
	return c
}
