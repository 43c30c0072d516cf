// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/segfield/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names drawn by the form.
const (
	StyleDefault          = "Default"
	StyleLabel            = "Label"
	StyleLabelFocused     = "Label.focused"
	StyleField            = "Field"
	StyleFieldFocused     = "Field.focused"
	StyleHint             = "Hint"
	StyleClearIcon        = "ClearIcon"
	StyleStatusBar        = "StatusBar"
	StyleStatusBarMessage = "StatusBarMessage"
)

// Theme is a named set of tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the style for name, falling back to the part before the
// first dot and then to Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	// 1. Try exact name
	if style, ok := t.Styles[name]; ok {
		return style
	}

	// 2. Try base name (part before first dot)
	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			return style
		}
	}

	// 3. Return "Default" style
	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	// 4. Absolute fallback
	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// FormDark is the built-in theme.
var FormDark Theme

func init() {
	background := tcell.NewHexColor(0x2a2f38)
	foreground := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x5c6370)
	field := tcell.NewHexColor(0x323844)
	yellow := tcell.NewHexColor(0xe5c07b)
	blue := tcell.NewHexColor(0x61afef)
	red := tcell.NewHexColor(0xe06c75)

	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(foreground)

	FormDark = Theme{
		Name:   "Form Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:          baseStyle,
			StyleLabel:            baseStyle.Foreground(muted),
			StyleLabelFocused:     baseStyle.Foreground(blue).Bold(true),
			StyleField:            tcell.StyleDefault.Background(field).Foreground(foreground),
			StyleFieldFocused:     tcell.StyleDefault.Background(field).Foreground(yellow),
			StyleHint:             tcell.StyleDefault.Background(field).Foreground(muted).Italic(true),
			StyleClearIcon:        tcell.StyleDefault.Background(field).Foreground(red),
			StyleStatusBar:        tcell.StyleDefault.Background(background).Foreground(foreground),
			StyleStatusBarMessage: tcell.StyleDefault.Background(background).Foreground(foreground).Bold(true),
		},
	}
}
