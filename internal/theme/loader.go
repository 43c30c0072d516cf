// internal/theme/loader.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/segfield/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// themeFile is the on-disk layout of a form theme.
type themeFile struct {
	Name   string               `toml:"name"`
	Dark   *bool                `toml:"is_dark"`
	Styles map[string]styleSpec `toml:"styles"`
}

// styleSpec overrides parts of a style. Nil fields are inherited.
type styleSpec struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

// formStyles lists every style the form draws, parents before children.
var formStyles = []string{
	StyleDefault,
	StyleLabel,
	StyleField,
	StyleHint,
	StyleClearIcon,
	StyleStatusBar,
	StyleStatusBarMessage,
	StyleLabelFocused,
	StyleFieldFocused,
}

// LoadThemeFromFile reads a TOML theme and layers it over FormDark.
// A style the file sets starts from its parent ("Field.focused" from
// "Field", "Field" from "Default"); styles it omits or gets wrong keep
// their FormDark look.
func LoadThemeFromFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme %s: %w", path, err)
	}
	th, err := parseTheme(data, &FormDark)
	if err != nil {
		return nil, fmt.Errorf("parsing theme %s: %w", path, err)
	}
	if th.Name == "" {
		th.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	logger.DebugTagf("theme", "Loaded theme %q from %s", th.Name, path)
	return th, nil
}

func parseTheme(data []byte, fallback *Theme) (*Theme, error) {
	var tf themeFile
	md, err := toml.Decode(string(data), &tf)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Theme %q: ignoring unknown keys %v", tf.Name, undecoded)
	}

	th := &Theme{
		Name:   tf.Name,
		IsDark: fallback.IsDark,
		Styles: make(map[string]tcell.Style, len(fallback.Styles)),
	}
	if tf.Dark != nil {
		th.IsDark = *tf.Dark
	}
	for name, style := range fallback.Styles {
		th.Styles[name] = style
	}

	specs := make(map[string]styleSpec, len(tf.Styles))
	for raw, spec := range tf.Styles {
		name, ok := formStyleName(raw)
		if !ok {
			logger.Warnf("Theme %q: the form has no style %q", tf.Name, raw)
			continue
		}
		specs[name] = spec
	}

	for _, name := range formStyles {
		spec, ok := specs[name]
		if !ok {
			continue
		}
		style, err := spec.over(parentOf(th, name))
		if err != nil {
			logger.Warnf("Theme %q: keeping built-in %s: %v", tf.Name, name, err)
			continue
		}
		th.Styles[name] = style
	}
	return th, nil
}

// formStyleName matches raw against the form's style names, ignoring case.
func formStyleName(raw string) (string, bool) {
	for _, name := range formStyles {
		if strings.EqualFold(name, strings.TrimSpace(raw)) {
			return name, true
		}
	}
	return "", false
}

func parentOf(th *Theme, name string) tcell.Style {
	if name == StyleDefault {
		return tcell.StyleDefault
	}
	if dot := strings.IndexByte(name, '.'); dot >= 0 {
		return th.GetStyle(name[:dot])
	}
	return th.GetStyle(StyleDefault)
}

func (s styleSpec) over(base tcell.Style) (tcell.Style, error) {
	style := base
	if s.Fg != nil {
		c, err := ParseColor(*s.Fg)
		if err != nil {
			return base, fmt.Errorf("fg: %w", err)
		}
		style = style.Foreground(c)
	}
	if s.Bg != nil {
		c, err := ParseColor(*s.Bg)
		if err != nil {
			return base, fmt.Errorf("bg: %w", err)
		}
		style = style.Background(c)
	}
	if s.Bold != nil {
		style = style.Bold(*s.Bold)
	}
	if s.Italic != nil {
		style = style.Italic(*s.Italic)
	}
	if s.Underline != nil {
		style = style.Underline(*s.Underline)
	}
	if s.Reverse != nil {
		style = style.Reverse(*s.Reverse)
	}
	return style, nil
}

// ParseColor converts "#rrggbb", a tcell color name ("red", "darkcyan"),
// "reset" or "default" to a tcell.Color.
func ParseColor(s string) (tcell.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "", "default":
		return tcell.ColorDefault, nil
	case "reset":
		return tcell.ColorReset, nil
	}

	if hex, ok := strings.CutPrefix(name, "#"); ok {
		if len(hex) != 6 {
			return tcell.ColorDefault, fmt.Errorf("color %q: want #rrggbb", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("color %q: %w", s, err)
		}
		return tcell.NewHexColor(int32(v)), nil
	}

	if c, ok := tcell.ColorNames[name]; ok {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
}
