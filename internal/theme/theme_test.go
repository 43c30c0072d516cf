package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStyleFallback(t *testing.T) {
	th := &Theme{
		Name: "t",
		Styles: map[string]tcell.Style{
			StyleDefault: tcell.StyleDefault.Foreground(tcell.ColorWhite),
			StyleLabel:   tcell.StyleDefault.Foreground(tcell.ColorGray),
		},
	}

	assert.Equal(t, th.Styles[StyleLabel], th.GetStyle(StyleLabelFocused), "dotted name falls back to its base")
	assert.Equal(t, th.Styles[StyleDefault], th.GetStyle("Missing"))
	assert.Equal(t, tcell.StyleDefault, (&Theme{}).GetStyle("Missing"))
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    tcell.Color
		wantErr bool
	}{
		{in: "#ff8800", want: tcell.NewHexColor(0xff8800)},
		{in: " #FF8800 ", want: tcell.NewHexColor(0xff8800)},
		{in: "red", want: tcell.ColorRed},
		{in: "reset", want: tcell.ColorReset},
		{in: "default", want: tcell.ColorDefault},
		{in: "#fff", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "notacolor", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func writeTheme(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadThemeFromFile(t *testing.T) {
	path := writeTheme(t, t.TempDir(), "light.toml", `
is_dark = false

[styles.Default]
fg = "#000000"
bg = "#ffffff"

[styles.Field]
bold = true

[styles.Hint]
fg = "nope"
`)

	th, err := LoadThemeFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "light", th.Name, "name falls back to the file name")
	assert.False(t, th.IsDark)

	base := tcell.StyleDefault.Foreground(tcell.NewHexColor(0)).Background(tcell.NewHexColor(0xffffff))
	assert.Equal(t, base, th.Styles[StyleDefault])
	assert.Equal(t, base.Bold(true), th.Styles[StyleField], "styles inherit from Default")
	assert.Equal(t, FormDark.Styles[StyleHint], th.Styles[StyleHint], "a broken style keeps the built-in one")
	assert.Equal(t, FormDark.Styles[StyleStatusBar], th.Styles[StyleStatusBar])
}

func TestLoadThemeFromFile_Layering(t *testing.T) {
	path := writeTheme(t, t.TempDir(), "accent.toml", `
name = "Accent"

[styles.field]
fg = "white"

[styles."FIELD.focused"]
underline = true

[styles.Gutter]
fg = "red"
`)

	th, err := LoadThemeFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Accent", th.Name)
	assert.True(t, th.IsDark, "is_dark defaults to the built-in theme's")

	field := FormDark.Styles[StyleDefault].Foreground(tcell.ColorWhite)
	assert.Equal(t, field, th.Styles[StyleField], "style names match regardless of case")
	assert.Equal(t, field.Underline(true), th.Styles[StyleFieldFocused], "a dotted style starts from its base")
	assert.Equal(t, FormDark.Styles[StyleLabelFocused], th.Styles[StyleLabelFocused])
	assert.Len(t, th.Styles, len(FormDark.Styles), "names the form never draws are dropped")
}

func TestLoadThemeFromFileErrors(t *testing.T) {
	_, err := LoadThemeFromFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	bad := writeTheme(t, t.TempDir(), "bad.toml", "name = ")
	_, err = LoadThemeFromFile(bad)
	require.Error(t, err)
}

func TestManager(t *testing.T) {
	m := NewManager()
	assert.Equal(t, FormDark.Name, m.Current().Name)

	dir := t.TempDir()
	writeTheme(t, dir, "a.toml", `name = "Paper"`)
	writeTheme(t, dir, "b.toml", `name = `)
	writeTheme(t, dir, "notes.txt", `ignored`)

	n, err := m.LoadThemesFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"Form Dark", "Paper"}, m.ListThemes())

	require.NoError(t, m.SetTheme("paper"))
	assert.Equal(t, "Paper", m.Current().Name)
	require.Error(t, m.SetTheme("nope"))

	n, err = m.LoadThemesFromDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Zero(t, n)

	th, err := m.LoadFile(writeTheme(t, dir, "c.toml", `name = "Night"`))
	require.NoError(t, err)
	assert.Equal(t, th, m.Current())
}
