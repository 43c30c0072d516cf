// internal/tui/drawing.go
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/segfield/internal/logger"
	"github.com/bethropolis/segfield/internal/theme"
)

// ClearIcon is drawn after a focused, non-empty field.
const ClearIcon = '×'

// FieldView is the drawable state of one field.
type FieldView struct {
	Label     string
	Hint      string
	Text      string // As displayed, separators included
	Caret     int    // Rune index into Text
	Width     int    // Box width in cells
	TextColor tcell.Color
	Focused   bool
	ClearIcon bool
}

// Row spacing between fields.
const rowStride = 2

// FieldRow returns the screen row of field i.
func FieldRow(i int) int {
	return i * rowStride
}

// labelColumnWidth is the widest label plus ": ".
func labelColumnWidth(views []FieldView) int {
	widest := 0
	for _, v := range views {
		if w := uniseg.StringWidth(v.Label); w > widest {
			widest = w
		}
	}
	return widest + 2
}

func calculateVisualColumn(text string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	visualWidth := 0
	currentRuneIndex := 0

	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		if currentRuneIndex >= runeIndex {
			break
		}
		visualWidth += gr.Width()
		currentRuneIndex += len(gr.Runes())
	}
	return visualWidth
}

// scrollOffset keeps the caret inside a box of boxWidth cells.
func scrollOffset(v FieldView, boxWidth int) int {
	caretCol := calculateVisualColumn(v.Text, v.Caret)
	if caretCol < boxWidth {
		return 0
	}
	return caretCol - boxWidth + 1
}

// boxGeometry returns where field boxes start and how wide they can be on a
// screen of the given width.
func boxGeometry(views []FieldView, v FieldView, width int) (x, boxWidth int) {
	x = labelColumnWidth(views)
	boxWidth = v.Width
	if room := width - x - 2; boxWidth > room { // Two cells for the clear icon
		boxWidth = room
	}
	return x, boxWidth
}

// drawString draws s from x with style, clipped to maxX. Returns the next x.
func drawString(s tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := gr.Width()
		if x+w > maxX {
			break
		}
		runes := gr.Runes()
		s.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
	return x
}

// DrawForm draws every field into the top viewHeight rows.
func DrawForm(tuiManager *TUI, views []FieldView, activeTheme *theme.Theme, viewHeight int) {
	if activeTheme == nil {
		logger.Warnf("DrawForm called with nil theme, using built-in.")
		activeTheme = &theme.FormDark
	}
	defaultStyle := activeTheme.GetStyle(theme.StyleDefault)
	hintStyle := activeTheme.GetStyle(theme.StyleHint)
	clearStyle := activeTheme.GetStyle(theme.StyleClearIcon)

	screen := tuiManager.screen
	width, _ := tuiManager.Size()
	if viewHeight <= 0 || width <= 0 {
		return
	}

	for y := 0; y < viewHeight; y++ {
		for x := 0; x < width; x++ {
			screen.SetContent(x, y, ' ', nil, defaultStyle)
		}
	}

	for i, v := range views {
		y := FieldRow(i)
		if y >= viewHeight {
			break
		}

		labelStyle := activeTheme.GetStyle(theme.StyleLabel)
		fieldStyle := activeTheme.GetStyle(theme.StyleField)
		if v.Focused {
			labelStyle = activeTheme.GetStyle(theme.StyleLabelFocused)
			fieldStyle = activeTheme.GetStyle(theme.StyleFieldFocused)
		}
		if v.TextColor != tcell.ColorDefault {
			fieldStyle = fieldStyle.Foreground(v.TextColor)
		}

		boxX, boxWidth := boxGeometry(views, v, width)
		drawString(screen, 0, y, boxX, v.Label+":", labelStyle)
		if boxWidth <= 0 {
			continue
		}

		for x := boxX; x < boxX+boxWidth; x++ {
			screen.SetContent(x, y, ' ', nil, fieldStyle)
		}

		if v.Text == "" {
			drawString(screen, boxX, y, boxX+boxWidth, v.Hint, hintStyle)
		} else {
			viewX := scrollOffset(v, boxWidth)
			visualX := 0
			gr := uniseg.NewGraphemes(v.Text)
			for gr.Next() {
				w := gr.Width()
				screenX := boxX + visualX - viewX
				if visualX >= viewX && screenX+w <= boxX+boxWidth {
					runes := gr.Runes()
					screen.SetContent(screenX, y, runes[0], runes[1:], fieldStyle)
				}
				visualX += w
				if visualX-viewX >= boxWidth {
					break
				}
			}
		}

		if v.ClearIcon {
			screen.SetContent(boxX+boxWidth+1, y, ClearIcon, nil, clearStyle)
		}
	}
}

// DrawCursor shows the terminal cursor at the focused field's caret, or
// hides it when no field is focused or it falls outside the view.
func DrawCursor(tuiManager *TUI, views []FieldView, viewHeight int) {
	width, _ := tuiManager.Size()
	for i, v := range views {
		if !v.Focused {
			continue
		}
		y := FieldRow(i)
		boxX, boxWidth := boxGeometry(views, v, width)
		if y >= viewHeight || boxWidth <= 0 {
			break
		}
		screenX := boxX + calculateVisualColumn(v.Text, v.Caret) - scrollOffset(v, boxWidth)
		tuiManager.screen.ShowCursor(screenX, y)
		return
	}
	tuiManager.screen.HideCursor()
}
