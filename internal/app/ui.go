package app

import (
	"github.com/bethropolis/segfield/internal/logger"
	"github.com/bethropolis/segfield/internal/statusbar"
	"github.com/bethropolis/segfield/internal/tui"
)

// drawForm clears screen and redraws all components.
func (a *App) drawForm() {
	a.mu.Lock()
	views := a.viewsLocked()
	a.updateStatusBarLocked()
	a.mu.Unlock()

	activeTheme := a.themeManager.Current()
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	viewHeight := height - a.statusBarHeight

	logger.DebugTagf("draw", "drawForm: Screen Size (%d x %d), ViewHeight: %d", width, height, viewHeight)

	a.tuiManager.Clear()
	tui.DrawForm(a.tuiManager, views, activeTheme, viewHeight)
	a.statusBar.Draw(screen, width, height)
	tui.DrawCursor(a.tuiManager, views, viewHeight)
	a.tuiManager.Show()
}

func (a *App) viewsLocked() []tui.FieldView {
	views := make([]tui.FieldView, len(a.fields))
	for i, f := range a.fields {
		cfg := f.Config()
		focused := i == a.focus
		views[i] = tui.FieldView{
			Label:     cfg.Label,
			Hint:      cfg.Hint,
			Text:      f.Text(),
			Caret:     f.Caret(),
			Width:     boxWidth(cfg),
			TextColor: a.textColors[i],
			Focused:   focused,
			ClearIcon: f.ShowClearIcon(focused),
		}
	}
	return views
}

// updateStatusBarContent pushes the focused field to the status bar.
func (a *App) updateStatusBarContent() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.updateStatusBarLocked()
}

func (a *App) updateStatusBarLocked() {
	f := a.fields[a.focus]
	a.statusBar.SetFieldInfo(statusbar.FieldInfo{
		Label:    f.Config().Label,
		Type:     f.ContentType().String(),
		Clean:    f.CleanText(),
		Caret:    f.Caret(),
		Length:   len([]rune(f.Text())),
		Index:    a.focus,
		Total:    len(a.fields),
		Modified: f.IsModified(),
	})
}
