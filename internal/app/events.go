package app

import (
	"github.com/bethropolis/segfield/internal/event"
	"github.com/bethropolis/segfield/internal/logger"
	"github.com/bethropolis/segfield/internal/statusbar"
)

// handleFieldChangedForStatus refreshes the status line when the focused
// field changes. It runs under mu, so it reads only the event data.
func (a *App) handleFieldChangedForStatus(e event.Event) bool {
	data, ok := e.Data.(event.FieldChangedData)
	if !ok || data.Index != a.focus {
		return false
	}
	f := a.fields[data.Index]
	a.statusBar.SetFieldInfo(statusbar.FieldInfo{
		Label:    data.Label,
		Type:     f.ContentType().String(),
		Clean:    data.Clean,
		Caret:    data.Caret,
		Length:   len([]rune(data.Text)),
		Index:    data.Index,
		Total:    len(a.fields),
		Modified: true,
	})
	return false // Not consumed
}

func (a *App) handleFieldChangedForLog(e event.Event) bool {
	if data, ok := e.Data.(event.FieldChangedData); ok {
		logger.DebugTagf("app", "App: field %d '%s' = %q (shown %q, caret %d)",
			data.Index, data.Label, data.Clean, data.Text, data.Caret)
	}
	return false
}

func (a *App) handleFocusChangedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.FocusChangedData); ok {
		logger.DebugTagf("app", "App: focus %d -> %d", data.From, data.To)
	}
	a.updateStatusBarLocked()
	return false
}
