package app

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/segfield/internal/core/clipboard"
	"github.com/bethropolis/segfield/internal/event"
	"github.com/bethropolis/segfield/internal/input"
	"github.com/bethropolis/segfield/internal/logger"
)

// HandleKeyEvent applies one key to the form.
// Returns true if the event resulted in an action requiring redraw.
func (a *App) HandleKeyEvent(ev *tcell.EventKey) bool {
	a.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	actionEvent := a.inputProcessor.ProcessEvent(ev)
	if actionEvent.Action == input.ActionQuit {
		a.Quit()
		return false
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.applyLocked(actionEvent)
}

func (a *App) applyLocked(ae input.ActionEvent) bool {
	f := a.fields[a.focus]

	switch ae.Action {
	case input.ActionFocusNext:
		return a.setFocusLocked((a.focus + 1) % len(a.fields))
	case input.ActionFocusPrev:
		return a.setFocusLocked((a.focus - 1 + len(a.fields)) % len(a.fields))
	case input.ActionMoveLeft:
		return f.MoveLeft()
	case input.ActionMoveRight:
		return f.MoveRight()
	case input.ActionMoveHome:
		return f.Home()
	case input.ActionMoveEnd:
		return f.End()
	case input.ActionInsertRune:
		if !f.Insert(string(ae.Rune)) {
			logger.DebugTagf("app", "App: '%c' rejected by field '%s'", ae.Rune, f.Config().Label)
			return false
		}
		return true
	case input.ActionDeleteCharBackward:
		return f.DeleteBackward()
	case input.ActionDeleteCharForward:
		return f.DeleteForward()
	case input.ActionClear:
		if f.IsEmpty() {
			return false
		}
		f.Clear()
		return true
	case input.ActionPaste:
		text, err := a.clipboard.Read()
		if err != nil {
			if errors.Is(err, clipboard.ErrEmpty) {
				a.statusBar.SetTemporaryMessage("Nothing to paste")
			} else {
				a.statusBar.SetTemporaryMessage("Paste failed: %v", err)
			}
			return true
		}
		if !f.Insert(text) {
			a.statusBar.SetTemporaryMessage("Clipboard has nothing %s accepts", f.Config().Label)
		}
		return true
	case input.ActionCopyClean:
		clean := f.CleanText()
		if err := a.clipboard.Write(clean); err != nil {
			logger.Warnf("App: copy failed: %v", err)
			a.statusBar.SetTemporaryMessage("Copied internally, system clipboard failed")
			return true
		}
		a.statusBar.SetTemporaryMessage("Copied %q", clean)
		return true
	}
	return false
}

func (a *App) setFocusLocked(to int) bool {
	if to == a.focus {
		return false
	}
	from := a.focus
	a.focus = to
	a.eventManager.Dispatch(event.TypeFocusChanged, event.FocusChangedData{From: from, To: to})
	return true
}
