package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestInputProcessor_ProcessEvent(t *testing.T) {
	p := NewInputProcessor()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want ActionEvent
	}{
		{"digit", tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone), ActionEvent{Action: ActionInsertRune, Rune: '7'}},
		{"capital", tcell.NewEventKey(tcell.KeyRune, 'X', tcell.ModShift), ActionEvent{Action: ActionInsertRune, Rune: 'X'}},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), ActionEvent{Action: ActionUnknown}},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionEvent{Action: ActionMoveLeft}},
		{"home", tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone), ActionEvent{Action: ActionMoveHome}},
		{"end", tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone), ActionEvent{Action: ActionMoveEnd}},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ActionEvent{Action: ActionFocusNext}},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModShift), ActionEvent{Action: ActionFocusPrev}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionEvent{Action: ActionFocusNext}},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionEvent{Action: ActionFocusPrev}},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), ActionEvent{Action: ActionDeleteCharBackward}},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), ActionEvent{Action: ActionDeleteCharForward}},
		{"ctrl+v", tcell.NewEventKey(tcell.KeyCtrlV, 0, tcell.ModCtrl), ActionEvent{Action: ActionPaste}},
		{"ctrl+y", tcell.NewEventKey(tcell.KeyCtrlY, 0, tcell.ModCtrl), ActionEvent{Action: ActionCopyClean}},
		{"ctrl+u", tcell.NewEventKey(tcell.KeyCtrlU, 0, tcell.ModCtrl), ActionEvent{Action: ActionClear}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionEvent{Action: ActionQuit}},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionEvent{Action: ActionQuit}},
		{"unbound", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), ActionEvent{Action: ActionUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ProcessEvent(tt.ev))
		})
	}
}

func TestInputProcessor_Bind(t *testing.T) {
	p := NewInputProcessor()
	p.Bind(tcell.KeyF2, ActionClear)
	assert.Equal(t, ActionClear, p.ProcessEvent(tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModNone)).Action)
	assert.Equal(t, "clear", ActionClear.String())
	assert.Equal(t, "unknown", Action(99).String())
}
