// internal/input/action.go
package input

// Action represents an operation on the form or its focused field.
type Action int

// Define the set of possible form actions.
const (
	// --- Meta Actions ---
	ActionUnknown Action = iota // Default/invalid action
	ActionQuit

	// --- Focus ---
	ActionFocusNext
	ActionFocusPrev

	// --- Caret Movement ---
	ActionMoveLeft
	ActionMoveRight
	ActionMoveHome
	ActionMoveEnd

	// --- Text Manipulation ---
	ActionInsertRune         // Requires Rune argument
	ActionDeleteCharForward  // Delete key
	ActionDeleteCharBackward // Backspace key
	ActionClear              // The clear icon
	ActionPaste
	ActionCopyClean // Copy the clean value of the focused field
)

var actionNames = map[Action]string{
	ActionUnknown:            "unknown",
	ActionQuit:               "quit",
	ActionFocusNext:          "focus-next",
	ActionFocusPrev:          "focus-prev",
	ActionMoveLeft:           "move-left",
	ActionMoveRight:          "move-right",
	ActionMoveHome:           "move-home",
	ActionMoveEnd:            "move-end",
	ActionInsertRune:         "insert-rune",
	ActionDeleteCharForward:  "delete-forward",
	ActionDeleteCharBackward: "delete-backward",
	ActionClear:              "clear",
	ActionPaste:              "paste",
	ActionCopyClean:          "copy-clean",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionInsertRune
}
