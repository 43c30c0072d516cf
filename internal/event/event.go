// internal/event/event.go
package event

import (
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Form Events
	TypeFieldChanged // Fired once per completed edit with the clean value
	TypeFocusChanged // Fired when focus moves between fields

	// Input Events
	TypeKeyPressed // Raw key press event forwarded

	// Application Lifecycle Events
	TypeAppReady // Fired when the application is fully initialized
	TypeAppQuit  // Fired just before application termination begins
)

func (t Type) String() string {
	switch t {
	case TypeFieldChanged:
		return "FieldChanged"
	case TypeFocusChanged:
		return "FocusChanged"
	case TypeKeyPressed:
		return "KeyPressed"
	case TypeAppReady:
		return "AppReady"
	case TypeAppQuit:
		return "AppQuit"
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// FieldChangedData carries the field state after an edit settled.
type FieldChangedData struct {
	Index int
	Label string
	Clean string // Separators removed
	Text  string // As displayed
	Caret int
}

// FocusChangedData names the fields focus moved between.
type FocusChangedData struct {
	From, To int
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// AppQuitData holds the clean values by field label at exit.
type AppQuitData struct {
	Values map[string]string
}

// AppReadyData reports how many fields the form holds.
type AppReadyData struct {
	Fields int
}
