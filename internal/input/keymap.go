// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps specific key events to form actions.
type Keymap map[tcell.Key]Action        // For special keys (Tab, Arrows, etc.)
type RuneKeymap map[rune]Action         // For rune bindings that should not insert
type ModKeymap map[tcell.ModMask]Keymap // For keys combined with modifiers (Alt, Shift)

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
	modKeymap  ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
		modKeymap:  make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

// loadDefaultBindings sets up the initial key mappings.
func (p *InputProcessor) loadDefaultBindings() {
	// --- Simple Keys ---
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyCtrlA] = ActionMoveHome
	p.keymap[tcell.KeyCtrlE] = ActionMoveEnd
	p.keymap[tcell.KeyUp] = ActionFocusPrev
	p.keymap[tcell.KeyDown] = ActionFocusNext
	p.keymap[tcell.KeyTab] = ActionFocusNext
	p.keymap[tcell.KeyBacktab] = ActionFocusPrev
	p.keymap[tcell.KeyEnter] = ActionFocusNext
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward // Often used for Backspace
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyCtrlU] = ActionClear
	p.keymap[tcell.KeyCtrlV] = ActionPaste
	p.keymap[tcell.KeyCtrlY] = ActionCopyClean
	p.keymap[tcell.KeyEscape] = ActionQuit
	p.keymap[tcell.KeyCtrlC] = ActionQuit

	// --- Modifier Keys ---
	shiftMap := make(Keymap)
	shiftMap[tcell.KeyTab] = ActionFocusPrev
	p.modKeymap[tcell.ModShift] = shiftMap

	altMap := make(Keymap)
	altMap[tcell.KeyBackspace] = ActionClear
	altMap[tcell.KeyBackspace2] = ActionClear
	p.modKeymap[tcell.ModAlt] = altMap
}

// Bind maps key to action, replacing any default binding.
func (p *InputProcessor) Bind(key tcell.Key, action Action) {
	p.keymap[key] = action
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	runeVal := ev.Rune()

	// Drop Ctrl if the Key already implies it (tcell.KeyCtrlV etc.)
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	// 1. Check Modifier + Key combinations
	if modKeyMap, modOk := p.modKeymap[mod]; modOk {
		if action, keyOk := modKeyMap[key]; keyOk {
			return ActionEvent{Action: action}
		}
	}

	// 2. Check simple Key mappings
	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	// 3. Runes insert unless bound; Shift is allowed for capitals.
	if key == tcell.KeyRune && (mod == tcell.ModNone || mod == tcell.ModShift) {
		if action, ok := p.runeKeymap[runeVal]; ok {
			return ActionEvent{Action: action, Rune: runeVal}
		}
		return ActionEvent{Action: ActionInsertRune, Rune: runeVal}
	}

	// 4. No mapping found
	return ActionEvent{Action: ActionUnknown}
}
