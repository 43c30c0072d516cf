// internal/app/app.go
package app

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/segfield/internal/config"
	"github.com/bethropolis/segfield/internal/core/clipboard"
	"github.com/bethropolis/segfield/internal/event"
	"github.com/bethropolis/segfield/internal/field"
	"github.com/bethropolis/segfield/internal/input"
	"github.com/bethropolis/segfield/internal/logger"
	"github.com/bethropolis/segfield/internal/statusbar"
	"github.com/bethropolis/segfield/internal/theme"
	"github.com/bethropolis/segfield/internal/tui"
)

// Options are the collaborators NewApp would otherwise build itself.
type Options struct {
	Screen    tcell.Screen       // nil opens the real terminal
	Clipboard *clipboard.Manager // nil follows Form.SystemClipboard
	ThemesDir string             // Extra themes to load, may be empty
}

// Value is one field's result.
type Value struct {
	Label string
	Clean string
}

// App hosts a form of segmented fields in the terminal.
type App struct {
	tuiManager     *tui.TUI
	statusBar      *statusbar.StatusBar
	eventManager   *event.Manager
	inputProcessor *input.InputProcessor
	themeManager   *theme.Manager
	clipboard      *clipboard.Manager

	// mu guards the fields and focus; an edit and its listener finish
	// before the next key or redraw observes the form.
	mu         sync.Mutex
	fields     []*field.Field
	textColors []tcell.Color
	focus      int

	statusBarHeight int

	// Channels managed by the App
	quit          chan struct{}
	quitOnce      sync.Once
	redrawRequest chan struct{}
}

// NewApp creates and initializes a new application instance.
func NewApp(cfg *config.Config, opts Options) (*App, error) {
	if cfg == nil {
		return nil, errors.New("app: nil config")
	}
	if len(cfg.Fields) == 0 {
		return nil, errors.New("app: no fields configured")
	}

	// --- Theme ---
	themeManager := theme.NewManager()
	if opts.ThemesDir != "" {
		if _, err := themeManager.LoadThemesFromDir(opts.ThemesDir); err != nil {
			logger.Warnf("App: %v", err)
		}
	}
	if cfg.Form.ThemeFile != "" {
		if _, err := themeManager.LoadFile(cfg.Form.ThemeFile); err != nil {
			logger.Warnf("App: keeping theme '%s': %v", themeManager.Current().Name, err)
		}
	}
	activeTheme := themeManager.Current()

	// --- Create Core Components ---
	var (
		tuiManager *tui.TUI
		err        error
	)
	if opts.Screen != nil {
		tuiManager, err = tui.NewWithScreen(opts.Screen, activeTheme.GetStyle(theme.StyleDefault))
	} else {
		tuiManager, err = tui.New(activeTheme.GetStyle(theme.StyleDefault))
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	clip := opts.Clipboard
	if clip == nil {
		var backend clipboard.Backend
		if cfg.Form.SystemClipboard {
			backend = clipboard.System()
			if backend == nil {
				logger.Warnf("App: system clipboard unavailable, using internal clipboard")
			}
		}
		clip = clipboard.NewManager(backend)
	}

	sbConfig := statusbar.DefaultConfig()
	sbConfig.MessageTimeout = config.MessageTimeout
	statusBar := statusbar.New(sbConfig)
	statusBar.SetStyles(activeTheme.GetStyle(theme.StyleStatusBar), activeTheme.GetStyle(theme.StyleStatusBarMessage))

	a := &App{
		tuiManager:      tuiManager,
		statusBar:       statusBar,
		eventManager:    event.NewManager(),
		inputProcessor:  input.NewInputProcessor(),
		themeManager:    themeManager,
		clipboard:       clip,
		statusBarHeight: cfg.Form.StatusBarHeight,
		quit:            make(chan struct{}),
		redrawRequest:   make(chan struct{}, 1),
	}

	// --- Fields ---
	for i, fc := range cfg.Fields {
		f := field.New(fc)
		index := i
		f.OnChange(func(clean string) { a.fieldChanged(index, clean) })
		a.fields = append(a.fields, f)

		color := tcell.ColorDefault
		if fc.TextColor != "" {
			if c, err := theme.ParseColor(fc.TextColor); err != nil {
				logger.Warnf("App: field '%s': %v", fc.Label, err)
			} else {
				color = c
			}
		}
		a.textColors = append(a.textColors, color)
	}

	// --- Subscribe App level handlers ---
	a.eventManager.Subscribe(event.TypeFieldChanged, a.handleFieldChangedForStatus)
	a.eventManager.Subscribe(event.TypeFieldChanged, a.handleFieldChangedForLog)
	a.eventManager.Subscribe(event.TypeFocusChanged, a.handleFocusChangedForStatus)

	a.updateStatusBarContent()
	logger.Infof("App: form ready with %d field(s), theme '%s', system clipboard %v",
		len(a.fields), activeTheme.Name, clip.UsesSystem())
	return a, nil
}

// Events exposes the event bus so callers can observe the form.
func (a *App) Events() *event.Manager {
	return a.eventManager
}

// Values returns every field's label and clean text, in form order.
func (a *App) Values() []Value {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.valuesLocked()
}

func (a *App) valuesLocked() []Value {
	values := make([]Value, len(a.fields))
	for i, f := range a.fields {
		values[i] = Value{Label: f.Config().Label, Clean: f.CleanText()}
	}
	return values
}

// Quit asks Run to return. Safe to call more than once.
func (a *App) Quit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// Run starts the application's main event and drawing loops.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.eventLoop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{Fields: len(a.fields)})
	a.statusBar.SetTemporaryMessage("Tab next | Ctrl+V paste | Ctrl+Y copy | Ctrl+U clear | Esc quit")
	a.requestRedraw()

	// --- Main Drawing Loop ---
	for {
		select {
		case <-a.quit:
			values := make(map[string]string)
			for _, v := range a.Values() {
				values[v.Label] = v.Clean
			}
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{Values: values})
			logger.Infof("Exiting application.")
			return nil
		case <-a.redrawRequest:
			a.drawForm()
		}
	}
}

// eventLoop handles TUI events, delegating key events to HandleKeyEvent.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false

		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.GetScreen().Sync()
			needsRedraw = true
		case *tcell.EventKey:
			needsRedraw = a.HandleKeyEvent(eventData)
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}

// fieldChanged is every field's change listener. It runs under mu.
func (a *App) fieldChanged(index int, clean string) {
	f := a.fields[index]
	a.eventManager.Dispatch(event.TypeFieldChanged, event.FieldChangedData{
		Index: index,
		Label: f.Config().Label,
		Clean: clean,
		Text:  f.Text(),
		Caret: f.Caret(),
	})
}

// boxWidth fits MaxLength runes or the hint, plus a cell for the caret.
func boxWidth(cfg field.Config) int {
	w := cfg.MaxLength
	if hw := uniseg.StringWidth(cfg.Hint); hw > w {
		w = hw
	}
	return w + 1
}
