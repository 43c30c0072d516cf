// Package clipboard is the form's paste source and copy sink.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/bethropolis/segfield/internal/logger"
)

// ErrEmpty is returned by Read when nothing was ever copied.
var ErrEmpty = errors.New("clipboard is empty")

// Backend is an external clipboard.
type Backend interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemBackend struct{}

func (systemBackend) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemBackend) WriteAll(text string) error { return clipboard.WriteAll(text) }

// System returns the OS clipboard, or nil when no clipboard utility is
// available on this machine.
func System() Backend {
	if clipboard.Unsupported {
		return nil
	}
	return systemBackend{}
}

// Manager handles clipboard operations. Text always lands in the internal
// clipboard too, so a failing backend degrades to in-process copy/paste.
type Manager struct {
	backend   Backend
	clipboard []byte
	filled    bool
}

// NewManager creates a clipboard manager. A nil backend keeps everything
// in process.
func NewManager(backend Backend) *Manager {
	return &Manager{backend: backend}
}

// UsesSystem reports whether an external backend is attached.
func (m *Manager) UsesSystem() bool {
	return m.backend != nil
}

// Write copies text.
func (m *Manager) Write(text string) error {
	m.clipboard = []byte(text)
	m.filled = true
	if m.backend == nil {
		logger.DebugTagf("clipboard", "ClipboardManager: Copied %d bytes internally", len(text))
		return nil
	}
	if err := m.backend.WriteAll(text); err != nil {
		return fmt.Errorf("writing system clipboard: %w", err)
	}
	logger.DebugTagf("clipboard", "ClipboardManager: Copied %d bytes to system clipboard", len(text))
	return nil
}

// Read returns the text to paste. The system clipboard wins when it
// answers; otherwise the internal copy is used.
func (m *Manager) Read() (string, error) {
	if m.backend != nil {
		text, err := m.backend.ReadAll()
		if err == nil {
			return text, nil
		}
		logger.Warnf("ClipboardManager: system clipboard read failed, using internal: %v", err)
	}
	if !m.filled {
		return "", ErrEmpty
	}
	return string(m.clipboard), nil
}
