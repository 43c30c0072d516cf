// internal/theme/manager.go
package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bethropolis/segfield/internal/logger"
)

// Manager holds loaded themes and manages the active theme.
type Manager struct {
	themes      map[string]*Theme // Lowercase name -> Theme
	activeTheme *Theme
	mutex       sync.RWMutex
}

// NewManager creates a manager holding the built-in theme, which is active.
func NewManager() *Manager {
	return &Manager{
		themes:      map[string]*Theme{strings.ToLower(FormDark.Name): &FormDark},
		activeTheme: &FormDark,
	}
}

// LoadThemesFromDir loads every .toml file in dir. A missing directory is
// not an error; files that fail to parse are skipped with a warning.
func (m *Manager) LoadThemesFromDir(dir string) (int, error) {
	files, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Infof("Theme directory '%s' does not exist. No custom themes loaded.", dir)
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read theme directory '%s': %w", dir, err)
	}

	loadedCount := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(strings.ToLower(file.Name()), ".toml") {
			continue
		}
		filePath := filepath.Join(dir, file.Name())
		theme, err := LoadThemeFromFile(filePath)
		if err != nil {
			logger.Warnf("Failed to load theme from '%s': %v", filePath, err)
			continue
		}
		m.add(theme, filePath)
		loadedCount++
	}
	logger.Infof("Loaded %d custom themes from %s.", loadedCount, dir)
	return loadedCount, nil
}

// LoadFile loads a single theme file and makes it active.
func (m *Manager) LoadFile(path string) (*Theme, error) {
	theme, err := LoadThemeFromFile(path)
	if err != nil {
		return nil, err
	}
	m.add(theme, path)
	if err := m.SetTheme(theme.Name); err != nil {
		return nil, err
	}
	return theme, nil
}

func (m *Manager) add(theme *Theme, source string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	key := strings.ToLower(theme.Name)
	if existing, ok := m.themes[key]; ok {
		logger.Warnf("Theme '%s' from '%s' overrides existing theme '%s'", theme.Name, source, existing.Name)
	}
	m.themes[key] = theme
}

// Current returns the currently active theme.
func (m *Manager) Current() *Theme {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.activeTheme
}

// SetTheme sets the active theme by name (case-insensitive).
func (m *Manager) SetTheme(name string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	theme, ok := m.themes[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("theme '%s' not found", name)
	}
	if m.activeTheme != theme {
		m.activeTheme = theme
		logger.Infof("Active theme set to: %s", theme.Name)
	}
	return nil
}

// ListThemes returns the names of all loaded themes, sorted.
func (m *Manager) ListThemes() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	names := make([]string, 0, len(m.themes))
	for _, theme := range m.themes {
		names = append(names, theme.Name)
	}
	sort.Strings(names)
	return names
}
