// internal/event/manager.go
package event

import (
	"sync"

	"github.com/bethropolis/segfield/internal/logger"
)

// Handler defines the function signature for event subscribers.
// It returns true if the event was consumed; later handlers are skipped.
type Handler func(e Event) bool

type entry struct {
	id      int
	handler Handler
}

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]entry
	nextID   int
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]entry),
	}
}

// Subscribe adds a handler function for a specific event type. The returned
// func removes it again and may be called more than once.
func (m *Manager) Subscribe(eventType Type, handler Handler) (unsubscribe func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	id := m.nextID
	m.handlers[eventType] = append(m.handlers[eventType], entry{id: id, handler: handler})
	logger.DebugTagf("event", "Event Manager: Handler %d subscribed to %v", id, eventType)

	return func() { m.remove(eventType, id) }
}

func (m *Manager) remove(eventType Type, id int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.handlers[eventType]
	for i, e := range list {
		if e.id == id {
			m.handlers[eventType] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Dispatch sends an event to all registered handlers for its type, in
// subscription order. Handlers run synchronously on the caller's goroutine.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	event := Event{
		Type: eventType,
		Data: data,
	}

	m.mu.RLock()
	handlers := make([]entry, len(m.handlers[eventType]))
	copy(handlers, m.handlers[eventType])
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}

	logger.DebugTagf("event", "Event Manager: Dispatching %v to %d handler(s)", eventType, len(handlers))

	for _, e := range handlers {
		if e.handler(event) {
			break
		}
	}
}
