// internal/buffer/buffer.go
package buffer

import "github.com/bethropolis/segfield/internal/types"

// Watcher is called after every mutation with the edit that produced it.
type Watcher func(ev types.EditEvent)

// Buffer is the single-line text widget a field edits: text, a caret,
// input filters and a change-notification hook.
type Buffer interface {
	Text() string
	Len() int
	Caret() int
	// SetCaret clamps i to [0, Len()] and returns the applied index.
	SetCaret(i int) int
	// Edit applies a user edit: filters run on text, the caret lands after
	// the inserted runes and watchers are notified. ok is false when the
	// edit changed nothing.
	Edit(start, end int, text string) (ev types.EditEvent, ok bool)
	// Replace applies a programmatic edit without filters. Watchers are
	// still notified.
	Replace(start, end int, text string) (ev types.EditEvent, ok bool)
	// Watch registers w and returns a function that removes it again.
	Watch(w Watcher) (cancel func())
}
