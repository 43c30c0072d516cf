// internal/buffer/rune_buffer.go
package buffer

import (
	"github.com/bethropolis/segfield/internal/logger"
	"github.com/bethropolis/segfield/internal/types"
)

// RuneBuffer is a Buffer backed by a rune slice. Indices are rune indices.
type RuneBuffer struct {
	runes    []rune
	caret    int
	filters  []Filter
	watchers []watcherEntry
	nextID   int
	modified bool // Any edit since creation
}

type watcherEntry struct {
	id int
	fn Watcher
}

// NewRuneBuffer creates an empty buffer. Filters run in order on every Edit.
func NewRuneBuffer(filters ...Filter) *RuneBuffer {
	return &RuneBuffer{filters: filters}
}

func (rb *RuneBuffer) Text() string {
	return string(rb.runes)
}

func (rb *RuneBuffer) Len() int {
	return len(rb.runes)
}

func (rb *RuneBuffer) Caret() int {
	return rb.caret
}

// SetCaret clamps and applies a caret index.
func (rb *RuneBuffer) SetCaret(i int) int {
	rb.caret = clampIndex(i, len(rb.runes))
	return rb.caret
}

// IsModified returns true once the buffer has been edited.
func (rb *RuneBuffer) IsModified() bool {
	return rb.modified
}

// Edit replaces [start, end) with the filtered text and moves the caret
// after it.
func (rb *RuneBuffer) Edit(start, end int, text string) (types.EditEvent, bool) {
	start, end = rb.validateRange(start, end)
	insert := []rune(text)
	for _, f := range rb.filters {
		insert = f.Filter(insert, rb.runes, start, end)
		if len(insert) == 0 {
			break
		}
	}
	ev, ok := rb.splice(start, end, insert)
	if !ok {
		return ev, false
	}
	rb.caret = ev.End()
	rb.notify(ev)
	return ev, true
}

// Replace replaces [start, end) with text, bypassing filters. The caret is
// only clamped; callers place it themselves.
func (rb *RuneBuffer) Replace(start, end int, text string) (types.EditEvent, bool) {
	start, end = rb.validateRange(start, end)
	ev, ok := rb.splice(start, end, []rune(text))
	if !ok {
		return ev, false
	}
	rb.caret = clampIndex(rb.caret, len(rb.runes))
	rb.notify(ev)
	return ev, true
}

// Watch registers w. The returned cancel func is safe to call more than once.
func (rb *RuneBuffer) Watch(w Watcher) func() {
	rb.nextID++
	id := rb.nextID
	rb.watchers = append(rb.watchers, watcherEntry{id: id, fn: w})
	return func() {
		for i, entry := range rb.watchers {
			if entry.id == id {
				rb.watchers = append(rb.watchers[:i:i], rb.watchers[i+1:]...)
				return
			}
		}
	}
}

func (rb *RuneBuffer) splice(start, end int, insert []rune) (types.EditEvent, bool) {
	ev := types.EditEvent{Start: start, Removed: end - start, Inserted: len(insert)}
	if ev.IsNoop() {
		return ev, false
	}

	tail := make([]rune, len(rb.runes[end:]))
	copy(tail, rb.runes[end:])
	rb.runes = append(append(rb.runes[:start], insert...), tail...)
	rb.modified = true
	return ev, true
}

// notify calls the watchers registered when the edit happened. A watcher
// that mutates the buffer again sees its own nested notification first.
func (rb *RuneBuffer) notify(ev types.EditEvent) {
	watchers := make([]watcherEntry, len(rb.watchers))
	copy(watchers, rb.watchers)
	for _, w := range watchers {
		w.fn(ev)
	}
}

// validateRange clamps both ends into the buffer and orders them.
func (rb *RuneBuffer) validateRange(start, end int) (int, int) {
	if start > end {
		start, end = end, start
	}
	vStart := clampIndex(start, len(rb.runes))
	vEnd := clampIndex(end, len(rb.runes))
	if vStart != start || vEnd != end {
		logger.DebugTagf("buffer", "RuneBuffer: clamped range [%d,%d) to [%d,%d)", start, end, vStart, vEnd)
	}
	return vStart, vEnd
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}

// Ensure RuneBuffer satisfies the Buffer interface
var _ Buffer = (*RuneBuffer)(nil)
