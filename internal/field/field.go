// Package field implements a segmented identifier input: a text buffer
// whose separators are rebuilt after every edit while the caller only ever
// sees the clean value.
package field

import (
	"github.com/bethropolis/segfield/internal/buffer"
	"github.com/bethropolis/segfield/internal/logger"
	"github.com/bethropolis/segfield/internal/segment"
	"github.com/bethropolis/segfield/internal/types"
)

// ChangeFunc receives the clean text after each completed edit.
type ChangeFunc func(clean string)

// Field is a single segmented input. It is not safe for concurrent use;
// the host delivers edits one at a time.
type Field struct {
	cfg      Config
	buf      *buffer.RuneBuffer
	onChange ChangeFunc
	unwatch  func()

	// suppressed > 0 while the field rewrites its own buffer.
	suppressed int
}

// New creates an empty field.
func New(cfg Config) *Field {
	f := &Field{cfg: cfg.withDefaults()}
	f.buf = buffer.NewRuneBuffer(
		buffer.AlphabetFilter(f.cfg.ContentType.Accepts),
		buffer.FilterFunc(f.limitLength),
	)
	f.unwatch = f.buf.Watch(f.handleEdit)
	return f
}

// Config returns the field's configuration with defaults applied.
func (f *Field) Config() Config {
	return f.cfg
}

// ContentType returns the content type fixed at construction.
func (f *Field) ContentType() types.ContentType {
	return f.cfg.ContentType
}

// Text returns the displayed text, separators included.
func (f *Field) Text() string {
	return f.buf.Text()
}

// CleanText returns the displayed text with separators removed.
func (f *Field) CleanText() string {
	return segment.Strip(f.buf.Text())
}

// Caret returns the caret index into Text.
func (f *Field) Caret() int {
	return f.buf.Caret()
}

// IsEmpty reports whether the field holds no text.
func (f *Field) IsEmpty() bool {
	return f.buf.Len() == 0
}

// IsModified reports whether the field was edited since creation.
func (f *Field) IsModified() bool {
	return f.buf.IsModified()
}

// ShowClearIcon reports whether a clear affordance should be offered.
func (f *Field) ShowClearIcon(focused bool) bool {
	return focused && !f.IsEmpty()
}

// OnChange registers fn as the change listener, replacing any previous
// one. A nil fn unregisters.
func (f *Field) OnChange(fn ChangeFunc) {
	f.onChange = fn
}

// SetText installs raw as-is: the separator policy does not run, so text
// passed here should already be clean or formatted. The caret moves to the
// end and the listener fires once.
func (f *Field) SetText(raw string) {
	f.install(raw)
	f.notify()
}

// SetCleanText installs s and reconciles it like a paste, so separators
// end up at their canonical slots. Like typed input, runes outside the
// content type's alphabet are dropped and the value is cut to MaxLength.
// The listener fires once.
func (f *Field) SetCleanText(s string) {
	ev := f.install(f.sanitize(s))
	res := segment.Reconcile(f.cfg.ContentType, ev, f.buf.Text(), f.cfg.MaxVisibleLength)
	if res.Rewritten {
		f.rewrite(res.Text, res.Caret)
	}
	f.notify()
}

// Clear empties the field and notifies the listener.
func (f *Field) Clear() {
	f.SetText("")
}

// Insert types or pastes s at the caret. Runes outside the content type's
// alphabet are dropped and the text is truncated to fit MaxLength.
// It reports whether anything was inserted.
func (f *Field) Insert(s string) bool {
	caret := f.buf.Caret()
	_, ok := f.buf.Edit(caret, caret, s)
	return ok
}

// DeleteBackward removes the rune before the caret.
func (f *Field) DeleteBackward() bool {
	caret := f.buf.Caret()
	if caret == 0 {
		return false
	}
	_, ok := f.buf.Edit(caret-1, caret, "")
	return ok
}

// DeleteForward removes the character after the caret. A separator is
// skipped so the next character goes instead; the caret stays put.
func (f *Field) DeleteForward() bool {
	caret := f.buf.Caret()
	target := caret
	if target < f.buf.Len() && []rune(f.buf.Text())[target] == segment.Separator {
		target++
	}
	if target >= f.buf.Len() {
		return false
	}
	_, ok := f.buf.Edit(target, target+1, "")
	return ok
}

// SetCaret moves the caret, clamped to the text.
func (f *Field) SetCaret(i int) int {
	return f.buf.SetCaret(i)
}

// MoveLeft moves the caret one rune left and reports whether it moved.
func (f *Field) MoveLeft() bool {
	before := f.buf.Caret()
	return f.buf.SetCaret(before-1) != before
}

// MoveRight moves the caret one rune right and reports whether it moved.
func (f *Field) MoveRight() bool {
	before := f.buf.Caret()
	return f.buf.SetCaret(before+1) != before
}

// Home moves the caret to the start.
func (f *Field) Home() bool {
	before := f.buf.Caret()
	return f.buf.SetCaret(0) != before
}

// End moves the caret to the end.
func (f *Field) End() bool {
	before := f.buf.Caret()
	return f.buf.SetCaret(f.buf.Len()) != before
}

// Dispose detaches the field from its buffer and drops the listener.
func (f *Field) Dispose() {
	if f.unwatch != nil {
		f.unwatch()
		f.unwatch = nil
	}
	f.onChange = nil
}

// handleEdit is the buffer watcher: it reconciles user edits and fires the
// listener exactly once per edit.
func (f *Field) handleEdit(ev types.EditEvent) {
	if f.suppressed > 0 {
		return
	}
	res := segment.Reconcile(f.cfg.ContentType, ev, f.buf.Text(), f.cfg.MaxVisibleLength)
	if res.Rewritten {
		logger.DebugTagf("field", "Field %q: edit %+v rewrote %q -> %q, caret %d",
			f.cfg.Label, ev, f.buf.Text(), res.Text, res.Caret)
		f.rewrite(res.Text, res.Caret)
	}
	f.notify()
}

// suppress blocks the watcher until the returned func runs.
func (f *Field) suppress() (restore func()) {
	f.suppressed++
	return func() { f.suppressed-- }
}

func (f *Field) rewrite(text string, caret int) {
	defer f.suppress()()
	f.buf.Replace(0, f.buf.Len(), text)
	f.buf.SetCaret(caret)
}

// install replaces the whole buffer without reconciling and puts the caret
// at the end. The returned event describes the replacement.
func (f *Field) install(text string) types.EditEvent {
	defer f.suppress()()
	old := f.buf.Len()
	ev, ok := f.buf.Replace(0, old, text)
	if !ok {
		ev = types.EditEvent{}
	}
	f.buf.SetCaret(f.buf.Len())
	return ev
}

// sanitize strips separators and applies the same alphabet and length
// rules an edit would.
func (f *Field) sanitize(s string) string {
	keep := segment.MaxClean(f.cfg.ContentType, f.cfg.MaxLength)
	out := make([]rune, 0, keep)
	for _, r := range segment.Strip(s) {
		if len(out) == keep {
			break
		}
		if f.cfg.ContentType.Accepts(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

func (f *Field) notify() {
	if f.onChange != nil {
		f.onChange(f.CleanText())
	}
}

// limitLength keeps insertions within MaxLength displayed runes, counted
// on the formatted text so separators added later never push it over.
func (f *Field) limitLength(src, dst []rune, start, end int) []rune {
	remaining := 0
	for i, r := range dst {
		if (i < start || i >= end) && r != segment.Separator {
			remaining++
		}
	}
	keep := segment.MaxClean(f.cfg.ContentType, f.cfg.MaxLength) - remaining
	if keep <= 0 {
		return nil
	}
	if keep < len(src) {
		return src[:keep]
	}
	return src
}
