package types

// EditEvent describes the most recent mutation of a field's text buffer.
// It is captured by the buffer before any reconciliation runs.
type EditEvent struct {
	Start    int // Rune index where the change began
	Removed  int // Number of runes replaced
	Inserted int // Number of runes inserted in their place
}

// End returns the rune index just past the inserted text.
func (e EditEvent) End() int {
	return e.Start + e.Inserted
}

// IsDeletion reports whether the edit only removed text.
func (e EditEvent) IsDeletion() bool {
	return e.Inserted == 0 && e.Removed > 0
}

// IsNoop reports whether the edit changed nothing.
func (e EditEvent) IsNoop() bool {
	return e.Inserted == 0 && e.Removed == 0
}
