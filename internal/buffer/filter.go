package buffer

// Filter narrows text about to replace dst[start:end]. It returns the runes
// that may actually be inserted.
type Filter interface {
	Filter(src, dst []rune, start, end int) []rune
}

// FilterFunc adapts a function to the Filter interface.
type FilterFunc func(src, dst []rune, start, end int) []rune

// Filter calls f.
func (f FilterFunc) Filter(src, dst []rune, start, end int) []rune {
	return f(src, dst, start, end)
}

// AlphabetFilter drops every rune the predicate rejects.
type AlphabetFilter func(r rune) bool

// Filter keeps the accepted runes of src in order.
func (accept AlphabetFilter) Filter(src, _ []rune, _, _ int) []rune {
	out := src[:0:0]
	for _, r := range src {
		if accept(r) {
			out = append(out, r)
		}
	}
	return out
}
