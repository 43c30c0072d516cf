package segment

import (
	"unicode/utf8"

	"github.com/bethropolis/segfield/internal/types"
)

// Result is the outcome of a reconciliation.
type Result struct {
	Text      string // Canonical text; equal to the input when Rewritten is false
	Caret     int    // New caret index; only meaningful when Rewritten is true
	Rewritten bool   // False when the edit needed no rewrite and the caret stays put
}

// Reconcile rebuilds text into canonical form after ev and computes where
// the caret goes. maxCaret caps the caret after tail input and pastes;
// values <= 0 disable the cap.
//
// A single character typed at the tail that does not land on a separator
// slot needs no rewrite, so Rewritten is false and the caller keeps both
// its buffer and its caret.
func Reconcile(t types.ContentType, ev types.EditEvent, text string, maxCaret int) Result {
	length := utf8.RuneCountInString(text)

	middle := ev.Start+ev.Inserted < length
	tailDue := !middle && SeparatorAt(t, length)
	if !middle && !tailDue && ev.Inserted <= 1 {
		return Result{Text: text}
	}

	out := Format(t, Strip(text))
	outLen := utf8.RuneCountInString(out)

	var caret int
	switch {
	case !middle || ev.Inserted > 1:
		caret = outLen
		if maxCaret > 0 && caret > maxCaret {
			caret = maxCaret
		}
	case ev.IsDeletion():
		// Deleting right before a separator that is about to vanish
		// leaves the caret in front of it.
		base := ev.Start - ev.Removed
		if SeparatorAt(t, base+1) {
			caret = base
		} else {
			caret = base + 1
		}
	default:
		base := ev.Start + ev.Inserted - ev.Removed
		if SeparatorAt(t, base) {
			caret = base + 1
		} else {
			caret = base
		}
	}

	return Result{Text: out, Caret: clamp(caret, 0, outLen), Rewritten: true}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
