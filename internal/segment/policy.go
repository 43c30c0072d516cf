// Package segment computes where separators belong in a segmented
// identifier and rebuilds a field's text after an edit.
//
// Positions handed to the policy are 1-based slots of the formatted text:
// SeparatorAt(BankCard, 5) is true because the fifth displayed character
// of "1234 5678" is the separator.
package segment

import (
	"strings"

	"github.com/bethropolis/segfield/internal/types"
)

// Separator is the only character the field inserts on its own.
const Separator = ' '

// SeparatorAt reports whether the 1-based slot of the formatted text is
// reserved for a separator.
func SeparatorAt(t types.ContentType, slot int) bool {
	switch t {
	case types.ContentPhone:
		return slot >= 4 && (slot == 4 || (slot+1)%5 == 0)
	case types.ContentBankCard:
		return slot > 0 && slot%5 == 0
	case types.ContentNationalID:
		return slot > 6 && (slot == 7 || (slot-2)%5 == 0)
	}
	return false
}

// NeedsSeparatorAfter reports whether a separator follows the n-th
// (1-based) clean character once another character comes after it.
func NeedsSeparatorAfter(t types.ContentType, n int) bool {
	if n <= 0 {
		return false
	}
	return SeparatorAt(t, DisplayLen(t, n)+1)
}

// DisplayLen returns the length of n clean characters once formatted.
func DisplayLen(t types.ContentType, n int) int {
	if n <= 0 {
		return 0
	}
	length := 0
	for i := 0; i < n; i++ {
		if i > 0 && SeparatorAt(t, length+1) {
			length++
		}
		length++
	}
	return length
}

// MaxClean returns the largest number of clean characters whose formatted
// length does not exceed maxDisplay.
func MaxClean(t types.ContentType, maxDisplay int) int {
	n := 0
	for DisplayLen(t, n+1) <= maxDisplay {
		n++
	}
	return n
}

// Strip removes every separator from s.
func Strip(s string) string {
	if strings.IndexRune(s, Separator) < 0 {
		return s
	}
	return strings.ReplaceAll(s, string(Separator), "")
}

// Format lays clean out with separators at the policy's slots.
// Separators only ever sit between two characters.
func Format(t types.ContentType, clean string) string {
	var sb strings.Builder
	sb.Grow(len(clean) + len(clean)/3)
	for i, r := range []rune(clean) {
		if NeedsSeparatorAfter(t, i) {
			sb.WriteRune(Separator)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
