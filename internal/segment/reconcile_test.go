package segment

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/segfield/internal/types"
)

func TestReconcile(t *testing.T) {
	tests := []struct {
		name      string
		ct        types.ContentType
		ev        types.EditEvent
		text      string // buffer after the edit, before reconciliation
		maxCaret  int
		want      string
		wantCaret int
		rewritten bool
	}{
		{
			name: "tail input without separator due is left alone",
			ct:   types.ContentBankCard, ev: types.EditEvent{Start: 3, Inserted: 1},
			text: "1234", want: "1234",
		},
		{
			name: "tail input landing on a separator slot",
			ct:   types.ContentBankCard, ev: types.EditEvent{Start: 4, Inserted: 1},
			text: "12345", want: "1234 5", wantCaret: 6, rewritten: true,
		},
		{
			name: "phone tail input opens the second group",
			ct:   types.ContentPhone, ev: types.EditEvent{Start: 3, Inserted: 1},
			text: "1381", want: "138 1", wantCaret: 5, rewritten: true,
		},
		{
			name: "paste into empty field",
			ct:   types.ContentBankCard, ev: types.EditEvent{Inserted: 16},
			text: "6222021234567890", want: "6222 0212 3456 7890", wantCaret: 19, rewritten: true,
		},
		{
			name: "paste caret is capped by max visible length",
			ct:   types.ContentBankCard, ev: types.EditEvent{Inserted: 16}, maxCaret: 10,
			text: "6222021234567890", want: "6222 0212 3456 7890", wantCaret: 10, rewritten: true,
		},
		{
			name: "delete right after a separator moves caret in front of it",
			ct:   types.ContentBankCard, ev: types.EditEvent{Start: 5, Removed: 1},
			text: "1234 678", want: "1234 678", wantCaret: 4, rewritten: true,
		},
		{
			name: "delete pulls the next group across the separator",
			ct:   types.ContentBankCard, ev: types.EditEvent{Start: 5, Removed: 1},
			text: "1234 678 9", want: "1234 6789", wantCaret: 4, rewritten: true,
		},
		{
			name: "delete before a separator",
			ct:   types.ContentBankCard, ev: types.EditEvent{Start: 3, Removed: 1},
			text: "123 5678", want: "1235 678", wantCaret: 3, rewritten: true,
		},
		{
			name: "deleting the separator itself restores it",
			ct:   types.ContentBankCard, ev: types.EditEvent{Start: 4, Removed: 1},
			text: "12345678", want: "1234 5678", wantCaret: 4, rewritten: true,
		},
		{
			name: "tail delete drops the dangling separator",
			ct:   types.ContentBankCard, ev: types.EditEvent{Start: 5, Removed: 1},
			text: "1234 ", want: "1234", wantCaret: 4, rewritten: true,
		},
		{
			name: "insert mid-group",
			ct:   types.ContentBankCard, ev: types.EditEvent{Start: 2, Inserted: 1},
			text: "12934 5678", want: "1293 4567 8", wantCaret: 3, rewritten: true,
		},
		{
			name: "insert before a separator jumps over it",
			ct:   types.ContentBankCard, ev: types.EditEvent{Start: 4, Inserted: 1},
			text: "12349 5678", want: "1234 9567 8", wantCaret: 6, rewritten: true,
		},
		{
			name: "insert after a separator",
			ct:   types.ContentBankCard, ev: types.EditEvent{Start: 5, Inserted: 1},
			text: "1234 95678", want: "1234 9567 8", wantCaret: 6, rewritten: true,
		},
		{
			name: "paste mid-buffer moves caret to the end",
			ct:   types.ContentBankCard, ev: types.EditEvent{Start: 2, Inserted: 2},
			text: "120034 5678", want: "1200 3456 78", wantCaret: 12, rewritten: true,
		},
		{
			name: "national id insert mid-area-code",
			ct:   types.ContentNationalID, ev: types.EditEvent{Start: 0, Inserted: 1},
			text: "9110101 1990", want: "911010 1199 0", wantCaret: 1, rewritten: true,
		},
		{
			name: "plain is rewritten but never segmented",
			ct:   types.ContentPlain, ev: types.EditEvent{Start: 1, Inserted: 1},
			text: "3.14", want: "3.14", wantCaret: 2, rewritten: true,
		},
		{
			name: "out of range deletion clamps caret to zero",
			ct:   types.ContentBankCard, ev: types.EditEvent{Start: 0, Removed: 5},
			text: "12345678", want: "1234 5678", wantCaret: 0, rewritten: true,
		},
		{
			name: "event past the end of the buffer",
			ct:   types.ContentPhone, ev: types.EditEvent{Start: 100},
			text: "1234", want: "123 4", wantCaret: 5, rewritten: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Reconcile(tt.ct, tt.ev, tt.text, tt.maxCaret)
			assert.Equal(t, tt.want, res.Text)
			assert.Equal(t, tt.rewritten, res.Rewritten)
			if tt.rewritten {
				assert.Equal(t, tt.wantCaret, res.Caret)
			}
		})
	}
}

func TestReconcile_CanonicalTextIsAFixedPoint(t *testing.T) {
	for _, ct := range []types.ContentType{types.ContentPlain, types.ContentPhone, types.ContentBankCard, types.ContentNationalID} {
		for n := 0; n <= 30; n++ {
			canonical := Format(ct, strings.Repeat("7", n))
			end := len(canonical)

			tail := Reconcile(ct, types.EditEvent{Start: end}, canonical, 0)
			assert.Equal(t, canonical, tail.Text, "%s n=%d tail", ct, n)

			head := Reconcile(ct, types.EditEvent{}, canonical, 0)
			assert.Equal(t, canonical, head.Text, "%s n=%d head", ct, n)
		}
	}
}

func TestReconcile_PreservesCleanContent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("0123456789 ")

	for _, ct := range []types.ContentType{types.ContentPlain, types.ContentPhone, types.ContentBankCard, types.ContentNationalID} {
		for i := 0; i < 500; i++ {
			n := rng.Intn(30)
			runes := make([]rune, n)
			for j := range runes {
				runes[j] = alphabet[rng.Intn(len(alphabet))]
			}
			text := string(runes)

			ev := types.EditEvent{
				Start:    rng.Intn(n + 1),
				Removed:  rng.Intn(3),
				Inserted: rng.Intn(4),
			}
			res := Reconcile(ct, ev, text, 0)

			require.Equal(t, Strip(text), Strip(res.Text), "%s %q %+v", ct, text, ev)
			if res.Rewritten {
				require.GreaterOrEqual(t, res.Caret, 0)
				require.LessOrEqual(t, res.Caret, len(res.Text))
				require.Equal(t, Format(ct, Strip(text)), res.Text)
			}
		}
	}
}
