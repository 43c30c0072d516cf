package statusbar

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusBar_DefaultText(t *testing.T) {
	sb := New(DefaultConfig())
	text, style := sb.Text()
	assert.Equal(t, "[No Fields]", text)
	assert.Equal(t, DefaultConfig().StyleDefault, style)

	sb.SetFieldInfo(FieldInfo{
		Label: "Card", Type: "bank_card", Clean: "12345",
		Caret: 6, Length: 6, Index: 0, Total: 3, Modified: true,
	})
	text, _ = sb.Text()
	assert.Equal(t, `Card (bank_card) [Modified] -- "12345" -- Col: 6/6 -- Field 1/3`, text)
}

func TestStatusBar_TemporaryMessageExpires(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	sb := New(DefaultConfig())
	sb.now = func() time.Time { return now }
	sb.SetFieldInfo(FieldInfo{Label: "ID", Type: "national_id", Total: 1})

	sb.SetTemporaryMessage("Copied %s", "110101")
	text, style := sb.Text()
	assert.Equal(t, "Copied 110101", text)
	assert.Equal(t, DefaultConfig().StyleMessage, style)

	now = now.Add(5 * time.Second)
	text, _ = sb.Text()
	assert.Contains(t, text, "ID (national_id)")

	sb.SetTemporaryMessage("again")
	sb.ResetTemporaryMessage()
	text, _ = sb.Text()
	assert.NotEqual(t, "again", text)
}

func TestStatusBar_Draw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(12, 3)

	sb := New(DefaultConfig())
	sb.SetTemporaryMessage("Pasted ✓ more text")
	sb.Draw(screen, 12, 3)
	screen.Show()

	cells, w, _ := screen.GetContents()
	var row []rune
	for x := 0; x < w; x++ {
		row = append(row, cells[2*w+x].Runes...)
	}
	assert.Equal(t, "Pasted ✓ mor", string(row))
}
