package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	text     string
	readErr  error
	writeErr error
}

func (f *fakeBackend) ReadAll() (string, error) { return f.text, f.readErr }

func (f *fakeBackend) WriteAll(text string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.text = text
	return nil
}

func TestManager_Internal(t *testing.T) {
	m := NewManager(nil)
	assert.False(t, m.UsesSystem())

	_, err := m.Read()
	require.ErrorIs(t, err, ErrEmpty)

	require.NoError(t, m.Write("6222021234567890"))
	got, err := m.Read()
	require.NoError(t, err)
	assert.Equal(t, "6222021234567890", got)

	require.NoError(t, m.Write(""))
	got, err = m.Read()
	require.NoError(t, err, "an empty copy is still a copy")
	assert.Equal(t, "", got)
}

func TestManager_Backend(t *testing.T) {
	b := &fakeBackend{text: "138 1234 5678"}
	m := NewManager(b)
	assert.True(t, m.UsesSystem())

	got, err := m.Read()
	require.NoError(t, err)
	assert.Equal(t, "138 1234 5678", got)

	require.NoError(t, m.Write("110101"))
	assert.Equal(t, "110101", b.text)
}

func TestManager_BackendFailuresFallBack(t *testing.T) {
	boom := errors.New("no display")
	b := &fakeBackend{readErr: boom, writeErr: boom}
	m := NewManager(b)

	err := m.Write("42")
	require.ErrorIs(t, err, boom)

	got, err := m.Read()
	require.NoError(t, err)
	assert.Equal(t, "42", got, "internal copy survives a failing backend")
}
