package preview

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FLOWADDR/internal/addr"
	"FLOWADDR/internal/hdpath"
	"FLOWADDR/internal/keybuf"
)

func fixtureContext(t *testing.T, mode addr.Mode, expert bool) addr.Context {
	t.Helper()
	pub := make([]byte, keybuf.PublicKeyLen)
	pub[0] = keybuf.MarkerUncompressed
	for i := 1; i < len(pub); i++ {
		pub[i] = byte(i)
	}
	keys, err := keybuf.Build(pub, "e467b9dd11fa00df")
	require.NoError(t, err)
	return addr.Context{Mode: mode, Expert: expert, Keys: keys, Path: hdpath.Default}
}

func press(m *Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func TestPrintLines(t *testing.T) {
	c := fixtureContext(t, addr.EmptySlot, true)
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, c, 64, 65, false))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "[0] Pub Key [1/2]: 0102"))
	assert.True(t, strings.HasPrefix(lines[1], "[0] Pub Key [2/2]: "))
	assert.Equal(t, "[1] Address:: Not saved on the device.", lines[2])
	assert.Equal(t, "[2] Your Path: m/44'/539'/0'/0/0", lines[3])
}

func TestPrintBoxed(t *testing.T) {
	c := fixtureContext(t, addr.PathMismatch, false)
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, c, 64, 65, true))
	out := buf.String()
	assert.Contains(t, out, "Other path is saved on the device.")
	assert.Contains(t, out, "╭")
}

func TestPrintStopsOnUnexpectedMode(t *testing.T) {
	c := fixtureContext(t, addr.NotRequested, false)
	err := Print(&bytes.Buffer{}, c, 64, 65, false)
	assert.ErrorIs(t, err, addr.ErrUnexpectedMode)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Pub Key", Title(addr.Item{Label: "Pub Key", PageCount: 1}))
	assert.Equal(t, "Pub Key [2/4]", Title(addr.Item{Label: "Pub Key", Page: 1, PageCount: 4}))
}

func TestModelNavigatesPagesThenScreens(t *testing.T) {
	c := fixtureContext(t, addr.ConfirmedShown, false)
	m := New(c, 64, 33)

	// public key: 4 pages
	for p := 0; p < 4; p++ {
		i, page := m.Position()
		assert.Equal(t, 0, i)
		assert.Equal(t, p, page)
		press(m, tea.KeyRight)
	}
	i, page := m.Position()
	assert.Equal(t, 1, i)
	assert.Equal(t, 0, page)
	assert.Contains(t, m.View(), "e467b9dd11fa00df")

	// back onto the last page of the public key
	press(m, tea.KeyLeft)
	i, page = m.Position()
	assert.Equal(t, 0, i)
	assert.Equal(t, 3, page)
	assert.Contains(t, m.View(), "Pub Key [4/4]")

	// forward past the 4 screens to approve
	press(m, tea.KeyRight)
	for k := 0; k < 3; k++ {
		press(m, tea.KeyRight)
	}
	assert.Contains(t, m.View(), "APPROVE")
	cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.True(t, m.Approved())
}

func TestModelReject(t *testing.T) {
	c := fixtureContext(t, addr.EmptySlot, false)
	m := New(c, 64, 200)

	// enter on a regular screen does nothing
	assert.Nil(t, press(m, tea.KeyEnter))

	for k := 0; k < 10; k++ {
		press(m, tea.KeyRight)
	}
	assert.Contains(t, m.View(), "REJECT")
	require.NotNil(t, press(m, tea.KeyEnter))
	assert.False(t, m.Approved())

	m = New(c, 64, 200)
	for k := 0; k < 3; k++ {
		press(m, tea.KeyLeft)
	}
	i, page := m.Position()
	assert.Equal(t, 0, i)
	assert.Equal(t, 0, page)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.False(t, m.Approved())
}

func TestModelShowsNoDataScreen(t *testing.T) {
	c := fixtureContext(t, addr.NotRequested, false)
	m := New(c, 64, 200)
	press(m, tea.KeyRight)
	assert.Contains(t, m.View(), "unexpected display mode")
}
