package preview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"FLOWADDR/internal/addr"
	"FLOWADDR/internal/pager"
)

// Model steps through the menu like the device's two buttons: right moves
// to the next page or screen, left goes back, enter presses both buttons.
// After the last screen come the approve and reject screens.
type Model struct {
	ctx      addr.Context
	theme    Theme
	valueCap int

	count     int
	index     int
	page      int
	pageCount int
	label     []byte
	value     []byte
	err       error

	done     bool
	approved bool
}

// New prepares a model positioned on the first page of the first screen.
func New(c addr.Context, labelCap, valueCap int) *Model {
	m := &Model{
		ctx:      c,
		theme:    DefaultTheme,
		valueCap: valueCap,
		count:    addr.NumItems(c),
		label:    make([]byte, labelCap),
		value:    make([]byte, valueCap),
	}
	m.load()
	return m
}

func (m *Model) approveIndex() int { return m.count }
func (m *Model) rejectIndex() int  { return m.count + 1 }

func (m *Model) load() {
	m.err = nil
	if m.index >= m.count {
		m.pageCount = 1
		return
	}
	n, err := addr.GetItem(m.ctx, m.index, m.label, m.value, m.page)
	m.pageCount = n
	if err != nil {
		m.err = err
		log.Debug().Err(err).Int("index", m.index).Int("page", m.page).Msg("menu item unavailable")
	}
}

func (m *Model) next() {
	if m.index < m.count && m.page+1 < m.pageCount {
		m.page++
	} else if m.index < m.rejectIndex() {
		m.index++
		m.page = 0
	}
	m.load()
}

func (m *Model) prev() {
	if m.page > 0 {
		m.page--
		m.load()
		return
	}
	if m.index == 0 {
		return
	}
	m.index--
	m.page = 0
	m.load()
	if m.pageCount > 1 {
		m.page = m.pageCount - 1
		m.load()
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "right", "l":
		m.next()
	case "left", "h":
		m.prev()
	case "enter", " ":
		switch m.index {
		case m.approveIndex():
			m.done, m.approved = true, true
			return m, tea.Quit
		case m.rejectIndex():
			m.done = true
			return m, tea.Quit
		}
	case "q", "esc", "ctrl+c":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) View() string {
	width := m.valueCap + 2
	var screen string
	switch {
	case m.index == m.approveIndex():
		screen = Screen(m.theme, width, lipgloss.NewStyle().Foreground(m.theme.Approve).Render("APPROVE"), "")
	case m.index == m.rejectIndex():
		screen = Screen(m.theme, width, lipgloss.NewStyle().Foreground(m.theme.Reject).Render("REJECT"), "")
	case m.err != nil:
		screen = Screen(m.theme, width, "-", m.err.Error())
	default:
		it := addr.Item{Index: m.index, Page: m.page, PageCount: m.pageCount, Label: pager.Text(m.label), Value: pager.Text(m.value)}
		screen = Screen(m.theme, width, Title(it), it.Value)
	}
	var b strings.Builder
	b.WriteString(screen)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Dim).Render("← → navigate · enter select · q quit"))
	b.WriteString("\n")
	return b.String()
}

// Approved reports whether the user confirmed on the approve screen.
func (m *Model) Approved() bool { return m.done && m.approved }

// Position returns the current screen index and page.
func (m *Model) Position() (int, int) { return m.index, m.page }

// Run shows the interactive preview until the user approves, rejects or
// quits.
func Run(c addr.Context, labelCap, valueCap int, opts ...tea.ProgramOption) (bool, error) {
	m := New(c, labelCap, valueCap)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return false, err
	}
	return final.(*Model).Approved(), nil
}
