// Package preview emulates the device screen on a terminal: a static
// listing of every menu page and an interactive two-button navigator.
package preview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"FLOWADDR/internal/addr"
)

// Theme holds the colors of the emulated screen.
type Theme struct {
	Border  lipgloss.Color
	Label   lipgloss.Color
	Value   lipgloss.Color
	Dim     lipgloss.Color
	Approve lipgloss.Color
	Reject  lipgloss.Color
}

// DefaultTheme is a monochrome-ish palette close to the device's OLED.
var DefaultTheme = Theme{
	Border:  lipgloss.Color("#565f89"),
	Label:   lipgloss.Color("#ffffff"),
	Value:   lipgloss.Color("#c0caf5"),
	Dim:     lipgloss.Color("#565f89"),
	Approve: lipgloss.Color("#9ece6a"),
	Reject:  lipgloss.Color("#f7768e"),
}

// Title is the label line as the device prints it, with a page counter
// when the value spans more than one page.
func Title(it addr.Item) string {
	if it.PageCount > 1 {
		return fmt.Sprintf("%s [%d/%d]", it.Label, it.Page+1, it.PageCount)
	}
	return it.Label
}

// Screen draws one page inside a fixed-width frame.
func Screen(th Theme, width int, title, value string) string {
	label := lipgloss.NewStyle().Bold(true).Foreground(th.Label).Render(title)
	body := lipgloss.NewStyle().Foreground(th.Value).Render(value)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Border).
		Padding(0, 1).
		Width(width).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, label, body))
}

// Print walks the whole menu and writes every page to w, one line each, or
// framed like the device screen when boxed is set.
func Print(w io.Writer, c addr.Context, labelCap, valueCap int, boxed bool) error {
	return addr.Walk(c, labelCap, valueCap, func(it addr.Item) error {
		var err error
		if boxed {
			_, err = fmt.Fprintln(w, Screen(DefaultTheme, valueCap+2, Title(it), it.Value))
		} else {
			_, err = fmt.Fprintf(w, "[%d] %s: %s\n", it.Index, Title(it), it.Value)
		}
		return err
	})
}
