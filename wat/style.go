package wat

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// styleSet holds the four highlight roles of the text format. Styles
// are bound to an explicit color profile rather than the detected
// one, so output never depends on the terminal the process happens to
// run in: ANSI when color is requested, Ascii (render to plain text)
// when not.
type styleSet struct {
	major lipgloss.Style // module and function headers
	op    lipgloss.Style // operation keywords and mnemonics
	minor lipgloss.Style // declarations and literals
	str   lipgloss.Style // quoted string contents
}

func newStyleSet(color bool) styleSet {
	r := lipgloss.NewRenderer(io.Discard)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return styleSet{
		major: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		op:    r.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		minor: r.NewStyle().Foreground(lipgloss.Color("3")),
		str:   r.NewStyle().Foreground(lipgloss.Color("2")),
	}
}
