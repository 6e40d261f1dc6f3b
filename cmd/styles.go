package cmd

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/gpm/internal/core"
	"golang.org/x/term"
)

// palette renders user-facing text. Without a color terminal every
// method returns its input unchanged.
type palette struct {
	color bool

	okStyle     lipgloss.Style
	warnStyle   lipgloss.Style
	errStyle    lipgloss.Style
	dimStyle    lipgloss.Style
	headerStyle lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)

	return palette{
		color:       colorEnabled(w),
		okStyle:     r.NewStyle().Foreground(lipgloss.Color("42")),
		warnStyle:   r.NewStyle().Foreground(lipgloss.Color("214")),
		errStyle:    r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		dimStyle:    r.NewStyle().Foreground(lipgloss.Color("244")),
		headerStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	}
}

func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

func (p palette) render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}

	return s.Render(text)
}

func (p palette) ok(text string) string { return p.render(p.okStyle, text) }
func (p palette) warn(text string) string { return p.render(p.warnStyle, text) }
func (p palette) fail(text string) string { return p.render(p.errStyle, text) }
func (p palette) dim(text string) string { return p.render(p.dimStyle, text) }
func (p palette) header(text string) string { return p.render(p.headerStyle, text) }

// statusLabel colors a CLEAN/DIRTY label.
func (p palette) statusLabel(label string) string {
	if label == core.LabelClean {
		return p.ok(label)
	}

	return p.warn(label)
}
