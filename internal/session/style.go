package session

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// UseColor resolves a UI mode ("auto", "color" or "plain") for out.
func UseColor(mode string, out io.Writer) (bool, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = "auto"
	}
	switch normalized {
	case "auto":
		return isTerminal(out), nil
	case "color":
		return true, nil
	case "plain":
		return false, nil
	default:
		return false, fmt.Errorf("invalid ui mode %q (expected auto|color|plain)", mode)
	}
}

// defaultIsTerminal inspects out for TTY support.
func defaultIsTerminal(out io.Writer) bool {
	if out == nil {
		return false
	}
	if file, ok := out.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := out.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}

type styles struct {
	noColor   bool
	prompt    lipgloss.Style
	answer    lipgloss.Style
	correct   lipgloss.Style
	incorrect lipgloss.Style
	invalid   lipgloss.Style
}

func newStyles(out io.Writer, noColor bool) styles {
	r := lipgloss.NewRenderer(out)
	if !noColor {
		// Color was requested explicitly or out is a TTY.
		r.SetColorProfile(termenv.ANSI256)
	}
	return styles{
		noColor:   noColor,
		prompt:    r.NewStyle().Bold(true),
		answer:    r.NewStyle().Foreground(lipgloss.Color("244")),
		correct:   r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		incorrect: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		invalid:   r.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

func (s styles) render(style lipgloss.Style, text string) string {
	if s.noColor {
		return text
	}
	return style.Render(text)
}
