package ui

import (
	"fllvideo/config"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Box colors
var (
	// BorderColor is used for the border rules and the border icons of each line.
	BorderColor = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// TitleColor is the accent color of the title line
	TitleColor = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#F59E0B"}

	// TextColor is used for the note and the list
	TextColor = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#dddddd"}

	// TextMuted is for hints and subtle text
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// WarningColor is used for the terminal-too-small warning
	WarningColor = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}
)

// ColorEnabled resolves a config color mode for output written to w. In auto
// mode colors are used only when w is a terminal that supports them.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}

// BoxStyles colors the lines of a rendered info box.
type BoxStyles struct {
	Border lipgloss.Style
	Title  lipgloss.Style
	Text   lipgloss.Style
}

// NewBoxStyles returns styles that render for w. When color is false the
// styles leave text untouched.
func NewBoxStyles(w io.Writer, color bool) BoxStyles {
	r := lipgloss.NewRenderer(w)
	if color {
		if r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.ANSI256)
		}
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return BoxStyles{
		Border: r.NewStyle().Foreground(BorderColor),
		Title:  r.NewStyle().Foreground(TitleColor).Bold(true),
		Text:   r.NewStyle().Foreground(TextColor),
	}
}

// Colorize styles the lines returned by infobox.Lines. The first and last
// lines are border rules and the third is the title; every other line keeps
// its border icons in the border color.
//
// Styling never changes the visible width of a line.
func (s BoxStyles) Colorize(lines []string, borderIcon string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case i == 0 || i == len(lines)-1:
			out[i] = s.Border.Render(line)
		case len(line) >= 2*len(borderIcon):
			inner := line[len(borderIcon) : len(line)-len(borderIcon)]
			style := s.Text
			if i == 2 {
				style = s.Title
			}
			out[i] = s.Border.Render(borderIcon) + style.Render(inner) + s.Border.Render(borderIcon)
		default:
			out[i] = line
		}
	}
	return out
}
