package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

var separator = " • "

// Menu is the one-line key help shown under the banner.
type Menu struct {
	bindings []key.Binding
	width    int
}

// NewMenu creates a menu listing the help of each enabled binding.
func NewMenu(bindings ...key.Binding) *Menu {
	return &Menu{bindings: bindings}
}

// SetWidth sets the width of the window. The menu will be centered horizontally within this width.
func (m *Menu) SetWidth(width int) {
	m.width = width
}

func (m *Menu) String() string {
	var s strings.Builder
	first := true
	for _, b := range m.bindings {
		if !b.Enabled() {
			continue
		}
		if !first {
			s.WriteString(sepStyle.Render(separator))
		}
		first = false
		s.WriteString(keyStyle.Render(b.Help().Key))
		s.WriteString(" ")
		s.WriteString(descStyle.Render(b.Help().Desc))
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s.String())
}
