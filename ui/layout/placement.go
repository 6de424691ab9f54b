// Package layout positions the banner on the watch screen.
package layout

// Placement is where the banner and its surrounding lines go on screen.
type Placement struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Banner dimensions, in cells and lines
	BoxWidth  int
	BoxHeight int

	// Offsets of the banner's top-left corner
	Left int
	Top  int

	// ShowMinWarning is set when the banner does not fit the terminal. The
	// banner is then drawn from the top-left corner and clipped by the terminal.
	ShowMinWarning bool
}

// ComputePlacement centers a box of the given size in the terminal, leaving
// room for the status line and key menu below it.
func ComputePlacement(termWidth, termHeight, boxWidth, boxHeight int) Placement {
	p := Placement{
		TerminalWidth:  termWidth,
		TerminalHeight: termHeight,
		BoxWidth:       boxWidth,
		BoxHeight:      boxHeight,
	}

	contentHeight := boxHeight + BannerGap + StatusHeight + MenuHeight
	if boxWidth > termWidth || contentHeight > termHeight {
		p.ShowMinWarning = true
		return p
	}

	p.Left = (termWidth - boxWidth) / 2
	p.Top = (termHeight - contentHeight) / 2
	return p
}

// MinSize returns the smallest terminal that shows the box without a warning.
func MinSize(boxWidth, boxHeight int) (width, height int) {
	return boxWidth, boxHeight + BannerGap + StatusHeight + MenuHeight
}
