package infobox

import (
	"fllvideo/log"
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Geometry is the computed size of a box, in terminal cells.
type Geometry struct {
	// ContentLineLength is the interior width between the two border icons.
	ContentLineLength int
	// BoxLineLength is the full width of every line, borders included.
	BoxLineLength int
}

// RoundUp returns the smallest multiple of y that is not less than x.
// Both operands must be positive.
func RoundUp(x, y int) (int, error) {
	if x <= 0 || y <= 0 {
		return 0, fmt.Errorf("%w: cannot round %d up to a multiple of %d", ErrInvalidArgument, x, y)
	}
	return (x + y - 1) / y * y, nil
}

// SplitSpaces divides n spaces around a centered element. The extra space of
// an odd n goes to the right.
func SplitSpaces(n int) (left, right int) {
	return n / 2, n/2 + n%2
}

// Measure validates s and computes its geometry.
func Measure(s Spec) (Geometry, error) {
	if err := s.Validate(); err != nil {
		return Geometry{}, err
	}
	return measure(s)
}

func measure(s Spec) (Geometry, error) {
	content, err := RoundUp(minContentLength(s), s.BorderIconLength)
	if err != nil {
		return Geometry{}, fmt.Errorf("failed to compute content width: %w", err)
	}
	g := Geometry{
		ContentLineLength: content,
		BoxLineLength:     content + 2*s.BorderIconLength,
	}
	log.LayoutTrace("infobox %q: content=%d box=%d", s.Title, g.ContentLineLength, g.BoxLineLength)
	return g, nil
}

// minContentLength is the widest of the per-kind minimum widths.
func minContentLength(s Spec) int {
	return max(
		minTitleLength(s),
		minNoteLength(s),
		minListTitleLength(s),
		minListItemsLength(s),
	)
}

func minTitleLength(s Spec) int {
	return textWidth(s.Title) + 2*(s.SeparatorLength+s.TitleIconLength+s.MinPadding)
}

func minNoteLength(s Spec) int {
	if !s.hasNote() {
		return 0
	}
	return textWidth(s.Note) + 2*s.MinPadding
}

func minListTitleLength(s Spec) int {
	if !s.hasListTitle() {
		return 0
	}
	return textWidth(s.ListTitle) + s.SeparatorLength + s.MinPadding
}

func minListItemsLength(s Spec) int {
	if !s.hasListItems() {
		return 0
	}
	widest := 0
	for _, item := range s.ListItems {
		widest = max(widest, textWidth(item))
	}
	return widest + 2*s.SeparatorLength + s.ListIconLength + s.MinPadding
}

// textWidth is the number of terminal cells text occupies. Icons are never
// measured with it; their widths come from the style.
func textWidth(text string) int {
	return runewidth.StringWidth(text)
}
