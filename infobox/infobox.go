// Package infobox renders the console info box printed by the video
// processor: a bordered block holding a title, an optional note and an
// optional bulleted list.
//
//	********************************************
//	*                                          *
//	*   ✨ FLL Robot Game Video Processor ✨   *
//	*                                          *
//	********************************************
//
// The box is sized to its widest line plus the configured padding and then
// rounded up so the border icon tiles the top and bottom rules exactly.
package infobox

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Lines validates s and returns the rendered box, one unterminated string per
// line. Every line has the same display width.
func Lines(s Spec) ([]string, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	g, err := measure(s)
	if err != nil {
		return nil, err
	}

	border := borderLine(s, g)
	spacer := spacerLine(s, g)

	lines := []string{border, spacer, titleLine(s, g), spacer}
	if s.hasNote() {
		lines = append(lines, noteLine(s, g), spacer)
	}
	if s.hasListTitle() || s.hasListItems() {
		if s.hasListTitle() {
			lines = append(lines, listTitleLine(s, g))
		}
		for _, item := range s.ListItems {
			lines = append(lines, listItemLine(s, g, item))
		}
		lines = append(lines, spacer)
	}
	lines = append(lines, border)
	return lines, nil
}

// Generate returns the rendered box as one block, each line terminated by a
// newline.
func Generate(s Spec) (string, error) {
	lines, err := Lines(s)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// Fprint writes the rendered box to w. Nothing is written if s is invalid.
func Fprint(w io.Writer, s Spec) error {
	box, err := Generate(s)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, box); err != nil {
		return fmt.Errorf("failed to write info box: %w", err)
	}
	return nil
}

// Print writes the rendered box to standard output.
func Print(s Spec) error {
	return Fprint(os.Stdout, s)
}
