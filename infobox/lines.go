package infobox

import "strings"

func spaces(n int) string {
	return strings.Repeat(" ", n)
}

func borderLine(s Spec, g Geometry) string {
	return strings.Repeat(s.BorderIcon, g.BoxLineLength/s.BorderIconLength)
}

func spacerLine(s Spec, g Geometry) string {
	return s.BorderIcon + spaces(g.ContentLineLength) + s.BorderIcon
}

func titleLine(s Spec, g Geometry) string {
	left, right := SplitSpaces(g.ContentLineLength - textWidth(s.Title) - 2*(s.SeparatorLength+s.TitleIconLength))
	sep := spaces(s.SeparatorLength)

	var b strings.Builder
	b.WriteString(s.BorderIcon)
	b.WriteString(spaces(left))
	b.WriteString(s.TitleIcon)
	b.WriteString(sep)
	b.WriteString(s.Title)
	b.WriteString(sep)
	b.WriteString(s.TitleIcon)
	b.WriteString(spaces(right))
	b.WriteString(s.BorderIcon)
	return b.String()
}

func noteLine(s Spec, g Geometry) string {
	left, right := SplitSpaces(g.ContentLineLength - textWidth(s.Note))
	return s.BorderIcon + spaces(left) + s.Note + spaces(right) + s.BorderIcon
}

// listTitleLine and listItemLine render the list as a left-aligned block
// indented by MinPadding. Each line reserves a trailing separator.
func listTitleLine(s Spec, g Geometry) string {
	used := s.MinPadding + textWidth(s.ListTitle) + s.SeparatorLength
	return s.BorderIcon +
		spaces(s.MinPadding) +
		s.ListTitle +
		spaces(g.ContentLineLength-used+s.SeparatorLength) +
		s.BorderIcon
}

func listItemLine(s Spec, g Geometry, item string) string {
	used := s.MinPadding + s.ListIconLength + 2*s.SeparatorLength + textWidth(item)
	return s.BorderIcon +
		spaces(s.MinPadding) +
		s.ListIcon +
		spaces(s.SeparatorLength) +
		item +
		spaces(g.ContentLineLength-used+s.SeparatorLength) +
		s.BorderIcon
}
