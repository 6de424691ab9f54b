package infobox

// Default styling values.
const (
	DefaultBorderIcon       = "*"
	DefaultBorderIconLength = 1
	DefaultTitleIcon        = "✨"
	DefaultTitleIconLength  = 2
	DefaultListIcon         = "➡️ "
	DefaultListIconLength   = 2
	DefaultSeparatorLength  = 1
	DefaultMinPadding       = 3
)

// Style holds the glyphs and spacing used to draw a box.
//
// Icon lengths are the display widths of the icons in terminal cells. They
// are supplied by the caller because the on-screen width of emoji and other
// multi-codepoint glyphs cannot be derived from the string itself.
type Style struct {
	// BorderIcon is repeated to draw the top and bottom rules and flanks every line.
	BorderIcon       string `json:"border_icon" yaml:"border_icon"`
	BorderIconLength int    `json:"border_icon_length" yaml:"border_icon_length"`
	// TitleIcon is drawn on both sides of the title.
	TitleIcon       string `json:"title_icon" yaml:"title_icon"`
	TitleIconLength int    `json:"title_icon_length" yaml:"title_icon_length"`
	// ListIcon prefixes every list item.
	ListIcon       string `json:"list_icon" yaml:"list_icon"`
	ListIconLength int    `json:"list_icon_length" yaml:"list_icon_length"`
	// SeparatorLength is the number of spaces between an icon and its text.
	SeparatorLength int `json:"separator_length" yaml:"separator_length"`
	// MinPadding is the minimum blank space on each side of the widest line.
	MinPadding int `json:"min_padding" yaml:"min_padding"`
}

// DefaultStyle returns the default box style.
func DefaultStyle() Style {
	return Style{
		BorderIcon:       DefaultBorderIcon,
		BorderIconLength: DefaultBorderIconLength,
		TitleIcon:        DefaultTitleIcon,
		TitleIconLength:  DefaultTitleIconLength,
		ListIcon:         DefaultListIcon,
		ListIconLength:   DefaultListIconLength,
		SeparatorLength:  DefaultSeparatorLength,
		MinPadding:       DefaultMinPadding,
	}
}

// Spec describes the content of one info box. An empty Note or ListTitle and
// a nil or empty ListItems are treated as absent.
type Spec struct {
	Title     string
	Note      string
	ListTitle string
	ListItems []string

	Style
}

// NewSpec returns a spec for title using the default style.
func NewSpec(title string) Spec {
	return Spec{
		Title: title,
		Style: DefaultStyle(),
	}
}

func (s Spec) hasNote() bool      { return s.Note != "" }
func (s Spec) hasListTitle() bool { return s.ListTitle != "" }
func (s Spec) hasListItems() bool { return len(s.ListItems) > 0 }
