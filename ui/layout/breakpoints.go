package layout

// Screen margins
const (
	// MenuHeight is the number of lines reserved under the banner for the key menu.
	MenuHeight = 1

	// StatusHeight is the number of lines reserved for the spinner/status line.
	StatusHeight = 1

	// BannerGap is the number of blank lines between the banner and the status line.
	BannerGap = 1

	// WarningHeight is the height of the terminal-too-small warning.
	WarningHeight = 1
)
