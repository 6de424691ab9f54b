package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no ansi codes",
			input:    "***   ***",
			expected: "***   ***",
		},
		{
			name:     "256 color code",
			input:    "\x1b[38;5;99m*\x1b[0m",
			expected: "*",
		},
		{
			name:     "bold and color",
			input:    "\x1b[1;33mtitle\x1b[0m and \x1b[32mnote\x1b[0m",
			expected: "title and note",
		},
		{
			name:     "cursor visibility",
			input:    "\x1b[?25lbanner\x1b[?25h",
			expected: "banner",
		},
		{
			name:     "osc8 hyperlink",
			input:    "\x1b]8;;http://localhost:8080/red-team-video\x1b\\red\x1b]8;;\x1b\\",
			expected: "red",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripANSI(tt.input))
		})
	}
}

func TestLines(t *testing.T) {
	assert.Equal(t, 1, Lines("***"))
	assert.Equal(t, 3, Lines("***\n* *\n***"))
	assert.Equal(t, 2, Lines("\x1b[31m***\x1b[0m\n***"))
}

func TestWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "single line", input: "hello", expected: 5},
		{name: "widest line wins", input: "short\nlonger line\nmed", expected: 11},
		{name: "ansi codes ignored", input: "\x1b[31mhello world\x1b[0m", expected: 11},
		{name: "wide runes", input: "ロボット", expected: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Width(tt.input))
		})
	}
}

func TestLineWidths(t *testing.T) {
	assert.Equal(t, []int{3, 1, 0}, LineWidths("\x1b[1m***\x1b[0m\n*\n"))
}

func TestNormalizeOutput(t *testing.T) {
	input := "line with trailing spaces   \n\x1b[31mcolored\x1b[0m\r\n"
	assert.Equal(t, "line with trailing spaces\ncolored\n", normalizeOutput(input))
}

func TestAssertUpdateAndCompare(t *testing.T) {
	dir := t.TempDir()

	t.Setenv(UpdateEnv, "1")
	New(t).WithDir(dir).Assert("box", "***\n* *\n***\n")

	data, err := os.ReadFile(filepath.Join(dir, "box.golden"))
	require.NoError(t, err)
	assert.Equal(t, "***\n* *\n***\n", string(data))

	t.Setenv(UpdateEnv, "")
	New(t).WithDir(dir).Assert("box", "\x1b[35m***\x1b[0m\n* *  \n***\n")
}
