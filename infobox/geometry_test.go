package infobox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundUp(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want int
	}{
		{name: "rounds up to next multiple", x: 7, y: 3, want: 9},
		{name: "exact multiple unchanged", x: 9, y: 3, want: 9},
		{name: "smaller than multiple", x: 1, y: 5, want: 5},
		{name: "multiple of one", x: 42, y: 1, want: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RoundUp(tt.x, tt.y)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundUpRejectsNonPositive(t *testing.T) {
	for _, args := range [][2]int{{0, 3}, {3, 0}, {0, 0}, {-1, 3}, {3, -2}} {
		_, err := RoundUp(args[0], args[1])
		assert.ErrorIs(t, err, ErrInvalidArgument, "RoundUp(%d, %d)", args[0], args[1])
	}
}

func TestSplitSpaces(t *testing.T) {
	tests := []struct {
		n           int
		left, right int
	}{
		{n: 0, left: 0, right: 0},
		{n: 1, left: 0, right: 1},
		{n: 4, left: 2, right: 2},
		{n: 5, left: 2, right: 3},
		{n: 12, left: 6, right: 6},
	}

	for _, tt := range tests {
		left, right := SplitSpaces(tt.n)
		assert.Equal(t, tt.left, left, "left of %d", tt.n)
		assert.Equal(t, tt.right, right, "right of %d", tt.n)
		assert.Equal(t, tt.n, left+right)
	}
}

func TestMeasure(t *testing.T) {
	t.Run("title only", func(t *testing.T) {
		g, err := Measure(NewSpec("Press CTRL+C to exit"))
		require.NoError(t, err)
		// 20 + 2*(1+2+3)
		assert.Equal(t, 32, g.ContentLineLength)
		assert.Equal(t, 34, g.BoxLineLength)
	})

	t.Run("list items dominate", func(t *testing.T) {
		s := NewSpec("Hi")
		s.ListItems = []string{"short", "a much longer list item"}
		g, err := Measure(s)
		require.NoError(t, err)
		// 23 + 2*1 + 2 + 3
		assert.Equal(t, 30, g.ContentLineLength)
	})

	t.Run("rounded to border icon width", func(t *testing.T) {
		s := NewSpec("Hello")
		s.BorderIcon = "=-="
		s.BorderIconLength = 3
		g, err := Measure(s)
		require.NoError(t, err)
		// 5 + 12 = 17 -> 18
		assert.Equal(t, 18, g.ContentLineLength)
		assert.Equal(t, 24, g.BoxLineLength)
		assert.Zero(t, g.BoxLineLength%s.BorderIconLength)
	})

	t.Run("wide characters use display width", func(t *testing.T) {
		g, err := Measure(NewSpec("ロボット"))
		require.NoError(t, err)
		assert.Equal(t, 8+12, g.ContentLineLength)
	})

	t.Run("invalid spec", func(t *testing.T) {
		_, err := Measure(Spec{})
		assert.ErrorIs(t, err, ErrValue)
	})
}

func TestMinimumWidthsHonored(t *testing.T) {
	notes := []string{"", "n", "a considerably longer note than the title"}
	listTitles := []string{"", "Streams:", "A very long list heading for the box"}
	itemSets := [][]string{nil, {}, {"x"}, {"one", "an item wider than anything else here"}}

	for _, note := range notes {
		for _, listTitle := range listTitles {
			for _, items := range itemSets {
				s := NewSpec("Title")
				s.Note = note
				s.ListTitle = listTitle
				s.ListItems = items

				g, err := Measure(s)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, g.ContentLineLength, minTitleLength(s))
				assert.GreaterOrEqual(t, g.ContentLineLength, minNoteLength(s))
				assert.GreaterOrEqual(t, g.ContentLineLength, minListTitleLength(s))
				assert.GreaterOrEqual(t, g.ContentLineLength, minListItemsLength(s))
			}
		}
	}
}
