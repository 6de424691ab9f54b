package infobox

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Spec)
		param  string
	}{
		{name: "empty title", mutate: func(s *Spec) { s.Title = "" }, param: ParamTitle},
		{name: "empty border icon", mutate: func(s *Spec) { s.BorderIcon = "" }, param: ParamBorderIcon},
		{name: "empty title icon", mutate: func(s *Spec) { s.TitleIcon = "" }, param: ParamTitleIcon},
		{name: "empty list icon", mutate: func(s *Spec) { s.ListIcon = "" }, param: ParamListIcon},
		{name: "zero border icon length", mutate: func(s *Spec) { s.BorderIconLength = 0 }, param: ParamBorderIconLength},
		{name: "zero title icon length", mutate: func(s *Spec) { s.TitleIconLength = 0 }, param: ParamTitleIconLength},
		{name: "negative list icon length", mutate: func(s *Spec) { s.ListIconLength = -1 }, param: ParamListIconLength},
		{name: "negative separator", mutate: func(s *Spec) { s.SeparatorLength = -1 }, param: ParamSeparatorLength},
		{name: "negative padding", mutate: func(s *Spec) { s.MinPadding = -3 }, param: ParamMinPadding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpec("Hello")
			tt.mutate(&s)

			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValue)

			var valueErr *ValueError
			require.True(t, errors.As(err, &valueErr))
			assert.Equal(t, tt.param, valueErr.Param)
			assert.Contains(t, err.Error(), tt.param)
		})
	}

	t.Run("zero separator and padding are allowed", func(t *testing.T) {
		s := NewSpec("Hello")
		s.SeparatorLength = 0
		s.MinPadding = 0
		assert.NoError(t, s.Validate())
	})
}

func TestValidateReportsFirstViolation(t *testing.T) {
	s := Spec{Style: DefaultStyle()}
	s.MinPadding = -1

	var valueErr *ValueError
	require.True(t, errors.As(s.Validate(), &valueErr))
	assert.Equal(t, ParamTitle, valueErr.Param)
}

func TestParseSpec(t *testing.T) {
	t.Run("defaults fill missing parameters", func(t *testing.T) {
		s, err := ParseSpec(map[string]any{"title": "Hello"})
		require.NoError(t, err)
		assert.Equal(t, NewSpec("Hello"), s)
	})

	t.Run("json document", func(t *testing.T) {
		var raw map[string]any
		require.NoError(t, json.Unmarshal([]byte(`{
			"title": "Match",
			"note": null,
			"list_items": ["a", "b"],
			"border_icon": "#",
			"border_icon_length": 1,
			"min_padding": 2
		}`), &raw))

		s, err := ParseSpec(raw)
		require.NoError(t, err)
		assert.Equal(t, "Match", s.Title)
		assert.Empty(t, s.Note)
		assert.Equal(t, []string{"a", "b"}, s.ListItems)
		assert.Equal(t, "#", s.BorderIcon)
		assert.Equal(t, 2, s.MinPadding)
		assert.Equal(t, DefaultTitleIcon, s.TitleIcon)
	})

	t.Run("yaml document", func(t *testing.T) {
		var raw map[string]any
		require.NoError(t, yaml.Unmarshal([]byte("title: Match\nlist_title: Streams\nseparator_length: 0\n"), &raw))

		s, err := ParseSpec(raw)
		require.NoError(t, err)
		assert.Equal(t, "Streams", s.ListTitle)
		assert.Equal(t, 0, s.SeparatorLength)
	})

	t.Run("missing title is a value error", func(t *testing.T) {
		_, err := ParseSpec(map[string]any{})
		assert.ErrorIs(t, err, ErrValue)
		assert.Contains(t, err.Error(), ParamTitle)
	})
}

func TestParseSpecTypeErrors(t *testing.T) {
	tests := []struct {
		name  string
		raw   map[string]any
		param string
	}{
		{name: "title not text", raw: map[string]any{"title": 5}, param: ParamTitle},
		{name: "null title", raw: map[string]any{"title": nil}, param: ParamTitle},
		{name: "note not text", raw: map[string]any{"title": "t", "note": true}, param: ParamNote},
		{name: "list title not text", raw: map[string]any{"title": "t", "list_title": []any{"x"}}, param: ParamListTitle},
		{name: "list items not a list", raw: map[string]any{"title": "t", "list_items": "x"}, param: ParamListItems},
		{name: "list item not text", raw: map[string]any{"title": "t", "list_items": []any{"a", 2}}, param: "list_items[1]"},
		{name: "border icon not text", raw: map[string]any{"title": "t", "border_icon": 1}, param: ParamBorderIcon},
		{name: "length not integer", raw: map[string]any{"title": "t", "border_icon_length": "2"}, param: ParamBorderIconLength},
		{name: "fractional length", raw: map[string]any{"title": "t", "title_icon_length": 1.5}, param: ParamTitleIconLength},
		{name: "bool padding", raw: map[string]any{"title": "t", "min_padding": true}, param: ParamMinPadding},
		{name: "unknown parameter", raw: map[string]any{"title": "t", "colour": "red"}, param: "colour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSpec(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrType)

			var typeErr *TypeError
			require.True(t, errors.As(err, &typeErr))
			assert.Equal(t, tt.param, typeErr.Param)
		})
	}
}

func TestParseSpecTypeErrorBeforeValueError(t *testing.T) {
	_, err := ParseSpec(map[string]any{
		"title":       42,
		"min_padding": -1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrType)
	assert.NotErrorIs(t, err, ErrValue)

	// A later mistyped field still wins over an earlier bad value.
	_, err = ParseSpec(map[string]any{
		"title":      "",
		"list_items": []any{"ok", 3.0},
	})
	assert.ErrorIs(t, err, ErrType)
}
