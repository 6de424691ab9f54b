package infobox

import (
	"fmt"
	"math"
	"sort"
)

// Parameter names as they appear in spec documents and error messages.
const (
	ParamTitle            = "title"
	ParamNote             = "note"
	ParamListTitle        = "list_title"
	ParamListItems        = "list_items"
	ParamBorderIcon       = "border_icon"
	ParamBorderIconLength = "border_icon_length"
	ParamTitleIcon        = "title_icon"
	ParamTitleIconLength  = "title_icon_length"
	ParamListIcon         = "list_icon"
	ParamListIconLength   = "list_icon_length"
	ParamSeparatorLength  = "separator_length"
	ParamMinPadding       = "min_padding"
)

// Validate reports the first value violation in s, or nil.
func (s Spec) Validate() error {
	switch {
	case s.Title == "":
		return &ValueError{Param: ParamTitle, Constraint: "must not be empty"}
	case s.BorderIcon == "":
		return &ValueError{Param: ParamBorderIcon, Constraint: "must not be empty"}
	case s.TitleIcon == "":
		return &ValueError{Param: ParamTitleIcon, Constraint: "must not be empty"}
	case s.ListIcon == "":
		return &ValueError{Param: ParamListIcon, Constraint: "must not be empty"}
	case s.BorderIconLength < 1:
		return &ValueError{Param: ParamBorderIconLength, Constraint: fmt.Sprintf("must be at least 1, got %d", s.BorderIconLength)}
	case s.TitleIconLength < 1:
		return &ValueError{Param: ParamTitleIconLength, Constraint: fmt.Sprintf("must be at least 1, got %d", s.TitleIconLength)}
	case s.ListIconLength < 1:
		return &ValueError{Param: ParamListIconLength, Constraint: fmt.Sprintf("must be at least 1, got %d", s.ListIconLength)}
	case s.SeparatorLength < 0:
		return &ValueError{Param: ParamSeparatorLength, Constraint: fmt.Sprintf("must not be negative, got %d", s.SeparatorLength)}
	case s.MinPadding < 0:
		return &ValueError{Param: ParamMinPadding, Constraint: fmt.Sprintf("must not be negative, got %d", s.MinPadding)}
	}
	return nil
}

// ParseSpec builds a Spec from a dynamically typed document such as a decoded
// JSON or YAML file. Missing parameters take their default values.
//
// All type checks run before any value check, so a mistyped parameter is
// always reported ahead of an out-of-range one.
func ParseSpec(raw map[string]any) (Spec, error) {
	spec := NewSpec("")

	texts := []struct {
		name     string
		dst      *string
		optional bool
	}{
		{ParamTitle, &spec.Title, false},
		{ParamNote, &spec.Note, true},
		{ParamListTitle, &spec.ListTitle, true},
	}
	for _, f := range texts {
		v, ok := raw[f.name]
		if !ok || (v == nil && f.optional) {
			continue
		}
		s, ok := v.(string)
		if !ok {
			want := "a string"
			if f.optional {
				want = "a string or null"
			}
			return Spec{}, &TypeError{Param: f.name, Want: want, Got: typeName(v)}
		}
		*f.dst = s
	}

	if v, ok := raw[ParamListItems]; ok && v != nil {
		items, err := parseListItems(v)
		if err != nil {
			return Spec{}, err
		}
		spec.ListItems = items
	}

	fields := []struct {
		name string
		str  *string
		num  *int
	}{
		{name: ParamBorderIcon, str: &spec.BorderIcon},
		{name: ParamBorderIconLength, num: &spec.BorderIconLength},
		{name: ParamTitleIcon, str: &spec.TitleIcon},
		{name: ParamTitleIconLength, num: &spec.TitleIconLength},
		{name: ParamListIcon, str: &spec.ListIcon},
		{name: ParamListIconLength, num: &spec.ListIconLength},
		{name: ParamSeparatorLength, num: &spec.SeparatorLength},
		{name: ParamMinPadding, num: &spec.MinPadding},
	}
	for _, f := range fields {
		v, ok := raw[f.name]
		if !ok {
			continue
		}
		if f.str != nil {
			s, ok := v.(string)
			if !ok {
				return Spec{}, &TypeError{Param: f.name, Want: "a string", Got: typeName(v)}
			}
			*f.str = s
			continue
		}
		n, ok := asInt(v)
		if !ok {
			return Spec{}, &TypeError{Param: f.name, Want: "an integer", Got: typeName(v)}
		}
		*f.num = n
	}

	if err := checkUnknown(raw); err != nil {
		return Spec{}, err
	}

	if err := spec.Validate(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

func parseListItems(v any) ([]string, error) {
	switch items := v.(type) {
	case []string:
		return append([]string(nil), items...), nil
	case []any:
		out := make([]string, 0, len(items))
		for i, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, &TypeError{Param: fmt.Sprintf("%s[%d]", ParamListItems, i), Want: "a string", Got: typeName(item)}
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, &TypeError{Param: ParamListItems, Want: "a list of strings or null", Got: typeName(v)}
	}
}

var knownParams = map[string]bool{
	ParamTitle: true, ParamNote: true, ParamListTitle: true, ParamListItems: true,
	ParamBorderIcon: true, ParamBorderIconLength: true,
	ParamTitleIcon: true, ParamTitleIconLength: true,
	ParamListIcon: true, ParamListIconLength: true,
	ParamSeparatorLength: true, ParamMinPadding: true,
}

func checkUnknown(raw map[string]any) error {
	var unknown []string
	for k := range raw {
		if !knownParams[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return &TypeError{Param: unknown[0], Want: "a known parameter", Got: "unknown parameter"}
}

// asInt accepts Go integers and integral floats, which is how encoding/json
// decodes numbers into an interface.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	}
	return 0, false
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func typeName(v any) string {
	switch n := v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case []any, []string:
		return "list"
	case map[string]any:
		return "object"
	case float32, float64:
		if _, ok := asInt(n); ok {
			return "integer"
		}
		return "number"
	}
	if _, ok := asInt(v); ok {
		return "integer"
	}
	return fmt.Sprintf("%T", v)
}
