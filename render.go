package main

import (
	"encoding/json"
	"fllvideo/config"
	"fllvideo/infobox"
	"fllvideo/log"
	"fllvideo/ui"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// styleFlags holds the box style flags of the render command. Only flags the
// user actually set override the configured style.
type styleFlags struct {
	note       string
	listTitle  string
	items      []string
	specFile   string
	color      string
	copyOutput bool

	style infobox.Style
}

func (f *styleFlags) register(fs *pflag.FlagSet) {
	d := infobox.DefaultStyle()
	fs.StringVarP(&f.note, "note", "n", "", "Note shown under the title")
	fs.StringVarP(&f.listTitle, "list-title", "l", "", "Heading of the bulleted list")
	fs.StringArrayVarP(&f.items, "item", "i", nil, "List item (repeatable)")
	fs.StringVarP(&f.specFile, "spec", "f", "", "Read the box from a JSON or YAML file")
	fs.StringVar(&f.color, "color", "", "Color mode: 'auto', 'always' or 'never' (default from config)")
	fs.BoolVar(&f.copyOutput, "copy", false, "Also copy the rendered box to the clipboard")

	fs.StringVar(&f.style.BorderIcon, "border-icon", d.BorderIcon, "Glyph used to draw the border")
	fs.IntVar(&f.style.BorderIconLength, "border-icon-length", d.BorderIconLength, "Display width of the border glyph")
	fs.StringVar(&f.style.TitleIcon, "title-icon", d.TitleIcon, "Glyph on both sides of the title")
	fs.IntVar(&f.style.TitleIconLength, "title-icon-length", d.TitleIconLength, "Display width of the title glyph")
	fs.StringVar(&f.style.ListIcon, "list-icon", d.ListIcon, "Glyph in front of each list item")
	fs.IntVar(&f.style.ListIconLength, "list-icon-length", d.ListIconLength, "Display width of the list glyph")
	fs.IntVar(&f.style.SeparatorLength, "separator-length", d.SeparatorLength, "Spaces between an icon and its text")
	fs.IntVar(&f.style.MinPadding, "min-padding", d.MinPadding, "Minimum blank space on each side of the widest line")
}

// buildSpec combines the spec file (or the configured style), the title
// argument and the flags the user set, in that order of precedence.
func (f *styleFlags) buildSpec(fs *pflag.FlagSet, cfg *config.Config, args []string) (infobox.Spec, error) {
	spec := infobox.Spec{Style: cfg.Style}
	if f.specFile != "" {
		var err error
		spec, err = loadSpecFile(f.specFile)
		if err != nil {
			return infobox.Spec{}, err
		}
	}

	if len(args) > 0 {
		spec.Title = args[0]
	}
	if fs.Changed("note") {
		spec.Note = f.note
	}
	if fs.Changed("list-title") {
		spec.ListTitle = f.listTitle
	}
	if fs.Changed("item") {
		spec.ListItems = f.items
	}

	overrides := []struct {
		flag string
		str  *string
		num  *int
		src  any
	}{
		{flag: "border-icon", str: &spec.BorderIcon, src: f.style.BorderIcon},
		{flag: "border-icon-length", num: &spec.BorderIconLength, src: f.style.BorderIconLength},
		{flag: "title-icon", str: &spec.TitleIcon, src: f.style.TitleIcon},
		{flag: "title-icon-length", num: &spec.TitleIconLength, src: f.style.TitleIconLength},
		{flag: "list-icon", str: &spec.ListIcon, src: f.style.ListIcon},
		{flag: "list-icon-length", num: &spec.ListIconLength, src: f.style.ListIconLength},
		{flag: "separator-length", num: &spec.SeparatorLength, src: f.style.SeparatorLength},
		{flag: "min-padding", num: &spec.MinPadding, src: f.style.MinPadding},
	}
	for _, o := range overrides {
		if !fs.Changed(o.flag) {
			continue
		}
		if o.str != nil {
			*o.str = o.src.(string)
		} else {
			*o.num = o.src.(int)
		}
	}

	return spec, spec.Validate()
}

// loadSpecFile reads a box spec from a .json, .yaml or .yml file.
func loadSpecFile(path string) (infobox.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return infobox.Spec{}, fmt.Errorf("failed to read spec file: %w", err)
	}

	var raw map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return infobox.Spec{}, fmt.Errorf("failed to parse spec file %s: %w", path, err)
	}

	spec, err := infobox.ParseSpec(raw)
	if err != nil {
		return infobox.Spec{}, fmt.Errorf("invalid spec file %s: %w", path, err)
	}
	return spec, nil
}

// writeBox renders spec to w, colored when color is set, and returns the
// plain rendering.
func writeBox(w io.Writer, spec infobox.Spec, color bool) (string, error) {
	lines, err := infobox.Lines(spec)
	if err != nil {
		return "", err
	}
	plain := strings.Join(lines, "\n") + "\n"

	styled := ui.NewBoxStyles(w, color).Colorize(lines, spec.BorderIcon)
	if _, err := io.WriteString(w, strings.Join(styled, "\n")+"\n"); err != nil {
		return "", fmt.Errorf("failed to write info box: %w", err)
	}
	return plain, nil
}

// printBox writes spec to stdout honoring the color mode, and copies the
// plain box to the clipboard when asked.
func printBox(spec infobox.Spec, colorMode string, copyOutput bool) error {
	if err := config.ValidateColorMode(colorMode); err != nil {
		return err
	}
	plain, err := writeBox(os.Stdout, spec, ui.ColorEnabled(colorMode, os.Stdout))
	if err != nil {
		return err
	}
	if copyOutput {
		if err := clipboard.WriteAll(plain); err != nil {
			log.WarningLog.Printf("failed to copy info box to clipboard: %v", err)
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
	}
	return nil
}
