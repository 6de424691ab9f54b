package app

import (
	"context"
	"errors"
	"fllvideo/config"
	"fllvideo/infobox"
	"fllvideo/log"
	"fllvideo/ui"
	"fllvideo/ui/layout"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Run shows the startup banner full screen until the user exits or ctx is
// cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	styles := ui.NewBoxStyles(os.Stdout, ui.ColorEnabled(cfg.Color, os.Stdout))
	p := tea.NewProgram(
		newWatch(cfg, config.LoadConfig, styles),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

type watch struct {
	cfg    *config.Config
	load   func() *config.Config
	styles ui.BoxStyles

	// lines is the colorized banner; err is set instead when the banner
	// cannot be rendered.
	lines    []string
	boxWidth int
	err      error

	width, height int
	placement     layout.Placement

	spinner  spinner.Model
	menu     *ui.Menu
	reloaded int
}

func newWatch(cfg *config.Config, load func() *config.Config, styles ui.BoxStyles) *watch {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(ui.BorderColor)

	w := &watch{
		cfg:     cfg,
		load:    load,
		styles:  styles,
		spinner: s,
		menu:    ui.NewMenu(keys.Reload, keys.Quit),
	}
	w.render()
	return w
}

// render rebuilds the banner from the current config.
func (w *watch) render() {
	defer log.GetProfiler().Track("banner")()

	spec := w.cfg.BannerSpec()
	lines, err := infobox.Lines(spec)
	if err != nil {
		log.ErrorLog.Printf("failed to render banner: %v", err)
		w.lines, w.boxWidth, w.err = nil, 0, err
		return
	}
	g, err := infobox.Measure(spec)
	if err != nil {
		w.lines, w.boxWidth, w.err = nil, 0, err
		return
	}

	w.lines = w.styles.Colorize(lines, spec.BorderIcon)
	w.boxWidth = g.BoxLineLength
	w.err = nil
	w.updatePlacement()
	log.RenderTrace("banner", "%d lines, %d cells wide", len(lines), g.BoxLineLength)
}

func (w *watch) updatePlacement() {
	w.placement = layout.ComputePlacement(w.width, w.height, w.boxWidth, len(w.lines))
	w.menu.SetWidth(w.width)
}

func (w *watch) Init() tea.Cmd {
	return w.spinner.Tick
}

func (w *watch) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width, w.height = msg.Width, msg.Height
		w.updatePlacement()
		log.LayoutTrace("watch resized to %dx%d, banner at (%d,%d)", w.width, w.height, w.placement.Left, w.placement.Top)
		return w, nil
	case tea.KeyMsg:
		log.KeyTrace("watch key %q", msg.String())
		switch {
		case key.Matches(msg, keys.Quit):
			return w, tea.Quit
		case key.Matches(msg, keys.Reload):
			w.cfg = w.load()
			w.reloaded++
			w.render()
			log.InfoLog.Printf("reloaded config (%d)", w.reloaded)
		}
		return w, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		w.spinner, cmd = w.spinner.Update(msg)
		return w, cmd
	}
	return w, nil
}

func (w *watch) View() string {
	start := time.Now()
	defer func() { log.GetProfiler().Frame(time.Since(start)) }()

	if w.err != nil {
		return fmt.Sprintf("cannot render banner: %v\n\n%s", w.err, w.menu.String())
	}

	var b strings.Builder
	p := w.placement
	if p.ShowMinWarning {
		minW, minH := layout.MinSize(p.BoxWidth, p.BoxHeight)
		warning := fmt.Sprintf("terminal too small: need %dx%d, have %dx%d", minW, minH, w.width, w.height)
		b.WriteString(lipgloss.NewStyle().Foreground(ui.WarningColor).Render(warning))
		b.WriteString("\n")
	} else {
		b.WriteString(strings.Repeat("\n", p.Top))
	}

	indent := strings.Repeat(" ", p.Left)
	for _, line := range w.lines {
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("\n", layout.BannerGap))
	status := w.spinner.View() + " " + lipgloss.NewStyle().Foreground(ui.TextMuted).Render(w.status())
	b.WriteString(lipgloss.PlaceHorizontal(max(w.width, lipgloss.Width(status)), lipgloss.Center, status))
	b.WriteString("\n")
	b.WriteString(w.menu.String())
	return b.String()
}

func (w *watch) status() string {
	n := len(w.cfg.Stream.Streams)
	noun := "streams"
	if n == 1 {
		noun = "stream"
	}
	return fmt.Sprintf("%d %s configured on %s:%d", n, noun, w.cfg.Stream.Host, w.cfg.Stream.Port)
}
