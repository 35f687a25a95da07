// Package render formats movement log lines for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/talgya/flyin/internal/engine"
	"github.com/talgya/flyin/internal/world"
)

// Palette maps hub color metadata to ANSI 256 colors.
var Palette = map[string]lipgloss.Color{
	"blue":    lipgloss.Color("4"),
	"brown":   lipgloss.Color("94"),
	"crimson": lipgloss.Color("160"),
	"cyan":    lipgloss.Color("6"),
	"gold":    lipgloss.Color("220"),
	"gray":    lipgloss.Color("7"),
	"green":   lipgloss.Color("2"),
	"lime":    lipgloss.Color("118"),
	"magenta": lipgloss.Color("5"),
	"orange":  lipgloss.Color("208"),
	"purple":  lipgloss.Color("129"),
	"red":     lipgloss.Color("1"),
	"yellow":  lipgloss.Color("3"),
	"rainbow": lipgloss.Color("201"),
	"darkred": lipgloss.Color("52"),
	"violet":  lipgloss.Color("93"),
}

// Renderer turns events into log tokens. The zero value renders plain text.
type Renderer struct {
	lg     *lipgloss.Renderer
	styles map[string]lipgloss.Style
}

// NewPlain returns a renderer that emits uncolored tokens.
func NewPlain() *Renderer {
	return &Renderer{}
}

// NewStyled returns a renderer that paints hub names in their map color,
// writing ANSI sequences for w regardless of whether w is a terminal.
func NewStyled(w io.Writer) *Renderer {
	lg := lipgloss.NewRenderer(w)
	lg.SetColorProfile(termenv.ANSI256)

	styles := make(map[string]lipgloss.Style, len(Palette))
	for name, c := range Palette {
		styles[name] = lg.NewStyle().Foreground(c)
	}
	return &Renderer{lg: lg, styles: styles}
}

// Styled reports whether the renderer emits color.
func (r *Renderer) Styled() bool {
	return r.lg != nil
}

// hub renders a hub name. Unknown hubs and colors fall back to plain text.
func (r *Renderer) hub(g *world.Graph, name string, emphasize bool) string {
	if r.lg == nil {
		return name
	}
	style := r.lg.NewStyle()
	if h, err := g.Hub(name); err == nil {
		if s, ok := r.styles[h.Color]; ok {
			style = s
		}
	}
	if emphasize {
		style = style.Bold(true).Underline(true)
	}
	return style.Render(name)
}

// Token renders one event. Restricted entries emphasize the destination.
func (r *Renderer) Token(g *world.Graph, ev engine.Event) string {
	switch ev.Kind {
	case engine.EventRestrictedEntry:
		return fmt.Sprintf("%s-%s-%s", ev.Drone, r.hub(g, ev.From, false), r.hub(g, ev.To, true))
	case engine.EventStationary:
		return fmt.Sprintf("%s-%s", ev.Drone, r.hub(g, ev.From, false))
	default:
		return fmt.Sprintf("%s-%s", ev.Drone, r.hub(g, ev.To, false))
	}
}

// Line renders a turn's events space-separated.
func (r *Renderer) Line(g *world.Graph, events []engine.Event) string {
	tokens := make([]string, len(events))
	for i, ev := range events {
		tokens[i] = r.Token(g, ev)
	}
	return strings.Join(tokens, " ")
}

// LineSink writes one rendered line per turn to W.
type LineSink struct {
	W        io.Writer
	Renderer *Renderer
	Graph    *world.Graph
}

// WriteTurn implements engine.Sink.
func (s *LineSink) WriteTurn(_ int, events []engine.Event) error {
	r := s.Renderer
	if r == nil {
		r = NewPlain()
	}
	_, err := fmt.Fprintln(s.W, r.Line(s.Graph, events))
	return err
}

// Summary is the closing line of a run.
func Summary(turns int) string {
	return fmt.Sprintf("Turns: %d", turns)
}
