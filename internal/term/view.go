// Package term renders game output for a terminal.
package term

import (
	"fmt"
	"io"
	"strings"

	"example.com/crumpets/internal/game"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 20

// View writes styled game output to a terminal. With color disabled it writes
// plain text, which is also what tests compare against.
type View struct {
	out   io.Writer
	color bool

	styles map[game.Clue]lipgloss.Style
	bagels lipgloss.Style
	hint   lipgloss.Style
	bar    lipgloss.Style
	muted  lipgloss.Style
	good   lipgloss.Style
	bad    lipgloss.Style
}

func NewView(out io.Writer, color bool) *View {
	r := lipgloss.NewRenderer(out)
	return &View{
		out:   out,
		color: color,
		styles: map[game.Clue]lipgloss.Style{
			game.Fermi:   r.NewStyle().Foreground(lipgloss.Color("#8BC34A")).Bold(true),
			game.Pico:    r.NewStyle().Foreground(lipgloss.Color("#FFC107")),
			game.Over:    r.NewStyle().Foreground(lipgloss.Color("#BA68C8")),
			game.Crumpet: r.NewStyle().Foreground(lipgloss.Color("#757575")),
		},
		bagels: r.NewStyle().Foreground(lipgloss.Color("#e53935")).Bold(true),
		hint:   r.NewStyle().Foreground(lipgloss.Color("#2196F3")),
		bar:    r.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
		muted:  r.NewStyle().Foreground(lipgloss.Color("#757575")),
		good:   r.NewStyle().Foreground(lipgloss.Color("#8BC34A")).Bold(true),
		bad:    r.NewStyle().Foreground(lipgloss.Color("#e53935")).Bold(true),
	}
}

func (v *View) render(s lipgloss.Style, text string) string {
	if !v.color {
		return text
	}
	return s.Render(text)
}

// Clues renders a result as space separated tags, or Bagels.
func (v *View) Clues(res game.Result) string {
	if res.Bagels {
		return v.render(v.bagels, game.BagelsText)
	}
	parts := make([]string, len(res.Clues))
	for i, c := range res.Clues {
		parts[i] = v.render(v.styles[c], string(c))
	}
	return strings.Join(parts, " ")
}

// Progress renders a percentage as "[#####---------------] 25.00%".
func (v *View) Progress(pct float64) string {
	filled := int(pct / 100 * barWidth)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	bar := v.render(v.bar, strings.Repeat("#", filled)) + v.render(v.muted, strings.Repeat("-", barWidth-filled))
	return fmt.Sprintf("[%s] %.2f%%", bar, pct)
}

func (v *View) Hints(hints []string) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = v.render(v.hint, h)
	}
	return strings.Join(parts, ", ")
}

func (v *View) Good(text string) string  { return v.render(v.good, text) }
func (v *View) Bad(text string) string   { return v.render(v.bad, text) }
func (v *View) Muted(text string) string { return v.render(v.muted, text) }

func (v *View) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(v.out, format, args...)
}

func (v *View) Println(args ...any) {
	_, _ = fmt.Fprintln(v.out, args...)
}
