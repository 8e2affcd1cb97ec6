package lint

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"histlint/internal/model"
)

// Report layout constants, shared by every section.
const (
	headerWidth = 79
	cmdColumn   = 39
	statColumn  = 20
	envIndent   = 20
)

var (
	headerStyle = lipgloss.NewStyle().Reverse(true)
	tipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // green
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // red
)

// Reporter renders the report sections to a writer.
type Reporter struct {
	w    io.Writer
	opts Options
}

func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{w: w, opts: opts}
}

// Header prints an inverse-video section title padded to the full
// report width.
func (r *Reporter) Header(title string, leadingNewline bool) {
	if leadingNewline {
		fmt.Fprintln(r.w)
	}
	fmt.Fprintln(r.w, headerStyle.Render(fmt.Sprintf("%-*s", headerWidth, title+" ")))
}

// Tip prints a green suggestion line. caret > 0 draws a ^-- marker at
// that column; otherwise the tip gets a plain "- " bullet.
func (r *Reporter) Tip(tip string, caret int) {
	arrow := "- "
	if caret > 0 {
		arrow = strings.Repeat(" ", caret) + "^-- "
	}
	fmt.Fprintln(r.w, tipStyle.Render(arrow+tip))
}

// Warn prints a red warning line.
func (r *Reporter) Warn(warn string) {
	fmt.Fprintln(r.w, warnStyle.Render("WARNING: "+warn))
}

func (r *Reporter) suggestion(s model.Suggestion) {
	if s.Command != "" {
		fmt.Fprintln(r.w, s.Command)
	}
	r.Tip(s.Tip, s.Caret)
}

// commandStats prints one ranked entry: the command, its share of the
// history to one decimal place, and count/total.
func (r *Reporter) commandStats(cmd string, count, total int) {
	percent := fmt.Sprintf("%.1f%%", 100*float64(count)/float64(total))
	times := fmt.Sprintf("%d/%d", count, total)
	fmt.Fprintf(r.w, "%-*s%*s%*s\n", cmdColumn, cmd, statColumn, percent, statColumn, times)
}

// Favorites reports the most-used command prefixes.
func (r *Reporter) Favorites(a model.Analysis) {
	r.Header(fmt.Sprintf("Favorite %d", r.opts.Favorites), false)
	if a.Total() == 0 {
		fmt.Fprintln(r.w, "No commands to report.")
		return
	}
	for _, stat := range a.Favorites {
		r.commandStats(stat.Command, stat.Count, a.Total())
	}
}

// TopWithArguments reports the most-repeated full commands, with any
// alias/ignore suggestions inline, then the aggregate typing tip.
func (r *Reporter) TopWithArguments(a model.Analysis) {
	r.Header(fmt.Sprintf("Top %d with arguments", r.opts.WithArgs), true)
	if a.Total() == 0 {
		fmt.Fprintln(r.w, "No commands to report.")
		return
	}
	for _, stat := range a.TopWithArgs {
		r.commandStats(stat.Command, stat.Count, a.Total())
		for _, s := range a.Suggestions[stat.Command] {
			r.suggestion(s)
		}
	}
	r.Tip(fmt.Sprintf("Your commands tend toward %d chars with %d argument(s).",
		a.AvgLength, a.AvgArgs), 0)
}

// Miscellaneous reports the global shortening lints.
func (r *Reporter) Miscellaneous(a model.Analysis) {
	r.Header("Miscellaneous", true)
	for _, s := range a.Misc {
		r.suggestion(s)
	}
}
