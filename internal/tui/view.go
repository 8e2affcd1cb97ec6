package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(lipgloss.Color("205"))

	unselectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(4).
				Foreground(lipgloss.Color("250"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	detailStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))

	tipItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2"))
)

func (m AppModel) View() string {
	width := m.WindowSize.Width
	height := m.WindowSize.Height
	if width == 0 {
		width = 80
	}

	netWidth := width - 6
	if netWidth < 20 {
		netWidth = 20
	}
	leftWidth := netWidth / 2
	rightWidth := netWidth - leftWidth

	listHeight := height - 6
	if listHeight < 5 {
		listHeight = 5
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("histlint: %s (%d commands)",
		m.Analysis.HistoryFile, m.Analysis.Total())))
	b.WriteString("\n\n")

	left := m.renderList(leftWidth, listHeight)
	right := detailStyle.Width(rightWidth - 4).Render(m.renderDetails())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n")

	if m.InputMode {
		b.WriteString("Filter: " + m.InputBuffer.View())
	} else if m.SearchActive {
		b.WriteString(dimStyle.Render(fmt.Sprintf("filter: %q (esc to clear)  ", m.InputBuffer.Value())))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓ select · / filter · q quit"))
	return b.String()
}

func (m AppModel) renderList(width, height int) string {
	if len(m.FilteredIndices) == 0 {
		return unselectedItemStyle.Render("No commands match.")
	}

	// Scroll the window so the selection stays visible.
	start := 0
	if m.SelectedIdx >= height {
		start = m.SelectedIdx - height + 1
	}
	end := start + height
	if end > len(m.FilteredIndices) {
		end = len(m.FilteredIndices)
	}

	var lines []string
	for i := start; i < end; i++ {
		stat := m.Analysis.Ranked[m.FilteredIndices[i]]
		label := stat.Command
		if maxLabel := width - 12; maxLabel > 3 && len(label) > maxLabel {
			label = label[:maxLabel-1] + "…"
		}
		line := fmt.Sprintf("%s %s", label, dimStyle.Render(fmt.Sprintf("×%d", stat.Count)))
		if i == m.SelectedIdx {
			line = selectedItemStyle.Render("> " + line)
		} else {
			line = unselectedItemStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func (m AppModel) renderDetails() string {
	if len(m.FilteredIndices) == 0 || m.SelectedIdx >= len(m.FilteredIndices) {
		return dimStyle.Render("Nothing selected.")
	}
	stat := m.Analysis.Ranked[m.FilteredIndices[m.SelectedIdx]]
	total := m.Analysis.Total()

	var b strings.Builder
	b.WriteString(stat.Command + "\n\n")
	if total > 0 {
		b.WriteString(fmt.Sprintf("Used %d times (%.1f%% of history)\n",
			stat.Count, 100*float64(stat.Count)/float64(total)))
	}

	var tips []string
	for _, s := range m.Analysis.Suggestions[stat.Command] {
		tips = append(tips, "- "+s.Tip)
	}
	for _, s := range m.Analysis.Misc {
		if s.Command == stat.Command {
			tips = append(tips, "- "+s.Tip)
		}
	}
	if len(tips) > 0 {
		b.WriteString("\n")
		b.WriteString(tipItemStyle.Render(strings.Join(tips, "\n")))
	} else {
		b.WriteString("\n" + dimStyle.Render("No suggestions for this command."))
	}
	return b.String()
}
