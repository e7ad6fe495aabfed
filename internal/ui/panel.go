package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a bar followed by the done/total count.
func ProgressBar(done, total, width int) string {
	t := Current()
	if width < 5 {
		width = 5
	}
	filled := 0
	if total > 0 {
		filled = int(float64(done) / float64(total) * float64(width))
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarEmpty, width-filled)
	return fmt.Sprintf("%s %d/%d", bar, done, total)
}

// PanelString frames lines in a bordered box using the current theme.
func PanelString(lines []string) string {
	t := Current()
	border := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// Panel writes the framed box to w.
func Panel(w io.Writer, lines []string) {
	fmt.Fprintln(w, PanelString(lines))
}
