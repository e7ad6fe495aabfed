package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	SymDone, SymTodo string
	BarFull, BarEmpty string
}

var current = classic()

func classic() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Border:      lipgloss.NormalBorder(),
		BorderColor: lipgloss.Color("8"),
		SymDone:     "✔", SymTodo: "•",
		BarFull: "█", BarEmpty: "░",
	}
}

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		t := classic()
		t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
		t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		t.Border = lipgloss.RoundedBorder()
		t.BorderColor = lipgloss.Color("13")
		current = t
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Title: plain, Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,
			Border:      lipgloss.ASCIIBorder(),
			BorderColor: lipgloss.NoColor{},
			SymDone:     "x", SymTodo: "-",
			BarFull: "#", BarEmpty: ".",
		}
	default:
		current = classic()
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }
