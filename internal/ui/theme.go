package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shared CLI + TUI theme. Kept intentionally small: reusable styles and a
// few emojis.

const (
	IconTask    = "📝"
	IconDone    = "✅"
	IconUndone  = "↩️"
	IconPlus    = "➕"
	IconTrash   = "🗑️"
	IconTrophy  = "🏆"
	IconFlame   = "🔥"
	IconSnooze  = "💤"
	IconSparkle = "✨"
	IconPin     = "📍"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	Toast = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cAccent).Padding(0, 1)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// CategoryIcon maps a task category to its list marker.
func CategoryIcon(category string) string {
	switch category {
	case "daily":
		return IconFlame
	case "goal":
		return "🎯"
	default:
		return IconTask
	}
}

// Checkbox renders a completion marker.
func Checkbox(completed bool) string {
	if completed {
		return Good.Render("[x]")
	}
	return Muted.Render("[ ]")
}
