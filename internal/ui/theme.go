package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TaskHero theme (CLI + TUI).

const (
	IconHero    = "🦸"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconGift    = "🎁"
	IconFlame   = "🔥"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconUndo    = "↩️"
	IconTrash   = "🗑️"
	IconTarget  = "🎯"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray

	cGold   = lipgloss.Color("#FFD700")
	cSilver = lipgloss.Color("#C0C0C0")
	cBronze = lipgloss.Color("#CD7F32")
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)

	Gold   = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Silver = lipgloss.NewStyle().Bold(true).Foreground(cSilver)
	Bronze = lipgloss.NewStyle().Bold(true).Foreground(cBronze)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
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

// TierText renders a tier name in its medal colour.
func TierText(tier string, text string) string {
	switch strings.ToLower(tier) {
	case "gold":
		return Gold.Render(text)
	case "silver":
		return Silver.Render(text)
	case "bronze":
		return Bronze.Render(text)
	default:
		return Muted.Render(text)
	}
}

// PriorityText colours a priority label by weight.
func PriorityText(priority string) string {
	switch strings.ToLower(priority) {
	case "high":
		return Bad.Render(priority)
	case "medium":
		return Warn.Render(priority)
	default:
		return Muted.Render(priority)
	}
}

func Checkbox(done bool) string {
	if done {
		return Good.Render("[x]")
	}
	return "[ ]"
}

// ProgressBar draws a fixed-width bar for value out of total.
func ProgressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := value * width / total
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// WeekStrip renders one cell per day, oldest first, filled when count > 0.
func WeekStrip(counts []int) string {
	var b strings.Builder
	for _, n := range counts {
		if n > 0 {
			b.WriteString(Good.Render("■"))
		} else {
			b.WriteString(Muted.Render("□"))
		}
	}
	return b.String()
}
