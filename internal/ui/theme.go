package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Resmigul theme (CLI + TUI).
// Kept intentionally small: reusable styles, three palettes, a few emojis.

const (
	IconTap     = "👆"
	IconSparkle = "✨"
	IconFlame   = "🔥"
	IconCoin    = "🪙"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconGift    = "🎁"
	IconCart    = "🛒"
	IconQuest   = "🎯"
	IconChart   = "📊"
	IconDone    = "✅"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
)

// Palette maps the app's selectable themes onto terminal colors.
type Palette struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Good    lipgloss.Color
	Warn    lipgloss.Color
	Bad     lipgloss.Color
	Muted   lipgloss.Color
	Gold    lipgloss.Color
}

var palettes = map[string]Palette{
	"crystal": {
		Primary: lipgloss.Color("33"),  // blue
		Accent:  lipgloss.Color("43"),  // teal
		Good:    lipgloss.Color("42"),  // green
		Warn:    lipgloss.Color("214"), // orange
		Bad:     lipgloss.Color("196"), // red
		Muted:   lipgloss.Color("247"), // gray
		Gold:    lipgloss.Color("220"),
	},
	"dark": {
		Primary: lipgloss.Color("63"),
		Accent:  lipgloss.Color("75"),
		Good:    lipgloss.Color("35"),
		Warn:    lipgloss.Color("208"),
		Bad:     lipgloss.Color("160"),
		Muted:   lipgloss.Color("242"),
		Gold:    lipgloss.Color("178"),
	},
	"neon": {
		Primary: lipgloss.Color("201"), // fuchsia
		Accent:  lipgloss.Color("51"),  // cyan
		Good:    lipgloss.Color("46"),
		Warn:    lipgloss.Color("226"),
		Bad:     lipgloss.Color("197"),
		Muted:   lipgloss.Color("90"),
		Gold:    lipgloss.Color("227"),
	},
}

var (
	Title = lipgloss.NewStyle().Bold(true)
	H2    = lipgloss.NewStyle().Bold(true)
	Muted = lipgloss.NewStyle()
	Key   = lipgloss.NewStyle().Bold(true)
	Good  = lipgloss.NewStyle().Bold(true)
	Warn  = lipgloss.NewStyle().Bold(true)
	Bad   = lipgloss.NewStyle().Bold(true)
	Gold  = lipgloss.NewStyle().Bold(true)
	Dim   = lipgloss.NewStyle()

	Panel      = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).Padding(0, 1)
	PanelTitle = lipgloss.NewStyle().Bold(true)
)

func init() {
	Apply("crystal")
}

// Apply switches every exported style to the named palette. Unknown names
// fall back to crystal.
func Apply(theme string) {
	p, ok := palettes[strings.ToLower(strings.TrimSpace(theme))]
	if !ok {
		p = palettes["crystal"]
	}
	Title = Title.Foreground(p.Accent)
	H2 = H2.Foreground(p.Primary)
	Muted = Muted.Foreground(p.Muted)
	Key = Key.Foreground(p.Primary)
	Good = Good.Foreground(p.Good)
	Warn = Warn.Foreground(p.Warn)
	Bad = Bad.Foreground(p.Bad)
	Gold = Gold.Foreground(p.Gold)
	Dim = Dim.Foreground(p.Muted)
	Panel = Panel.BorderForeground(p.Muted)
	PanelTitle = PanelTitle.Foreground(p.Primary)
}

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

// ProgressBar renders current/total as a fixed-width bar.
func ProgressBar(current, total, width int) string {
	if width < 4 {
		width = 4
	}
	if total <= 0 {
		total = 1
	}
	fill := current * width / total
	if fill > width {
		fill = width
	}
	if fill < 0 {
		fill = 0
	}
	bar := strings.Repeat("█", fill) + strings.Repeat("░", width-fill)
	if current >= total {
		return Good.Render(bar)
	}
	return H2.Render(bar)
}
