package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Timer styles
var (
	ClockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight).
			Padding(1, 0)

	FocusGoalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal).
			Italic(true)

	QuoteStyle = lipgloss.NewStyle().
			Foreground(ColorQuote).
			Italic(true)

	SessionCountStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)

	TabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Underline(true)

	TabStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)
)

// SessionColor returns the accent color for a session type value
func SessionColor(sessionType string) Color {
	switch sessionType {
	case "short-break":
		return ColorShortBreak
	case "long-break":
		return ColorLongBreak
	default:
		return ColorFocus
	}
}

// Sound styles
var (
	SoundPlayingStyle = lipgloss.NewStyle().
				Foreground(ColorShortBreak).
				Bold(true)

	SoundStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VolumeStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Task styles
var (
	TaskCompletedStyle = lipgloss.NewStyle().
				Foreground(ColorCompleted).
				Strikethrough(true)

	TaskDueStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	TaskOverdueStyle = lipgloss.NewStyle().
				Foreground(ColorOverdue).
				Bold(true)

	TaskSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	TaskTitleStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TaskUpcomingStyle = lipgloss.NewStyle().
				Foreground(ColorUpcoming)
)

// PriorityStyle returns the badge style for a priority value
func PriorityStyle(priority string) lipgloss.Style {
	switch priority {
	case "high":
		return lipgloss.NewStyle().Foreground(ColorPriorityHigh).Bold(true)
	case "low":
		return lipgloss.NewStyle().Foreground(ColorPriorityLow)
	default:
		return lipgloss.NewStyle().Foreground(ColorPriorityMedium)
	}
}

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Tip styles
var (
	TipKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	TipTextStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// Command palette styles
var (
	DimmedStyle = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	ScrollIndicatorStyle = lipgloss.NewStyle().
				Foreground(ColorScrollIndicator)

	PaletteBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.Border{Top: "─", Bottom: "─"}).
				BorderForeground(ColorMuted).
				Padding(0, 1)

	PaletteDescStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(ColorHintKey)

	FilterCursorStyle = lipgloss.NewStyle().
				Foreground(ColorSpinner)

	PaletteTitleStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	PaletteItemStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)

	PaletteShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)
)
