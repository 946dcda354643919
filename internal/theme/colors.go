package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Session type colors
const (
	ColorFocus      Color = "203" // Coral - focus sessions
	ColorLongBreak  Color = "75"  // Blue - long breaks
	ColorShortBreak Color = "78"  // Green - short breaks
)

// Task priority colors
const (
	ColorPriorityHigh   Color = "196" // Red
	ColorPriorityLow    Color = "34"  // Green
	ColorPriorityMedium Color = "214" // Orange
)

// UI semantic colors
const (
	ColorCompleted       Color = "243" // Gray - done tasks
	ColorDimmed          Color = "238" // Background behind overlays
	ColorError           Color = "196" // Bright red
	ColorHighlight       Color = "255" // White - emphasis
	ColorMuted           Color = "241" // Gray - secondary text
	ColorNormal          Color = "250" // Default text
	ColorOverdue         Color = "160" // Dark red
	ColorPaletteSelected Color = "237" // Selected palette row
	ColorScrollIndicator Color = "244"
	ColorSubtle          Color = "245" // Light gray - labels
	ColorUpcoming        Color = "220" // Yellow - due soon
	ColorVersion         Color = "240" // Dark gray
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorHintKey   Color = "226" // Yellow
	ColorQuote     Color = "183" // Lavender - motivational quotes
	ColorSpinner   Color = "205" // Pink
)
