package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "69" // Blue - app name, titles
	ColorSecondary Color = "35" // Green - confirmations
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorWarning   Color = "178" // Gold - destructive prompts
)

// Productivity scale colors, low to high
var ProductivityColors = [...]Color{"160", "166", "178", "107", "35"}
