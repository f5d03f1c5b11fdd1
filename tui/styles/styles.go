package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	PrimaryColor = lipgloss.Color("#F59E0B") // amber
	UpColor      = lipgloss.Color("#10B981") // green
	DownColor    = lipgloss.Color("#EF4444") // red
	BorderColor  = lipgloss.Color("#374151")

	TextColor          = lipgloss.Color("#F9FAFB")
	TextSecondaryColor = lipgloss.Color("#9CA3AF")
	TextMutedColor     = lipgloss.Color("#6B7280")
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextSecondaryColor)

	RowStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	StatusBarStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)
)

// Value styles
var (
	UpStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(UpColor)

	DownStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(DownColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)
)

// Mood style per categorical label.
var moodStyles = map[string]lipgloss.Style{
	"EUPHORIC": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B")),
	"BULLISH":  UpStyle,
	"NEUTRAL":  lipgloss.NewStyle().Foreground(TextSecondaryColor),
	"BEARISH":  DownStyle,
	"PANIC":    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B91C1C")),
}

// MoodStyle returns the style for a mood label.
func MoodStyle(label string) lipgloss.Style {
	if st, ok := moodStyles[label]; ok {
		return st
	}
	return RowStyle
}

// BotStyle renders text in a bot's profile color.
func BotStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// Signed renders a numeric string green when up, red when down.
func Signed(s string, v float64) string {
	switch {
	case v > 0:
		return UpStyle.Render(s)
	case v < 0:
		return DownStyle.Render(s)
	default:
		return MutedStyle.Render(s)
	}
}
