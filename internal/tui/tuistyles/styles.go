package tuistyles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by every scene and component
var (
	ColorPrimary   = lipgloss.Color("#2C7A4B")
	ColorSecondary = lipgloss.Color("#3E8E6E")
	ColorAccent    = lipgloss.Color("#F2B705")
	ColorSuccess   = lipgloss.Color("#36B37E")
	ColorDanger    = lipgloss.Color("#E5484D")
	ColorInfo      = lipgloss.Color("#4C9AFF")

	ColorBackground = lipgloss.Color("#1A1B26")
	ColorForeground = lipgloss.Color("#C0CAF5")
	ColorMuted      = lipgloss.Color("#565F89")
	ColorBorder     = lipgloss.Color("#3B4261")

	ColorChartLine1 = lipgloss.Color("#7AA2F7")
	ColorChartLine2 = lipgloss.Color("#9ECE6A")
	ColorChartLine3 = lipgloss.Color("#E0AF68")
	ColorChartLine4 = lipgloss.Color("#BB9AF7")
)

// Base styles
var (
	AppStyle = lipgloss.NewStyle().
			Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorForeground).
			Background(ColorBorder).
			Padding(0, 1)

	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(1, 2)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Foreground(ColorForeground).
				Bold(true)

	MetricPositiveStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	MetricNegativeStyle = lipgloss.NewStyle().
				Foreground(ColorDanger)

	ParameterLabelStyle = lipgloss.NewStyle().
				Foreground(ColorForeground).
				Bold(true)

	ParameterValueStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary)

	SliderTrackStyle = lipgloss.NewStyle().
				Foreground(ColorBorder)

	SliderThumbStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDanger).
			Padding(1, 2)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(ColorForeground)

	TableHighlightStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)
)

// MetricTrendStyle returns the style for a trend indicator
func MetricTrendStyle(isPositive bool) lipgloss.Style {
	if isPositive {
		return MetricPositiveStyle
	}
	return MetricNegativeStyle
}

// TrendIndicator returns the arrow character for a trend direction
func TrendIndicator(isPositive bool) string {
	if isPositive {
		return "▲"
	}
	return "▼"
}

// FormatCurrency formats a dollar amount for compact TUI display
func FormatCurrency(value float64) string {
	if value < 0 {
		return fmt.Sprintf("-$%.0f", -value)
	}
	return fmt.Sprintf("$%.0f", value)
}
