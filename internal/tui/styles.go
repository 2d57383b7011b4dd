package tui

import "github.com/fireplan/fire-calculator/internal/tui/tuistyles"

// Re-export styles from tuistyles to avoid import cycles
var (
	// Colors
	ColorPrimary   = tuistyles.ColorPrimary
	ColorSecondary = tuistyles.ColorSecondary
	ColorAccent    = tuistyles.ColorAccent
	ColorSuccess   = tuistyles.ColorSuccess
	ColorDanger    = tuistyles.ColorDanger
	ColorInfo      = tuistyles.ColorInfo

	ColorBackground = tuistyles.ColorBackground
	ColorForeground = tuistyles.ColorForeground
	ColorMuted      = tuistyles.ColorMuted
	ColorBorder     = tuistyles.ColorBorder

	// Base styles
	AppStyle            = tuistyles.AppStyle
	TitleStyle          = tuistyles.TitleStyle
	SubtitleStyle       = tuistyles.SubtitleStyle
	StatusBarStyle      = tuistyles.StatusBarStyle
	StatusKeyStyle      = tuistyles.StatusKeyStyle
	BorderStyle         = tuistyles.BorderStyle
	ActiveBorderStyle   = tuistyles.ActiveBorderStyle
	SelectedItemStyle   = tuistyles.SelectedItemStyle
	UnselectedItemStyle = tuistyles.UnselectedItemStyle
	ErrorStyle          = tuistyles.ErrorStyle
	InfoStyle           = tuistyles.InfoStyle
)
