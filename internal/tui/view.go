package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderLoading()
	}

	if m.err != nil {
		return m.renderError()
	}

	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.renderHome()
	case SceneInputs:
		content = m.inputsModel.View()
	case SceneResults:
		content = m.resultsModel.View()
	case SceneProjection:
		content = m.projectionModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar, status bar, and main container
func (m Model) renderApp(content string) string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()

	contentHeight := m.height - 4 // Title (2) + status (1) + padding (1)

	contentContainer := lipgloss.NewStyle().
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		contentContainer,
		statusBar,
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("Fireplan - FIRE Financial Planner")
	breadcrumb := SubtitleStyle.Render(m.currentScene.String())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		breadcrumb,
	)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("h", "home"),
		formatShortcut("i", "inputs"),
		formatShortcut("r", "results"),
		formatShortcut("c", "chart"),
		formatShortcut("?", "help"),
		formatShortcut("q", "quit"),
	}

	statusText := strings.Join(shortcuts, " • ")

	if m.input != nil {
		planName := SubtitleStyle.Render(m.configPath)
		width := m.width - lipgloss.Width(statusText) - lipgloss.Width(planName) - 4
		if width > 0 {
			statusText = statusText + strings.Repeat(" ", width) + planName
		}
	}

	return StatusBarStyle.Width(m.width).Render(statusText)
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

// renderLoading renders a loading message
func (m Model) renderLoading() string {
	message := m.loadingMessage
	if message == "" {
		message = "Loading..."
	}

	content := BorderStyle.Render(fmt.Sprintf("⠋ %s", message))
	return m.renderApp(content)
}

// renderError renders an error message
func (m Model) renderError() string {
	content := ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err.Error()),
	)
	return m.renderApp(content)
}

// renderHome renders the home dashboard
func (m Model) renderHome() string {
	if m.input == nil {
		return BorderStyle.Render(
			"Welcome to Fireplan!\n\n" +
				"Loading plan...",
		)
	}

	lines := []string{
		"Welcome to Fireplan!",
		"",
		fmt.Sprintf("Plan loaded from %s.", m.configPath),
		"",
		"i  edit income, expenses, and contributions",
		"r  view taxes, savings, and FI milestones",
		"c  view the 50-year growth projection",
	}

	return BorderStyle.Render(strings.Join(lines, "\n"))
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	helpText := `
Fireplan - FIRE Financial Planner

KEYBOARD SHORTCUTS:
  h        Navigate to Home
  i        Navigate to Inputs
  r        Navigate to Results
  c        Navigate to Projection chart
  ?        Show this help
  ESC      Go back
  q/Ctrl+C Quit

EDITING:
  Use arrow keys to move between sliders
  Left/Right to adjust the focused value
  Tab to switch between profile and contribution groups
  Enter to recalculate the plan
  Ctrl+S to save changes back to the plan file
`

	return BorderStyle.Render(helpText)
}
