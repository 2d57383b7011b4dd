package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/fireplan/fire-calculator/internal/domain"
	"github.com/fireplan/fire-calculator/internal/tui/components"
	"github.com/fireplan/fire-calculator/internal/tui/tuimsg"
	"github.com/fireplan/fire-calculator/internal/tui/tuistyles"
)

// slider groups
const (
	groupProfile = iota
	groupContributions
)

// InputsModel represents the plan editing scene
type InputsModel struct {
	input *domain.PlannerInput

	profileSliders  []*components.ParameterSlider
	contribSliders  []*components.ParameterSlider
	contribAccounts []domain.AccountType

	selectedGroup int
	focusedSlider int
	width         int
	height        int
	modified      bool
}

// NewInputsModel creates a new inputs scene model
func NewInputsModel() *InputsModel {
	return &InputsModel{}
}

// SetInput updates the plan being edited
func (m *InputsModel) SetInput(input *domain.PlannerInput) {
	if input == nil {
		return
	}
	m.input = input
	m.selectedGroup = groupProfile
	m.buildSliders()
}

// GetInput returns the plan being edited
func (m *InputsModel) GetInput() *domain.PlannerInput {
	return m.input
}

// buildSliders creates sliders from the current plan values
func (m *InputsModel) buildSliders() {
	m.profileSliders = []*components.ParameterSlider{
		components.NewParameterSlider("Gross Salary", m.input.GrossSalary.InexactFloat64(), 0, 500000, 1000).
			WithFormat("$%.0f").WithWidth(36),
		components.NewParameterSlider("Pension Contribution", m.input.PensionPercent.Mul(decimal.NewFromInt(100)).InexactFloat64(), 0, 20, 0.5).
			WithFormat("%.1f").WithUnit("%").WithWidth(36),
		components.NewParameterSlider("Annual Expenses", m.input.AnnualExpenses.InexactFloat64(), 0, 300000, 1000).
			WithFormat("$%.0f").WithWidth(36),
		components.NewParameterSlider("Current Investments", m.input.CurrentInvestments.InexactFloat64(), 0, 3000000, 5000).
			WithFormat("$%.0f").WithWidth(36),
		components.NewParameterSlider("Expected Return", m.input.ExpectedReturn.Mul(decimal.NewFromInt(100)).InexactFloat64(), 0, 15, 0.1).
			WithFormat("%.1f").WithUnit("%").WithWidth(36),
		components.NewParameterSlider("Current Age", m.input.CurrentAge.InexactFloat64(), 18, 80, 0.5).
			WithFormat("%.1f").WithUnit(" yrs").WithWidth(36),
		components.NewParameterSlider("Retirement Age", m.input.RetirementAge.InexactFloat64(), 30, 80, 0.5).
			WithFormat("%.1f").WithUnit(" yrs").WithWidth(36),
	}

	m.contribAccounts = domain.AllAccountTypes()
	m.contribSliders = make([]*components.ParameterSlider, 0, len(m.contribAccounts))
	for _, account := range m.contribAccounts {
		amount := m.input.Contributions[account]
		slider := components.NewParameterSlider(account.DisplayName(), amount.InexactFloat64(), 0, 50000, 500).
			WithFormat("$%.0f").WithWidth(36)
		m.contribSliders = append(m.contribSliders, slider)
	}

	m.focusedSlider = 0
	m.updateFocus()
}

// activeSliders returns the sliders of the selected group
func (m *InputsModel) activeSliders() []*components.ParameterSlider {
	if m.selectedGroup == groupContributions {
		return m.contribSliders
	}
	return m.profileSliders
}

func (m *InputsModel) updateFocus() {
	for _, slider := range m.profileSliders {
		slider.SetFocused(false)
	}
	for _, slider := range m.contribSliders {
		slider.SetFocused(false)
	}
	sliders := m.activeSliders()
	if m.focusedSlider >= len(sliders) {
		m.focusedSlider = 0
	}
	if len(sliders) > 0 {
		sliders[m.focusedSlider].SetFocused(true)
	}
}

// SetSize updates the scene dimensions
func (m *InputsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the inputs scene
func (m *InputsModel) Update(msg tea.Msg) (*InputsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m *InputsModel) handleKeyPress(msg tea.KeyMsg) (*InputsModel, tea.Cmd) {
	if m.input == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.focusedSlider > 0 {
			m.focusedSlider--
			m.updateFocus()
		}
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.focusedSlider < len(m.activeSliders())-1 {
			m.focusedSlider++
			m.updateFocus()
		}
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("left"))):
		m.adjust(func(s *components.ParameterSlider) { s.Decrement() })
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("right"))):
		m.adjust(func(s *components.ParameterSlider) { s.Increment() })
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("tab", "shift+tab"))):
		if m.selectedGroup == groupProfile {
			m.selectedGroup = groupContributions
		} else {
			m.selectedGroup = groupProfile
		}
		m.focusedSlider = 0
		m.updateFocus()
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
		return m, func() tea.Msg { return tuimsg.CalculationStartedMsg{} }

	case key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+s"))):
		if m.modified {
			input := m.input
			return m, func() tea.Msg { return tuimsg.SavePlanMsg{Input: input} }
		}
		return m, nil
	}

	return m, nil
}

// adjust applies an increment or decrement to the focused slider and writes
// the new value back into the plan
func (m *InputsModel) adjust(fn func(*components.ParameterSlider)) {
	sliders := m.activeSliders()
	if m.focusedSlider >= len(sliders) {
		return
	}
	fn(sliders[m.focusedSlider])
	m.modified = true
	m.applyChanges()
}

// applyChanges writes slider values back into the plan input
func (m *InputsModel) applyChanges() {
	m.input.GrossSalary = decimal.NewFromFloat(m.profileSliders[0].Value)
	m.input.PensionPercent = decimal.NewFromFloat(m.profileSliders[1].Value / 100.0)
	m.input.AnnualExpenses = decimal.NewFromFloat(m.profileSliders[2].Value)
	m.input.CurrentInvestments = decimal.NewFromFloat(m.profileSliders[3].Value)
	m.input.ExpectedReturn = decimal.NewFromFloat(m.profileSliders[4].Value / 100.0)
	m.input.CurrentAge = decimal.NewFromFloat(m.profileSliders[5].Value)
	m.input.RetirementAge = decimal.NewFromFloat(m.profileSliders[6].Value)

	// Retirement age must stay above current age
	if m.input.RetirementAge.LessThanOrEqual(m.input.CurrentAge) {
		m.input.RetirementAge = m.input.CurrentAge.Add(decimal.NewFromFloat(0.5))
		m.profileSliders[6].SetValue(m.input.RetirementAge.InexactFloat64())
	}

	if m.input.Contributions == nil {
		m.input.Contributions = domain.ContributionSet{}
	}
	for i, account := range m.contribAccounts {
		amount := decimal.NewFromFloat(m.contribSliders[i].Value)
		if amount.IsZero() {
			delete(m.input.Contributions, account)
			continue
		}
		m.input.Contributions[account] = amount
	}
}

// View renders the inputs scene
func (m *InputsModel) View() string {
	if m.input == nil {
		return "No plan loaded.\n\nPress ESC to return to home."
	}

	header := renderGroupSelector(m.selectedGroup)

	var rendered []string
	for _, slider := range m.activeSliders() {
		rendered = append(rendered, slider.Render())
	}

	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(1, 2)

	slidersView := containerStyle.Render(strings.Join(rendered, "\n"))

	status := ""
	if m.modified {
		status = lipgloss.NewStyle().
			Foreground(tuistyles.ColorInfo).
			Bold(true).
			Render("⚠ Modified - Press Enter to recalculate")
	}

	help := lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted).
		Render("↑/↓ navigate • ←/→ adjust • Tab switch group • Enter calculate • Ctrl+S save • ESC back")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		slidersView,
		"",
		status,
		help,
	)
}

// renderGroupSelector renders the profile/contributions tab bar
func renderGroupSelector(selected int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorPrimary).
		MarginBottom(1)

	tabStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorForeground).
		Padding(0, 1)

	selectedStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorAccent).
		Bold(true).
		Padding(0, 1).
		Background(tuistyles.ColorBorder)

	names := []string{"Profile", "Contributions"}
	var tabs []string
	for i, name := range names {
		if i == selected {
			tabs = append(tabs, selectedStyle.Render(name))
		} else {
			tabs = append(tabs, tabStyle.Render(name))
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Edit Plan"),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
	)
}
