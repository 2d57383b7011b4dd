package scenes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fireplan/fire-calculator/internal/domain"
	"github.com/fireplan/fire-calculator/internal/output"
	"github.com/fireplan/fire-calculator/internal/tui/components"
	"github.com/fireplan/fire-calculator/internal/tui/tuistyles"
)

// ResultsModel represents the results display scene
type ResultsModel struct {
	summary *domain.PlanSummary
	width   int
	height  int
}

// NewResultsModel creates a new results scene model
func NewResultsModel() *ResultsModel {
	return &ResultsModel{}
}

// SetSummary updates the results to display
func (m *ResultsModel) SetSummary(summary *domain.PlanSummary) {
	m.summary = summary
}

// SetSize updates the scene dimensions
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the results scene
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	// Read-only scene
	return m, nil
}

// View renders the results scene
func (m *ResultsModel) View() string {
	if m.summary == nil {
		return renderNoResultsState()
	}

	header := renderResultsHeader()
	metrics := renderKeyMetrics(m.summary)
	milestones := renderMilestoneTable(m.summary)
	help := lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted).
		Render("c projection chart • i edit inputs • h home • ESC back")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		metrics,
		"",
		milestones,
		"",
		help,
	)
}

// renderNoResultsState renders empty state
func renderNoResultsState() string {
	return `No results to display.

Press Enter on the Inputs screen (press 'i') to calculate the plan.

Press ESC to go back.`
}

// renderResultsHeader renders the scene title
func renderResultsHeader() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorPrimary)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted).
		Italic(true)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Plan Results"),
		subtitleStyle.Render("Current-year taxes, savings, and FI milestones"),
	)
}

// renderKeyMetrics renders the headline figures as cards
func renderKeyMetrics(summary *domain.PlanSummary) string {
	cards := []*components.MetricCard{
		components.NewMetricCard(
			"After-Tax Income",
			tuistyles.FormatCurrency(summary.AfterTaxIncome.InexactFloat64()),
		),
		components.NewMetricCard(
			"Total Tax",
			tuistyles.FormatCurrency(summary.Tax.TotalTax.InexactFloat64()),
		).WithDescription("Effective rate " + output.FormatPercentage(summary.EffectiveTaxRate)),
		components.NewMetricCard(
			"Annual Savings",
			tuistyles.FormatCurrency(summary.TotalSavings.InexactFloat64()),
		).WithDescription("Savings rate " + output.FormatPercentage(summary.SavingsRate)),
		components.NewMetricCard(
			"Disposable Income",
			tuistyles.FormatCurrency(summary.DisposableIncome.InexactFloat64()),
		),
		components.NewMetricCard(
			"Tax Saved by Contributions",
			tuistyles.FormatCurrency(summary.Impact.TaxReduction.InexactFloat64()),
		).WithTrend(summary.Impact.TaxReduction.Sign() >= 0, "vs. no contributions"),
		components.NewMetricCard(
			"Full FI Target",
			tuistyles.FormatCurrency(summary.FullFITarget.InexactFloat64()),
		).WithDescription("25x annual expenses"),
	}

	return components.MetricGrid(cards, 3)
}

// renderMilestoneTable renders the milestone achievement table
func renderMilestoneTable(summary *domain.PlanSummary) string {
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(1, 2)

	var content strings.Builder
	content.WriteString(tuistyles.TableHeaderStyle.Render(
		fmt.Sprintf("%-26s %14s  %s", "Milestone", "Target", "Time to Achieve")))
	content.WriteString("\n")
	content.WriteString(strings.Repeat("─", 66))
	content.WriteString("\n")

	for _, kind := range domain.AllMilestoneKinds() {
		milestone, ok := summary.Milestones[kind]
		if !ok {
			continue
		}

		status := output.FormatMilestoneStatus(milestone.Status, summary.Input.ProjectionYears)
		row := fmt.Sprintf("%-26s %14s  %s",
			kind.DisplayName(),
			tuistyles.FormatCurrency(milestone.Target.InexactFloat64()),
			status)

		if milestone.Status.Achieved() {
			content.WriteString(tuistyles.TableHighlightStyle.Render(row))
		} else {
			content.WriteString(tuistyles.TableCellStyle.Render(row))
		}
		content.WriteString("\n")
	}

	return tableStyle.Render(content.String())
}
