package scenes

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fireplan/fire-calculator/internal/domain"
	"github.com/fireplan/fire-calculator/internal/tui/components"
	"github.com/fireplan/fire-calculator/internal/tui/tuistyles"
)

// ProjectionModel represents the growth projection chart scene
type ProjectionModel struct {
	summary *domain.PlanSummary
	width   int
	height  int
}

// NewProjectionModel creates a new projection scene model
func NewProjectionModel() *ProjectionModel {
	return &ProjectionModel{}
}

// SetSummary updates the projection to display
func (m *ProjectionModel) SetSummary(summary *domain.PlanSummary) {
	m.summary = summary
}

// SetSize updates the scene dimensions
func (m *ProjectionModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the projection scene
func (m *ProjectionModel) Update(msg tea.Msg) (*ProjectionModel, tea.Cmd) {
	return m, nil
}

// View renders the projection chart
func (m *ProjectionModel) View() string {
	if m.summary == nil || len(m.summary.Projection) == 0 {
		return `No projection to display.

Press Enter on the Inputs screen (press 'i') to calculate the plan.

Press ESC to go back.`
	}

	points := make([]float64, len(m.summary.Projection))
	labels := make([]string, len(m.summary.Projection))
	for i, point := range m.summary.Projection {
		points[i] = point.Balance.InexactFloat64()
		labels[i] = fmt.Sprintf("Y%d", point.Year)
	}

	chartWidth := m.width - 8
	if chartWidth < 40 {
		chartWidth = 40
	}

	chart := components.NewASCIIChart("Projected Portfolio Balance").
		AddSeries("Balance", points, tuistyles.ColorChartLine1).
		AddReferenceLine("Full FI", m.summary.FullFITarget.InexactFloat64(), tuistyles.ColorAccent).
		WithLabels(labels).
		WithSize(chartWidth, 16)

	if milestone, ok := m.summary.Milestones[domain.MilestoneFatFI]; ok {
		chart.AddReferenceLine("Fat FI", milestone.Target.InexactFloat64(), tuistyles.ColorChartLine3)
	}

	help := lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted).
		Render("r results • i edit inputs • h home • ESC back")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		chart.Render(),
		"",
		help,
	)
}
