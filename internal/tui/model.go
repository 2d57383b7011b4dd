package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fireplan/fire-calculator/internal/calculation"
	"github.com/fireplan/fire-calculator/internal/config"
	"github.com/fireplan/fire-calculator/internal/domain"
	"github.com/fireplan/fire-calculator/internal/tui/scenes"
	"github.com/fireplan/fire-calculator/internal/tui/tuimsg"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Plan data
	configPath string
	input      *domain.PlannerInput
	summary    *domain.PlanSummary

	// Calculation engine
	calcEngine *calculation.Engine

	// Scene models
	inputsModel     *scenes.InputsModel
	resultsModel    *scenes.ResultsModel
	projectionModel *scenes.ProjectionModel

	// Error state
	err error

	// Loading state
	loading        bool
	loadingMessage string
}

// NewModel creates a new application model
func NewModel(configPath string) Model {
	return Model{
		currentScene:    SceneHome,
		configPath:      configPath,
		calcEngine:      calculation.NewEngine(config.DefaultRegulatory2025()),
		inputsModel:     scenes.NewInputsModel(),
		resultsModel:    scenes.NewResultsModel(),
		projectionModel: scenes.NewProjectionModel(),
		width:           80,
		height:          24,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadPlanCmd(m.configPath)
}

// loadPlanCmd returns a command that loads the plan input file
func loadPlanCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(path)
		if err != nil {
			return tuimsg.ErrorMsg{Err: err}
		}
		return tuimsg.PlanLoadedMsg{Input: input}
	}
}

// calculatePlanCmd returns a command that runs the plan calculation
func calculatePlanCmd(engine *calculation.Engine, input *domain.PlannerInput) tea.Cmd {
	return func() tea.Msg {
		summary, err := engine.RunPlan(input)
		return tuimsg.CalculationCompleteMsg{Summary: summary, Err: err}
	}
}

// savePlanCmd returns a command that writes the plan back to disk
func savePlanCmd(input *domain.PlannerInput, filename string) tea.Cmd {
	return func() tea.Msg {
		err := config.SaveInput(input, filename)
		return tuimsg.SaveCompleteMsg{Filename: filename, Err: err}
	}
}

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Home"
	case SceneInputs:
		return "Inputs"
	case SceneResults:
		return "Results"
	case SceneProjection:
		return "Projection"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
