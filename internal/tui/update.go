package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fireplan/fire-calculator/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.inputsModel.SetSize(m.width, m.height)
		m.resultsModel.SetSize(m.width, m.height)
		m.projectionModel.SetSize(m.width, m.height)
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case tuimsg.ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case tuimsg.PlanLoadedMsg:
		m.input = msg.Input
		m.inputsModel.SetInput(msg.Input)
		// Run the initial calculation so results are ready up front
		m.loading = true
		m.loadingMessage = "Calculating plan..."
		return m, calculatePlanCmd(m.calcEngine, m.input)

	case tuimsg.CalculationStartedMsg:
		m.loading = true
		m.loadingMessage = "Calculating plan..."
		return m, calculatePlanCmd(m.calcEngine, m.inputsModel.GetInput())

	case tuimsg.CalculationCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.summary = msg.Summary
		m.resultsModel.SetSummary(msg.Summary)
		m.projectionModel.SetSummary(msg.Summary)
		// Jump to results when triggered from the inputs scene
		if m.currentScene == SceneInputs {
			m.previousScene = m.currentScene
			m.currentScene = SceneResults
		}
		return m, nil

	case tuimsg.SavePlanMsg:
		filename := msg.Filename
		if filename == "" {
			filename = m.configPath
		}
		return m, savePlanCmd(msg.Input, filename)

	case tuimsg.SaveCompleteMsg:
		if msg.Err != nil {
			m.err = msg.Err
		}
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Dismiss error state on any key
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		return m, navigateCmd(SceneHelp)

	case "esc":
		if m.currentScene != SceneHome {
			if m.previousScene != m.currentScene {
				return m, navigateCmd(m.previousScene)
			}
			return m, navigateCmd(SceneHome)
		}

	case "h":
		if m.currentScene != SceneHome {
			return m, navigateCmd(SceneHome)
		}

	case "i":
		if m.currentScene != SceneInputs {
			return m, navigateCmd(SceneInputs)
		}

	case "r":
		if m.currentScene != SceneResults {
			return m, navigateCmd(SceneResults)
		}

	case "c":
		if m.currentScene != SceneProjection {
			return m, navigateCmd(SceneProjection)
		}
	}

	return m.updateCurrentScene(msg)
}

// navigateCmd returns a command that switches scenes
func navigateCmd(scene Scene) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Scene: scene}
	}
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.currentScene {
	case SceneInputs:
		updatedModel, cmd := m.inputsModel.Update(msg)
		m.inputsModel = updatedModel
		return m, cmd
	case SceneResults:
		updatedModel, cmd := m.resultsModel.Update(msg)
		m.resultsModel = updatedModel
		return m, cmd
	case SceneProjection:
		updatedModel, cmd := m.projectionModel.Update(msg)
		m.projectionModel = updatedModel
		return m, cmd
	}

	return m, nil
}
