package tui

// Scene represents different screens in the TUI
type Scene int

const (
	SceneHome Scene = iota
	SceneInputs
	SceneResults
	SceneProjection
	SceneHelp
)

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}
