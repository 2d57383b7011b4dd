package tuimsg

import (
	"github.com/fireplan/fire-calculator/internal/domain"
)

// PlanLoadedMsg signals the plan input file has been loaded
type PlanLoadedMsg struct {
	Input *domain.PlannerInput
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// CalculationStartedMsg signals a plan calculation has begun
type CalculationStartedMsg struct{}

// CalculationCompleteMsg signals a plan calculation has finished
type CalculationCompleteMsg struct {
	Summary *domain.PlanSummary
	Err     error
}

// SavePlanMsg signals a request to save the modified plan
type SavePlanMsg struct {
	Input    *domain.PlannerInput
	Filename string
}

// SaveCompleteMsg signals a save operation has finished
type SaveCompleteMsg struct {
	Filename string
	Err      error
}
