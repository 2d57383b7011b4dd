package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/fireplan/fire-calculator/internal/domain"
)

// DefaultProjectionYears is the simulation horizon applied when the input
// file does not specify one
const DefaultProjectionYears = 50

// MaxProjectionYears bounds the simulation horizon
const MaxProjectionYears = 50

// InputParser handles parsing and validation of plan input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML file. Inputs are sanitized here;
// the calculation engine assumes validated, non-negative values.
func (ip *InputParser) LoadFromFile(filename string) (*domain.PlannerInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input domain.PlannerInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.applyDefaults(&input)

	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// applyDefaults fills in unset optional fields
func (ip *InputParser) applyDefaults(input *domain.PlannerInput) {
	if input.FilingStatus == "" {
		input.FilingStatus = domain.FilingSingle
	}
	if input.ProjectionYears == 0 {
		input.ProjectionYears = DefaultProjectionYears
	}
	if input.Contributions == nil {
		input.Contributions = domain.ContributionSet{}
	}
}

// ValidateInput validates a planner input
func (ip *InputParser) ValidateInput(input *domain.PlannerInput) error {
	if !input.FilingStatus.IsValid() {
		return fmt.Errorf("filing status must be %q or %q, got %q",
			domain.FilingSingle, domain.FilingMarriedJoint, input.FilingStatus)
	}
	if input.GrossSalary.IsNegative() {
		return fmt.Errorf("gross salary cannot be negative")
	}
	if input.PensionPercent.IsNegative() || input.PensionPercent.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("pension percent must be between 0 and 1")
	}
	if input.AnnualExpenses.IsNegative() {
		return fmt.Errorf("annual expenses cannot be negative")
	}
	if input.CurrentInvestments.IsNegative() {
		return fmt.Errorf("current investments cannot be negative")
	}
	if input.ExpectedReturn.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return fmt.Errorf("expected return cannot be less than -100%%")
	}
	if input.CurrentAge.IsNegative() {
		return fmt.Errorf("current age cannot be negative")
	}
	if input.RetirementAge.LessThanOrEqual(input.CurrentAge) {
		return fmt.Errorf("retirement age must be greater than current age")
	}
	if input.ProjectionYears <= 0 || input.ProjectionYears > MaxProjectionYears {
		return fmt.Errorf("projection years must be between 1 and %d", MaxProjectionYears)
	}

	for account, amount := range input.Contributions {
		if !account.IsValid() {
			return fmt.Errorf("unknown contribution account: %s", account)
		}
		if amount.IsNegative() {
			return fmt.Errorf("contribution for %s cannot be negative", account.DisplayName())
		}
	}

	return nil
}

// ExampleInput returns a filled-in starter plan for the example command
func ExampleInput() *domain.PlannerInput {
	return &domain.PlannerInput{
		FilingStatus:       domain.FilingSingle,
		GrossSalary:        decimal.NewFromInt(100000),
		PensionPercent:     decimal.NewFromFloat(0.05),
		AnnualExpenses:     decimal.NewFromInt(50000),
		CurrentInvestments: decimal.NewFromInt(50000),
		ExpectedReturn:     decimal.NewFromFloat(0.07),
		RetirementAge:      decimal.NewFromInt(60),
		CurrentAge:         decimal.NewFromInt(30),
		ProjectionYears:    DefaultProjectionYears,
		Contributions: domain.ContributionSet{
			domain.Account403bTraditional: decimal.NewFromInt(15000),
			domain.AccountRothIRA:         decimal.NewFromInt(7000),
			domain.Account529Plan:         decimal.NewFromInt(5000),
		},
	}
}

// SaveInput saves a planner input to a YAML file
func SaveInput(input *domain.PlannerInput, filename string) error {
	data, err := yaml.Marshal(input)
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}
