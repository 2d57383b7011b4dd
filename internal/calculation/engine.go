package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fireplan/fire-calculator/internal/domain"
)

// Engine orchestrates the tax pipeline and the growth projection for one plan.
// Each RunPlan invocation is a pure function of its input; the engine carries
// no state between runs.
type Engine struct {
	TaxCalc *TaxCalculator
	Logger  Logger
	Debug   bool
}

// NewEngine creates a calculation engine over validated regulatory data
func NewEngine(reg *domain.RegulatoryConfig) *Engine {
	return &Engine{
		TaxCalc: NewTaxCalculator(reg),
		Logger:  NopLogger{},
	}
}

// SetLogger sets a custom logger; nil restores the no-op logger
func (e *Engine) SetLogger(logger Logger) {
	if logger == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = logger
}

// RunPlan computes the full plan summary: tax liabilities, derived income
// figures, the zero-contribution baseline, and the FI milestone projection.
func (e *Engine) RunPlan(input *domain.PlannerInput) (*domain.PlanSummary, error) {
	if input == nil {
		return nil, fmt.Errorf("no planner input provided")
	}

	pension := input.PensionContribution()
	tax := e.TaxCalc.Calculate(input)

	afterTaxIncome := input.GrossSalary.Sub(pension).Sub(tax.TotalTax)

	totalSavings := input.Contributions.Total()
	stateDeduction := input.Contributions.StateDeduction(e.TaxCalc.Regulatory.StateTax.PlanDeductionCap)
	postTaxSavings := totalSavings.Sub(input.Contributions.PreTaxTotal()).Sub(stateDeduction)
	disposableIncome := afterTaxIncome.Sub(postTaxSavings)

	// Zero gross salary yields zero rates rather than a division fault
	effectiveTaxRate := decimal.Zero
	savingsRate := decimal.Zero
	if input.GrossSalary.GreaterThan(decimal.Zero) {
		effectiveTaxRate = tax.TotalTax.Div(input.GrossSalary)
		savingsRate = totalSavings.Div(input.GrossSalary)
	}

	baseline := e.TaxCalc.CalculateBaseline(input)
	baselineNet := input.GrossSalary.Sub(baseline.TotalTax)

	impact := domain.ContributionImpact{
		TaxReduction:         baseline.TotalTax.Sub(tax.TotalTax),
		SavingsIncrease:      totalSavings,
		AfterTaxIncomeChange: afterTaxIncome.Sub(baselineNet),
	}

	targets := MilestoneTargets(input)
	projection, milestones := Project(
		input.CurrentInvestments, totalSavings, input.ExpectedReturn,
		input.ProjectionYears, targets)

	if e.Debug {
		e.Logger.Debugf("plan: AGI=%s taxable=%s total tax=%s savings=%s",
			tax.AGI.StringFixed(2), tax.TaxableIncome.StringFixed(2),
			tax.TotalTax.StringFixed(2), totalSavings.StringFixed(2))
	}

	return &domain.PlanSummary{
		Input:            *input,
		Tax:              tax,
		PensionAmount:    pension,
		AfterTaxIncome:   afterTaxIncome,
		TotalSavings:     totalSavings,
		PostTaxSavings:   postTaxSavings,
		DisposableIncome: disposableIncome,
		EffectiveTaxRate: effectiveTaxRate,
		SavingsRate:      savingsRate,
		Baseline:         baseline,
		BaselineNet:      baselineNet,
		Impact:           impact,
		FullFITarget:     FullFITarget(input.AnnualExpenses),
		Projection:       projection,
		Milestones:       milestones,
	}, nil
}
