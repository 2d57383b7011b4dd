package compare

import (
	"github.com/shopspring/decimal"

	"github.com/fireplan/fire-calculator/internal/calculation"
	"github.com/fireplan/fire-calculator/internal/domain"
)

// ImpactResult captures one side of the baseline-vs-elections comparison
type ImpactResult struct {
	Label          string          `json:"label"`
	TotalTax       decimal.Decimal `json:"totalTax"`
	AfterTaxIncome decimal.Decimal `json:"afterTaxIncome"`
	AnnualSavings  decimal.Decimal `json:"annualSavings"`
}

// ImpactSet is the full contribution-impact comparison: the zero-contribution
// baseline, the elected-contribution figures, and the deltas between them
type ImpactSet struct {
	ConfigPath string       `json:"configPath"`
	Baseline   ImpactResult `json:"baseline"`
	Elected    ImpactResult `json:"elected"`

	TaxReduction         decimal.Decimal `json:"taxReduction"`
	SavingsIncrease      decimal.Decimal `json:"savingsIncrease"`
	AfterTaxIncomeChange decimal.Decimal `json:"afterTaxIncomeChange"`
}

// BuildImpactSet derives the contribution-impact comparison from a plan run
func BuildImpactSet(summary *domain.PlanSummary) *ImpactSet {
	return &ImpactSet{
		Baseline: ImpactResult{
			Label:          "No Contributions",
			TotalTax:       summary.Baseline.TotalTax,
			AfterTaxIncome: summary.BaselineNet,
			AnnualSavings:  decimal.Zero,
		},
		Elected: ImpactResult{
			Label:          "With Contributions",
			TotalTax:       summary.Tax.TotalTax,
			AfterTaxIncome: summary.AfterTaxIncome,
			AnnualSavings:  summary.TotalSavings,
		},
		TaxReduction:         summary.Impact.TaxReduction,
		SavingsIncrease:      summary.Impact.SavingsIncrease,
		AfterTaxIncomeChange: summary.Impact.AfterTaxIncomeChange,
	}
}

// Engine runs a plan and produces its contribution-impact comparison
type Engine struct {
	calcEngine *calculation.Engine
}

// NewEngine creates a comparison engine over a calculation engine
func NewEngine(calcEngine *calculation.Engine) *Engine {
	return &Engine{calcEngine: calcEngine}
}

// Compare runs the plan and builds the baseline-vs-elections comparison
func (e *Engine) Compare(input *domain.PlannerInput) (*ImpactSet, error) {
	summary, err := e.calcEngine.RunPlan(input)
	if err != nil {
		return nil, err
	}
	return BuildImpactSet(summary), nil
}
