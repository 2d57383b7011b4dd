package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fireplan/fire-calculator/internal/config"
	"github.com/fireplan/fire-calculator/internal/domain"
)

func testInput() *domain.PlannerInput {
	return &domain.PlannerInput{
		FilingStatus:       domain.FilingSingle,
		GrossSalary:        decimal.NewFromInt(100000),
		PensionPercent:     decimal.NewFromFloat(0.05),
		AnnualExpenses:     decimal.NewFromInt(40000),
		CurrentInvestments: decimal.NewFromInt(50000),
		ExpectedReturn:     decimal.NewFromFloat(0.07),
		RetirementAge:      decimal.NewFromInt(60),
		CurrentAge:         decimal.NewFromInt(30),
		ProjectionYears:    50,
		Contributions: domain.ContributionSet{
			domain.Account403bTraditional: decimal.NewFromInt(10000),
			domain.AccountRothIRA:         decimal.NewFromInt(5000),
			domain.Account529Plan:         decimal.NewFromInt(6000),
		},
	}
}

func TestEngineRunPlan(t *testing.T) {
	engine := NewEngine(config.DefaultRegulatory2025())
	summary, err := engine.RunPlan(testInput())
	require.NoError(t, err)
	require.NotNil(t, summary)

	// AGI: 100000 - 5000 pension - 10000 pre-tax - 4000 capped 529
	assert.True(t, summary.Tax.AGI.Equal(decimal.NewFromInt(81000)))
	assert.True(t, summary.Tax.TaxableIncome.Equal(decimal.NewFromInt(66000)))
	assert.True(t, summary.Tax.FederalTax.Equal(decimal.NewFromFloat(9434.00)),
		"federal tax: got %s", summary.Tax.FederalTax.StringFixed(2))
	assert.True(t, summary.Tax.StateTax.Equal(decimal.NewFromFloat(3537.50)),
		"state tax: got %s", summary.Tax.StateTax.StringFixed(2))
	assert.True(t, summary.Tax.TotalTax.Equal(decimal.NewFromFloat(12971.50)))

	assert.True(t, summary.PensionAmount.Equal(decimal.NewFromInt(5000)))
	assert.True(t, summary.AfterTaxIncome.Equal(decimal.NewFromFloat(82028.50)))

	assert.True(t, summary.TotalSavings.Equal(decimal.NewFromInt(21000)))
	// 21000 total - 10000 pre-tax - 4000 deductible 529
	assert.True(t, summary.PostTaxSavings.Equal(decimal.NewFromInt(7000)))
	assert.True(t, summary.DisposableIncome.Equal(decimal.NewFromFloat(75028.50)))

	assert.True(t, summary.SavingsRate.Equal(decimal.NewFromFloat(0.21)))
	assert.True(t, summary.EffectiveTaxRate.Equal(decimal.NewFromFloat(0.129715)),
		"effective rate: got %s", summary.EffectiveTaxRate)

	// Baseline: no pension, no contributions
	assert.True(t, summary.Baseline.TotalTax.Equal(decimal.NewFromFloat(18244.00)))
	assert.True(t, summary.BaselineNet.Equal(decimal.NewFromFloat(81756.00)))

	assert.True(t, summary.Impact.TaxReduction.Equal(decimal.NewFromFloat(5272.50)))
	assert.True(t, summary.Impact.SavingsIncrease.Equal(decimal.NewFromInt(21000)))
	assert.True(t, summary.Impact.AfterTaxIncomeChange.Equal(decimal.NewFromFloat(272.50)))

	assert.True(t, summary.FullFITarget.Equal(decimal.NewFromInt(1000000)))
	assert.Len(t, summary.Projection, 50)
	assert.Len(t, summary.Milestones, 5)
}

func TestEngineZeroSalary(t *testing.T) {
	engine := NewEngine(config.DefaultRegulatory2025())

	input := testInput()
	input.GrossSalary = decimal.Zero
	input.Contributions = domain.ContributionSet{}

	summary, err := engine.RunPlan(input)
	require.NoError(t, err)

	assert.True(t, summary.EffectiveTaxRate.IsZero())
	assert.True(t, summary.SavingsRate.IsZero())
	assert.True(t, summary.Tax.TotalTax.IsZero())

	// The projection still runs on existing investments
	assert.Len(t, summary.Projection, 50)
}

func TestEngineNilInput(t *testing.T) {
	engine := NewEngine(config.DefaultRegulatory2025())
	_, err := engine.RunPlan(nil)
	assert.Error(t, err)
}

func TestEngineSetLogger(t *testing.T) {
	engine := NewEngine(config.DefaultRegulatory2025())

	engine.SetLogger(nil)
	assert.NotNil(t, engine.Logger)

	_, err := engine.RunPlan(testInput())
	assert.NoError(t, err)
}

// countingLogger records how many debug lines were emitted
type countingLogger struct {
	debugCalls int
}

func (l *countingLogger) Debugf(format string, args ...any) { l.debugCalls++ }
func (l *countingLogger) Infof(format string, args ...any)  {}
func (l *countingLogger) Warnf(format string, args ...any)  {}
func (l *countingLogger) Errorf(format string, args ...any) {}

func TestEngineDebugFlag(t *testing.T) {
	engine := NewEngine(config.DefaultRegulatory2025())
	logger := &countingLogger{}
	engine.SetLogger(logger)

	_, err := engine.RunPlan(testInput())
	assert.NoError(t, err)
	assert.Zero(t, logger.debugCalls, "debug output emitted with Debug disabled")

	engine.Debug = true
	_, err = engine.RunPlan(testInput())
	assert.NoError(t, err)
	assert.Equal(t, 1, logger.debugCalls)
}
