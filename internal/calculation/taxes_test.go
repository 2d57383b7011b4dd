package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fireplan/fire-calculator/internal/config"
	"github.com/fireplan/fire-calculator/internal/domain"
)

// TestFederalTaxCalculation tests federal income tax using 2025 single brackets
func TestFederalTaxCalculation(t *testing.T) {
	reg := config.DefaultRegulatory2025()
	brackets := reg.FederalTax.BracketsSingle

	tests := []struct {
		name          string
		taxableIncome decimal.Decimal
		expectedTax   decimal.Decimal
		description   string
	}{
		{
			name:          "Zero taxable income",
			taxableIncome: decimal.Zero,
			expectedTax:   decimal.Zero,
			description:   "No income, no tax",
		},
		{
			name:          "First bracket only",
			taxableIncome: decimal.NewFromInt(10000),
			expectedTax:   decimal.NewFromInt(1000), // 10000 * 0.10
			description:   "Income entirely in 10% bracket",
		},
		{
			name:          "Exactly at bracket boundary",
			taxableIncome: decimal.NewFromInt(11925),
			expectedTax:   decimal.NewFromFloat(1192.50), // 11925 * 0.10
			description:   "Boundary income taxed entirely at lower rate",
		},
		{
			name:          "Spanning three brackets",
			taxableIncome: decimal.NewFromInt(85000),
			expectedTax:   decimal.NewFromFloat(13614.00), // 11925*0.10 + 36550*0.12 + 36525*0.22
			description:   "10%, 12%, and 22% brackets",
		},
		{
			name:          "Top bracket income",
			taxableIncome: decimal.NewFromInt(700000),
			expectedTax:   decimal.NewFromFloat(216020.25), // all seven brackets
			description:   "Income reaching the 37% bracket",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax := CalculateTax(tt.taxableIncome, brackets)
			assert.True(t, tax.Equal(tt.expectedTax),
				"%s: expected %s, got %s", tt.description,
				tt.expectedTax.StringFixed(2), tax.StringFixed(2))
		})
	}
}

// TestStateTaxCalculation tests the Virginia bracket schedule
func TestStateTaxCalculation(t *testing.T) {
	reg := config.DefaultRegulatory2025()
	brackets := reg.StateTax.Brackets

	tests := []struct {
		name          string
		taxableIncome decimal.Decimal
		expectedTax   decimal.Decimal
	}{
		{
			name:          "First bracket only",
			taxableIncome: decimal.NewFromInt(2000),
			expectedTax:   decimal.NewFromInt(40), // 2000 * 0.02
		},
		{
			name:          "Top bracket income",
			taxableIncome: decimal.NewFromInt(85000),
			expectedTax:   decimal.NewFromFloat(4630.00), // 60 + 60 + 600 + 68000*0.0575
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax := CalculateTax(tt.taxableIncome, brackets)
			assert.True(t, tax.Equal(tt.expectedTax),
				"expected %s, got %s", tt.expectedTax.StringFixed(2), tax.StringFixed(2))
		})
	}
}

// TestCalculateTaxMonotonic verifies more income never yields less tax
func TestCalculateTaxMonotonic(t *testing.T) {
	reg := config.DefaultRegulatory2025()
	brackets := reg.FederalTax.BracketsSingle

	previous := decimal.Zero
	for income := int64(0); income <= 700000; income += 12500 {
		tax := CalculateTax(decimal.NewFromInt(income), brackets)
		assert.True(t, tax.GreaterThanOrEqual(previous),
			"tax decreased between %d-12500 and %d", income, income)
		previous = tax
	}
}

// TestCalculateTaxContinuity verifies no jump at a bracket boundary: one extra
// dollar above a bound is taxed only at that bound's marginal rate
func TestCalculateTaxContinuity(t *testing.T) {
	reg := config.DefaultRegulatory2025()
	brackets := reg.FederalTax.BracketsSingle

	atBound := CalculateTax(decimal.NewFromInt(48475), brackets)
	aboveBound := CalculateTax(decimal.NewFromInt(48476), brackets)

	marginal := aboveBound.Sub(atBound)
	assert.True(t, marginal.Equal(decimal.NewFromFloat(0.22)),
		"marginal rate above $48,475 should be 22 cents on the dollar, got %s", marginal)
}

// TestCalculateTaxIdempotent verifies the bracket walk is a pure function:
// repeated calls with the same inputs produce identical results
func TestCalculateTaxIdempotent(t *testing.T) {
	reg := config.DefaultRegulatory2025()
	brackets := reg.FederalTax.BracketsSingle

	for _, income := range []int64{0, 11925, 85000, 700000} {
		taxable := decimal.NewFromInt(income)
		first := CalculateTax(taxable, brackets)
		second := CalculateTax(taxable, brackets)
		assert.True(t, first.Equal(second),
			"repeated calls diverged for income %d: %s vs %s", income, first, second)
	}
}

func TestTaxCalculatorPipeline(t *testing.T) {
	reg := config.DefaultRegulatory2025()
	calculator := NewTaxCalculator(reg)

	t.Run("no contributions", func(t *testing.T) {
		input := &domain.PlannerInput{
			FilingStatus:  domain.FilingSingle,
			GrossSalary:   decimal.NewFromInt(100000),
			Contributions: domain.ContributionSet{},
		}

		result := calculator.Calculate(input)
		assert.True(t, result.AGI.Equal(decimal.NewFromInt(100000)))
		assert.True(t, result.TaxableIncome.Equal(decimal.NewFromInt(85000)))
		assert.True(t, result.FederalTax.Equal(decimal.NewFromFloat(13614.00)),
			"federal tax: got %s", result.FederalTax.StringFixed(2))
		assert.True(t, result.StateTax.Equal(decimal.NewFromFloat(4630.00)),
			"state tax: got %s", result.StateTax.StringFixed(2))
		assert.True(t, result.TotalTax.Equal(decimal.NewFromFloat(18244.00)))
	})

	t.Run("pension and pre-tax contributions reduce AGI", func(t *testing.T) {
		input := &domain.PlannerInput{
			FilingStatus:   domain.FilingSingle,
			GrossSalary:    decimal.NewFromInt(100000),
			PensionPercent: decimal.NewFromFloat(0.05),
			Contributions: domain.ContributionSet{
				domain.Account403bTraditional: decimal.NewFromInt(10000),
				domain.AccountRothIRA:         decimal.NewFromInt(5000),
				domain.Account529Plan:         decimal.NewFromInt(6000),
			},
		}

		result := calculator.Calculate(input)
		// 100000 - 5000 pension - 10000 pre-tax - 4000 capped 529 deduction
		assert.True(t, result.AGI.Equal(decimal.NewFromInt(81000)),
			"AGI: got %s", result.AGI.StringFixed(2))
		assert.True(t, result.TaxableIncome.Equal(decimal.NewFromInt(66000)))
	})

	t.Run("Roth contributions do not reduce AGI", func(t *testing.T) {
		input := &domain.PlannerInput{
			FilingStatus: domain.FilingSingle,
			GrossSalary:  decimal.NewFromInt(100000),
			Contributions: domain.ContributionSet{
				domain.AccountRothIRA:  decimal.NewFromInt(7000),
				domain.Account403bRoth: decimal.NewFromInt(10000),
			},
		}

		result := calculator.Calculate(input)
		assert.True(t, result.AGI.Equal(decimal.NewFromInt(100000)))
	})

	t.Run("standard deduction floors taxable income at zero", func(t *testing.T) {
		input := &domain.PlannerInput{
			FilingStatus:  domain.FilingSingle,
			GrossSalary:   decimal.NewFromInt(12000),
			Contributions: domain.ContributionSet{},
		}

		result := calculator.Calculate(input)
		assert.True(t, result.TaxableIncome.IsZero())
		assert.True(t, result.TotalTax.IsZero())
	})

	t.Run("married filing jointly uses its own table", func(t *testing.T) {
		input := &domain.PlannerInput{
			FilingStatus:  domain.FilingMarriedJoint,
			GrossSalary:   decimal.NewFromInt(100000),
			Contributions: domain.ContributionSet{},
		}

		result := calculator.Calculate(input)
		// 100000 - 30000 deduction = 70000: 23850*0.10 + 46150*0.12
		assert.True(t, result.TaxableIncome.Equal(decimal.NewFromInt(70000)))
		assert.True(t, result.FederalTax.Equal(decimal.NewFromFloat(7923.00)),
			"federal tax: got %s", result.FederalTax.StringFixed(2))
	})

	t.Run("baseline ignores pension and contributions", func(t *testing.T) {
		input := &domain.PlannerInput{
			FilingStatus:   domain.FilingSingle,
			GrossSalary:    decimal.NewFromInt(100000),
			PensionPercent: decimal.NewFromFloat(0.05),
			Contributions: domain.ContributionSet{
				domain.Account403bTraditional: decimal.NewFromInt(10000),
			},
		}

		baseline := calculator.CalculateBaseline(input)
		require.True(t, baseline.AGI.Equal(decimal.NewFromInt(100000)))
		assert.True(t, baseline.TotalTax.Equal(decimal.NewFromFloat(18244.00)))
	})
}
