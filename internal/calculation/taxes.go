package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/fireplan/fire-calculator/internal/domain"
)

// CalculateTax evaluates a progressive bracket schedule against taxable income.
// Income above each bracket's lower bound is taxed at that bracket's marginal
// rate up to the next bound; the walk stops once income no longer reaches the
// current bound. The result is clamped non-negative, though with validated
// tables and non-negative income the walk cannot go below zero.
func CalculateTax(taxableIncome decimal.Decimal, brackets domain.BracketTable) decimal.Decimal {
	tax := decimal.Zero

	for i, b := range brackets {
		if taxableIncome.LessThanOrEqual(b.Lower) {
			break
		}

		upper := taxableIncome
		if i+1 < len(brackets) && brackets[i+1].Lower.LessThan(upper) {
			upper = brackets[i+1].Lower
		}

		tax = tax.Add(upper.Sub(b.Lower).Mul(b.Rate))
	}

	if tax.IsNegative() {
		return decimal.Zero
	}
	return tax
}

// TaxCalculator computes the full federal + state tax pipeline for a plan
type TaxCalculator struct {
	Regulatory *domain.RegulatoryConfig
}

// NewTaxCalculator creates a tax calculator over validated regulatory data
func NewTaxCalculator(reg *domain.RegulatoryConfig) *TaxCalculator {
	return &TaxCalculator{Regulatory: reg}
}

// Calculate derives AGI, taxable income, and both tax liabilities from the
// plan inputs. AGI is gross salary less the pension contribution, all
// AGI-reducing contributions, and the capped state plan deduction.
func (tc *TaxCalculator) Calculate(input *domain.PlannerInput) domain.TaxResult {
	agi := input.GrossSalary.
		Sub(input.PensionContribution()).
		Sub(input.Contributions.PreTaxTotal()).
		Sub(input.Contributions.StateDeduction(tc.Regulatory.StateTax.PlanDeductionCap))

	return tc.calculateFromAGI(agi, input.FilingStatus)
}

// CalculateBaseline recomputes the pipeline with zero contributions and zero
// pension withholding, producing the "no elections" comparison reference.
func (tc *TaxCalculator) CalculateBaseline(input *domain.PlannerInput) domain.TaxResult {
	return tc.calculateFromAGI(input.GrossSalary, input.FilingStatus)
}

func (tc *TaxCalculator) calculateFromAGI(agi decimal.Decimal, status domain.FilingStatus) domain.TaxResult {
	taxableIncome := agi.Sub(tc.Regulatory.FederalTax.DeductionFor(status))
	if taxableIncome.IsNegative() {
		taxableIncome = decimal.Zero
	}

	federalTax := CalculateTax(taxableIncome, tc.Regulatory.FederalTax.BracketsFor(status))
	stateTax := CalculateTax(taxableIncome, tc.Regulatory.StateTax.Brackets)

	return domain.TaxResult{
		AGI:           agi,
		TaxableIncome: taxableIncome,
		FederalTax:    federalTax,
		StateTax:      stateTax,
		TotalTax:      federalTax.Add(stateTax),
	}
}
