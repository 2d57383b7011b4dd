package calculation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/fireplan/fire-calculator/internal/domain"
)

// Expense multiples for the graduated FI milestones: each target is
// (expenses * coverage) * 25, per the 4% rule.
var milestoneMultiples = map[domain.MilestoneKind]decimal.Decimal{
	domain.MilestoneBaristaFI: decimal.NewFromFloat(12.5),
	domain.MilestoneLeanFI:    decimal.NewFromFloat(18.75),
	domain.MilestoneFullFI:    decimal.NewFromInt(25),
	domain.MilestoneFatFI:     decimal.NewFromFloat(37.5),
}

// FullFITarget returns the full financial-independence number: 25x expenses
func FullFITarget(annualExpenses decimal.Decimal) decimal.Decimal {
	return annualExpenses.Mul(milestoneMultiples[domain.MilestoneFullFI])
}

// CoastFITarget returns the present-value balance that would compound to the
// full-FI number by retirement age with no further contributions.
//
// The milestone is later evaluated against the contribution-bearing
// trajectory, so "Coast FI at year N" means the balance first exceeded the
// coast target while still contributing. That understates the time needed if
// contributions actually ceased; the simplification is intentional and
// matches the planner's published behavior.
func CoastFITarget(annualExpenses, growthRate, retirementAge, currentAge decimal.Decimal) decimal.Decimal {
	yearsToRetirement := retirementAge.Sub(currentAge).InexactFloat64()
	growthFactor := math.Pow(1+growthRate.InexactFloat64(), yearsToRetirement)
	if growthFactor <= 0 || math.IsInf(growthFactor, 0) || math.IsNaN(growthFactor) {
		return FullFITarget(annualExpenses)
	}
	return FullFITarget(annualExpenses).Div(decimal.NewFromFloat(growthFactor))
}

// MilestoneTargets builds the full set of milestone targets for a plan
func MilestoneTargets(input *domain.PlannerInput) map[domain.MilestoneKind]decimal.Decimal {
	targets := make(map[domain.MilestoneKind]decimal.Decimal, len(milestoneMultiples)+1)
	for kind, multiple := range milestoneMultiples {
		targets[kind] = input.AnnualExpenses.Mul(multiple)
	}
	targets[domain.MilestoneCoastFI] = CoastFITarget(
		input.AnnualExpenses, input.ExpectedReturn, input.RetirementAge, input.CurrentAge)
	return targets
}

// Project runs the compound-growth simulation: each year the balance grows by
// the expected return and then receives the annual contribution. Every
// still-unmet target is checked after the balance update; first crossings are
// recorded and frozen. A crossing in year 1 is recorded as achieved
// immediately, distinguishing a pre-funded position from growth over time.
func Project(openingBalance, annualContribution, growthRate decimal.Decimal,
	horizonYears int, targets map[domain.MilestoneKind]decimal.Decimal) ([]domain.ProjectionPoint, domain.MilestoneSet) {

	points := make([]domain.ProjectionPoint, 0, horizonYears)
	milestones := make(domain.MilestoneSet, len(targets))
	for kind, target := range targets {
		milestones[kind] = domain.Milestone{
			Kind:   kind,
			Target: target,
			Status: domain.MilestoneStatus{State: domain.MilestoneUnmet},
		}
	}

	growthFactor := decimal.NewFromInt(1).Add(growthRate)
	balance := openingBalance

	for year := 1; year <= horizonYears; year++ {
		balance = balance.Mul(growthFactor).Add(annualContribution)
		points = append(points, domain.ProjectionPoint{Year: year, Balance: balance})

		for kind, m := range milestones {
			if m.Status.State != domain.MilestoneUnmet {
				continue
			}
			if balance.LessThan(m.Target) {
				continue
			}
			if year == 1 {
				m.Status = domain.MilestoneStatus{State: domain.MilestoneAchievedImmediately}
			} else {
				m.Status = domain.MilestoneStatus{State: domain.MilestoneAchievedAtYear, Year: year}
			}
			milestones[kind] = m
		}
	}

	return points, milestones
}
