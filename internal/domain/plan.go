package domain

import (
	"github.com/shopspring/decimal"
)

// PlannerInput is the complete set of raw financial inputs for one simulation
// run. It is constructed once per invocation and passed by value into the
// calculation engine; the engine holds no ambient state between runs.
type PlannerInput struct {
	FilingStatus       FilingStatus    `yaml:"filing_status" json:"filingStatus"`
	GrossSalary        decimal.Decimal `yaml:"gross_salary" json:"grossSalary"`
	PensionPercent     decimal.Decimal `yaml:"pension_percent" json:"pensionPercent"`
	AnnualExpenses     decimal.Decimal `yaml:"annual_expenses" json:"annualExpenses"`
	CurrentInvestments decimal.Decimal `yaml:"current_investments" json:"currentInvestments"`
	ExpectedReturn     decimal.Decimal `yaml:"expected_return" json:"expectedReturn"`
	RetirementAge      decimal.Decimal `yaml:"retirement_age" json:"retirementAge"`
	CurrentAge         decimal.Decimal `yaml:"current_age" json:"currentAge"`
	ProjectionYears    int             `yaml:"projection_years" json:"projectionYears"`
	Contributions      ContributionSet `yaml:"contributions" json:"contributions"`
}

// PensionContribution returns the annual pension amount withheld from salary
func (pi *PlannerInput) PensionContribution() decimal.Decimal {
	return pi.GrossSalary.Mul(pi.PensionPercent)
}

// ProjectionPoint is one simulated year's ending balance
type ProjectionPoint struct {
	Year    int             `json:"year"`
	Balance decimal.Decimal `json:"balance"`
}

// MilestoneKind identifies one of the graduated FI milestones
type MilestoneKind string

const (
	MilestoneCoastFI   MilestoneKind = "coast_fi"
	MilestoneBaristaFI MilestoneKind = "barista_fi"
	MilestoneLeanFI    MilestoneKind = "lean_fi"
	MilestoneFullFI    MilestoneKind = "full_fi"
	MilestoneFatFI     MilestoneKind = "fat_fi"
)

// DisplayName returns the human-readable milestone name
func (mk MilestoneKind) DisplayName() string {
	switch mk {
	case MilestoneCoastFI:
		return "Coast FI"
	case MilestoneBaristaFI:
		return "Barista FI"
	case MilestoneLeanFI:
		return "Lean FI (75% Expenses)"
	case MilestoneFullFI:
		return "Full FI (100% Expenses)"
	case MilestoneFatFI:
		return "Fat FI (150% Expenses)"
	}
	return string(mk)
}

// AllMilestoneKinds returns the milestones ordered by increasing target size
// for a typical plan (coast first, then the expense multiples)
func AllMilestoneKinds() []MilestoneKind {
	return []MilestoneKind{
		MilestoneCoastFI,
		MilestoneBaristaFI,
		MilestoneLeanFI,
		MilestoneFullFI,
		MilestoneFatFI,
	}
}

// MilestoneState distinguishes the three outcomes of milestone tracking
type MilestoneState int

const (
	// MilestoneUnmet means the target was not reached within the horizon
	MilestoneUnmet MilestoneState = iota
	// MilestoneAchievedImmediately means the opening trajectory already
	// qualified in year 1, before any meaningful simulation
	MilestoneAchievedImmediately
	// MilestoneAchievedAtYear means the balance first crossed the target in
	// the recorded simulation year
	MilestoneAchievedAtYear
)

// MilestoneStatus is the tagged achievement record for one milestone.
// Once a milestone is achieved the record is frozen: first-crossing semantics.
type MilestoneStatus struct {
	State MilestoneState `json:"state"`
	Year  int            `json:"year,omitempty"`
}

// Achieved reports whether the milestone was reached within the horizon
func (ms MilestoneStatus) Achieved() bool {
	return ms.State != MilestoneUnmet
}

// Milestone pairs a target with its achievement status
type Milestone struct {
	Kind   MilestoneKind   `json:"kind"`
	Target decimal.Decimal `json:"target"`
	Status MilestoneStatus `json:"status"`
}

// MilestoneSet holds the achievement record for every tracked milestone
type MilestoneSet map[MilestoneKind]Milestone

// ContributionImpact is the delta between the zero-contribution baseline and
// the elected-contribution figures
type ContributionImpact struct {
	TaxReduction         decimal.Decimal `json:"taxReduction"`
	SavingsIncrease      decimal.Decimal `json:"savingsIncrease"`
	AfterTaxIncomeChange decimal.Decimal `json:"afterTaxIncomeChange"`
}

// PlanSummary is the complete output of one planner run
type PlanSummary struct {
	Input PlannerInput `json:"input"`

	// Tax pipeline results
	Tax              TaxResult       `json:"tax"`
	PensionAmount    decimal.Decimal `json:"pensionAmount"`
	AfterTaxIncome   decimal.Decimal `json:"afterTaxIncome"`
	TotalSavings     decimal.Decimal `json:"totalSavings"`
	PostTaxSavings   decimal.Decimal `json:"postTaxSavings"`
	DisposableIncome decimal.Decimal `json:"disposableIncome"`
	EffectiveTaxRate decimal.Decimal `json:"effectiveTaxRate"`
	SavingsRate      decimal.Decimal `json:"savingsRate"`

	// Zero-contribution reference and the delta against it
	Baseline       TaxResult          `json:"baseline"`
	BaselineNet    decimal.Decimal    `json:"baselineNet"`
	Impact         ContributionImpact `json:"impact"`

	// Growth projection
	FullFITarget decimal.Decimal   `json:"fullFiTarget"`
	Projection   []ProjectionPoint `json:"projection"`
	Milestones   MilestoneSet      `json:"milestones"`
}
