package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FilingStatus selects which federal bracket table and standard deduction apply
type FilingStatus string

const (
	FilingSingle       FilingStatus = "single"
	FilingMarriedJoint FilingStatus = "married_joint"
)

// IsValid reports whether the filing status is supported
func (fs FilingStatus) IsValid() bool {
	return fs == FilingSingle || fs == FilingMarriedJoint
}

// Bracket is a single marginal tax bracket. Lower is the inclusive lower bound
// of income taxed at Rate; the upper bound is the next bracket's lower bound.
type Bracket struct {
	Lower decimal.Decimal `yaml:"lower" json:"lower"`
	Rate  decimal.Decimal `yaml:"rate" json:"rate"`
}

// BracketTable is an ordered progressive bracket schedule.
// Invariant: lower bounds strictly increasing, first bound zero, rates in [0, 1).
type BracketTable []Bracket

// Validate rejects malformed bracket tables. Tables are immutable configuration;
// a malformed table is a startup error, never a per-call error.
func (bt BracketTable) Validate() error {
	if len(bt) == 0 {
		return fmt.Errorf("bracket table is empty")
	}
	if !bt[0].Lower.IsZero() {
		return fmt.Errorf("first bracket lower bound must be 0, got %s", bt[0].Lower)
	}
	for i, b := range bt {
		if b.Lower.IsNegative() {
			return fmt.Errorf("bracket %d: lower bound cannot be negative", i)
		}
		if b.Rate.IsNegative() || b.Rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return fmt.Errorf("bracket %d: rate must be in [0, 1), got %s", i, b.Rate)
		}
		if i > 0 && b.Lower.LessThanOrEqual(bt[i-1].Lower) {
			return fmt.Errorf("bracket %d: lower bound %s not greater than previous bound %s",
				i, b.Lower, bt[i-1].Lower)
		}
	}
	return nil
}

// TaxResult holds the derived tax figures for one computation.
// All fields are derived from inputs and never mutated after computation.
type TaxResult struct {
	AGI           decimal.Decimal `json:"agi"`
	TaxableIncome decimal.Decimal `json:"taxableIncome"`
	FederalTax    decimal.Decimal `json:"federalTax"`
	StateTax      decimal.Decimal `json:"stateTax"`
	TotalTax      decimal.Decimal `json:"totalTax"`
}

// RegulatoryConfig contains the tax tables and deduction amounts that apply
// uniformly to every plan. Loaded from regulatory.yaml or built-in defaults.
type RegulatoryConfig struct {
	Metadata   RegulatoryMetadata `yaml:"metadata" json:"metadata"`
	FederalTax FederalTaxRules    `yaml:"federal_tax" json:"federal_tax"`
	StateTax   StateTaxRules      `yaml:"state_tax" json:"state_tax"`
}

// RegulatoryMetadata describes the regulatory data set
type RegulatoryMetadata struct {
	DataYear    int    `yaml:"data_year" json:"data_year"`
	Description string `yaml:"description" json:"description"`
}

// FederalTaxRules contains the federal bracket schedules and standard deductions
type FederalTaxRules struct {
	StandardDeduction StandardDeductions `yaml:"standard_deduction" json:"standard_deduction"`
	BracketsSingle    BracketTable       `yaml:"brackets_single" json:"brackets_single"`
	BracketsMFJ       BracketTable       `yaml:"brackets_married_filing_jointly" json:"brackets_married_filing_jointly"`
}

// StandardDeductions contains standard deduction amounts by filing status
type StandardDeductions struct {
	Single               decimal.Decimal `yaml:"single" json:"single"`
	MarriedFilingJointly decimal.Decimal `yaml:"married_filing_jointly" json:"married_filing_jointly"`
}

// StateTaxRules contains the regional bracket schedule and plan deduction cap.
// The schedule is invariant across filing statuses.
type StateTaxRules struct {
	Name             string          `yaml:"name" json:"name"`
	Brackets         BracketTable    `yaml:"brackets" json:"brackets"`
	PlanDeductionCap decimal.Decimal `yaml:"plan_deduction_cap" json:"plan_deduction_cap"`
}

// BracketsFor returns the federal bracket table for a filing status
func (ftr FederalTaxRules) BracketsFor(status FilingStatus) BracketTable {
	if status == FilingMarriedJoint {
		return ftr.BracketsMFJ
	}
	return ftr.BracketsSingle
}

// DeductionFor returns the standard deduction for a filing status
func (ftr FederalTaxRules) DeductionFor(status FilingStatus) decimal.Decimal {
	if status == FilingMarriedJoint {
		return ftr.StandardDeduction.MarriedFilingJointly
	}
	return ftr.StandardDeduction.Single
}

// Validate checks every bracket table and deduction in the regulatory config
func (rc *RegulatoryConfig) Validate() error {
	if err := rc.FederalTax.BracketsSingle.Validate(); err != nil {
		return fmt.Errorf("federal single brackets: %w", err)
	}
	if err := rc.FederalTax.BracketsMFJ.Validate(); err != nil {
		return fmt.Errorf("federal married-joint brackets: %w", err)
	}
	if err := rc.StateTax.Brackets.Validate(); err != nil {
		return fmt.Errorf("state brackets: %w", err)
	}
	if rc.FederalTax.StandardDeduction.Single.IsNegative() ||
		rc.FederalTax.StandardDeduction.MarriedFilingJointly.IsNegative() {
		return fmt.Errorf("standard deduction cannot be negative")
	}
	if rc.StateTax.PlanDeductionCap.IsNegative() {
		return fmt.Errorf("state plan deduction cap cannot be negative")
	}
	return nil
}
