package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/fireplan/fire-calculator/internal/domain"
)

// TAX DATA ASSUMPTIONS:
//
// 1. Federal brackets: 2025 tables for single and married-filing-jointly.
//    No inflation indexing is applied to future projection years.
//    Standard deduction: $15,000 single / $30,000 MFJ.
//
// 2. Virginia state tax: 2025 four-bracket schedule, identical for all
//    filing statuses. Virginia 529 contributions are deductible up to
//    $4,000 per year regardless of the amount contributed.

func bracket(lower int64, rate float64) domain.Bracket {
	return domain.Bracket{
		Lower: decimal.NewFromInt(lower),
		Rate:  decimal.NewFromFloat(rate),
	}
}

// DefaultRegulatory2025 returns the built-in 2025 federal and Virginia tax data
func DefaultRegulatory2025() *domain.RegulatoryConfig {
	return &domain.RegulatoryConfig{
		Metadata: domain.RegulatoryMetadata{
			DataYear:    2025,
			Description: "2025 federal and Virginia tax tables",
		},
		FederalTax: domain.FederalTaxRules{
			StandardDeduction: domain.StandardDeductions{
				Single:               decimal.NewFromInt(15000),
				MarriedFilingJointly: decimal.NewFromInt(30000),
			},
			BracketsSingle: domain.BracketTable{
				bracket(0, 0.10),
				bracket(11925, 0.12),
				bracket(48475, 0.22),
				bracket(103350, 0.24),
				bracket(197300, 0.32),
				bracket(250525, 0.35),
				bracket(626350, 0.37),
			},
			BracketsMFJ: domain.BracketTable{
				bracket(0, 0.10),
				bracket(23850, 0.12),
				bracket(96950, 0.22),
				bracket(206700, 0.24),
				bracket(394600, 0.32),
				bracket(501050, 0.35),
				bracket(751600, 0.37),
			},
		},
		StateTax: domain.StateTaxRules{
			Name: "Virginia",
			Brackets: domain.BracketTable{
				bracket(0, 0.02),
				bracket(3000, 0.03),
				bracket(5000, 0.05),
				bracket(17000, 0.0575),
			},
			PlanDeductionCap: decimal.NewFromInt(4000),
		},
	}
}

// LoadRegulatoryFromFile loads regulatory tax data from a YAML file.
// A malformed table is fatal to the run; nothing is returned on error.
func LoadRegulatoryFromFile(filename string) (*domain.RegulatoryConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read regulatory file %s: %w", filename, err)
	}

	var reg domain.RegulatoryConfig
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to parse regulatory YAML: %w", err)
	}

	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("regulatory validation failed: %w", err)
	}

	return &reg, nil
}
