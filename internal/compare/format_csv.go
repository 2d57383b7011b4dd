package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter formats the contribution-impact comparison as CSV
type CSVFormatter struct{}

// Format generates CSV output for the comparison
func (cf *CSVFormatter) Format(impact *ImpactSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{"Scenario", "Taxes Paid", "After-Tax Income", "Annual Savings"}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	rows := []*ImpactResult{&impact.Baseline, &impact.Elected}
	for _, row := range rows {
		record := []string{
			row.Label,
			row.TotalTax.StringFixed(2),
			row.AfterTaxIncome.StringFixed(2),
			row.AnnualSavings.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}
