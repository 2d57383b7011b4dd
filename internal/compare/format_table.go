package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats the contribution-impact comparison as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing baseline and elected figures
func (tf *TableFormatter) Format(impact *ImpactSet) string {
	var sb strings.Builder

	sb.WriteString("CONTRIBUTION IMPACT COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	if impact.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", impact.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 22
	numWidth := 18

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Taxes Paid",
		numWidth, "After-Tax Income",
		numWidth, "Annual Savings"))
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	sb.WriteString(tf.formatRow(&impact.Baseline, nameWidth, numWidth))
	sb.WriteString(tf.formatRow(&impact.Elected, nameWidth, numWidth))
	sb.WriteString(strings.Repeat("=", 72) + "\n")

	sb.WriteString("\nIMPACT OF ELECTED CONTRIBUTIONS\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	sb.WriteString(fmt.Sprintf("  Reduction in Total Taxes Paid:   %s$%s\n",
		tf.deltaSymbol(impact.TaxReduction), impact.TaxReduction.Abs().StringFixed(0)))
	sb.WriteString(fmt.Sprintf("  Increase in Total Annual Savings: $%s\n",
		impact.SavingsIncrease.StringFixed(0)))
	sb.WriteString(fmt.Sprintf("  Change in After-Tax Income:      %s$%s\n",
		tf.deltaSymbol(impact.AfterTaxIncomeChange), impact.AfterTaxIncomeChange.Abs().StringFixed(0)))

	return sb.String()
}

func (tf *TableFormatter) formatRow(result *ImpactResult, nameWidth, numWidth int) string {
	return fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, result.Label,
		numWidth, "$"+result.TotalTax.StringFixed(0),
		numWidth, "$"+result.AfterTaxIncome.StringFixed(0),
		numWidth, "$"+result.AnnualSavings.StringFixed(0))
}

func (tf *TableFormatter) deltaSymbol(value decimal.Decimal) string {
	if value.IsNegative() {
		return "-"
	}
	return "+"
}
