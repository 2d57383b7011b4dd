package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fireplan/fire-calculator/internal/domain"
)

// ConsoleFormatter produces a plain-text report for terminal display.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(summary *domain.PlanSummary) ([]byte, error) {
	if summary == nil {
		return nil, fmt.Errorf("nil plan summary")
	}

	var output strings.Builder

	output.WriteString("FIRE PLAN SUMMARY\n")
	output.WriteString(strings.Repeat("=", 72) + "\n\n")

	writeIncomeSection(&output, summary)
	writeContributionsSection(&output, summary)
	writeMoneyFlowSection(&output, summary)
	writeImpactSection(&output, summary)
	writeMilestoneSection(&output, summary)
	writeProjectionChart(&output, summary)

	return []byte(output.String()), nil
}

func writeIncomeSection(output *strings.Builder, summary *domain.PlanSummary) {
	output.WriteString("INCOME & TAXES\n")
	output.WriteString(strings.Repeat("-", 72) + "\n")
	fmt.Fprintf(output, "  %-32s %20s\n", "Gross Salary:", FormatCurrency(summary.Input.GrossSalary))
	fmt.Fprintf(output, "  %-32s %20s\n", "Pension Contribution:", FormatCurrency(summary.PensionAmount))
	fmt.Fprintf(output, "  %-32s %20s\n", "Adjusted Gross Income:", FormatCurrency(summary.Tax.AGI))
	fmt.Fprintf(output, "  %-32s %20s\n", "Taxable Income:", FormatCurrency(summary.Tax.TaxableIncome))
	fmt.Fprintf(output, "  %-32s %20s\n", "Federal Tax:", FormatCurrency(summary.Tax.FederalTax))
	fmt.Fprintf(output, "  %-32s %20s\n", "State Tax:", FormatCurrency(summary.Tax.StateTax))
	fmt.Fprintf(output, "  %-32s %20s\n", "Total Tax:", FormatCurrency(summary.Tax.TotalTax))
	fmt.Fprintf(output, "  %-32s %20s\n", "After-Tax Income:", FormatCurrency(summary.AfterTaxIncome))
	fmt.Fprintf(output, "  %-32s %20s\n", "Effective Tax Rate:", FormatPercentage(summary.EffectiveTaxRate))
	output.WriteString("\n")
}

func writeContributionsSection(output *strings.Builder, summary *domain.PlanSummary) {
	entries := summary.Input.Contributions.Ordered()
	if len(entries) == 0 {
		return
	}

	output.WriteString("ANNUAL CONTRIBUTIONS\n")
	output.WriteString(strings.Repeat("-", 72) + "\n")
	for _, entry := range entries {
		fmt.Fprintf(output, "  %-32s %20s\n", entry.Account.DisplayName()+":", FormatCurrency(entry.Amount))
	}
	fmt.Fprintf(output, "  %-32s %20s\n", "Total Savings:", FormatCurrency(summary.TotalSavings))
	fmt.Fprintf(output, "  %-32s %20s\n", "Savings Rate:", FormatPercentage(summary.SavingsRate))
	output.WriteString("\n")
}

// writeMoneyFlowSection renders each destination of gross salary as a
// proportional bar so the split is visible at a glance.
func writeMoneyFlowSection(output *strings.Builder, summary *domain.PlanSummary) {
	if summary.Input.GrossSalary.IsZero() {
		return
	}

	output.WriteString("WHERE THE MONEY GOES\n")
	output.WriteString(strings.Repeat("-", 72) + "\n")

	flows := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Pension", summary.PensionAmount},
		{"Federal Tax", summary.Tax.FederalTax},
		{"State Tax", summary.Tax.StateTax},
		{"Savings", summary.TotalSavings},
		{"Disposable Income", summary.DisposableIncome},
	}

	const barWidth = 30
	for _, flow := range flows {
		share := flow.amount.Div(summary.Input.GrossSalary)
		filled := int(share.Mul(decimal.NewFromInt(barWidth)).Round(0).IntPart())
		if filled < 0 {
			filled = 0
		}
		if filled > barWidth {
			filled = barWidth
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		fmt.Fprintf(output, "  %-20s %s %6s  %s\n",
			flow.label, bar, FormatPercentage(share), FormatCurrency(flow.amount))
	}
	output.WriteString("\n")
}

func writeImpactSection(output *strings.Builder, summary *domain.PlanSummary) {
	output.WriteString("CONTRIBUTION IMPACT VS. NO CONTRIBUTIONS\n")
	output.WriteString(strings.Repeat("-", 72) + "\n")
	fmt.Fprintf(output, "  %-32s %20s\n", "Tax Reduction:", FormatCurrency(summary.Impact.TaxReduction))
	fmt.Fprintf(output, "  %-32s %20s\n", "Savings Increase:", FormatCurrency(summary.Impact.SavingsIncrease))
	fmt.Fprintf(output, "  %-32s %20s\n", "After-Tax Income Change:", FormatCurrency(summary.Impact.AfterTaxIncomeChange))
	output.WriteString("\n")
}

func writeMilestoneSection(output *strings.Builder, summary *domain.PlanSummary) {
	output.WriteString("FI MILESTONES\n")
	output.WriteString(strings.Repeat("-", 72) + "\n")
	fmt.Fprintf(output, "  %-26s %18s  %s\n", "Milestone", "Target", "Time to Achieve")
	fmt.Fprintf(output, "  %-26s %18s  %s\n", strings.Repeat("-", 26), strings.Repeat("-", 18), strings.Repeat("-", 24))

	horizon := summary.Input.ProjectionYears
	for _, kind := range domain.AllMilestoneKinds() {
		milestone, ok := summary.Milestones[kind]
		if !ok {
			continue
		}
		fmt.Fprintf(output, "  %-26s %18s  %s\n",
			kind.DisplayName(),
			FormatCurrency(milestone.Target),
			FormatMilestoneStatus(milestone.Status, horizon))
	}
	output.WriteString("\n")
	output.WriteString("  Targets are multiples of annual expenses: Barista 12.5x, Lean 18.75x,\n")
	output.WriteString("  Full 25x, Fat 37.5x. Coast FI is the balance that grows to the Full FI\n")
	output.WriteString("  target by retirement age with no further contributions.\n")
	output.WriteString("\n")
}

// writeProjectionChart plots the projected balance with a reference line at
// the Full FI target.
func writeProjectionChart(output *strings.Builder, summary *domain.PlanSummary) {
	if len(summary.Projection) == 0 {
		return
	}

	output.WriteString("PROJECTED PORTFOLIO BALANCE\n")
	output.WriteString(strings.Repeat("-", 72) + "\n")

	const (
		chartHeight = 12
		chartWidth  = 50
	)

	target, _ := summary.FullFITarget.Float64()
	maxBalance := target
	for _, point := range summary.Projection {
		if balance, _ := point.Balance.Float64(); balance > maxBalance {
			maxBalance = balance
		}
	}
	if maxBalance <= 0 {
		maxBalance = 1
	}

	grid := make([][]rune, chartHeight)
	for row := range grid {
		grid[row] = []rune(strings.Repeat(" ", chartWidth))
	}

	targetRow := chartHeight - 1 - int(target/maxBalance*float64(chartHeight-1))
	if targetRow >= 0 && targetRow < chartHeight {
		for col := 0; col < chartWidth; col++ {
			grid[targetRow][col] = '·'
		}
	}

	for index, point := range summary.Projection {
		col := index * (chartWidth - 1) / max(len(summary.Projection)-1, 1)
		balance, _ := point.Balance.Float64()
		row := chartHeight - 1 - int(balance/maxBalance*float64(chartHeight-1))
		if row < 0 {
			row = 0
		}
		if row >= chartHeight {
			row = chartHeight - 1
		}
		grid[row][col] = '●'
	}

	for row := 0; row < chartHeight; row++ {
		label := ""
		switch row {
		case 0:
			label = formatChartValue(maxBalance)
		case targetRow:
			label = "FI " + formatChartValue(target)
		case chartHeight - 1:
			label = "$0"
		}
		fmt.Fprintf(output, "  %10s |%s\n", label, string(grid[row]))
	}
	fmt.Fprintf(output, "  %10s +%s\n", "", strings.Repeat("-", chartWidth))
	fmt.Fprintf(output, "  %10s  Year 1%sYear %d\n", "",
		strings.Repeat(" ", chartWidth-13), summary.Projection[len(summary.Projection)-1].Year)
	output.WriteString("\n")
}
