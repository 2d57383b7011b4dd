package output

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fireplan/fire-calculator/internal/domain"
)

// FormatCurrency formats a decimal as currency with 2 decimal places.
func FormatCurrency(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// FormatPercentage formats a decimal fraction as a percentage with 1 decimal place.
func FormatPercentage(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

// formatChartValue renders a compact dollar amount for chart axes.
func formatChartValue(v float64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("$%.1fM", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("$%.0fK", v/1_000)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}

// FormatMilestoneStatus renders a milestone status as a human-readable duration.
func FormatMilestoneStatus(status domain.MilestoneStatus, horizonYears int) string {
	switch status.State {
	case domain.MilestoneAchievedImmediately:
		return "Already achieved"
	case domain.MilestoneAchievedAtYear:
		if status.Year == 1 {
			return "1 year"
		}
		return fmt.Sprintf("%d years", status.Year)
	default:
		return fmt.Sprintf("Not achieved within %d years", horizonYears)
	}
}
