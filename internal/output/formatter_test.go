package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fireplan/fire-calculator/internal/calculation"
	"github.com/fireplan/fire-calculator/internal/config"
	"github.com/fireplan/fire-calculator/internal/domain"
)

func testSummary(t *testing.T) *domain.PlanSummary {
	t.Helper()

	engine := calculation.NewEngine(config.DefaultRegulatory2025())
	summary, err := engine.RunPlan(&domain.PlannerInput{
		FilingStatus:       domain.FilingSingle,
		GrossSalary:        decimal.NewFromInt(100000),
		PensionPercent:     decimal.NewFromFloat(0.05),
		AnnualExpenses:     decimal.NewFromInt(40000),
		CurrentInvestments: decimal.NewFromInt(50000),
		ExpectedReturn:     decimal.NewFromFloat(0.07),
		RetirementAge:      decimal.NewFromInt(60),
		CurrentAge:         decimal.NewFromInt(30),
		ProjectionYears:    50,
		Contributions: domain.ContributionSet{
			domain.Account403bTraditional: decimal.NewFromInt(15000),
			domain.AccountRothIRA:         decimal.NewFromInt(7000),
			domain.Account529Plan:         decimal.NewFromInt(5000),
		},
	})
	require.NoError(t, err)
	return summary
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"console", "console"},
		{"Console", "console"},
		{"table", "console"},
		{"text", "console"},
		{"json", "json"},
		{"json-pretty", "json"},
		{"csv", "csv"},
		{"csv-summary", "csv"},
		{"html", "html"},
		{"html-report", "html"},
	}

	for _, tt := range tests {
		f := GetFormatterByName(tt.name)
		require.NotNil(t, f, "formatter %q not found", tt.name)
		assert.Equal(t, tt.expected, f.Name())
	}

	assert.Nil(t, GetFormatterByName("xml"))
}

func TestAvailableFormatterNames(t *testing.T) {
	names := AvailableFormatterNames()
	assert.Equal(t, []string{"console", "csv", "html", "json"}, names)
}

func TestConsoleFormatter(t *testing.T) {
	data, err := (ConsoleFormatter{}).Format(testSummary(t))
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "FIRE PLAN SUMMARY")
	assert.Contains(t, out, "INCOME & TAXES")
	assert.Contains(t, out, "ANNUAL CONTRIBUTIONS")
	assert.Contains(t, out, "403(b) Traditional:")
	assert.Contains(t, out, "WHERE THE MONEY GOES")
	assert.Contains(t, out, "CONTRIBUTION IMPACT VS. NO CONTRIBUTIONS")
	assert.Contains(t, out, "FI MILESTONES")
	assert.Contains(t, out, "Coast FI")
	assert.Contains(t, out, "Full FI (100% Expenses)")
	assert.Contains(t, out, "PROJECTED PORTFOLIO BALANCE")
}

func TestConsoleFormatterNilSummary(t *testing.T) {
	_, err := (ConsoleFormatter{}).Format(nil)
	assert.Error(t, err)
}

func TestCSVSummarizer(t *testing.T) {
	data, err := (CSVSummarizer{}).Format(testSummary(t))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)

	// Header plus one row per projected year
	require.Len(t, records, 51)
	assert.Equal(t, []string{"Year", "Balance", "CoastFI", "BaristaFI", "LeanFI", "FullFI", "FatFI"}, records[0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "50", records[50][0])
}

func TestJSONFormatter(t *testing.T) {
	data, err := (JSONFormatter{}).Format(testSummary(t))
	require.NoError(t, err)

	var decoded domain.PlanSummary
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.FullFITarget.Equal(decimal.NewFromInt(1000000)))
	assert.Len(t, decoded.Projection, 50)
}

func TestHTMLFormatter(t *testing.T) {
	data, err := (HTMLFormatter{}).Format(testSummary(t))
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "<title>FIRE Plan Report</title>")
	assert.Contains(t, out, "FI Milestones")
	assert.Contains(t, out, "Coast FI")
}

func TestGenerateReport(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, GenerateReport(&sb, testSummary(t), "console"))
	assert.Contains(t, sb.String(), "FIRE PLAN SUMMARY")

	err := GenerateReport(&sb, testSummary(t), "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "21.0%", FormatPercentage(decimal.NewFromFloat(0.21)))

	horizon := 50
	assert.Equal(t, "Already achieved",
		FormatMilestoneStatus(domain.MilestoneStatus{State: domain.MilestoneAchievedImmediately}, horizon))
	assert.Equal(t, "12 years",
		FormatMilestoneStatus(domain.MilestoneStatus{State: domain.MilestoneAchievedAtYear, Year: 12}, horizon))
	assert.Equal(t, "Not achieved within 50 years",
		FormatMilestoneStatus(domain.MilestoneStatus{State: domain.MilestoneUnmet}, horizon))
}
