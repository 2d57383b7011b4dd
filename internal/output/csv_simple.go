package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/fireplan/fire-calculator/internal/domain"
)

// CSVSummarizer implements the projection CSV output (one row per simulated year).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(summary *domain.PlanSummary) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "Balance", "CoastFI", "BaristaFI", "LeanFI", "FullFI", "FatFI"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, point := range summary.Projection {
		row := []string{
			strconv.Itoa(point.Year),
			point.Balance.StringFixed(2),
		}
		for _, kind := range domain.AllMilestoneKinds() {
			row = append(row, strconv.FormatBool(pointMeetsMilestone(summary, kind, point)))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pointMeetsMilestone reports whether the milestone had been reached by the
// given year, using the frozen first-crossing record.
func pointMeetsMilestone(summary *domain.PlanSummary, kind domain.MilestoneKind, point domain.ProjectionPoint) bool {
	milestone, ok := summary.Milestones[kind]
	if !ok {
		return false
	}
	switch milestone.Status.State {
	case domain.MilestoneAchievedImmediately:
		return true
	case domain.MilestoneAchievedAtYear:
		return point.Year >= milestone.Status.Year
	default:
		return false
	}
}
