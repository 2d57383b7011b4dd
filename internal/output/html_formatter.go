package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/fireplan/fire-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(summary *domain.PlanSummary) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.PlanSummary
		MilestoneRows []milestoneRow
	}{summary, buildMilestoneRows(summary)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type milestoneRow struct {
	Name   string
	Target string
	Status string
}

func buildMilestoneRows(summary *domain.PlanSummary) []milestoneRow {
	rows := make([]milestoneRow, 0, len(summary.Milestones))
	for _, kind := range domain.AllMilestoneKinds() {
		milestone, ok := summary.Milestones[kind]
		if !ok {
			continue
		}
		rows = append(rows, milestoneRow{
			Name:   kind.DisplayName(),
			Target: FormatCurrency(milestone.Target),
			Status: FormatMilestoneStatus(milestone.Status, summary.Input.ProjectionYears),
		})
	}
	return rows
}
