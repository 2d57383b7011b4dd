package output

import (
	"encoding/json"
	"fmt"

	"github.com/fireplan/fire-calculator/internal/domain"
)

// JSONFormatter emits the full plan summary as indented JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(summary *domain.PlanSummary) ([]byte, error) {
	if summary == nil {
		return nil, fmt.Errorf("nil plan summary")
	}
	return json.MarshalIndent(summary, "", "  ")
}
