package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fireplan/fire-calculator/internal/domain"
)

// GenerateReport formats a plan summary and writes it to the given writer.
func GenerateReport(w io.Writer, summary *domain.PlanSummary, format string) error {
	formatter := GetFormatterByName(format)
	if formatter == nil {
		return fmt.Errorf("unsupported format %q (available: %s)",
			format, strings.Join(AvailableFormatterNames(), ", "))
	}
	data, err := formatter.Format(summary)
	if err != nil {
		return fmt.Errorf("formatting report: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
