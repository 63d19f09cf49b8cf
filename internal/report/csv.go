// internal/report/csv.go
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/perfgate/perfgate/internal/compare"
)

var csvHeader = []string{"metric", "baseline", "current", "change_abs", "change_pct", "direction", "significant"}

// RenderCSV emits one row per compared metric, using each metric's primary
// scalar for the baseline and current columns.
func RenderCSV(result *compare.ComparisonResult) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, kind := range orderedMetrics(result) {
		comparison := result.Detailed[kind]
		row := []string{
			string(kind),
			formatValue(comparison.BaselinePrimary),
			formatValue(comparison.CurrentPrimary),
			formatValue(comparison.Change.Absolute),
			formatValue(comparison.Change.Percentage),
			string(comparison.Change.Direction),
			strconv.FormatBool(comparison.Significance.IsSignificant),
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row for %s: %w", kind, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
