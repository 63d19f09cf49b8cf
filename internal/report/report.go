// internal/report/report.go
// Package report renders a ComparisonResult as JSON, CSV, a plain-text
// table, or Markdown. Rendering never mutates the result.
package report

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/perfgate/perfgate/internal/compare"
)

// Format selects one of the supported renderings.
type Format string

// Supported output formats.
const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatJSON, FormatCSV, FormatTable, FormatMarkdown:
		return Format(name), nil
	}
	return "", fmt.Errorf("unknown output format %q (want json, csv, table, or markdown)", name)
}

// Render produces the selected rendering of the result. The table rendering
// is colorized only when colorize is true (stdout on a terminal).
func Render(result *compare.ComparisonResult, format Format, colorize bool) ([]byte, error) {
	switch format {
	case FormatJSON:
		return RenderJSON(result)
	case FormatCSV:
		return RenderCSV(result)
	case FormatTable:
		return []byte(RenderTable(result, colorize)), nil
	case FormatMarkdown:
		return []byte(RenderMarkdown(result)), nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// RenderJSON emits the full-fidelity result document.
func RenderJSON(result *compare.ComparisonResult) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode comparison result: %w", err)
	}
	return append(data, '\n'), nil
}

// orderedMetrics returns the compared metrics in fixed rendering order.
func orderedMetrics(result *compare.ComparisonResult) []compare.MetricKind {
	kinds := make([]compare.MetricKind, 0, len(result.Detailed))
	for _, kind := range compare.MetricOrder {
		if _, ok := result.Detailed[kind]; ok {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// formatValue renders a metric scalar without trailing zero noise.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
