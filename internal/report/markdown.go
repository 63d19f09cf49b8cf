// internal/report/markdown.go
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/perfgate/perfgate/internal/compare"
)

// RenderMarkdown emits the same content as the plain-text table in GitHub
// Markdown, suitable for pull-request comments and exported reports.
func RenderMarkdown(result *compare.ComparisonResult) string {
	var b strings.Builder

	b.WriteString("# Performance Comparison `" + result.Metadata.ComparisonID + "`\n\n")
	b.WriteString(fmt.Sprintf("- **Endpoint:** %s\n", result.Metadata.EndpointID))
	b.WriteString(fmt.Sprintf("- **Baseline:** %s\n", result.Metadata.BaselineTimestamp.Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("- **Current:** %s\n", result.Metadata.CurrentTimestamp.Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("- **Overall improvement score:** %.2f\n\n", result.Summary.OverallImprovementScore))

	b.WriteString("| Metric | Baseline | Current | Change | Direction | Significant |\n")
	b.WriteString("|--------|---------:|--------:|-------:|-----------|-------------|\n")
	for _, kind := range orderedMetrics(result) {
		comparison := result.Detailed[kind]
		b.WriteString(fmt.Sprintf("| %s | %s | %s | %.1f%% | %s | %t |\n",
			kind,
			formatValue(comparison.BaselinePrimary),
			formatValue(comparison.CurrentPrimary),
			comparison.Change.Percentage,
			comparison.Change.Direction,
			comparison.Significance.IsSignificant))
	}
	b.WriteString("\n")

	achievements := result.Summary.Achievements
	b.WriteString("## Targets\n\n")
	b.WriteString("| Target | Goal | Achieved | Met |\n")
	b.WriteString("|--------|-----:|---------:|-----|\n")
	b.WriteString(markdownTargetRow("Token reduction", achievements.TokenReduction))
	b.WriteString(markdownTargetRow("Latency reduction", achievements.LatencyReduction))
	b.WriteString(markdownTargetRow("Cost reduction (informational)", achievements.CostReduction))
	b.WriteString(fmt.Sprintf("| Quality maintained | — | — | %t |\n\n", achievements.QualityMaintained))

	if len(result.Summary.Regressions) > 0 {
		b.WriteString("## Regressions\n\n")
		for _, regression := range result.Summary.Regressions {
			b.WriteString("- " + regression + "\n")
		}
		b.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for i, recommendation := range result.Recommendations {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, recommendation))
		}
		b.WriteString("\n")
	}

	if achievements.OverallSuccess {
		b.WriteString("**Verdict: PASSED** — optimization targets achieved.\n")
	} else {
		b.WriteString("**Verdict: FAILED** — optimization targets not achieved.\n")
	}
	return b.String()
}

func markdownTargetRow(name string, status compare.TargetStatus) string {
	verdict := "no"
	if status.Met {
		verdict = "yes"
	}
	return fmt.Sprintf("| %s | %.0f%% | %.1f%% | %s |\n", name, status.Target*100, status.Achieved*100, verdict)
}
