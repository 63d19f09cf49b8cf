// internal/report/table.go
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/perfgate/perfgate/internal/compare"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	dimStyle     = lipgloss.NewStyle().Faint(true)

	passVerdict = func(s string) string { return color.New(color.FgGreen, color.Bold).Sprint(s) }
	failVerdict = func(s string) string { return color.New(color.FgRed, color.Bold).Sprint(s) }
	warnText    = func(s string) string { return color.New(color.FgYellow).Sprint(s) }
)

// RenderTable emits the plain-text summary: metadata, per-metric deltas, the
// overall score, target assessment, recommendations, and regressions.
// Styling is applied only when colorize is true so file output stays clean.
func RenderTable(result *compare.ComparisonResult, colorize bool) string {
	var b strings.Builder

	style := func(s string, styled func(string) string) string {
		if colorize {
			return styled(s)
		}
		return s
	}
	heading := func(s string) string {
		return style(s, func(v string) string { return headingStyle.Render(v) })
	}
	dim := func(s string) string {
		return style(s, func(v string) string { return dimStyle.Render(v) })
	}

	b.WriteString(heading("Performance Comparison") + "  " + result.Metadata.ComparisonID + "\n")
	b.WriteString(dim(fmt.Sprintf("endpoint=%s baseline=%s current=%s generated=%s",
		result.Metadata.EndpointID,
		result.Metadata.BaselineTimestamp.Format(time.RFC3339),
		result.Metadata.CurrentTimestamp.Format(time.RFC3339),
		result.Metadata.GeneratedAt.Format(time.RFC3339))) + "\n\n")

	b.WriteString(fmt.Sprintf("%-12s %14s %14s %10s %13s %12s\n",
		"METRIC", "BASELINE", "CURRENT", "CHANGE", "DIRECTION", "SIGNIFICANT"))
	b.WriteString(strings.Repeat("-", 80) + "\n")
	for _, kind := range orderedMetrics(result) {
		comparison := result.Detailed[kind]
		direction := string(comparison.Change.Direction)
		if colorize && comparison.Change.Direction == compare.Regression {
			direction = warnText(direction)
		}
		b.WriteString(fmt.Sprintf("%-12s %14s %14s %9.1f%% %13s %12t\n",
			kind,
			formatValue(comparison.BaselinePrimary),
			formatValue(comparison.CurrentPrimary),
			comparison.Change.Percentage,
			direction,
			comparison.Significance.IsSignificant))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Overall improvement score: %.2f\n\n", result.Summary.OverallImprovementScore))

	achievements := result.Summary.Achievements
	b.WriteString(heading("Targets") + "\n")
	b.WriteString(targetLine("token reduction", achievements.TokenReduction))
	b.WriteString(targetLine("latency reduction", achievements.LatencyReduction))
	b.WriteString(targetLine("cost reduction (informational)", achievements.CostReduction))
	b.WriteString(fmt.Sprintf("  %-32s %t\n", "quality maintained", achievements.QualityMaintained))

	if len(result.Summary.Regressions) > 0 {
		b.WriteString("\n" + heading("Regressions") + "\n")
		for _, regression := range result.Summary.Regressions {
			b.WriteString("  - " + regression + "\n")
		}
	}

	if len(result.Recommendations) > 0 {
		b.WriteString("\n" + heading("Recommendations") + "\n")
		for i, recommendation := range result.Recommendations {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, recommendation))
		}
	}

	b.WriteString("\n")
	if achievements.OverallSuccess {
		b.WriteString(style("PASSED", passVerdict) + ": optimization targets achieved\n")
	} else {
		b.WriteString(style("FAILED", failVerdict) + ": optimization targets not achieved\n")
	}
	return b.String()
}

func targetLine(name string, status compare.TargetStatus) string {
	verdict := "unmet"
	if status.Met {
		verdict = "met"
	}
	return fmt.Sprintf("  %-32s target %4.0f%%  achieved %5.1f%%  %s\n",
		name, status.Target*100, status.Achieved*100, verdict)
}
