// internal/compare/aggregate.go
package compare

import (
	"fmt"
	"math"
)

// overallScore combines the weighted per-metric percentages into one signed
// improvement score. Improvements contribute positively, regressions
// negatively, neutral changes contribute zero but still carry their weight,
// so the score stays a weighted average. Weights renormalize automatically
// when quality is absent because only the weights of compared metrics enter
// the denominator.
func (c *Comparator) overallScore(detailed map[MetricKind]MetricComparison) float64 {
	var sum, usedWeight float64
	for _, spec := range c.metricTable() {
		if spec.weight == 0 {
			continue
		}
		comparison, ok := detailed[spec.kind]
		if !ok {
			continue
		}
		usedWeight += spec.weight
		contribution := math.Abs(comparison.Change.Percentage) * spec.weight
		switch comparison.Change.Direction {
		case Improvement:
			sum += contribution
		case Regression:
			sum -= contribution
		}
	}
	if usedWeight == 0 {
		return 0
	}
	return round2(sum / usedWeight)
}

// significantChanges labels every metric whose change cleared significance,
// in fixed metric order.
func (c *Comparator) significantChanges(detailed map[MetricKind]MetricComparison) []string {
	labels := make([]string, 0, len(detailed))
	for _, kind := range MetricOrder {
		comparison, ok := detailed[kind]
		if !ok || !comparison.Significance.IsSignificant {
			continue
		}
		labels = append(labels, changeLabel(kind, comparison))
	}
	return labels
}

// regressions is the significant-change list restricted to regressions.
func (c *Comparator) regressions(detailed map[MetricKind]MetricComparison) []string {
	labels := make([]string, 0, len(detailed))
	for _, kind := range MetricOrder {
		comparison, ok := detailed[kind]
		if !ok || !comparison.Significance.IsSignificant || comparison.Change.Direction != Regression {
			continue
		}
		labels = append(labels, changeLabel(kind, comparison))
	}
	return labels
}

func changeLabel(kind MetricKind, comparison MetricComparison) string {
	return fmt.Sprintf("%s: %.1f%% %s", kind, comparison.Change.Percentage, comparison.Change.Direction)
}
