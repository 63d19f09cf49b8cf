// internal/compare/targets.go
package compare

import "math"

// assessTargets checks the computed improvements against the configured
// target table. Overall success requires at least one of the token or
// latency targets together with the quality floor; the cost target is
// informational only and never gates.
func (c *Comparator) assessTargets(detailed map[MetricKind]MetricComparison) TargetAchievements {
	targets := c.cfg.Targets

	achievements := TargetAchievements{
		TokenReduction:    reductionStatus(detailed[MetricTokens], targets.TokenReductionPct),
		LatencyReduction:  reductionStatus(detailed[MetricLatency], targets.LatencyReductionPct),
		CostReduction:     reductionStatus(detailed[MetricCost], targets.CostReductionPct),
		QualityMaintained: true,
	}

	if quality, ok := detailed[MetricQuality]; ok {
		drop := quality.BaselinePrimary - quality.CurrentPrimary
		achievements.QualityMaintained = drop <= targets.QualityFloorDelta
	}

	achievements.OverallSuccess = (achievements.TokenReduction.Met || achievements.LatencyReduction.Met) &&
		achievements.QualityMaintained
	return achievements
}

// reductionStatus converts a lower-is-better metric change into a target
// status. A negative percentage change is an improvement; only positive
// improvement counts toward the target.
func reductionStatus(comparison MetricComparison, targetPct float64) TargetStatus {
	improvement := -comparison.Change.Percentage
	achieved := math.Max(0, improvement) / 100
	target := targetPct / 100
	return TargetStatus{
		Target:   target,
		Achieved: achieved,
		Met:      achieved >= target,
	}
}
