// internal/compare/recommend.go
package compare

// Recommendation texts, emitted in fixed priority order. No rule suppresses
// another; every triggered rule fires.
const (
	recLatencyRollback = "CRITICAL: latency regressed significantly, consider rolling back the optimization"
	recTokensRegressed = "Token usage regressed; reduce prompt and completion sizes to recover the reduction target"
	recTokensUnmet     = "Token reduction target not met; tighten prompts or response limits to improve token efficiency"
	recCostUnmet       = "Cost reduction target not met; review provider pricing or route traffic to a cheaper model"
	recQualityDegraded = "IMPORTANT: quality degraded below the configured threshold, review output quality before rollout"
	recApplyElsewhere  = "Both token and latency targets met; consider applying this optimization to other endpoints"
)

// recommend turns the comparison and target assessment into an ordered list
// of action items.
func (c *Comparator) recommend(detailed map[MetricKind]MetricComparison, achievements TargetAchievements) []string {
	var recs []string

	if latency, ok := detailed[MetricLatency]; ok {
		if latency.Change.Direction == Regression && latency.Significance.IsSignificant {
			recs = append(recs, recLatencyRollback)
		}
	}

	if !achievements.TokenReduction.Met {
		if tokens, ok := detailed[MetricTokens]; ok && tokens.Change.Direction == Regression {
			recs = append(recs, recTokensRegressed)
		} else {
			recs = append(recs, recTokensUnmet)
		}
	}

	if !achievements.CostReduction.Met {
		recs = append(recs, recCostUnmet)
	}

	if !achievements.QualityMaintained {
		recs = append(recs, recQualityDegraded)
	}

	if achievements.TokenReduction.Met && achievements.LatencyReduction.Met {
		recs = append(recs, recApplyElsewhere)
	}

	return recs
}
