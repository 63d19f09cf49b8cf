// internal/compare/comparator.go
package compare

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/perfgate/perfgate/internal/appconfig"
	"github.com/perfgate/perfgate/internal/snapshot"
)

// Comparator compares a baseline snapshot against a current one. It holds
// only immutable configuration, so a single instance is safe to use from
// concurrent goroutines for independent snapshot pairs.
type Comparator struct {
	cfg appconfig.CompareConfig
}

// New builds a Comparator from an explicit configuration.
func New(cfg appconfig.CompareConfig) (*Comparator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Comparator{cfg: cfg}, nil
}

// metricSpec describes one metric family: its polarity, the primary scalar
// used for percentage computation, the per-request series feeding the
// significance test, and its thresholds and weight. The whole polarity table
// lives in metricTable below.
type metricSpec struct {
	kind          MetricKind
	lowerIsBetter bool
	noisePct      float64
	magnitudeBar  float64
	weight        float64
	primary       func(m *snapshot.SnapshotMetrics) (float64, bool)
	aggregate     func(m *snapshot.SnapshotMetrics) any
	series        func(s *snapshot.PerformanceSnapshot) []float64
}

// metricTable returns the closed set of compared metric families with their
// polarity rules. Latency, tokens, and cost improve downward; quality and
// throughput improve upward.
func (c *Comparator) metricTable() []metricSpec {
	noise := c.cfg.Noise
	bars := c.cfg.Significance.Bars
	weights := c.cfg.Weights
	return []metricSpec{
		{
			kind:          MetricLatency,
			lowerIsBetter: true,
			noisePct:      noise.LatencyPct,
			magnitudeBar:  bars.LatencyPct,
			weight:        weights.Latency,
			primary:       func(m *snapshot.SnapshotMetrics) (float64, bool) { return m.Latency.P95, true },
			aggregate:     func(m *snapshot.SnapshotMetrics) any { return m.Latency },
			series:        func(s *snapshot.PerformanceSnapshot) []float64 { return s.LatencySeries() },
		},
		{
			kind:          MetricTokens,
			lowerIsBetter: true,
			noisePct:      noise.TokensPct,
			magnitudeBar:  bars.TokensPct,
			weight:        weights.Tokens,
			primary:       func(m *snapshot.SnapshotMetrics) (float64, bool) { return m.Tokens.Total, true },
			aggregate:     func(m *snapshot.SnapshotMetrics) any { return m.Tokens },
			series:        func(s *snapshot.PerformanceSnapshot) []float64 { return s.TokenSeries() },
		},
		{
			kind:          MetricCost,
			lowerIsBetter: true,
			noisePct:      noise.CostPct,
			magnitudeBar:  bars.CostPct,
			weight:        weights.Cost,
			primary:       func(m *snapshot.SnapshotMetrics) (float64, bool) { return m.Cost.PerRequest, true },
			aggregate:     func(m *snapshot.SnapshotMetrics) any { return m.Cost },
			series:        func(s *snapshot.PerformanceSnapshot) []float64 { return s.CostSeries() },
		},
		{
			kind:          MetricQuality,
			lowerIsBetter: false,
			noisePct:      noise.QualityPct,
			magnitudeBar:  bars.QualityPct,
			weight:        weights.Quality,
			primary: func(m *snapshot.SnapshotMetrics) (float64, bool) {
				if m.Quality == nil {
					return 0, false
				}
				return m.Quality.Score, true
			},
			aggregate: func(m *snapshot.SnapshotMetrics) any { return m.Quality },
		},
		{
			kind:          MetricThroughput,
			lowerIsBetter: false,
			noisePct:      noise.ThroughputPct,
			magnitudeBar:  bars.ThroughputPct,
			weight:        0,
			primary:       func(m *snapshot.SnapshotMetrics) (float64, bool) { return m.Throughput.RequestsPerSecond, true },
			aggregate:     func(m *snapshot.SnapshotMetrics) any { return m.Throughput },
		},
	}
}

// Compare produces the full comparison result for a baseline/current pair.
// The result is immutable once returned; the comparator keeps no state
// between calls.
func (c *Comparator) Compare(baseline, current *snapshot.PerformanceSnapshot) (*ComparisonResult, error) {
	if baseline == nil || current == nil {
		return nil, fmt.Errorf("compare: both snapshots are required")
	}

	detailed := make(map[MetricKind]MetricComparison)
	for _, spec := range c.metricTable() {
		comparison, ok, err := c.compareMetric(spec, baseline, current)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		detailed[spec.kind] = comparison
	}

	achievements := c.assessTargets(detailed)
	summary := ResultSummary{
		OverallImprovementScore: c.overallScore(detailed),
		SignificantChanges:      c.significantChanges(detailed),
		Regressions:             c.regressions(detailed),
		Achievements:            achievements,
	}

	return &ComparisonResult{
		Metadata: ResultMetadata{
			ComparisonID:      comparisonID(baseline, current),
			GeneratedAt:       time.Now().UTC(),
			EndpointID:        current.Metadata.EndpointID,
			BaselineTimestamp: baseline.Metadata.TimestampUTC,
			CurrentTimestamp:  current.Metadata.TimestampUTC,
		},
		Summary:         summary,
		Detailed:        detailed,
		Recommendations: c.recommend(detailed, achievements),
	}, nil
}

// compareMetric builds the per-metric comparison. The second return value is
// false when the metric was not measured on both sides (quality without a
// probe run).
func (c *Comparator) compareMetric(spec metricSpec, baseline, current *snapshot.PerformanceSnapshot) (MetricComparison, bool, error) {
	basePrimary, baseOK := spec.primary(&baseline.Metrics)
	curPrimary, curOK := spec.primary(&current.Metrics)
	if !baseOK || !curOK {
		return MetricComparison{}, false, nil
	}

	baseRaw, err := json.Marshal(spec.aggregate(&baseline.Metrics))
	if err != nil {
		return MetricComparison{}, false, fmt.Errorf("encode %s baseline: %w", spec.kind, err)
	}
	curRaw, err := json.Marshal(spec.aggregate(&current.Metrics))
	if err != nil {
		return MetricComparison{}, false, fmt.Errorf("encode %s current: %w", spec.kind, err)
	}

	comparison := MetricComparison{
		Baseline:        baseRaw,
		Current:         curRaw,
		BaselinePrimary: basePrimary,
		CurrentPrimary:  curPrimary,
	}

	// A zero baseline leaves the percentage undefined. Report a zero
	// sentinel, classify Neutral, and refuse significance so nothing
	// downstream sees NaN or Inf.
	if basePrimary == 0 {
		comparison.Change = Change{Absolute: curPrimary, Percentage: 0, Direction: Neutral}
		comparison.Significance = Significance{IsSignificant: false, Confidence: 0.5}
		return comparison, true, nil
	}

	diff := curPrimary - basePrimary
	comparison.Change = Change{
		Absolute:   diff,
		Percentage: round2(diff / basePrimary * 100),
		Direction:  classify(diff, basePrimary*spec.noisePct/100, spec.lowerIsBetter),
	}
	comparison.Significance = c.significanceFor(spec, baseline, current, comparison.Change)
	return comparison, true, nil
}

// classify maps a primary-scalar delta to a direction given the metric's
// noise threshold and polarity.
func classify(diff, threshold float64, lowerIsBetter bool) Direction {
	switch {
	case diff < -threshold:
		if lowerIsBetter {
			return Improvement
		}
		return Regression
	case diff > threshold:
		if lowerIsBetter {
			return Regression
		}
		return Improvement
	default:
		return Neutral
	}
}

// comparisonID derives a stable identifier from the endpoint and the two
// snapshot timestamps, so repeated comparisons of the same pair agree.
func comparisonID(baseline, current *snapshot.PerformanceSnapshot) string {
	sum := sha256.Sum256([]byte(
		current.Metadata.EndpointID + "|" +
			baseline.Metadata.TimestampUTC.UTC().Format(time.RFC3339Nano) + "|" +
			current.Metadata.TimestampUTC.UTC().Format(time.RFC3339Nano),
	))
	return "cmp-" + hex.EncodeToString(sum[:6])
}
