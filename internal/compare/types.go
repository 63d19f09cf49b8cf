// internal/compare/types.go
// Package compare implements the performance regression comparator: it takes
// a baseline and a current snapshot of the same workload and produces a
// per-metric verdict, a weighted overall score, a target assessment, and
// prioritized recommendations.
package compare

import (
	"encoding/json"
	"time"
)

// MetricKind identifies one of the closed set of compared metric families.
type MetricKind string

// Metric families, in report order.
const (
	MetricLatency    MetricKind = "latency"
	MetricTokens     MetricKind = "tokens"
	MetricCost       MetricKind = "cost"
	MetricQuality    MetricKind = "quality"
	MetricThroughput MetricKind = "throughput"
)

// MetricOrder is the fixed rendering and aggregation order for metric
// families. Keeping it fixed makes results deterministic.
var MetricOrder = []MetricKind{MetricLatency, MetricTokens, MetricCost, MetricQuality, MetricThroughput}

// Direction classifies a metric change relative to its polarity.
type Direction string

// Change directions.
const (
	Improvement Direction = "improvement"
	Regression  Direction = "regression"
	Neutral     Direction = "neutral"
)

// Change captures the movement of a metric's primary scalar between the two
// snapshots. Percentage is 0 when the baseline primary scalar is 0; that
// sentinel keeps a zero baseline from producing NaN or Inf anywhere
// downstream.
type Change struct {
	Absolute   float64   `json:"absolute"`
	Percentage float64   `json:"percentage"`
	Direction  Direction `json:"direction"`
}

// Significance reports whether a change is unlikely to be sampling noise.
// PValue is only present when the approximate two-sample test ran; the
// magnitude fallback reports confidence without one.
type Significance struct {
	IsSignificant bool     `json:"is_significant"`
	Confidence    float64  `json:"confidence"`
	PValue        *float64 `json:"p_value,omitempty"`
}

// MetricComparison is the per-metric output. Baseline and Current hold the
// raw aggregate sub-objects as supplied; BaselinePrimary and CurrentPrimary
// are the representative scalars the change was computed from.
type MetricComparison struct {
	Baseline        json.RawMessage `json:"baseline"`
	Current         json.RawMessage `json:"current"`
	BaselinePrimary float64         `json:"baseline_primary"`
	CurrentPrimary  float64         `json:"current_primary"`
	Change          Change          `json:"change"`
	Significance    Significance    `json:"significance"`
}

// ResultMetadata identifies one comparison invocation.
type ResultMetadata struct {
	ComparisonID      string    `json:"comparison_id"`
	GeneratedAt       time.Time `json:"generated_at"`
	EndpointID        string    `json:"endpoint_id"`
	BaselineTimestamp time.Time `json:"baseline_timestamp"`
	CurrentTimestamp  time.Time `json:"current_timestamp"`
}

// TargetStatus reports one configured improvement target. Target and
// Achieved are fractions (0.10 means 10%).
type TargetStatus struct {
	Target   float64 `json:"target"`
	Achieved float64 `json:"achieved"`
	Met      bool    `json:"met"`
}

// TargetAchievements is the target-table assessment. Overall success
// requires at least one of the token or latency targets plus the quality
// floor; the cost target is tracked but never gates.
type TargetAchievements struct {
	TokenReduction    TargetStatus `json:"token_reduction"`
	LatencyReduction  TargetStatus `json:"latency_reduction"`
	CostReduction     TargetStatus `json:"cost_reduction"`
	QualityMaintained bool         `json:"quality_maintained"`
	OverallSuccess    bool         `json:"overall_success"`
}

// ResultSummary aggregates the per-metric comparisons.
type ResultSummary struct {
	OverallImprovementScore float64            `json:"overall_improvement_score"`
	SignificantChanges      []string           `json:"significant_changes"`
	Regressions             []string           `json:"regressions"`
	Achievements            TargetAchievements `json:"achievements"`
}

// ComparisonResult is the top-level comparator output. It is created once
// per invocation and never mutated afterwards.
type ComparisonResult struct {
	Metadata        ResultMetadata                  `json:"metadata"`
	Summary         ResultSummary                   `json:"summary"`
	Detailed        map[MetricKind]MetricComparison `json:"detailed"`
	Recommendations []string                        `json:"recommendations"`
}
