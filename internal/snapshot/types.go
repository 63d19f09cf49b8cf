// internal/snapshot/types.go
// Package snapshot defines the performance snapshot model and its loader.
package snapshot

import "time"

// PerformanceSnapshot is the top-level document for one aggregated
// measurement run of a workload against an endpoint.
type PerformanceSnapshot struct {
	Metadata   SnapshotMetadata   `json:"metadata"`
	Metrics    SnapshotMetrics    `json:"metrics"`
	RawSamples []PerRequestResult `json:"raw_data,omitempty"`
}

// SnapshotMetadata identifies the run the snapshot was taken from.
type SnapshotMetadata struct {
	EndpointID   string    `json:"endpoint_id"`
	TimestampUTC time.Time `json:"timestamp_utc"`
	SampleCount  int       `json:"sample_count"`
	Concurrency  int       `json:"concurrency"`
}

// SnapshotMetrics groups the aggregate stats per metric family. Quality is
// nil when no quality probe ran during the measurement.
type SnapshotMetrics struct {
	Latency    LatencyStats    `json:"latency"`
	Tokens     TokenStats      `json:"tokens"`
	Cost       CostStats       `json:"cost"`
	Throughput ThroughputStats `json:"throughput"`
	Quality    *QualityStats   `json:"quality,omitempty"`
}

// LatencyStats captures request latency aggregates in milliseconds.
type LatencyStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P50    float64 `json:"p50"`
	P95    float64 `json:"p95"`
	P99    float64 `json:"p99"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
}

// TokenStats captures token usage aggregates.
type TokenStats struct {
	MeanInput       float64 `json:"mean_input"`
	MeanOutput      float64 `json:"mean_output"`
	Total           float64 `json:"total"`
	InputTokens     float64 `json:"input_tokens"`
	OutputTokens    float64 `json:"output_tokens"`
	TokensPerSecond float64 `json:"tokens_per_second"`
}

// CostStats captures cost aggregates in currency units.
type CostStats struct {
	PerRequest float64 `json:"per_request"`
	Per1000    float64 `json:"per_1000"`
	TotalCost  float64 `json:"total_cost"`
	InputCost  float64 `json:"input_cost"`
	OutputCost float64 `json:"output_cost"`
}

// QualityStats captures the quality probe score on a 0..1 scale.
type QualityStats struct {
	Score float64 `json:"score"`
}

// ThroughputStats captures sustained throughput aggregates.
type ThroughputStats struct {
	RequestsPerSecond float64 `json:"requests_per_second"`
	TokensPerSecond   float64 `json:"tokens_per_second"`
	BytesPerSecond    float64 `json:"bytes_per_second"`
}

// PerRequestResult is one raw sample from the measurement run. Raw samples
// feed significance testing only; aggregate fields are never re-derived
// from them.
type PerRequestResult struct {
	RequestID string    `json:"request_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	LatencyMs float64   `json:"latency_ms"`
	TokensIn  int       `json:"tokens_in"`
	TokensOut int       `json:"tokens_out"`
	CostUSD   float64   `json:"cost_usd"`
	Succeeded bool      `json:"succeeded"`
	Error     string    `json:"error,omitempty"`
}

// LatencySeries returns the per-request latency values in sample order.
func (s *PerformanceSnapshot) LatencySeries() []float64 {
	if len(s.RawSamples) == 0 {
		return nil
	}
	values := make([]float64, 0, len(s.RawSamples))
	for _, sample := range s.RawSamples {
		values = append(values, sample.LatencyMs)
	}
	return values
}

// TokenSeries returns the per-request combined token counts in sample order.
func (s *PerformanceSnapshot) TokenSeries() []float64 {
	if len(s.RawSamples) == 0 {
		return nil
	}
	values := make([]float64, 0, len(s.RawSamples))
	for _, sample := range s.RawSamples {
		values = append(values, float64(sample.TokensIn+sample.TokensOut))
	}
	return values
}

// CostSeries returns the per-request cost values in sample order.
func (s *PerformanceSnapshot) CostSeries() []float64 {
	if len(s.RawSamples) == 0 {
		return nil
	}
	values := make([]float64, 0, len(s.RawSamples))
	for _, sample := range s.RawSamples {
		values = append(values, sample.CostUSD)
	}
	return values
}
