// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"fmt"
	"strings"
)

// Default knob values. Every threshold here is overridable through the
// config file or flags; the comparator itself never reads globals.
const (
	defaultTokenReductionPct   = 10.0
	defaultLatencyReductionPct = 15.0
	defaultCostReductionPct    = 12.0
	defaultQualityFloorDelta   = 0.02

	defaultLatencyNoisePct    = 5.0
	defaultTokensNoisePct     = 5.0
	defaultCostNoisePct       = 3.0
	defaultQualityNoisePct    = 2.0
	defaultThroughputNoisePct = 15.0

	defaultPValueCutoff = 0.05
	defaultMinSamples   = 5

	defaultLatencyBarPct    = 10.0
	defaultTokensBarPct     = 10.0
	defaultCostBarPct       = 5.0
	defaultQualityBarPct    = 3.0
	defaultThroughputBarPct = 15.0

	defaultLatencyWeight = 0.30
	defaultTokensWeight  = 0.25
	defaultCostWeight    = 0.25
	defaultQualityWeight = 0.20
)

// Config represents the top-level application configuration.
type Config struct {
	Compare    CompareConfig `json:"compare"`
	Debug      bool          `json:"debug"`
	LogFile    string        `json:"logFile,omitempty"`
	ConfigPath string        `json:"-"`
}

// CompareConfig is the full comparator configuration: targets, noise
// thresholds, significance settings, and aggregation weights.
type CompareConfig struct {
	Targets      TargetConfig       `json:"targets"`
	Noise        NoiseConfig        `json:"noise"`
	Significance SignificanceConfig `json:"significance"`
	Weights      WeightConfig       `json:"weights"`
}

// TargetConfig holds the improvement targets, expressed in percent, and the
// quality floor, expressed as an absolute score delta on the 0..1 scale.
type TargetConfig struct {
	TokenReductionPct   float64 `json:"tokenReductionPct"`
	LatencyReductionPct float64 `json:"latencyReductionPct"`
	CostReductionPct    float64 `json:"costReductionPct"`
	QualityFloorDelta   float64 `json:"qualityFloorDelta"`
}

// NoiseConfig holds the per-metric noise thresholds, each expressed as a
// percentage of the baseline primary scalar. Changes inside the threshold
// are classified Neutral.
type NoiseConfig struct {
	LatencyPct    float64 `json:"latencyPct"`
	TokensPct     float64 `json:"tokensPct"`
	CostPct       float64 `json:"costPct"`
	QualityPct    float64 `json:"qualityPct"`
	ThroughputPct float64 `json:"throughputPct"`
}

// SignificanceConfig controls the approximate two-sample test and the
// magnitude fallback used when raw samples are missing or too few.
type SignificanceConfig struct {
	PValueCutoff float64       `json:"pValueCutoff"`
	MinSamples   int           `json:"minSamples"`
	Bars         MagnitudeBars `json:"magnitudeBars"`
}

// MagnitudeBars holds the per-metric absolute-percentage-change bars for the
// fallback significance path.
type MagnitudeBars struct {
	LatencyPct    float64 `json:"latencyPct"`
	TokensPct     float64 `json:"tokensPct"`
	CostPct       float64 `json:"costPct"`
	QualityPct    float64 `json:"qualityPct"`
	ThroughputPct float64 `json:"throughputPct"`
}

// WeightConfig holds the aggregation weights. Throughput carries no weight;
// weights renormalize when quality is absent from a snapshot pair.
type WeightConfig struct {
	Latency float64 `json:"latency"`
	Tokens  float64 `json:"tokens"`
	Cost    float64 `json:"cost"`
	Quality float64 `json:"quality"`
}

// Default returns the documented default configuration.
func Default() Config {
	return Config{
		Compare: CompareConfig{
			Targets: TargetConfig{
				TokenReductionPct:   defaultTokenReductionPct,
				LatencyReductionPct: defaultLatencyReductionPct,
				CostReductionPct:    defaultCostReductionPct,
				QualityFloorDelta:   defaultQualityFloorDelta,
			},
			Noise: NoiseConfig{
				LatencyPct:    defaultLatencyNoisePct,
				TokensPct:     defaultTokensNoisePct,
				CostPct:       defaultCostNoisePct,
				QualityPct:    defaultQualityNoisePct,
				ThroughputPct: defaultThroughputNoisePct,
			},
			Significance: SignificanceConfig{
				PValueCutoff: defaultPValueCutoff,
				MinSamples:   defaultMinSamples,
				Bars: MagnitudeBars{
					LatencyPct:    defaultLatencyBarPct,
					TokensPct:     defaultTokensBarPct,
					CostPct:       defaultCostBarPct,
					QualityPct:    defaultQualityBarPct,
					ThroughputPct: defaultThroughputBarPct,
				},
			},
			Weights: WeightConfig{
				Latency: defaultLatencyWeight,
				Tokens:  defaultTokensWeight,
				Cost:    defaultCostWeight,
				Quality: defaultQualityWeight,
			},
		},
	}
}

// Validate checks the configuration for values that would make comparison
// results meaningless.
func (c CompareConfig) Validate() error {
	var problems []string

	if c.Significance.PValueCutoff <= 0 || c.Significance.PValueCutoff >= 1 {
		problems = append(problems, "significance.pValueCutoff must be in (0, 1)")
	}
	if c.Significance.MinSamples < 2 {
		problems = append(problems, "significance.minSamples must be at least 2")
	}
	nonNegative := []struct {
		name  string
		value float64
	}{
		{"targets.tokenReductionPct", c.Targets.TokenReductionPct},
		{"targets.latencyReductionPct", c.Targets.LatencyReductionPct},
		{"targets.costReductionPct", c.Targets.CostReductionPct},
		{"targets.qualityFloorDelta", c.Targets.QualityFloorDelta},
		{"noise.latencyPct", c.Noise.LatencyPct},
		{"noise.tokensPct", c.Noise.TokensPct},
		{"noise.costPct", c.Noise.CostPct},
		{"noise.qualityPct", c.Noise.QualityPct},
		{"noise.throughputPct", c.Noise.ThroughputPct},
		{"significance.magnitudeBars.latencyPct", c.Significance.Bars.LatencyPct},
		{"significance.magnitudeBars.tokensPct", c.Significance.Bars.TokensPct},
		{"significance.magnitudeBars.costPct", c.Significance.Bars.CostPct},
		{"significance.magnitudeBars.qualityPct", c.Significance.Bars.QualityPct},
		{"significance.magnitudeBars.throughputPct", c.Significance.Bars.ThroughputPct},
		{"weights.latency", c.Weights.Latency},
		{"weights.tokens", c.Weights.Tokens},
		{"weights.cost", c.Weights.Cost},
		{"weights.quality", c.Weights.Quality},
	}
	for _, entry := range nonNegative {
		if entry.value < 0 {
			problems = append(problems, fmt.Sprintf("%s must not be negative", entry.name))
		}
	}
	if c.Weights.Latency+c.Weights.Tokens+c.Weights.Cost == 0 {
		problems = append(problems, "weights for latency, tokens, and cost must not all be zero")
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("invalid comparison configuration: %s", strings.Join(problems, "; "))
}

// LogFilePath returns the path to the application log file, applying a
// default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "perfgate.log"
}
