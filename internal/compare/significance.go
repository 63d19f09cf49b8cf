// internal/compare/significance.go
package compare

import (
	"errors"
	"math"

	"github.com/perfgate/perfgate/internal/snapshot"
)

// ErrInsufficientSamples is returned by the two-sample test when either side
// carries fewer raw samples than the configured minimum. It is never fatal:
// the comparator degrades to magnitude-based significance instead.
var ErrInsufficientSamples = errors.New("insufficient raw samples for significance testing")

// significanceFor estimates significance for one metric. It prefers the
// approximate two-sample test over the metric's per-request series and falls
// back to the magnitude heuristic when samples are missing or too few.
func (c *Comparator) significanceFor(spec metricSpec, baseline, current *snapshot.PerformanceSnapshot, change Change) Significance {
	if spec.series != nil {
		sig, err := c.twoSampleSignificance(spec.series(baseline), spec.series(current))
		if err == nil {
			return sig
		}
	}
	return c.magnitudeSignificance(spec, change)
}

// twoSampleSignificance runs an approximate two-independent-sample test over
// the raw per-request series. The t statistic is mapped to a p-value through
// fixed breakpoints rather than a Student's-t CDF; the coarse mapping is
// deliberate and changing it changes pass/fail outcomes.
func (c *Comparator) twoSampleSignificance(base, cur []float64) (Significance, error) {
	minSamples := c.cfg.Significance.MinSamples
	if len(base) < minSamples || len(cur) < minSamples {
		return Significance{}, ErrInsufficientSamples
	}

	m1, v1 := meanVariance(base)
	m2, v2 := meanVariance(cur)
	se := math.Sqrt(v1/float64(len(base)) + v2/float64(len(cur)))

	var p float64
	switch {
	case se == 0:
		// Constant samples on both sides: any difference in means is exact.
		if m1 == m2 {
			p = 0.10
		} else {
			p = 0.01
		}
	default:
		t := math.Abs(m1-m2) / se
		switch {
		case t > 2:
			p = 0.01
		case t > 1.5:
			p = 0.05
		default:
			p = 0.10
		}
	}

	pValue := p
	return Significance{
		IsSignificant: p < c.cfg.Significance.PValueCutoff,
		Confidence:    1 - p,
		PValue:        &pValue,
	}, nil
}

// magnitudeSignificance is the fallback when no usable raw samples exist:
// the change is significant when its absolute percentage clears the metric's
// magnitude bar. No p-value is reported on this path.
func (c *Comparator) magnitudeSignificance(spec metricSpec, change Change) Significance {
	if math.Abs(change.Percentage) > spec.magnitudeBar {
		return Significance{IsSignificant: true, Confidence: 0.8}
	}
	return Significance{IsSignificant: false, Confidence: 0.5}
}

// meanVariance returns the sample mean and Bessel-corrected sample variance.
func meanVariance(values []float64) (float64, float64) {
	n := float64(len(values))
	if n == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / n
	if n < 2 {
		return mean, 0
	}
	var squares float64
	for _, v := range values {
		diff := v - mean
		squares += diff * diff
	}
	return mean, squares / (n - 1)
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
