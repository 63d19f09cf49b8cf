// internal/compare/recommend_test.go
package compare

import (
	"testing"
)

func TestRecommendationsForRegressedRun(t *testing.T) {
	comparator := newTestComparator(t)
	// Latency and tokens regress significantly, cost regresses, quality drops
	// past the floor. Every rule that applies must fire, in priority order.
	baseline := testSnapshot(1000, 1800, 0.002, 0.70, 10)
	current := testSnapshot(1250, 2100, 0.0024, 0.65, 10)

	result, err := comparator.Compare(baseline, current)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	want := []string{
		recLatencyRollback,
		recTokensRegressed,
		recCostUnmet,
		recQualityDegraded,
	}
	assertRecommendations(t, result.Recommendations, want)
}

func TestRecommendationsForUnmetTargetsWithoutRegression(t *testing.T) {
	comparator := newTestComparator(t)
	// Small improvements everywhere, but none large enough to meet the
	// reduction targets.
	baseline := testSnapshot(1000, 1800, 0.002, 0.70, 10)
	current := testSnapshot(920, 1700, 0.00192, 0.70, 10)

	result, err := comparator.Compare(baseline, current)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	want := []string{
		recTokensUnmet,
		recCostUnmet,
	}
	assertRecommendations(t, result.Recommendations, want)
}

func TestRecommendationsForSuccessfulRun(t *testing.T) {
	comparator := newTestComparator(t)
	// Token and latency targets both met, quality held: only the rollout
	// suggestion remains.
	baseline := testSnapshot(1000, 1800, 0.002, 0.70, 10)
	current := testSnapshot(800, 1500, 0.0017, 0.70, 10)

	result, err := comparator.Compare(baseline, current)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	assertRecommendations(t, result.Recommendations, []string{recApplyElsewhere})
}

func assertRecommendations(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("recommendations = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("recommendation[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
