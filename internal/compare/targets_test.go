// internal/compare/targets_test.go
package compare

import (
	"testing"

	"github.com/perfgate/perfgate/internal/snapshot"
)

func TestTokenTargetMet(t *testing.T) {
	comparator := newTestComparator(t)
	baseline := testSnapshot(1000, 1800, 0.002, -1, 10)
	current := testSnapshot(1000, 1600, 0.002, -1, 10)

	result, err := comparator.Compare(baseline, current)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	tokens := result.Summary.Achievements.TokenReduction
	if !tokens.Met {
		t.Errorf("an 11.1%% token reduction must meet the 10%% target")
	}
	if tokens.Target != 0.10 {
		t.Errorf("target = %v, want 0.10", tokens.Target)
	}
	if tokens.Achieved < 0.11 || tokens.Achieved > 0.112 {
		t.Errorf("achieved = %v, want about 0.111", tokens.Achieved)
	}
	if !result.Summary.Achievements.OverallSuccess {
		t.Errorf("token target met and quality unmeasured: overall must pass")
	}
}

func TestQualityFloorViolationFailsOverall(t *testing.T) {
	comparator := newTestComparator(t)
	// Latency target comfortably met, but quality drops 5 points.
	baseline := testSnapshot(1000, 1800, 0.002, 0.65, 10)
	current := testSnapshot(800, 1800, 0.002, 0.60, 10)

	result, err := comparator.Compare(baseline, current)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	achievements := result.Summary.Achievements
	if achievements.QualityMaintained {
		t.Errorf("a 0.05 quality drop exceeds the 0.02 floor")
	}
	if !achievements.LatencyReduction.Met {
		t.Errorf("a 20%% latency reduction must meet the 15%% target")
	}
	if achievements.OverallSuccess {
		t.Errorf("overall must fail when the quality floor is violated")
	}
}

func TestQualityDropWithinFloor(t *testing.T) {
	comparator := newTestComparator(t)
	baseline := testSnapshot(1000, 1800, 0.002, 0.65, 10)
	current := testSnapshot(800, 1800, 0.002, 0.64, 10)

	result, err := comparator.Compare(baseline, current)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if !result.Summary.Achievements.QualityMaintained {
		t.Errorf("a 0.01 quality drop stays inside the 0.02 floor")
	}
	if !result.Summary.Achievements.OverallSuccess {
		t.Errorf("latency met and quality held: overall must pass")
	}
}

func TestCostTargetIsInformationalOnly(t *testing.T) {
	comparator := newTestComparator(t)
	// 10% cost reduction misses the 12% target; latency still passes.
	baseline := testSnapshot(1000, 1800, 0.002, -1, 10)
	current := testSnapshot(800, 1800, 0.0018, -1, 10)

	result, err := comparator.Compare(baseline, current)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	achievements := result.Summary.Achievements
	if achievements.CostReduction.Met {
		t.Errorf("a 10%% cost reduction must miss the 12%% target")
	}
	if !achievements.OverallSuccess {
		t.Errorf("an unmet cost target must not fail the overall assessment")
	}
}

func TestTargetGating(t *testing.T) {
	comparator := newTestComparator(t)

	tests := []struct {
		name  string
		snaps *testPair
		want  bool
	}{
		{"neither primary target met", pair(testSnapshot(1000, 1800, 0.002, -1, 10), testSnapshot(980, 1780, 0.002, -1, 10)), false},
		{"latency only", pair(testSnapshot(1000, 1800, 0.002, -1, 10), testSnapshot(800, 1800, 0.002, -1, 10)), true},
		{"tokens only", pair(testSnapshot(1000, 1800, 0.002, -1, 10), testSnapshot(1000, 1500, 0.002, -1, 10)), true},
		{"both primaries", pair(testSnapshot(1000, 1800, 0.002, -1, 10), testSnapshot(800, 1500, 0.002, -1, 10)), true},
		{"primaries met but quality violated", pair(testSnapshot(1000, 1800, 0.002, 0.9, 10), testSnapshot(800, 1500, 0.002, 0.8, 10)), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := comparator.Compare(tc.snaps.baseline, tc.snaps.current)
			if err != nil {
				t.Fatalf("Compare: %v", err)
			}
			if got := result.Summary.Achievements.OverallSuccess; got != tc.want {
				t.Errorf("overall success = %t, want %t", got, tc.want)
			}
		})
	}
}

type testPair struct {
	baseline *snapshot.PerformanceSnapshot
	current  *snapshot.PerformanceSnapshot
}

func pair(baseline, current *snapshot.PerformanceSnapshot) *testPair {
	return &testPair{baseline: baseline, current: current}
}
