package domain

import "testing"

func TestRiskForScoreThresholds(t *testing.T) {
	cases := []struct {
		score int
		want  RiskLevel
	}{
		{score: 85, want: RiskLow},
		{score: 80, want: RiskLow}, // boundary, inclusive
		{score: 79, want: RiskModerate},
		{score: 65, want: RiskModerate},
		{score: 50, want: RiskModerate}, // boundary, inclusive
		{score: 49, want: RiskHigh},
		{score: 30, want: RiskHigh},
		{score: 0, want: RiskHigh},
		{score: 100, want: RiskLow},
	}

	for _, tc := range cases {
		if got := RiskForScore(tc.score); got != tc.want {
			t.Fatalf("score %d: expected %q, got %q", tc.score, tc.want, got)
		}
	}
}

func TestReconcileOverridesAdvisoryLabel(t *testing.T) {
	report := &ProductReport{
		SafetyScore:        30,
		OverallProductRisk: RiskLow, // model's advisory label, to be discarded
	}

	Reconcile(report)

	if report.OverallProductRisk != RiskHigh {
		t.Fatalf("expected label derived from score, got %q", report.OverallProductRisk)
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	for _, score := range []int{0, 30, 49, 50, 65, 79, 80, 100} {
		report := &ProductReport{SafetyScore: score}

		once := *Reconcile(report)
		twice := *Reconcile(report)

		if once.OverallProductRisk != twice.OverallProductRisk {
			t.Fatalf("score %d: reconcile not idempotent: %q then %q",
				score, once.OverallProductRisk, twice.OverallProductRisk)
		}
	}
}

func TestReconcileNilIsSafe(t *testing.T) {
	if got := Reconcile(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
