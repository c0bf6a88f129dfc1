package domain

// RiskForScore derives the categorical risk label from a numeric safety
// score. Thresholds are inclusive on the lower bound: >=80 Low, 50-79
// Moderate, <50 High.
func RiskForScore(score int) RiskLevel {
	switch {
	case score >= 80:
		return RiskLow
	case score >= 50:
		return RiskModerate
	default:
		return RiskHigh
	}
}

// Reconcile forces consistency between the safety score and the overall
// risk label. Whatever label the model proposed is discarded: numeric
// scores are comparable across runs, free-text labels are not. Pure and
// idempotent.
func Reconcile(r *ProductReport) *ProductReport {
	if r == nil {
		return nil
	}
	r.OverallProductRisk = RiskForScore(r.SafetyScore)
	return r
}
