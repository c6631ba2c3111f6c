package ml

// Risk levels map the model's disease probability onto a 1..5 scale shown to
// the user. Thresholds are calibrated against the artifact's baseline output
// for healthy inputs and must track the deployed model version.
const (
	RiskVeryLow  = 1
	RiskLow      = 2
	RiskModerate = 3
	RiskHigh     = 4
	RiskVeryHigh = 5
)

func RiskLevel(probability float64) int {
	switch {
	case probability <= 0.30:
		return RiskVeryLow
	case probability <= 0.45:
		return RiskLow
	case probability <= 0.60:
		return RiskModerate
	case probability <= 0.80:
		return RiskHigh
	default:
		return RiskVeryHigh
	}
}
