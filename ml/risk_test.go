package ml

import "testing"

func TestRiskLevel(t *testing.T) {
	cases := []struct {
		probability float64
		want        int
	}{
		{0.0, RiskVeryLow},
		{0.30, RiskVeryLow},
		{0.31, RiskLow},
		{0.45, RiskLow},
		{0.46, RiskModerate},
		{0.60, RiskModerate},
		{0.61, RiskHigh},
		{0.80, RiskHigh},
		{0.81, RiskVeryHigh},
		{1.0, RiskVeryHigh},
	}

	for _, tc := range cases {
		if got := RiskLevel(tc.probability); got != tc.want {
			t.Errorf("RiskLevel(%g) = %d, want %d", tc.probability, got, tc.want)
		}
	}
}
