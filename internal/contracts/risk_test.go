package contracts

import "testing"

func TestRiskLevel_Band(t *testing.T) {
	tests := []struct {
		level   RiskLevel
		wantMin float64
		wantMax float64
	}{
		{RiskConservative, 0, 33},
		{RiskModerate, 34, 66},
		{RiskAggressive, 67, 100},
		{RiskLevel("unknown"), 0, 100},
		{RiskLevel(""), 0, 100},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			min, max := tt.level.Band()
			if min != tt.wantMin || max != tt.wantMax {
				t.Errorf("Band() = (%v, %v), want (%v, %v)", min, max, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestRiskLevel_Valid(t *testing.T) {
	for _, level := range []RiskLevel{RiskConservative, RiskModerate, RiskAggressive} {
		if !level.Valid() {
			t.Errorf("Valid() = false for %s", level)
		}
	}

	if RiskLevel("Reckless").Valid() {
		t.Error("Valid() = true for unknown level")
	}
}
