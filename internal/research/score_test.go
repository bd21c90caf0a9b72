package research

import "testing"

func TestQualityScore(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		complete   float64
		depth      float64
		want       float64
	}{
		{"uniform inputs collapse", 80, 80, 80, 80},
		{"weighted blend", 90, 60, 70, 0.4*90 + 0.3*60 + 0.3*70},
		{"all zero", 0, 0, 0, 0},
		{"clamped high", 200, 200, 200, 100},
		{"clamped low", -50, -50, -50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QualityScore(tt.confidence, tt.complete, tt.depth)
			epsilon := 1e-9
			if diff := got - tt.want; diff > epsilon || diff < -epsilon {
				t.Errorf("QualityScore() = %v, want %v", got, tt.want)
			}
		})
	}
}
