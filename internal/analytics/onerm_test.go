package analytics

import "testing"

// TestEstimateOneRepMax covers the documented boundaries: exact at one rep,
// zero on degenerate input, rep clamp at 20, and bodyweight added to load.
func TestEstimateOneRepMax(t *testing.T) {
	tests := []struct {
		name       string
		weight     float64
		reps       int
		bodyWeight float64
		want       float64
	}{
		{name: "single rep is exact", weight: 100, reps: 1, want: 100},
		{name: "zero reps", weight: 100, reps: 0, want: 0},
		{name: "zero load", weight: 0, reps: 5, want: 0},
		{name: "lombardi five reps", weight: 100, reps: 5, want: 117},
		{name: "lombardi ten reps", weight: 100, reps: 10, want: 126},
		{name: "bodyweight adds to load", weight: 20, reps: 1, bodyWeight: 80, want: 100},
		{name: "bodyweight only single rep", weight: 0, reps: 1, bodyWeight: 75, want: 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateOneRepMax(tt.weight, tt.reps, tt.bodyWeight); got != tt.want {
				t.Errorf("EstimateOneRepMax(%v, %d, %v) = %v, want %v", tt.weight, tt.reps, tt.bodyWeight, got, tt.want)
			}
		})
	}
}

// TestEstimateOneRepMaxRepClamp verifies rep counts above 20 are clamped
// rather than extrapolated.
func TestEstimateOneRepMaxRepClamp(t *testing.T) {
	clamped := EstimateOneRepMax(100, 25, 0)
	at20 := EstimateOneRepMax(100, 20, 0)
	if clamped != at20 {
		t.Errorf("EstimateOneRepMax(100, 25) = %v, want same as reps 20 (%v)", clamped, at20)
	}
}
