// Package analytics implements the read-side strength computations: 1RM
// estimation, personal-record aggregation, warmup ladder suggestion, and
// session intensity classification. All functions are pure folds over
// committed data.
package analytics

import "math"

// maxStrengthReps caps the rep count used for 1RM extrapolation; sets above
// it are endurance work and statistically invalid for a strength max.
const maxStrengthReps = 20

// EstimateOneRepMax extrapolates a one-rep max from a set using the
// Lombardi formula (load x reps^0.10), which over-estimates less than Epley
// at high rep counts. bodyWeightKg is added to the load for bodyweight
// movements; pass 0 otherwise.
func EstimateOneRepMax(weightKg float64, reps int, bodyWeightKg float64) float64 {
	load := weightKg + bodyWeightKg
	if reps == 0 || load == 0 {
		return 0
	}
	if reps == 1 {
		return load
	}
	if reps > maxStrengthReps {
		reps = maxStrengthReps
	}
	return math.Round(load * math.Pow(float64(reps), 0.10))
}
