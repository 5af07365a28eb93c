package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
)

// DefaultIncrementKg is the plate rounding increment for suggested weights.
const DefaultIncrementKg = 2.5

const warmupReps = 10

// SuggestWarmupLadder returns the ordered warmup weights preceding a working
// weight, rounded to the default plate increment.
func SuggestWarmupLadder(workingWeightKg, barWeightKg float64) []float64 {
	return WarmupLadder(workingWeightKg, barWeightKg, DefaultIncrementKg)
}

// WarmupLadder builds the warmup rung sequence for a working weight.
// Light working weights get at most a single rung; from 40 kg a 2-rung
// ladder applies, and from 80 kg a 3-rung one. Each rung is floored at the
// bar weight, rounded to increment, de-duplicated, sorted ascending, and
// never at or above the working weight.
func WarmupLadder(workingWeightKg, barWeightKg, incrementKg float64) []float64 {
	if incrementKg <= 0 {
		panic(fmt.Sprintf("analytics: non-positive increment %v", incrementKg))
	}

	if workingWeightKg == 0 {
		return nil
	}
	if barWeightKg > 0 && workingWeightKg <= barWeightKg+10 {
		return []float64{barWeightKg}
	}
	if workingWeightKg < 40 {
		w := roundTo(workingWeightKg*0.5, incrementKg)
		if w < workingWeightKg {
			return []float64{w}
		}
		return nil
	}

	fractions := []float64{0.5, 0.75}
	if workingWeightKg >= 80 {
		fractions = []float64{0.4, 0.6, 0.8}
	}

	seen := map[float64]bool{}
	var rungs []float64
	for _, f := range fractions {
		w := workingWeightKg * f
		if w < barWeightKg {
			w = barWeightKg
		}
		w = roundTo(w, incrementKg)
		if w >= workingWeightKg || seen[w] {
			continue
		}
		seen[w] = true
		rungs = append(rungs, w)
	}
	sort.Float64s(rungs)

	if len(rungs) == 0 && workingWeightKg > barWeightKg && barWeightKg > 0 {
		return []float64{barWeightKg}
	}
	return rungs
}

// WarmupSets materializes ladder weights as warmup sets of 10 reps, ready
// to be prepended to an exercise's set list.
func WarmupSets(weightsKg []float64) []models.PerformedSet {
	sets := make([]models.PerformedSet, 0, len(weightsKg))
	for _, w := range weightsKg {
		sets = append(sets, models.PerformedSet{
			ID:       uuid.New(),
			Type:     models.SetWarmup,
			WeightKg: w,
			Reps:     warmupReps,
		})
	}
	return sets
}

// PrependWarmupSets inserts generated warmup sets ahead of the existing
// list; existing sets, completed ones included, are never replaced.
func PrependWarmupSets(ex models.WorkoutExercise, weightsKg []float64) models.WorkoutExercise {
	warmups := WarmupSets(weightsKg)
	sets := make([]models.PerformedSet, 0, len(warmups)+len(ex.Sets))
	sets = append(sets, warmups...)
	sets = append(sets, ex.Sets...)
	ex.Sets = sets
	return ex
}

func roundTo(v, increment float64) float64 {
	return math.Round(v/increment) * increment
}
