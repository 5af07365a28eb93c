package analytics

import (
	"reflect"
	"testing"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
)

// TestSuggestWarmupLadder covers the rung selection rules: 3 rungs from
// 80 kg, 2 rungs from 40 kg, single half-weight rung below 40, bar-only for
// weights near the bar, and nothing for a zero working weight.
func TestSuggestWarmupLadder(t *testing.T) {
	tests := []struct {
		name    string
		working float64
		bar     float64
		want    []float64
	}{
		{name: "three rungs at 100", working: 100, bar: 20, want: []float64{40, 60, 80}},
		{name: "two rungs at 60", working: 60, bar: 20, want: []float64{30, 45}},
		{name: "bar floor applies", working: 45, bar: 25, want: []float64{25, 35}},
		{name: "near bar weight", working: 25, bar: 20, want: []float64{20}},
		{name: "light weight halves", working: 30, bar: 0, want: []float64{15}},
		{name: "zero working weight", working: 0, bar: 20, want: nil},
		{name: "heavy three rungs", working: 140, bar: 20, want: []float64{55, 85, 112.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestWarmupLadder(tt.working, tt.bar)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SuggestWarmupLadder(%v, %v) = %v, want %v", tt.working, tt.bar, got, tt.want)
			}
		})
	}
}

// TestWarmupLadderIncrementRounding verifies every rung lands on the plate
// increment and stays under the working weight.
func TestWarmupLadderIncrementRounding(t *testing.T) {
	for _, working := range []float64{42.5, 77.5, 102.5, 255} {
		rungs := SuggestWarmupLadder(working, 20)
		for _, r := range rungs {
			q := r / DefaultIncrementKg
			if q != float64(int(q)) {
				t.Errorf("working %v: rung %v is not a multiple of %v", working, r, DefaultIncrementKg)
			}
			if r >= working {
				t.Errorf("working %v: rung %v is not below working weight", working, r)
			}
		}
	}
}

// TestWarmupLadderNonPositiveIncrementPanics verifies a bad increment is a
// programmer error.
func TestWarmupLadderNonPositiveIncrementPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-positive increment")
		}
	}()
	WarmupLadder(100, 20, 0)
}

// TestPrependWarmupSets verifies generated sets use 10 reps, type warmup,
// and land ahead of the existing list without replacing anything.
func TestPrependWarmupSets(t *testing.T) {
	working := models.PerformedSet{ID: uuid.New(), Type: models.SetNormal, WeightKg: 100, Reps: 5, IsComplete: true}
	ex := models.WorkoutExercise{ID: uuid.New(), ExerciseID: "squat", Sets: []models.PerformedSet{working}}

	got := PrependWarmupSets(ex, []float64{40, 60, 80})

	if len(got.Sets) != 4 {
		t.Fatalf("len(sets) = %d, want 4", len(got.Sets))
	}
	for i, w := range []float64{40, 60, 80} {
		s := got.Sets[i]
		if s.Type != models.SetWarmup || s.Reps != 10 || s.WeightKg != w {
			t.Errorf("sets[%d] = %+v, want warmup %v kg x 10", i, s, w)
		}
	}
	if got.Sets[3].ID != working.ID || !got.Sets[3].IsComplete {
		t.Errorf("existing completed set was disturbed: %+v", got.Sets[3])
	}
}
