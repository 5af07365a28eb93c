package engine

import (
	"testing"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
)

var testRest = models.RestTimes{Normal: 120, Warmup: 60, Drop: 30, Timed: 90, Failure: 180}

func restExercise(sets ...models.PerformedSet) models.WorkoutExercise {
	return models.WorkoutExercise{ID: uuid.New(), ExerciseID: "deadlift", Sets: sets, RestTime: testRest}
}

func typedSet(t models.SetType) models.PerformedSet {
	return models.PerformedSet{ID: uuid.New(), Type: t}
}

// TestResolveRestDuration covers the resolution order: per-type default,
// doubled for the last warmup before working sets and for the final set of
// the exercise.
func TestResolveRestDuration(t *testing.T) {
	tests := []struct {
		name string
		sets []models.PerformedSet
		idx  int
		want int
	}{
		{
			name: "warmup followed by normal doubles",
			sets: []models.PerformedSet{typedSet(models.SetWarmup), typedSet(models.SetNormal), typedSet(models.SetNormal)},
			idx:  0,
			want: 120, // 2 x warmup default
		},
		{
			name: "warmup followed by warmup does not double",
			sets: []models.PerformedSet{typedSet(models.SetWarmup), typedSet(models.SetWarmup), typedSet(models.SetNormal)},
			idx:  0,
			want: 60,
		},
		{
			name: "mid-exercise normal set uses default",
			sets: []models.PerformedSet{typedSet(models.SetNormal), typedSet(models.SetNormal), typedSet(models.SetNormal)},
			idx:  1,
			want: 120,
		},
		{
			name: "last set of exercise doubles",
			sets: []models.PerformedSet{typedSet(models.SetNormal), typedSet(models.SetNormal)},
			idx:  1,
			want: 240,
		},
		{
			name: "drop set default",
			sets: []models.PerformedSet{typedSet(models.SetDrop), typedSet(models.SetNormal)},
			idx:  0,
			want: 30,
		},
		{
			name: "failure set default",
			sets: []models.PerformedSet{typedSet(models.SetFailure), typedSet(models.SetNormal)},
			idx:  0,
			want: 180,
		},
		{
			name: "timed set default",
			sets: []models.PerformedSet{typedSet(models.SetTimed), typedSet(models.SetNormal)},
			idx:  0,
			want: 90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveRestDuration(restExercise(tt.sets...), tt.idx); got != tt.want {
				t.Errorf("ResolveRestDuration(idx %d) = %d, want %d", tt.idx, got, tt.want)
			}
		})
	}
}

// TestResolveRestOverrideNeverDoubled verifies an explicit per-set override
// is used verbatim, even on the final set.
func TestResolveRestOverrideNeverDoubled(t *testing.T) {
	override := 45
	last := typedSet(models.SetNormal)
	last.RestSec = &override

	ex := restExercise(typedSet(models.SetNormal), last)
	if got := ResolveRestDuration(ex, 1); got != 45 {
		t.Errorf("ResolveRestDuration() = %d, want override 45", got)
	}
}

// TestResolveRestBadIndexPanics verifies an out-of-range index is a
// programmer error.
func TestResolveRestBadIndexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range index")
		}
	}()
	ResolveRestDuration(restExercise(typedSet(models.SetNormal)), 5)
}
