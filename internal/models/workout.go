package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutExercise is one exercise instance within a routine or active session.
// The order of Sets defines the inheritance chain and the round index used
// by supersets.
type WorkoutExercise struct {
	ID         uuid.UUID      `json:"id"`
	ExerciseID string         `json:"exercise_id"`
	Sets       []PerformedSet `json:"sets"`
	RestTime   RestTimes      `json:"rest_time"`
	// BarWeightKg is mass added by the equipment itself (e.g. an empty
	// barbell); used by the warmup ladder.
	BarWeightKg float64 `json:"bar_weight_kg,omitempty"`
	// SupersetID groups contiguous exercises into one superset.
	SupersetID *string `json:"superset_id,omitempty"`
	Note       string  `json:"note,omitempty"`
}

// SetIndex returns the position of the set with the given id, or -1.
func (e WorkoutExercise) SetIndex(id uuid.UUID) int {
	for i, s := range e.Sets {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// CompletedSets returns the exercise's completed sets in order.
func (e WorkoutExercise) CompletedSets() []PerformedSet {
	var out []PerformedSet
	for _, s := range e.Sets {
		if s.IsComplete {
			out = append(out, s)
		}
	}
	return out
}

// SupersetDefinition is UI-level metadata for a superset group.
type SupersetDefinition struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// WorkoutSession is an immutable history snapshot created when a workout is
// finished. Edits replace the stored snapshot wholesale.
type WorkoutSession struct {
	ID          uuid.UUID         `json:"id"`
	UserID      int               `json:"user_id"`
	RoutineID   *uuid.UUID        `json:"routine_id,omitempty"`
	RoutineName string            `json:"routine_name"`
	StartTime   time.Time         `json:"start_time"`
	EndTime     time.Time         `json:"end_time"`
	Exercises   []WorkoutExercise `json:"exercises"`
	PRCount     int               `json:"pr_count"`
	Intensity   string            `json:"intensity,omitempty"`
}

// Routine is an editable workout template.
type Routine struct {
	ID        uuid.UUID         `json:"id"`
	UserID    int               `json:"user_id"`
	Name      string            `json:"name"`
	Exercises []WorkoutExercise `json:"exercises"`
	UpdatedAt time.Time         `json:"updated_at"`
}
