package models

import "github.com/google/uuid"

// SetType classifies a performed set.
type SetType string

const (
	SetNormal  SetType = "normal"
	SetWarmup  SetType = "warmup"
	SetDrop    SetType = "drop"
	SetFailure SetType = "failure"
	SetTimed   SetType = "timed"
)

// PerformedSet is one performed (or planned) set within an exercise instance.
// Weights are always canonical kilograms; display conversion happens at the edge.
type PerformedSet struct {
	ID   uuid.UUID `json:"id"`
	Type SetType   `json:"type"`

	WeightKg float64 `json:"weight_kg"`
	Reps     int     `json:"reps"`
	// TimeSec is populated only for timed sets.
	TimeSec *int `json:"time_sec,omitempty"`

	// A completed set is never touched by cascade propagation.
	IsComplete bool `json:"is_complete"`

	// Inherited flags mark values copied forward from a preceding set
	// rather than entered by the user.
	IsWeightInherited bool `json:"is_weight_inherited"`
	IsRepsInherited   bool `json:"is_reps_inherited"`
	IsTimeInherited   bool `json:"is_time_inherited"`

	// RestSec overrides the exercise's per-type rest default for this set.
	RestSec *int `json:"rest_sec,omitempty"`
	// ActualRestSec is the rest actually observed after completion (history only).
	ActualRestSec *int `json:"actual_rest_sec,omitempty"`

	// Historical snapshots are fallback sources when a deletion leaves
	// nothing earlier in the list to inherit from.
	HistoricalWeightKg *float64 `json:"historical_weight_kg,omitempty"`
	HistoricalReps     *int     `json:"historical_reps,omitempty"`
	HistoricalTimeSec  *int     `json:"historical_time_sec,omitempty"`

	// StoredBodyWeightKg is the user's bodyweight at entry time, used by
	// bodyweight-category load calculations.
	StoredBodyWeightKg *float64 `json:"stored_body_weight_kg,omitempty"`
}

// Volume returns weight x reps for the set.
func (s PerformedSet) Volume() float64 {
	return s.WeightKg * float64(s.Reps)
}

// RestTimes holds per-set-type rest defaults (seconds) for one exercise instance.
type RestTimes struct {
	Normal  int `json:"normal"`
	Warmup  int `json:"warmup"`
	Drop    int `json:"drop"`
	Timed   int `json:"timed"`
	Failure int `json:"failure"`
}

// ForType returns the default rest for a set type. Unknown types get the
// normal-set default.
func (r RestTimes) ForType(t SetType) int {
	switch t {
	case SetWarmup:
		return r.Warmup
	case SetDrop:
		return r.Drop
	case SetTimed:
		return r.Timed
	case SetFailure:
		return r.Failure
	default:
		return r.Normal
	}
}
