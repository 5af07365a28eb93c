// Package engine implements the set cascade propagator, the superset
// composer, and the rest timer resolver. Everything here is pure: operations
// take an exercise value and return a new one, leaving the input untouched,
// so a caller can commit the result as a single atomic replacement.
package engine

import (
	"fmt"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
)

// Field names a cascadable set field.
type Field string

const (
	FieldWeight Field = "weight"
	FieldReps   Field = "reps"
	FieldTime   Field = "time"
)

// FieldUpdate is the new value for a set field: either an explicit
// user-entered value, or a request to re-derive the field from its
// predecessor (replacing the legacy negative-number sentinel).
type FieldUpdate struct {
	Reset bool    `json:"reset,omitempty"`
	Value float64 `json:"value"`
}

// Explicit builds an update carrying a deliberate user-entered value.
func Explicit(v float64) FieldUpdate { return FieldUpdate{Value: v} }

// ResetToInherited builds an update asking the propagator to recompute the
// field from context and re-mark it inherited.
func ResetToInherited() FieldUpdate { return FieldUpdate{Reset: true} }

// ApplyCascadeUpdate edits one set field and forward-propagates the value to
// subsequent sets that still inherit it. segmentByType restricts reps
// propagation to sets of the edited set's type; the superset round editor
// passes true, the flat single-exercise editor passes false.
//
// Unknown set ids and negative explicit values are programmer errors: the
// caller validates and clamps before calling.
func ApplyCascadeUpdate(ex models.WorkoutExercise, setID uuid.UUID, field Field, upd FieldUpdate, segmentByType bool) models.WorkoutExercise {
	idx := ex.SetIndex(setID)
	if idx < 0 {
		panic(fmt.Sprintf("engine: unknown set id %s", setID))
	}
	if !upd.Reset && upd.Value < 0 {
		panic(fmt.Sprintf("engine: negative %s value %v", field, upd.Value))
	}

	sets := cloneSets(ex.Sets)
	edited := &sets[idx]

	value := upd.Value
	if upd.Reset {
		value = derive(sets, idx, field)
		setField(edited, field, value, true)
	} else {
		setField(edited, field, value, false)
	}

	propagate(sets, idx, field, value, edited.Type, segmentByType)

	ex.Sets = sets
	return ex
}

// ApplyCascadeDelete removes a set and re-derives inheritance for every
// surviving incomplete set at or after the removal point, so no inherited
// value keeps referencing a set that no longer exists.
func ApplyCascadeDelete(ex models.WorkoutExercise, setID uuid.UUID) models.WorkoutExercise {
	idx := ex.SetIndex(setID)
	if idx < 0 {
		panic(fmt.Sprintf("engine: unknown set id %s", setID))
	}

	sets := make([]models.PerformedSet, 0, len(ex.Sets)-1)
	sets = append(sets, ex.Sets[:idx]...)
	sets = append(sets, ex.Sets[idx+1:]...)

	for i := idx; i < len(sets); i++ {
		if sets[i].IsComplete {
			continue
		}
		if sets[i].IsWeightInherited {
			sets[i].WeightKg = derive(sets, i, FieldWeight)
		}
		if sets[i].IsRepsInherited {
			sets[i].Reps = int(derive(sets, i, FieldReps))
		}
		if sets[i].Type == models.SetTimed && sets[i].IsTimeInherited {
			t := int(derive(sets, i, FieldTime))
			sets[i].TimeSec = &t
		}
	}

	ex.Sets = sets
	return ex
}

// propagate copies value forward from idx+1 until a stop condition.
func propagate(sets []models.PerformedSet, idx int, field Field, value float64, srcType models.SetType, segmentByType bool) {
	for i := idx + 1; i < len(sets); i++ {
		s := &sets[i]
		if s.IsComplete {
			return
		}
		switch field {
		case FieldWeight:
			if !s.IsWeightInherited {
				return
			}
			s.WeightKg = value
		case FieldReps:
			// A zero reps value is a stale placeholder, overwritten even
			// when flagged as a manual entry.
			if !s.IsRepsInherited && s.Reps != 0 {
				return
			}
			if segmentByType && s.Type != srcType {
				continue
			}
			s.Reps = int(value)
			s.IsRepsInherited = true
		case FieldTime:
			if s.Type != models.SetTimed {
				continue
			}
			if !s.IsTimeInherited {
				return
			}
			t := int(value)
			s.TimeSec = &t
		default:
			panic(fmt.Sprintf("engine: unknown field %q", field))
		}
	}
}

// derive computes the inherited value for sets[i] from its surviving
// predecessors, falling back to the set's own historical snapshot and
// finally its current value.
func derive(sets []models.PerformedSet, i int, field Field) float64 {
	s := sets[i]
	switch field {
	case FieldWeight:
		// Weight inherits from the nearest preceding non-timed set.
		for j := i - 1; j >= 0; j-- {
			if sets[j].Type != models.SetTimed {
				return sets[j].WeightKg
			}
		}
		if s.HistoricalWeightKg != nil {
			return *s.HistoricalWeightKg
		}
		return s.WeightKg
	case FieldReps:
		if i > 0 {
			return float64(sets[i-1].Reps)
		}
		if s.HistoricalReps != nil {
			return float64(*s.HistoricalReps)
		}
		return float64(s.Reps)
	case FieldTime:
		// Time inherits only along the timed-set chain.
		for j := i - 1; j >= 0; j-- {
			if sets[j].Type == models.SetTimed && sets[j].TimeSec != nil {
				return float64(*sets[j].TimeSec)
			}
		}
		if s.HistoricalTimeSec != nil {
			return float64(*s.HistoricalTimeSec)
		}
		if s.TimeSec != nil {
			return float64(*s.TimeSec)
		}
		return 0
	default:
		panic(fmt.Sprintf("engine: unknown field %q", field))
	}
}

func setField(s *models.PerformedSet, field Field, value float64, inherited bool) {
	switch field {
	case FieldWeight:
		s.WeightKg = value
		s.IsWeightInherited = inherited
	case FieldReps:
		s.Reps = int(value)
		s.IsRepsInherited = inherited
	case FieldTime:
		t := int(value)
		s.TimeSec = &t
		s.IsTimeInherited = inherited
	default:
		panic(fmt.Sprintf("engine: unknown field %q", field))
	}
}

func cloneSets(sets []models.PerformedSet) []models.PerformedSet {
	out := make([]models.PerformedSet, len(sets))
	copy(out, sets)
	return out
}
