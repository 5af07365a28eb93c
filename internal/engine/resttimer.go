package engine

import (
	"fmt"

	"github.com/claude/liftlog/internal/models"
)

// ResolveRestDuration returns the rest (seconds) to take after the set at
// setIndex. A per-set override wins verbatim and is never doubled; otherwise
// the exercise's per-type default applies, doubled when the set is the last
// of the exercise or a warmup immediately followed by a working set, both
// transitions warrant a longer recovery window than the per-type default.
func ResolveRestDuration(ex models.WorkoutExercise, setIndex int) int {
	if setIndex < 0 || setIndex >= len(ex.Sets) {
		panic(fmt.Sprintf("engine: set index %d out of range [0,%d)", setIndex, len(ex.Sets)))
	}

	s := ex.Sets[setIndex]
	if s.RestSec != nil {
		return *s.RestSec
	}

	rest := ex.RestTime.ForType(s.Type)

	last := setIndex == len(ex.Sets)-1
	lastWarmup := s.Type == models.SetWarmup &&
		setIndex+1 < len(ex.Sets) && ex.Sets[setIndex+1].Type != models.SetWarmup
	if last || lastWarmup {
		rest *= 2
	}
	return rest
}
