package engine

import "github.com/claude/liftlog/internal/models"

// GroupedItem is one renderable entry in a grouped exercise list: either a
// single exercise or a contiguous run sharing a superset id.
type GroupedItem struct {
	Superset bool `json:"superset"`

	// Single-exercise fields.
	Exercise *models.WorkoutExercise `json:"exercise,omitempty"`
	Index    int                     `json:"index"`

	// Superset fields.
	SupersetID string                     `json:"superset_id,omitempty"`
	Definition *models.SupersetDefinition `json:"definition,omitempty"`
	Exercises  []models.WorkoutExercise   `json:"exercises,omitempty"`
	Indices    []int                      `json:"indices,omitempty"`
}

// GroupExercises folds a flat ordered exercise list into singles and
// contiguous superset groups. Two runs with the same id separated by an
// ungrouped exercise come out as two distinct groups; only adjacency joins
// exercises.
func GroupExercises(exercises []models.WorkoutExercise, defs map[string]models.SupersetDefinition) []GroupedItem {
	var items []GroupedItem

	var buf []models.WorkoutExercise
	var bufIdx []int
	bufID := ""

	flush := func() {
		if len(buf) == 0 {
			return
		}
		item := GroupedItem{
			Superset:   true,
			SupersetID: bufID,
			Exercises:  buf,
			Indices:    bufIdx,
		}
		if def, ok := defs[bufID]; ok {
			d := def
			item.Definition = &d
		}
		items = append(items, item)
		buf = nil
		bufIdx = nil
		bufID = ""
	}

	for i := range exercises {
		ex := exercises[i]
		if ex.SupersetID == nil {
			flush()
			items = append(items, GroupedItem{Exercise: &exercises[i], Index: i})
			continue
		}
		if *ex.SupersetID != bufID {
			flush()
			bufID = *ex.SupersetID
		}
		buf = append(buf, ex)
		bufIdx = append(bufIdx, i)
	}
	flush()

	return items
}

// NextRound returns the 1-based index of the first round not yet fully
// completed across every exercise in a superset group. A round is complete
// only when each member has a completed set at that position. When every
// round up to the longest member is complete the answer is one past it,
// meaning "start a fresh round".
func NextRound(exercises []models.WorkoutExercise) int {
	maxSets := 0
	for _, ex := range exercises {
		if len(ex.Sets) > maxSets {
			maxSets = len(ex.Sets)
		}
	}
	if len(exercises) == 0 || maxSets == 0 {
		return 1
	}

	for round := 0; round < maxSets; round++ {
		for _, ex := range exercises {
			if round >= len(ex.Sets) || !ex.Sets[round].IsComplete {
				return round + 1
			}
		}
	}
	return maxSets + 1
}
