package analytics

import "github.com/claude/liftlog/internal/models"

// Intensity is the coarse session classification used by history summaries.
type Intensity string

const (
	IntensityHeavy Intensity = "heavy"
	IntensityLight Intensity = "light"
)

// addedLoadThresholdKg is the external load above which a set counts as
// heavy. Fixed constant; this is a heuristic, not a model.
const addedLoadThresholdKg = 10

// CatalogLookup resolves an exercise id to its catalog definition. The
// classifier never mutates the catalog.
type CatalogLookup interface {
	Lookup(id string) (models.ExerciseDefinition, bool)
}

// ClassifyIntensity labels a finished session heavy or light. Exercises
// without completed sets or without a catalog entry are skipped. Barbell and
// Smith Machine work is heavy outright; otherwise any completed failure/drop
// set, or a completed set whose external load clears the threshold, makes the
// session heavy.
func ClassifyIntensity(session models.WorkoutSession, catalog CatalogLookup) Intensity {
	for _, ex := range session.Exercises {
		completed := ex.CompletedSets()
		if len(completed) == 0 {
			continue
		}
		def, ok := catalog.Lookup(ex.ExerciseID)
		if !ok {
			continue
		}

		if def.Category == models.CategoryBarbell || def.Category == models.CategorySmithMachine {
			return IntensityHeavy
		}

		for _, s := range completed {
			if s.Type == models.SetFailure || s.Type == models.SetDrop {
				return IntensityHeavy
			}
			load := s.WeightKg
			if def.Category.IsBodyweight() {
				var bw float64
				if s.StoredBodyWeightKg != nil {
					bw = *s.StoredBodyWeightKg
				}
				load = s.WeightKg - bw
			}
			if load > addedLoadThresholdKg {
				return IntensityHeavy
			}
		}
	}
	return IntensityLight
}
