package models

// Category is an exercise catalog equipment category.
type Category string

const (
	CategoryBarbell            Category = "Barbell"
	CategorySmithMachine       Category = "Smith Machine"
	CategoryDumbbell           Category = "Dumbbell"
	CategoryMachine            Category = "Machine"
	CategoryCable              Category = "Cable"
	CategoryBodyweight         Category = "Bodyweight"
	CategoryPlyometrics        Category = "Plyometrics"
	CategoryAssistedBodyweight Category = "Assisted Bodyweight"
)

// IsBodyweight reports whether sets in this category carry the user's
// bodyweight as the base load.
func (c Category) IsBodyweight() bool {
	switch c {
	case CategoryBodyweight, CategoryPlyometrics, CategoryAssistedBodyweight:
		return true
	}
	return false
}

// ExerciseDefinition is one exercise catalog entry. The catalog is an
// external read-only collaborator of the engine.
type ExerciseDefinition struct {
	ID                  string   `json:"id" yaml:"id"`
	Name                string   `json:"name" yaml:"name"`
	Category            Category `json:"category" yaml:"category"`
	DefaultBarWeightKg  float64  `json:"default_bar_weight_kg,omitempty" yaml:"default_bar_weight_kg"`
	IsUnilateral        bool     `json:"is_unilateral,omitempty" yaml:"is_unilateral"`
	IsTimed             bool     `json:"is_timed,omitempty" yaml:"is_timed"`
}
