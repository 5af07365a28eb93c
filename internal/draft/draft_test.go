package draft

import (
	"errors"
	"testing"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func draftSession() models.WorkoutSession {
	return models.WorkoutSession{
		ID:          uuid.New(),
		UserID:      1,
		RoutineName: "Leg Day",
		StartTime:   time.Date(2026, 4, 1, 17, 0, 0, 0, time.UTC),
		Exercises: []models.WorkoutExercise{
			{
				ID:         uuid.New(),
				ExerciseID: "squat",
				Sets: []models.PerformedSet{
					{ID: uuid.New(), Type: models.SetNormal, WeightKg: 100, Reps: 5, IsComplete: true},
					{ID: uuid.New(), Type: models.SetNormal, WeightKg: 100, Reps: 5, IsRepsInherited: true, IsWeightInherited: true},
				},
			},
		},
	}
}

// TestSaveLoadRoundTrip verifies a saved draft loads back with the full set
// state, inherited flags included.
func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTemp(t)
	want := draftSession()

	if err := s.Save(1, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load(1)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got.ID != want.ID || got.RoutineName != want.RoutineName {
		t.Errorf("loaded %v %q, want %v %q", got.ID, got.RoutineName, want.ID, want.RoutineName)
	}
	if len(got.Exercises) != 1 || len(got.Exercises[0].Sets) != 2 {
		t.Fatalf("loaded shape = %d exercises, want 1 with 2 sets", len(got.Exercises))
	}
	if !got.Exercises[0].Sets[1].IsWeightInherited {
		t.Error("inherited flag lost in round trip")
	}
}

// TestSaveReplaces verifies saving twice keeps only the latest draft.
func TestSaveReplaces(t *testing.T) {
	s := openTemp(t)

	first := draftSession()
	second := draftSession()
	second.RoutineName = "Push Day"

	if err := s.Save(1, first); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(1, second); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load(1)
	if err != nil {
		t.Fatal(err)
	}
	if got.RoutineName != "Push Day" {
		t.Errorf("routine = %q, want latest draft", got.RoutineName)
	}
}

// TestLoadMissing verifies ErrNoDraft for a user without an active session.
func TestLoadMissing(t *testing.T) {
	s := openTemp(t)
	if _, err := s.Load(42); !errors.Is(err, ErrNoDraft) {
		t.Errorf("err = %v, want ErrNoDraft", err)
	}
}

// TestClear verifies a finished session's draft is removed.
func TestClear(t *testing.T) {
	s := openTemp(t)
	if err := s.Save(1, draftSession()); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(1); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(1); !errors.Is(err, ErrNoDraft) {
		t.Errorf("err = %v, want ErrNoDraft after clear", err)
	}
}
