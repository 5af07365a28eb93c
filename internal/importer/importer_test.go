package importer

import (
	"testing"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
)

// TestParseSessionsSingleObject verifies a file holding one session object
// parses into a one-element slice with its sets intact.
func TestParseSessionsSingleObject(t *testing.T) {
	raw := `{
		"id": "d39830a2-4724-4648-8f36-41d7511423b6",
		"routine_name": "Push Day",
		"start_time": "2026-01-08T17:30:00Z",
		"end_time": "2026-01-08T18:45:00Z",
		"exercises": [
			{
				"id": "fb20eeb3-b2f8-414f-822e-f3080e24f164",
				"exercise_id": "bench-press",
				"bar_weight_kg": 20,
				"sets": [
					{"id": "223921f7-de57-4555-8240-f312174952b2", "type": "normal", "weight_kg": 100, "reps": 5, "is_complete": true}
				]
			}
		]
	}`

	sessions, err := ParseSessions([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("len(sessions) = %d, want 1", len(sessions))
	}

	s := sessions[0]
	if s.RoutineName != "Push Day" {
		t.Errorf("routine = %q, want Push Day", s.RoutineName)
	}
	if len(s.Exercises) != 1 || len(s.Exercises[0].Sets) != 1 {
		t.Fatalf("exercises = %+v, want one exercise with one set", s.Exercises)
	}
	set := s.Exercises[0].Sets[0]
	if set.WeightKg != 100 || set.Reps != 5 || !set.IsComplete {
		t.Errorf("set = %+v, want 100kg x5 complete", set)
	}
}

// TestParseSessionsArray verifies an array export parses in order.
func TestParseSessionsArray(t *testing.T) {
	raw := `[
		{"routine_name": "A", "start_time": "2026-01-01T10:00:00Z"},
		{"routine_name": "B", "start_time": "2026-01-02T10:00:00Z"}
	]`

	sessions, err := ParseSessions([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("len(sessions) = %d, want 2", len(sessions))
	}
	if sessions[0].RoutineName != "A" || sessions[1].RoutineName != "B" {
		t.Errorf("order = %q, %q, want A, B", sessions[0].RoutineName, sessions[1].RoutineName)
	}
}

// TestParseSessionsEmpty verifies empty input yields no sessions and no error.
func TestParseSessionsEmpty(t *testing.T) {
	sessions, err := ParseSessions([]byte("  \n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("len(sessions) = %d, want 0", len(sessions))
	}
}

// TestParseSessionsInvalid verifies malformed JSON is rejected.
func TestParseSessionsInvalid(t *testing.T) {
	if _, err := ParseSessions([]byte(`{"start_time": `)); err == nil {
		t.Error("expected error for truncated JSON")
	}
	if _, err := ParseSessions([]byte(`[{"start_time": 12}]`)); err == nil {
		t.Error("expected error for wrong field type")
	}
}

// TestValidateSession covers the required-field checks.
func TestValidateSession(t *testing.T) {
	start := time.Date(2026, 1, 8, 17, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		session models.WorkoutSession
		wantErr bool
	}{
		{
			name:    "valid",
			session: models.WorkoutSession{StartTime: start, EndTime: start.Add(time.Hour)},
		},
		{
			name:    "missing start",
			session: models.WorkoutSession{EndTime: start},
			wantErr: true,
		},
		{
			name:    "end before start",
			session: models.WorkoutSession{StartTime: start, EndTime: start.Add(-time.Hour)},
			wantErr: true,
		},
		{
			name: "exercise without id",
			session: models.WorkoutSession{
				StartTime: start,
				Exercises: []models.WorkoutExercise{{ID: uuid.New()}},
			},
			wantErr: true,
		},
		{
			name:    "zero end time allowed",
			session: models.WorkoutSession{StartTime: start},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSession(tt.session)
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
