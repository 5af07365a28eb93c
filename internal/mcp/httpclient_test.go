package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
	"github.com/google/uuid"
)

// TestHTTPClientQuerySessions verifies the sessions endpoint call, including
// start/end query parameters and response decoding.
func TestHTTPClientQuerySessions(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/sessions" {
			t.Errorf("path = %q, want /api/v1/sessions", r.URL.Path)
		}
		if r.URL.Query().Get("start") == "" || r.URL.Query().Get("end") == "" {
			t.Error("missing start/end query parameters")
		}
		json.NewEncoder(w).Encode([]storage.SessionSummary{
			{ID: id, RoutineName: "Push Day", PRCount: 2, Intensity: "heavy", ExerciseCount: 5},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	sessions, err := c.QuerySessions(context.Background(), time.Now().AddDate(0, 0, -7), time.Now(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("len(sessions) = %d, want 1", len(sessions))
	}
	if sessions[0].ID != id || sessions[0].RoutineName != "Push Day" || sessions[0].PRCount != 2 {
		t.Errorf("session = %+v, want fixture values", sessions[0])
	}
}

// TestHTTPClientGetSession verifies the session id is placed in the path.
func TestHTTPClientGetSession(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/sessions/"+id.String() {
			t.Errorf("path = %q, want session id in path", r.URL.Path)
		}
		json.NewEncoder(w).Encode(models.WorkoutSession{ID: id, RoutineName: "Legs"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	session, err := c.GetSession(context.Background(), id, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.ID != id || session.RoutineName != "Legs" {
		t.Errorf("session = %+v, want fixture values", session)
	}
}

// TestHTTPClientExerciseHistory verifies the exercise history path and that
// per-set data survives the round trip.
func TestHTTPClientExerciseHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/exercises/bench-press/history" {
			t.Errorf("path = %q, want /api/v1/exercises/bench-press/history", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]models.WorkoutSession{
			{
				ID: uuid.New(),
				Exercises: []models.WorkoutExercise{
					{
						ExerciseID: "bench-press",
						Sets: []models.PerformedSet{
							{ID: uuid.New(), Type: models.SetNormal, WeightKg: 100, Reps: 5, IsComplete: true},
						},
					},
				},
			},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	history, err := c.ExerciseHistory(context.Background(), "bench-press", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 1 || len(history[0].Exercises) != 1 {
		t.Fatalf("history = %+v, want one session with one exercise", history)
	}
	set := history[0].Exercises[0].Sets[0]
	if set.WeightKg != 100 || set.Reps != 5 || !set.IsComplete {
		t.Errorf("set = %+v, want 100kg x5 complete", set)
	}
}

// TestHTTPClientGetVolumeSummary verifies bucket values map to the REST agg
// parameter.
func TestHTTPClientGetVolumeSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/analytics/volume" {
			t.Errorf("path = %q, want /api/v1/analytics/volume", r.URL.Path)
		}
		if got := r.URL.Query().Get("agg"); got != "weekly" {
			t.Errorf("agg = %q, want weekly", got)
		}
		json.NewEncoder(w).Encode([]storage.VolumePeriod{
			{Period: "2024-01-01", Sessions: 3, Sets: 40, Reps: 320, TonnageKg: 12000},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	periods, err := c.GetVolumeSummary(context.Background(), time.Now().AddDate(0, 0, -7), time.Now(), "1 week", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(periods) != 1 || periods[0].TonnageKg != 12000 {
		t.Errorf("periods = %+v, want one period with 12000kg tonnage", periods)
	}
}

// TestHTTPClientErrorStatus verifies non-200 responses surface as errors with
// the status code.
func TestHTTPClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	_, err := c.QuerySessions(context.Background(), time.Now().AddDate(0, 0, -7), time.Now(), 1)
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
}

// TestBucketToAgg verifies the bucket to agg mapping including the default.
func TestBucketToAgg(t *testing.T) {
	tests := []struct {
		bucket string
		want   string
	}{
		{"1 week", "weekly"},
		{"1 month", "monthly"},
		{"unknown", "monthly"},
	}
	for _, tt := range tests {
		if got := bucketToAgg(tt.bucket); got != tt.want {
			t.Errorf("bucketToAgg(%q) = %q, want %q", tt.bucket, got, tt.want)
		}
	}
}
