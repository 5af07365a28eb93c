package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/claude/liftlog/internal/analytics"
	"github.com/claude/liftlog/internal/engine"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/units"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// defaultUserID scopes all data in single-user deployments; tsnet handles
// access control at the network edge.
const defaultUserID = 1

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type cascadeUpdateRequest struct {
	Exercise      models.WorkoutExercise `json:"exercise"`
	SetID         uuid.UUID              `json:"set_id"`
	Field         engine.Field           `json:"field"`
	Value         float64                `json:"value"`
	Reset         bool                   `json:"reset"`
	SegmentByType bool                   `json:"segment_by_type"`
}

func (s *Server) handleCascadeUpdate(w http.ResponseWriter, r *http.Request) {
	var req cascadeUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Exercise.SetIndex(req.SetID) < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown set id"})
		return
	}
	switch req.Field {
	case engine.FieldWeight, engine.FieldReps, engine.FieldTime:
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown field"})
		return
	}

	upd := engine.Explicit(clampNonNegative(req.Value))
	if req.Reset {
		upd = engine.ResetToInherited()
	}

	updated := engine.ApplyCascadeUpdate(req.Exercise, req.SetID, req.Field, upd, req.SegmentByType)
	writeJSON(w, http.StatusOK, updated)
}

type cascadeDeleteRequest struct {
	Exercise models.WorkoutExercise `json:"exercise"`
	SetID    uuid.UUID              `json:"set_id"`
}

func (s *Server) handleCascadeDelete(w http.ResponseWriter, r *http.Request) {
	var req cascadeDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Exercise.SetIndex(req.SetID) < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown set id"})
		return
	}

	updated := engine.ApplyCascadeDelete(req.Exercise, req.SetID)
	writeJSON(w, http.StatusOK, updated)
}

type groupRequest struct {
	Exercises   []models.WorkoutExercise             `json:"exercises"`
	Definitions map[string]models.SupersetDefinition `json:"definitions,omitempty"`
}

type groupedItemResponse struct {
	engine.GroupedItem
	NextRound int `json:"next_round,omitempty"`
}

func (s *Server) handleGroupExercises(w http.ResponseWriter, r *http.Request) {
	var req groupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	items := engine.GroupExercises(req.Exercises, req.Definitions)
	out := make([]groupedItemResponse, 0, len(items))
	for _, item := range items {
		resp := groupedItemResponse{GroupedItem: item}
		if item.Superset {
			resp.NextRound = engine.NextRound(item.Exercises)
		}
		out = append(out, resp)
	}
	writeJSON(w, http.StatusOK, out)
}

type restRequest struct {
	Exercise models.WorkoutExercise `json:"exercise"`
	SetIndex int                    `json:"set_index"`
}

func (s *Server) handleResolveRest(w http.ResponseWriter, r *http.Request) {
	var req restRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.SetIndex < 0 || req.SetIndex >= len(req.Exercise.Sets) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "set index out of range"})
		return
	}

	rest := engine.ResolveRestDuration(req.Exercise, req.SetIndex)
	writeJSON(w, http.StatusOK, map[string]int{"rest_sec": rest})
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	exerciseID := chi.URLParam(r, "id")
	history, err := s.db.ExerciseHistory(r.Context(), exerciseID, defaultUserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, analytics.ComputePersonalRecords(history, exerciseID))
}

func (s *Server) handleExerciseHistory(w http.ResponseWriter, r *http.Request) {
	exerciseID := chi.URLParam(r, "id")
	history, err := s.db.ExerciseHistory(r.Context(), exerciseID, defaultUserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, history)
}

func (s *Server) handleOneRepMax(w http.ResponseWriter, r *http.Request) {
	weight, err := strconv.ParseFloat(r.URL.Query().Get("weight"), 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "weight parameter required"})
		return
	}
	reps, err := strconv.Atoi(r.URL.Query().Get("reps"))
	if err != nil || reps < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reps parameter required"})
		return
	}
	var bodyWeight float64
	if v := r.URL.Query().Get("body_weight"); v != "" {
		if bodyWeight, err = strconv.ParseFloat(v, 64); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body_weight"})
			return
		}
	}

	oneRM := analytics.EstimateOneRepMax(clampNonNegative(weight), reps, clampNonNegative(bodyWeight))
	resp := map[string]float64{"one_rep_max_kg": oneRM}
	if displayUnit(r) == units.Lb {
		resp["one_rep_max_lb"] = units.RoundDisplay(units.FromKg(oneRM, units.Lb))
	}
	writeJSON(w, http.StatusOK, resp)
}

// displayUnit reads the optional unit query parameter, defaulting to kg.
func displayUnit(r *http.Request) units.Unit {
	if r.URL.Query().Get("unit") == string(units.Lb) {
		return units.Lb
	}
	return units.Kg
}

type warmupRequest struct {
	WorkingWeightKg float64 `json:"working_weight_kg"`
	BarWeightKg     float64 `json:"bar_weight_kg"`
	ExerciseID      string  `json:"exercise_id,omitempty"`
}

func (s *Server) handleWarmupLadder(w http.ResponseWriter, r *http.Request) {
	var req warmupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	bar := clampNonNegative(req.BarWeightKg)
	if bar == 0 && req.ExerciseID != "" {
		if def, ok := s.cat.Lookup(req.ExerciseID); ok {
			bar = def.DefaultBarWeightKg
		}
	}

	weights := analytics.SuggestWarmupLadder(clampNonNegative(req.WorkingWeightKg), bar)
	resp := map[string]any{
		"weights_kg": weights,
		"sets":       analytics.WarmupSets(weights),
	}
	if displayUnit(r) == units.Lb {
		display := make([]float64, len(weights))
		for i, w := range weights {
			display[i] = units.RoundDisplay(units.FromKg(w, units.Lb))
		}
		resp["weights_lb"] = display
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleVolumeSummary(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	bucket := "1 month"
	if r.URL.Query().Get("agg") == "weekly" {
		bucket = "1 week"
	}

	periods, err := s.db.GetVolumeSummary(r.Context(), start, end, bucket, defaultUserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, periods)
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.cat.All())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func parseTimeRange(r *http.Request) (start, end time.Time, err error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" {
		// Default: last 90 days of history
		end = time.Now()
		start = end.AddDate(0, 0, -90)
		return
	}

	start, err = time.Parse(time.RFC3339, startStr)
	if err != nil {
		start, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if endStr == "" {
		end = time.Now()
	} else {
		end, err = time.Parse(time.RFC3339, endStr)
		if err != nil {
			end, err = time.Parse("2006-01-02", endStr)
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			// End of day for date-only
			end = end.Add(24 * time.Hour)
		}
	}
	return
}
