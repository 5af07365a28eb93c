package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/claude/liftlog/internal/analytics"
	"github.com/claude/liftlog/internal/draft"
	"github.com/claude/liftlog/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) handleQuerySessions(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sessions, err := s.db.QuerySessions(r.Context(), start, end, defaultUserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid session ID"})
		return
	}

	session, err := s.db.GetSession(r.Context(), id, defaultUserID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// handleFinishSession folds an active session into history: it classifies
// intensity, counts new personal records against prior history, persists the
// snapshot, and clears the crash-recovery draft.
func (s *Server) handleFinishSession(w http.ResponseWriter, r *http.Request) {
	var session models.WorkoutSession
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	session.UserID = defaultUserID
	if session.EndTime.IsZero() {
		session.EndTime = time.Now().UTC()
	}

	session.Intensity = string(analytics.ClassifyIntensity(session, s.cat))

	history, err := s.historyFor(r, session)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	session.PRCount = analytics.CountNewRecords(history, session)

	inserted, err := s.db.InsertSession(r.Context(), session)
	if err != nil {
		s.log.Error("finish session", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if !inserted {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "session already stored"})
		return
	}

	if err := s.drafts.Clear(defaultUserID); err != nil {
		s.log.Warn("clearing draft after finish", "error", err)
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":        session.ID,
		"pr_count":  session.PRCount,
		"intensity": session.Intensity,
	})
}

// historyFor loads the prior history of every exercise in the session, the
// input for the new-record count.
func (s *Server) historyFor(r *http.Request, session models.WorkoutSession) ([]models.WorkoutSession, error) {
	seen := map[string]bool{}
	var history []models.WorkoutSession
	for _, ex := range session.Exercises {
		if seen[ex.ExerciseID] {
			continue
		}
		seen[ex.ExerciseID] = true
		prior, err := s.db.ExerciseHistory(r.Context(), ex.ExerciseID, defaultUserID)
		if err != nil {
			return nil, err
		}
		history = append(history, prior...)
	}
	return history, nil
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid session ID"})
		return
	}
	if err := s.db.DeleteSession(r.Context(), id, defaultUserID); err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListRoutines(w http.ResponseWriter, r *http.Request) {
	routines, err := s.db.ListRoutines(r.Context(), defaultUserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, routines)
}

func (s *Server) handleUpsertRoutine(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid routine ID"})
		return
	}

	var routine models.Routine
	if err := json.NewDecoder(r.Body).Decode(&routine); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	routine.ID = id
	routine.UserID = defaultUserID
	if routine.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "routine name required"})
		return
	}

	if err := s.db.UpsertRoutine(r.Context(), routine); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, routine)
}

func (s *Server) handleDeleteRoutine(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid routine ID"})
		return
	}
	if err := s.db.DeleteRoutine(r.Context(), id, defaultUserID); err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLoadDraft(w http.ResponseWriter, r *http.Request) {
	session, err := s.drafts.Load(defaultUserID)
	if errors.Is(err, draft.ErrNoDraft) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no active session"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	var session models.WorkoutSession
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := s.drafts.Save(defaultUserID, session); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearDraft(w http.ResponseWriter, r *http.Request) {
	if err := s.drafts.Clear(defaultUserID); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
