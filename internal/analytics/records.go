package analytics

import (
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
)

// Record is one retained personal record with its originating set and
// session for attribution.
type Record struct {
	Set         models.PerformedSet `json:"set"`
	SessionID   uuid.UUID           `json:"session_id"`
	SessionDate time.Time           `json:"session_date"`
	RoutineName string              `json:"routine_name,omitempty"`
}

// PersonalRecords holds the three independent maxima for one exercise.
// A nil record means no qualifying set exists in the history.
type PersonalRecords struct {
	MaxWeight *Record `json:"max_weight,omitempty"`
	MaxReps   *Record `json:"max_reps,omitempty"`
	MaxVolume *Record `json:"max_volume,omitempty"`
}

// ComputePersonalRecords folds an exercise's history into its personal
// records. Only completed sets of type normal qualify. Comparison is
// strict, so ties keep the earliest record encountered in session order.
func ComputePersonalRecords(history []models.WorkoutSession, exerciseID string) PersonalRecords {
	var pr PersonalRecords

	for si := range history {
		sess := &history[si]
		for _, ex := range sess.Exercises {
			if ex.ExerciseID != exerciseID {
				continue
			}
			for _, s := range ex.Sets {
				if !s.IsComplete || s.Type != models.SetNormal {
					continue
				}
				if pr.MaxWeight == nil || s.WeightKg > pr.MaxWeight.Set.WeightKg {
					pr.MaxWeight = record(s, sess)
				}
				if pr.MaxReps == nil || s.Reps > pr.MaxReps.Set.Reps {
					pr.MaxReps = record(s, sess)
				}
				if pr.MaxVolume == nil || s.Volume() > pr.MaxVolume.Set.Volume() {
					pr.MaxVolume = record(s, sess)
				}
			}
		}
	}
	return pr
}

// CountNewRecords returns how many record categories (weight, reps, volume,
// per exercise) a finished session improves over the prior history. This is
// the session's prCount shown in the history list.
func CountNewRecords(history []models.WorkoutSession, session models.WorkoutSession) int {
	full := make([]models.WorkoutSession, 0, len(history)+1)
	full = append(full, history...)
	full = append(full, session)

	seen := map[string]bool{}
	count := 0

	for _, ex := range session.Exercises {
		if seen[ex.ExerciseID] {
			continue
		}
		seen[ex.ExerciseID] = true

		after := ComputePersonalRecords(full, ex.ExerciseID)

		if fromSession(after.MaxWeight, session.ID) {
			count++
		}
		if fromSession(after.MaxReps, session.ID) {
			count++
		}
		if fromSession(after.MaxVolume, session.ID) {
			count++
		}
	}
	return count
}

// fromSession reports whether a record originates in the given session.
// Ties keep the earlier record, so a record attributed to the new session
// strictly beat everything before it.
func fromSession(r *Record, sessionID uuid.UUID) bool {
	return r != nil && r.SessionID == sessionID
}

func record(s models.PerformedSet, sess *models.WorkoutSession) *Record {
	return &Record{
		Set:         s,
		SessionID:   sess.ID,
		SessionDate: sess.StartTime,
		RoutineName: sess.RoutineName,
	}
}
