package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SessionSummary is one row of the history list.
type SessionSummary struct {
	ID            uuid.UUID `json:"id"`
	RoutineName   string    `json:"routine_name"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	PRCount       int       `json:"pr_count"`
	Intensity     string    `json:"intensity,omitempty"`
	ExerciseCount int       `json:"exercise_count"`
}

// InsertSession stores a finished session snapshot atomically across the
// sessions, session_exercises, and session_sets tables. Returns true if
// inserted, false if the session id already exists.
func (db *DB) InsertSession(ctx context.Context, s models.WorkoutSession) (bool, error) {
	inserted := false
	err := db.withTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`INSERT INTO sessions (id, user_id, routine_id, routine_name, start_time, end_time, pr_count, intensity)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
			 ON CONFLICT DO NOTHING`,
			s.ID, s.UserID, s.RoutineID, s.RoutineName, s.StartTime, s.EndTime, s.PRCount, s.Intensity)
		if err != nil {
			return fmt.Errorf("inserting session: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		inserted = true

		if err := insertExercises(ctx, tx, s); err != nil {
			return err
		}
		return insertSets(ctx, tx, s)
	})
	return inserted, err
}

func insertExercises(ctx context.Context, tx pgx.Tx, s models.WorkoutSession) error {
	if len(s.Exercises) == 0 {
		return nil
	}

	query := `INSERT INTO session_exercises (session_id, position, id, exercise_id, superset_id,
		bar_weight_kg, note, rest_normal, rest_warmup, rest_drop, rest_timed, rest_failure) VALUES `
	args := make([]any, 0, len(s.Exercises)*12)
	valueStrings := make([]string, 0, len(s.Exercises))

	for i, ex := range s.Exercises {
		base := i * 12
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base+1, base+2, base+3, base+4, base+5, base+6,
			base+7, base+8, base+9, base+10, base+11, base+12,
		))
		args = append(args, s.ID, i, ex.ID, ex.ExerciseID, ex.SupersetID,
			ex.BarWeightKg, ex.Note,
			ex.RestTime.Normal, ex.RestTime.Warmup, ex.RestTime.Drop,
			ex.RestTime.Timed, ex.RestTime.Failure)
	}

	if _, err := tx.Exec(ctx, query+strings.Join(valueStrings, ","), args...); err != nil {
		return fmt.Errorf("inserting session exercises: %w", err)
	}
	return nil
}

func insertSets(ctx context.Context, tx pgx.Tx, s models.WorkoutSession) error {
	total := 0
	for _, ex := range s.Exercises {
		total += len(ex.Sets)
	}
	if total == 0 {
		return nil
	}

	query := `INSERT INTO session_sets (session_id, exercise_position, position, id, type,
		weight_kg, reps, time_sec, is_complete, rest_sec, actual_rest_sec, stored_body_weight_kg) VALUES `
	args := make([]any, 0, total*12)
	valueStrings := make([]string, 0, total)

	n := 0
	for ei, ex := range s.Exercises {
		for si, set := range ex.Sets {
			base := n * 12
			n++
			valueStrings = append(valueStrings, fmt.Sprintf(
				"($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5, base+6,
				base+7, base+8, base+9, base+10, base+11, base+12,
			))
			args = append(args, s.ID, ei, si, set.ID, string(set.Type),
				set.WeightKg, set.Reps, set.TimeSec, set.IsComplete,
				set.RestSec, set.ActualRestSec, set.StoredBodyWeightKg)
		}
	}

	if _, err := tx.Exec(ctx, query+strings.Join(valueStrings, ","), args...); err != nil {
		return fmt.Errorf("inserting session sets: %w", err)
	}
	return nil
}

// QuerySessions retrieves session summaries in a date range, newest first.
func (db *DB) QuerySessions(ctx context.Context, start, end time.Time, userID int) ([]SessionSummary, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT s.id, s.routine_name, s.start_time, s.end_time, s.pr_count, s.intensity,
		        COUNT(e.position)::int
		 FROM sessions s
		 LEFT JOIN session_exercises e ON e.session_id = s.id
		 WHERE s.start_time >= $1 AND s.start_time < $2 AND s.user_id = $3
		 GROUP BY s.id
		 ORDER BY s.start_time DESC`,
		start, end, userID)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var result []SessionSummary
	for rows.Next() {
		var s SessionSummary
		if err := rows.Scan(&s.ID, &s.RoutineName, &s.StartTime, &s.EndTime,
			&s.PRCount, &s.Intensity, &s.ExerciseCount); err != nil {
			return nil, fmt.Errorf("scanning session summary: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// GetSession reassembles one full session snapshot.
func (db *DB) GetSession(ctx context.Context, id uuid.UUID, userID int) (*models.WorkoutSession, error) {
	var s models.WorkoutSession
	err := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, routine_id, routine_name, start_time, end_time, pr_count, intensity
		 FROM sessions WHERE id = $1 AND user_id = $2`,
		id, userID).Scan(&s.ID, &s.UserID, &s.RoutineID, &s.RoutineName,
		&s.StartTime, &s.EndTime, &s.PRCount, &s.Intensity)
	if err != nil {
		return nil, fmt.Errorf("querying session %s: %w", id, err)
	}

	exercises, err := db.loadExercises(ctx, id, "")
	if err != nil {
		return nil, err
	}
	s.Exercises = exercises
	return &s, nil
}

// ExerciseHistory returns, oldest first, every session in which the given
// exercise appears, carrying only that exercise's data. This is the input
// shape for personal-record folds.
func (db *DB) ExerciseHistory(ctx context.Context, exerciseID string, userID int) ([]models.WorkoutSession, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT DISTINCT s.id, s.user_id, s.routine_id, s.routine_name, s.start_time, s.end_time, s.pr_count, s.intensity
		 FROM sessions s
		 JOIN session_exercises e ON e.session_id = s.id
		 WHERE e.exercise_id = $1 AND s.user_id = $2
		 ORDER BY s.start_time ASC`,
		exerciseID, userID)
	if err != nil {
		return nil, fmt.Errorf("querying exercise history: %w", err)
	}
	defer rows.Close()

	var sessions []models.WorkoutSession
	for rows.Next() {
		var s models.WorkoutSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.RoutineID, &s.RoutineName,
			&s.StartTime, &s.EndTime, &s.PRCount, &s.Intensity); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range sessions {
		exercises, err := db.loadExercises(ctx, sessions[i].ID, exerciseID)
		if err != nil {
			return nil, err
		}
		sessions[i].Exercises = exercises
	}
	return sessions, nil
}

// DeleteSession removes a stored snapshot; exercises and sets cascade.
func (db *DB) DeleteSession(ctx context.Context, id uuid.UUID, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM sessions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("session %s not found", id)
	}
	return nil
}

// loadExercises fetches a session's exercises with their sets, in stored
// order. A non-empty exerciseFilter keeps only that exercise.
func (db *DB) loadExercises(ctx context.Context, sessionID uuid.UUID, exerciseFilter string) ([]models.WorkoutExercise, error) {
	query := `SELECT position, id, exercise_id, superset_id, bar_weight_kg, note,
		rest_normal, rest_warmup, rest_drop, rest_timed, rest_failure
		FROM session_exercises WHERE session_id = $1`
	args := []any{sessionID}
	if exerciseFilter != "" {
		query += ` AND exercise_id = $2`
		args = append(args, exerciseFilter)
	}
	query += ` ORDER BY position ASC`

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying session exercises: %w", err)
	}
	defer rows.Close()

	var exercises []models.WorkoutExercise
	var positions []int
	for rows.Next() {
		var ex models.WorkoutExercise
		var pos int
		if err := rows.Scan(&pos, &ex.ID, &ex.ExerciseID, &ex.SupersetID,
			&ex.BarWeightKg, &ex.Note,
			&ex.RestTime.Normal, &ex.RestTime.Warmup, &ex.RestTime.Drop,
			&ex.RestTime.Timed, &ex.RestTime.Failure); err != nil {
			return nil, fmt.Errorf("scanning session exercise: %w", err)
		}
		exercises = append(exercises, ex)
		positions = append(positions, pos)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, pos := range positions {
		sets, err := db.loadSets(ctx, sessionID, pos)
		if err != nil {
			return nil, err
		}
		exercises[i].Sets = sets
	}
	return exercises, nil
}

func (db *DB) loadSets(ctx context.Context, sessionID uuid.UUID, exercisePos int) ([]models.PerformedSet, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, type, weight_kg, reps, time_sec, is_complete, rest_sec, actual_rest_sec, stored_body_weight_kg
		 FROM session_sets
		 WHERE session_id = $1 AND exercise_position = $2
		 ORDER BY position ASC`,
		sessionID, exercisePos)
	if err != nil {
		return nil, fmt.Errorf("querying session sets: %w", err)
	}
	defer rows.Close()

	var sets []models.PerformedSet
	for rows.Next() {
		var s models.PerformedSet
		var typ string
		if err := rows.Scan(&s.ID, &typ, &s.WeightKg, &s.Reps, &s.TimeSec,
			&s.IsComplete, &s.RestSec, &s.ActualRestSec, &s.StoredBodyWeightKg); err != nil {
			return nil, fmt.Errorf("scanning session set: %w", err)
		}
		s.Type = models.SetType(typ)
		sets = append(sets, s)
	}
	return sets, rows.Err()
}
