package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
)

// UpsertRoutine stores or replaces a routine template. Exercises are kept as
// a JSONB document since templates are always read and written whole.
func (db *DB) UpsertRoutine(ctx context.Context, r models.Routine) error {
	exercises, err := json.Marshal(r.Exercises)
	if err != nil {
		return fmt.Errorf("encoding routine exercises: %w", err)
	}

	_, err = db.Pool.Exec(ctx,
		`INSERT INTO routines (id, user_id, name, exercises, updated_at)
		 VALUES ($1,$2,$3,$4,$5)
		 ON CONFLICT (id) DO UPDATE
		 SET name = EXCLUDED.name, exercises = EXCLUDED.exercises, updated_at = EXCLUDED.updated_at`,
		r.ID, r.UserID, r.Name, exercises, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upserting routine: %w", err)
	}
	return nil
}

// ListRoutines returns a user's routines, most recently edited first.
func (db *DB) ListRoutines(ctx context.Context, userID int) ([]models.Routine, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, name, exercises, updated_at
		 FROM routines WHERE user_id = $1
		 ORDER BY updated_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying routines: %w", err)
	}
	defer rows.Close()

	var result []models.Routine
	for rows.Next() {
		r, err := scanRoutine(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// GetRoutine fetches one routine by id.
func (db *DB) GetRoutine(ctx context.Context, id uuid.UUID, userID int) (*models.Routine, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, name, exercises, updated_at
		 FROM routines WHERE id = $1 AND user_id = $2`,
		id, userID)
	r, err := scanRoutine(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("querying routine %s: %w", id, err)
	}
	return &r, nil
}

// DeleteRoutine removes a routine template.
func (db *DB) DeleteRoutine(ctx context.Context, id uuid.UUID, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM routines WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting routine: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("routine %s not found", id)
	}
	return nil
}

func scanRoutine(scan func(...any) error) (models.Routine, error) {
	var r models.Routine
	var exercises []byte
	if err := scan(&r.ID, &r.UserID, &r.Name, &exercises, &r.UpdatedAt); err != nil {
		return r, fmt.Errorf("scanning routine: %w", err)
	}
	if err := json.Unmarshal(exercises, &r.Exercises); err != nil {
		return r, fmt.Errorf("decoding routine exercises: %w", err)
	}
	return r, nil
}
