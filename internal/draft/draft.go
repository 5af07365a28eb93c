// Package draft persists the in-progress workout session to a local SQLite
// database so a crash or restart does not lose an active workout. The draft
// is written whole after every committed cascade edit and cleared when the
// session is finished into history.
package draft

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/claude/liftlog/internal/models"
	_ "modernc.org/sqlite"
)

// ErrNoDraft is returned by Load when no draft exists for the user.
var ErrNoDraft = errors.New("draft: no active session")

// Store holds the draft database handle.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the draft database at dir/draft.db.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating draft dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "draft.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening draft db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS active_sessions (
		user_id  INTEGER PRIMARY KEY,
		session  TEXT NOT NULL,
		saved_at TIMESTAMP NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating draft table: %w", err)
	}

	return &Store{db: db}, nil
}

// Save replaces the user's draft with the given session state.
func (s *Store) Save(userID int, session models.WorkoutSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encoding draft: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO active_sessions (user_id, session, saved_at) VALUES (?, ?, ?)`,
		userID, string(data), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}
	return nil
}

// Load returns the user's draft session, or ErrNoDraft.
func (s *Store) Load(userID int) (*models.WorkoutSession, error) {
	var data string
	err := s.db.QueryRow(
		`SELECT session FROM active_sessions WHERE user_id = ?`, userID,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoDraft
	}
	if err != nil {
		return nil, fmt.Errorf("loading draft: %w", err)
	}

	var session models.WorkoutSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("decoding draft: %w", err)
	}
	return &session, nil
}

// Clear removes the user's draft after the session lands in history.
func (s *Store) Clear(userID int) error {
	if _, err := s.db.Exec(`DELETE FROM active_sessions WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clearing draft: %w", err)
	}
	return nil
}

// Close closes the draft database.
func (s *Store) Close() error {
	return s.db.Close()
}
