// Package importer loads workout session export files into the database.
// Export files are JSON, one session object or an array of sessions per
// file. Imports are idempotent: sessions whose id already exists are
// counted as duplicates and left untouched.
package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/claude/liftlog/internal/analytics"
	"github.com/claude/liftlog/internal/catalog"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
	"github.com/google/uuid"
)

const defaultUserID = 1

// Stats tracks import progress.
type Stats struct {
	FilesProcessed int
	FilesSkipped   int
	FilesErrored   int

	SessionsInserted   int
	SessionsDuplicated int
	RecordsCounted     int
}

// Importer reads session export files from a directory and inserts them.
type Importer struct {
	db     *storage.DB
	cat    *catalog.Catalog
	log    *slog.Logger
	dryRun bool
	stats  Stats
}

// New creates a new Importer.
func New(db *storage.DB, cat *catalog.Catalog, log *slog.Logger, dryRun bool) *Importer {
	return &Importer{db: db, cat: cat, log: log, dryRun: dryRun}
}

// Import processes all .json files in the given directory, oldest filename
// first so record counts fold in chronological order.
func (imp *Importer) Import(ctx context.Context, dir string) (*Stats, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return &imp.stats, err
	}
	sort.Strings(files)

	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			imp.stats.FilesErrored++
			imp.log.Warn("skipping unreadable file", "file", f, "error", err)
			continue
		}

		sessions, err := ParseSessions(data)
		if err != nil {
			imp.stats.FilesErrored++
			imp.log.Warn("skipping unparseable file", "file", f, "error", err)
			continue
		}
		if len(sessions) == 0 {
			imp.stats.FilesSkipped++
			continue
		}
		imp.stats.FilesProcessed++

		for _, session := range sessions {
			if err := imp.importSession(ctx, session); err != nil {
				return &imp.stats, fmt.Errorf("importing session from %s: %w", f, err)
			}
		}
	}

	return &imp.stats, nil
}

func (imp *Importer) importSession(ctx context.Context, session models.WorkoutSession) error {
	if err := ValidateSession(session); err != nil {
		return err
	}
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	if session.UserID == 0 {
		session.UserID = defaultUserID
	}
	session.Intensity = string(analytics.ClassifyIntensity(session, imp.cat))

	if imp.dryRun {
		imp.log.Info("would import session",
			"id", session.ID,
			"routine", session.RoutineName,
			"start", session.StartTime,
			"intensity", session.Intensity,
		)
		imp.stats.SessionsInserted++
		return nil
	}

	history, err := imp.historyFor(ctx, session)
	if err != nil {
		return err
	}
	session.PRCount = analytics.CountNewRecords(history, session)

	inserted, err := imp.db.InsertSession(ctx, session)
	if err != nil {
		return err
	}
	if !inserted {
		imp.stats.SessionsDuplicated++
		return nil
	}
	imp.stats.SessionsInserted++
	imp.stats.RecordsCounted += session.PRCount
	return nil
}

// historyFor loads prior history for every exercise in the session.
func (imp *Importer) historyFor(ctx context.Context, session models.WorkoutSession) ([]models.WorkoutSession, error) {
	seen := map[string]bool{}
	var history []models.WorkoutSession
	for _, ex := range session.Exercises {
		if seen[ex.ExerciseID] {
			continue
		}
		seen[ex.ExerciseID] = true
		prior, err := imp.db.ExerciseHistory(ctx, ex.ExerciseID, session.UserID)
		if err != nil {
			return nil, fmt.Errorf("loading history for %s: %w", ex.ExerciseID, err)
		}
		history = append(history, prior...)
	}
	return history, nil
}

// ParseSessions decodes an export file holding either a single session object
// or an array of sessions.
func ParseSessions(data []byte) ([]models.WorkoutSession, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var sessions []models.WorkoutSession
		if err := json.Unmarshal(trimmed, &sessions); err != nil {
			return nil, fmt.Errorf("parsing session array: %w", err)
		}
		return sessions, nil
	}

	var session models.WorkoutSession
	if err := json.Unmarshal(trimmed, &session); err != nil {
		return nil, fmt.Errorf("parsing session: %w", err)
	}
	return []models.WorkoutSession{session}, nil
}

// ValidateSession rejects exports missing the fields the store requires.
func ValidateSession(s models.WorkoutSession) error {
	if s.StartTime.IsZero() {
		return fmt.Errorf("session %s: start_time is required", s.ID)
	}
	if !s.EndTime.IsZero() && s.EndTime.Before(s.StartTime) {
		return fmt.Errorf("session %s: end_time before start_time", s.ID)
	}
	for i, ex := range s.Exercises {
		if ex.ExerciseID == "" {
			return fmt.Errorf("session %s: exercise %d: exercise_id is required", s.ID, i)
		}
	}
	return nil
}
