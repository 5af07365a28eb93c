package storage

import (
	"context"
	"fmt"
	"time"
)

// VolumePeriod holds aggregated working-set volume for one time bucket.
type VolumePeriod struct {
	Period    string  `json:"period"`
	Sessions  int     `json:"sessions"`
	Sets      int     `json:"sets"`
	Reps      int     `json:"reps"`
	TonnageKg float64 `json:"tonnage_kg"`
}

// truncInterval maps a bucket size to a date_trunc field.
func truncInterval(bucket string) string {
	switch bucket {
	case "1 week":
		return "week"
	default:
		return "month"
	}
}

// GetVolumeSummary aggregates completed working sets (warmups excluded) per
// period: session count, set count, total reps, and tonnage.
func (db *DB) GetVolumeSummary(ctx context.Context, start, end time.Time, bucket string, userID int) ([]VolumePeriod, error) {
	rows, err := db.Pool.Query(ctx,
		fmt.Sprintf(`SELECT date_trunc('%s', s.start_time) AS period,
		        COUNT(DISTINCT s.id)::int,
		        COUNT(t.id)::int,
		        COALESCE(SUM(t.reps), 0)::int,
		        COALESCE(SUM(t.weight_kg * t.reps), 0)
		 FROM sessions s
		 JOIN session_sets t ON t.session_id = s.id
		 WHERE s.start_time >= $1 AND s.start_time < $2
		   AND s.user_id = $3
		   AND t.is_complete
		   AND t.type <> 'warmup'
		 GROUP BY period
		 ORDER BY period ASC`, truncInterval(bucket)),
		start, end, userID)
	if err != nil {
		return nil, fmt.Errorf("querying volume summary: %w", err)
	}
	defer rows.Close()

	var result []VolumePeriod
	for rows.Next() {
		var p VolumePeriod
		var period time.Time
		if err := rows.Scan(&period, &p.Sessions, &p.Sets, &p.Reps, &p.TonnageKg); err != nil {
			return nil, fmt.Errorf("scanning volume period: %w", err)
		}
		p.Period = period.Format("2006-01-02")
		result = append(result, p)
	}
	return result, rows.Err()
}
