package storage

import (
	"fmt"
	"time"
)

// RunStats is the summary of one headless or interactive run of a scene.
type RunStats struct {
	ID         int64
	SceneID    string
	Frames     int
	Entities   int
	Collisions int
	AvgFPS     float64
	CreatedAt  time.Time
}

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(run RunStats) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (scene_id, frames, entities, collisions, avg_fps) VALUES (?, ?, ?, ?, ?)",
		run.SceneID, run.Frames, run.Entities, run.Collisions, run.AvgFPS,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns returns the latest runs, newest first. An empty sceneID
// returns runs of every scene.
func (s *Store) RecentRuns(sceneID string, limit int) ([]RunStats, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, scene_id, frames, entities, collisions, avg_fps, created_at FROM runs`
	args := []any{}
	if sceneID != "" {
		query += " WHERE scene_id = ?"
		args = append(args, sceneID)
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunStats
	for rows.Next() {
		var r RunStats
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SceneID, &r.Frames, &r.Entities, &r.Collisions, &r.AvgFPS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}
