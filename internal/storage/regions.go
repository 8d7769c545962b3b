package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/critterbits/internal/core"
)

// RegionSet describes the cached bake of one scene.
type RegionSet struct {
	SceneID     string
	TileHash    string
	TileCount   int
	RegionCount int
	CreatedAt   time.Time
}

// SaveRegions stores the combined regions of a scene, replacing whatever
// was cached for it before.
func (s *Store) SaveRegions(sceneID, tileHash string, tileCount int, regions []core.Rect) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`DELETE FROM region_rects WHERE set_id IN (SELECT id FROM region_sets WHERE scene_id = ?)`,
		sceneID,
	); err != nil {
		return fmt.Errorf("storage: cannot clear old regions: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM region_sets WHERE scene_id = ?", sceneID); err != nil {
		return fmt.Errorf("storage: cannot clear old region set: %w", err)
	}

	res, err := tx.Exec(
		"INSERT INTO region_sets (scene_id, tile_hash, tile_count) VALUES (?, ?, ?)",
		sceneID, tileHash, tileCount,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save region set: %w", err)
	}
	setID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO region_rects (set_id, seq, x, y, w, h) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("storage: cannot prepare region insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range regions {
		if _, err := stmt.Exec(setID, i, r.X, r.Y, r.W, r.H); err != nil {
			return fmt.Errorf("storage: cannot save region %v: %w", r, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit regions: %w", err)
	}
	return nil
}

// LoadRegions returns the cached regions of a scene when they were baked
// from a tile grid with the given hash. The bool is false on a cache miss.
func (s *Store) LoadRegions(sceneID, tileHash string) ([]core.Rect, bool, error) {
	var setID int64
	err := s.db.QueryRow(
		"SELECT id FROM region_sets WHERE scene_id = ? AND tile_hash = ?",
		sceneID, tileHash,
	).Scan(&setID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage: cannot query region set: %w", err)
	}

	regions, err := s.rects(setID)
	if err != nil {
		return nil, false, err
	}
	return regions, true, nil
}

// LatestRegions returns the cached regions of a scene whatever tile grid
// they were baked from. Returns nil info when nothing is cached.
func (s *Store) LatestRegions(sceneID string) (*RegionSet, []core.Rect, error) {
	var setID int64
	var createdAt any
	info := RegionSet{SceneID: sceneID}
	err := s.db.QueryRow(
		"SELECT id, tile_hash, tile_count, created_at FROM region_sets WHERE scene_id = ?",
		sceneID,
	).Scan(&setID, &info.TileHash, &info.TileCount, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("storage: cannot query region set: %w", err)
	}
	info.CreatedAt = parseTime(createdAt)

	regions, err := s.rects(setID)
	if err != nil {
		return nil, nil, err
	}
	info.RegionCount = len(regions)
	return &info, regions, nil
}

// CachedScenes lists every cached region set, ordered by scene id.
func (s *Store) CachedScenes() ([]RegionSet, error) {
	rows, err := s.db.Query(
		`SELECT s.scene_id, s.tile_hash, s.tile_count, COUNT(r.seq), s.created_at
		 FROM region_sets s
		 LEFT JOIN region_rects r ON r.set_id = s.id
		 GROUP BY s.id
		 ORDER BY s.scene_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query region sets: %w", err)
	}
	defer rows.Close()

	var sets []RegionSet
	for rows.Next() {
		var rs RegionSet
		var createdAt any
		if err := rows.Scan(&rs.SceneID, &rs.TileHash, &rs.TileCount, &rs.RegionCount, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rs.CreatedAt = parseTime(createdAt)
		sets = append(sets, rs)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sets, nil
}

// ClearRegions drops the cached regions of a scene.
func (s *Store) ClearRegions(sceneID string) error {
	_, err := s.db.Exec(
		`DELETE FROM region_rects WHERE set_id IN (SELECT id FROM region_sets WHERE scene_id = ?)`,
		sceneID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot clear regions: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM region_sets WHERE scene_id = ?", sceneID); err != nil {
		return fmt.Errorf("storage: cannot clear region set: %w", err)
	}
	return nil
}

func (s *Store) rects(setID int64) ([]core.Rect, error) {
	rows, err := s.db.Query(
		"SELECT x, y, w, h FROM region_rects WHERE set_id = ? ORDER BY seq",
		setID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query regions: %w", err)
	}
	defer rows.Close()

	regions := []core.Rect{}
	for rows.Next() {
		var r core.Rect
		if err := rows.Scan(&r.X, &r.Y, &r.W, &r.H); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		regions = append(regions, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return regions, nil
}
