package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// StatsRepo reads dataset aggregates for display.
type StatsRepo struct {
	db *sql.DB
}

func NewStatsRepo(db *sql.DB) *StatsRepo { return &StatsRepo{db: db} }

// Get returns totals plus the dataset version string.
func (r *StatsRepo) Get(ctx context.Context) (Stats, error) {
	var s Stats
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM structures`).Scan(&s.Structures); err != nil {
		return Stats{}, fmt.Errorf("count structures: %w", err)
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM disulfides`).Scan(&s.Disulfides); err != nil {
		return Stats{}, fmt.Errorf("count disulfides: %w", err)
	}
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM meta WHERE key = 'dataset_version'`).Scan(&s.DatasetVersion)
	if err == sql.ErrNoRows {
		s.DatasetVersion = "unversioned"
		return s, nil
	}
	if err != nil {
		return Stats{}, fmt.Errorf("read dataset version: %w", err)
	}
	return s, nil
}

// Loads returns recorded dataset load batches, most recent first.
func (r *StatsRepo) Loads(ctx context.Context) ([]Load, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, dataset_version, structures, disulfides, loaded_at
		FROM loads ORDER BY loaded_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query loads: %w", err)
	}
	defer rows.Close()

	var out []Load
	for rows.Next() {
		var l Load
		if err := rows.Scan(&l.ID, &l.DatasetVersion, &l.Structures, &l.Disulfides, &l.LoadedAt); err != nil {
			return nil, fmt.Errorf("scan load: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
