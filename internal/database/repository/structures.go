package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// StructureRepo handles structures.
type StructureRepo struct {
	db *sql.DB
}

func NewStructureRepo(db *sql.DB) *StructureRepo { return &StructureRepo{db: db} }

// ListIDs returns every structure ID, sorted.
func (r *StructureRepo) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM structures ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query structure ids: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan structure id: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// Get returns one structure or ErrUnknownStructure.
func (r *StructureRepo) Get(ctx context.Context, id string) (Structure, error) {
	var s Structure
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, resolution FROM structures WHERE id = ?`, id).
		Scan(&s.ID, &s.Title, &s.Resolution)
	if err == sql.ErrNoRows {
		return Structure{}, fmt.Errorf("structure %q: %w", id, ErrUnknownStructure)
	}
	if err != nil {
		return Structure{}, fmt.Errorf("get structure %q: %w", id, err)
	}
	return s, nil
}

// Count returns the number of structures.
func (r *StructureRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM structures`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count structures: %w", err)
	}
	return n, nil
}
