package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// DisulfideRepo handles disulfides.
type DisulfideRepo struct {
	db *sql.DB
}

func NewDisulfideRepo(db *sql.DB) *DisulfideRepo { return &DisulfideRepo{db: db} }

// ListNamesFor returns the bond names belonging to a structure in dataset
// order. An ID with no structures row fails with ErrUnknownStructure; a known
// structure with no bonds returns an empty slice.
func (r *DisulfideRepo) ListNamesFor(ctx context.Context, structureID string) ([]string, error) {
	var exists int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM structures WHERE id = ?`, structureID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check structure %q: %w", structureID, err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("structure %q: %w", structureID, ErrUnknownStructure)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT name FROM disulfides
		WHERE structure_id = ?
		ORDER BY seq ASC`, structureID)
	if err != nil {
		return nil, fmt.Errorf("query disulfide names: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan disulfide name: %w", err)
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// Get returns one disulfide or ErrDisulfideNotFound.
func (r *DisulfideRepo) Get(ctx context.Context, name string) (Disulfide, error) {
	var d Disulfide
	err := r.db.QueryRowContext(ctx, `
		SELECT name, structure_id, energy, resolution, ca_distance, cb_distance, torsion_length
		FROM disulfides WHERE name = ?`, name).
		Scan(&d.Name, &d.StructureID, &d.Energy, &d.Resolution,
			&d.CaDistance, &d.CbDistance, &d.TorsionLength)
	if err == sql.ErrNoRows {
		return Disulfide{}, fmt.Errorf("disulfide %q: %w", name, ErrDisulfideNotFound)
	}
	if err != nil {
		return Disulfide{}, fmt.Errorf("get disulfide %q: %w", name, err)
	}
	return d, nil
}

// Count returns the number of disulfides.
func (r *DisulfideRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM disulfides`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count disulfides: %w", err)
	}
	return n, nil
}
