package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// datasetVersion identifies the bundled demo extract of the RCSB disulfide
// dataset. Bump when the seed rows change.
const datasetVersion = "2023.11"

// DefaultStructureID is the entry selected at session start.
const DefaultStructureID = "2q7q"

type seedBond struct {
	name          string
	energy        float64
	resolution    float64
	caDistance    float64
	cbDistance    float64
	torsionLength float64
}

type seedStructure struct {
	id         string
	title      string
	resolution float64
	bonds      []seedBond
}

var demoDataset = []seedStructure{
	{
		id:         "2q7q",
		title:      "Putative oxidoreductase, seven-disulfide benchmark entry",
		resolution: 1.62,
		bonds: []seedBond{
			{"2q7q_75D_140D", 1.39, 1.62, 5.50, 4.11, 241.26},
			{"2q7q_81D_113D", 2.70, 1.62, 5.23, 3.94, 232.17},
			{"2q7q_88D_171D", 0.98, 1.62, 5.62, 4.04, 204.80},
			{"2q7q_90D_138D", 4.12, 1.62, 5.46, 4.25, 278.93},
			{"2q7q_91D_135D", 1.85, 1.62, 5.38, 3.88, 217.44},
			{"2q7q_98D_129D", 3.41, 1.62, 5.71, 4.32, 256.01},
			{"2q7q_130D_161D", 2.08, 1.62, 5.30, 4.01, 225.59},
		},
	},
	{
		id:         "5rsa",
		title:      "Ribonuclease A, neutron structure",
		resolution: 2.00,
		bonds: []seedBond{
			{"5rsa_26A_84A", 1.52, 2.00, 5.44, 4.06, 229.35},
			{"5rsa_40A_95A", 2.96, 2.00, 5.58, 4.18, 247.12},
			{"5rsa_58A_110A", 1.17, 2.00, 5.36, 3.91, 210.68},
			{"5rsa_65A_72A", 3.80, 2.00, 5.67, 4.29, 269.47},
		},
	},
	{
		id:         "1bpi",
		title:      "Bovine pancreatic trypsin inhibitor, crystal form II",
		resolution: 1.09,
		bonds: []seedBond{
			{"1bpi_5A_55A", 0.81, 1.09, 5.49, 3.97, 198.22},
			{"1bpi_14A_38A", 2.24, 1.09, 5.33, 4.09, 236.90},
			{"1bpi_30A_51A", 1.63, 1.09, 5.55, 4.14, 222.37},
		},
	},
}

// SeedDemo loads the bundled dataset into an empty database. It is idempotent
// and safe to run on every startup; a populated database is left untouched.
func SeedDemo(ctx context.Context, db *sql.DB) error {
	var existing int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM structures`).Scan(&existing); err != nil {
		return fmt.Errorf("check structures: %w", err)
	}
	if existing > 0 {
		return nil
	}

	return WithTx(db, func(tx *sql.Tx) error {
		bonds := 0
		for _, s := range demoDataset {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO structures(id, title, resolution) VALUES(?, ?, ?)`,
				s.id, s.title, s.resolution); err != nil {
				return fmt.Errorf("insert structure %q: %w", s.id, err)
			}
			for seq, b := range s.bonds {
				if _, err := tx.ExecContext(ctx, `
					INSERT INTO disulfides(name, structure_id, seq, energy, resolution,
						ca_distance, cb_distance, torsion_length)
					VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
					b.name, s.id, seq, b.energy, b.resolution,
					b.caDistance, b.cbDistance, b.torsionLength); err != nil {
					return fmt.Errorf("insert disulfide %q: %w", b.name, err)
				}
				bonds++
			}
		}

		loadID := uuid.NewSHA1(uuid.NameSpaceOID, []byte("load:"+datasetVersion)).String()
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO loads(id, dataset_version, structures, disulfides)
			VALUES(?, ?, ?, ?)`,
			loadID, datasetVersion, len(demoDataset), bonds); err != nil {
			return fmt.Errorf("record load: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO meta(key, value) VALUES('dataset_version', ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			datasetVersion); err != nil {
			return fmt.Errorf("record dataset version: %w", err)
		}
		return nil
	})
}
