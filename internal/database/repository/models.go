package repository

// Structure represents a structures row: one deposited RCSB entry.
type Structure struct {
	ID         string
	Title      string
	Resolution float64
}

// Disulfide represents a disulfides row. Name is globally unique and encodes
// the parent structure plus the two bonded residues, e.g. "2q7q_75D_140D".
type Disulfide struct {
	Name          string
	StructureID   string
	Energy        float64 // kcal/mol
	Resolution    float64 // angstroms
	CaDistance    float64 // angstroms
	CbDistance    float64 // angstroms
	TorsionLength float64 // degrees
}

// Stats summarises the loaded dataset for display.
type Stats struct {
	Structures     int
	Disulfides     int
	DatasetVersion string
}

// Load records one seeded dataset batch.
type Load struct {
	ID             string
	DatasetVersion string
	Structures     int
	Disulfides     int
	LoadedAt       string
}
