package browser

import (
	"fmt"

	"github.com/protlab/ssbrowse/internal/database/repository"
)

// Title formats the heading for the selected disulfide.
func Title(d repository.Disulfide) string {
	return fmt.Sprintf("## %s", d.Name)
}

// Info formats the multi-line descriptive block: resolution, energy and the
// three geometry measures, each at two decimals with units.
func Info(d repository.Disulfide) string {
	return fmt.Sprintf("### %s  \n"+
		"**Resolution:** %.2f Å  \n"+
		"**Energy:** %.2f kcal/mol  \n"+
		"**Cα distance:** %.2f Å  \n"+
		"**Cβ distance:** %.2f Å  \n"+
		"**Torsion Length:** %.2f°",
		d.Name, d.Resolution, d.Energy, d.CaDistance, d.CbDistance, d.TorsionLength)
}

// Summary formats the single-line equivalent for the output region.
func Summary(d repository.Disulfide) string {
	return fmt.Sprintf("**Cα-Cα:** %.2f Å **Cβ-Cβ:** %.2f Å **Torsion Length:** %.2f° **Resolution:** %.2f Å **Energy:** %.2f kcal/mol",
		d.CaDistance, d.CbDistance, d.TorsionLength, d.Resolution, d.Energy)
}
