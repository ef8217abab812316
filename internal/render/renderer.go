package render

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/protlab/ssbrowse/internal/database/repository"
)

// Request describes one render invocation. Style is only meaningful when
// Single is true; multi view always draws the fixed style grid.
type Request struct {
	BondName string
	Style    Style
	Single   bool
	Shadows  bool
	Light    bool
}

// Handle is the opaque result of a render call, embeddable into a display
// surface. Frame is the fully styled scene.
type Handle struct {
	BondName  string
	StyleCode string
	Single    bool
	Light     bool
	Frame     string
}

// SceneRenderer draws schematic depictions of a disulfide bond.
type SceneRenderer struct{}

func NewSceneRenderer() *SceneRenderer { return &SceneRenderer{} }

// Render produces a handle for the requested depiction. The scene is a pure
// function of the disulfide and the request, so identical inputs yield
// identical frames.
func (r *SceneRenderer) Render(ctx context.Context, d repository.Disulfide, req Request) (Handle, error) {
	if err := ctx.Err(); err != nil {
		return Handle{}, err
	}
	if req.BondName != d.Name {
		return Handle{}, fmt.Errorf("render request for %q given disulfide %q", req.BondName, d.Name)
	}
	for field, v := range map[string]float64{
		"energy":         d.Energy,
		"resolution":     d.Resolution,
		"ca_distance":    d.CaDistance,
		"cb_distance":    d.CbDistance,
		"torsion_length": d.TorsionLength,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Handle{}, fmt.Errorf("disulfide %q: non-finite %s", d.Name, field)
		}
	}

	pal := paletteFor(req.Light)
	var frame string
	if req.Single {
		frame = panel(d, req.Style, pal)
	} else {
		panels := make([]string, 0, len(Styles()))
		for _, s := range Styles() {
			panels = append(panels, panel(d, s, pal))
		}
		frame = lipgloss.JoinHorizontal(lipgloss.Top, panels...)
	}

	style := StyleSplitBonds
	if req.Single {
		style = req.Style
	}
	return Handle{
		BondName:  d.Name,
		StyleCode: style.Code(),
		Single:    req.Single,
		Light:     req.Light,
		Frame:     frame,
	}, nil
}

type palette struct {
	proximal lipgloss.Color
	distal   lipgloss.Color
	sulfur   lipgloss.Color
	frame    lipgloss.Color
	label    lipgloss.Color
}

func paletteFor(light bool) palette {
	if light {
		return palette{
			proximal: lipgloss.Color("#1e66f5"),
			distal:   lipgloss.Color("#40a02b"),
			sulfur:   lipgloss.Color("#df8e1d"),
			frame:    lipgloss.Color("#4c4f69"),
			label:    lipgloss.Color("#5c5f77"),
		}
	}
	return palette{
		proximal: lipgloss.Color("#89b4fa"),
		distal:   lipgloss.Color("#a6e3a1"),
		sulfur:   lipgloss.Color("#f9e2af"),
		frame:    lipgloss.Color("#585b70"),
		label:    lipgloss.Color("#a6adc8"),
	}
}

func panel(d repository.Disulfide, s Style, pal palette) string {
	prox := lipgloss.NewStyle().Foreground(pal.proximal)
	dist := lipgloss.NewStyle().Foreground(pal.distal)
	sulf := lipgloss.NewStyle().Foreground(pal.sulfur).Bold(true)
	label := lipgloss.NewStyle().Foreground(pal.label)

	var left, bridge, right string
	switch s {
	case StyleCPK:
		left = prox.Render("●●●")
		bridge = sulf.Render("◉◉")
		right = dist.Render("●●●")
	case StyleBallAndStick:
		left = prox.Render("○──○──○")
		bridge = sulf.Render("─◎──◎─")
		right = dist.Render("○──○──○")
	default: // split bonds
		left = prox.Render("N─Cα─Cβ")
		bridge = sulf.Render("─Sγ╌Sγ─")
		right = dist.Render("Cβ─Cα─N")
	}

	lines := []string{
		label.Render(d.Name + "  [" + s.String() + "]"),
		left + bridge + right,
		label.Render(fmt.Sprintf("χ length %6.2f°   E %5.2f kcal/mol", d.TorsionLength, d.Energy)),
		label.Render(fmt.Sprintf("Cα-Cα %.2f Å   Cβ-Cβ %.2f Å", d.CaDistance, d.CbDistance)),
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.frame).
		Padding(0, 1)
	return box.Render(strings.Join(lines, "\n"))
}
