package render

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/protlab/ssbrowse/internal/database/repository"
)

func sampleBond() repository.Disulfide {
	return repository.Disulfide{
		Name:          "2q7q_75D_140D",
		StructureID:   "2q7q",
		Energy:        2.59,
		Resolution:    1.32,
		CaDistance:    5.72,
		CbDistance:    4.10,
		TorsionLength: 145.62,
	}
}

func TestRenderSingleView(t *testing.T) {
	t.Parallel()

	r := NewSceneRenderer()
	h, err := r.Render(context.Background(), sampleBond(), Request{
		BondName: "2q7q_75D_140D",
		Style:    StyleCPK,
		Single:   true,
		Light:    true,
	})
	require.NoError(t, err)
	require.Equal(t, "2q7q_75D_140D", h.BondName)
	require.Equal(t, "cpk", h.StyleCode)
	require.True(t, h.Single)
	require.True(t, h.Light)
	require.Contains(t, h.Frame, "2q7q_75D_140D")
	require.Contains(t, h.Frame, "CPK")
	require.NotContains(t, h.Frame, "Ball and Stick")
}

func TestRenderMultiViewDrawsAllStyles(t *testing.T) {
	t.Parallel()

	r := NewSceneRenderer()
	h, err := r.Render(context.Background(), sampleBond(), Request{
		BondName: "2q7q_75D_140D",
		Style:    StyleCPK, // ignored in multi view
		Single:   false,
	})
	require.NoError(t, err)
	require.False(t, h.Single)
	require.Equal(t, "sb", h.StyleCode)
	for _, s := range Styles() {
		require.Contains(t, h.Frame, s.String())
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	r := NewSceneRenderer()
	req := Request{BondName: "2q7q_75D_140D", Style: StyleSplitBonds, Single: true}
	a, err := r.Render(context.Background(), sampleBond(), req)
	require.NoError(t, err)
	b, err := r.Render(context.Background(), sampleBond(), req)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestRenderRejectsMismatchedName(t *testing.T) {
	t.Parallel()

	r := NewSceneRenderer()
	_, err := r.Render(context.Background(), sampleBond(), Request{
		BondName: "5rsa_26A_84A",
		Single:   true,
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "5rsa_26A_84A")
}

func TestRenderRejectsNonFiniteFields(t *testing.T) {
	t.Parallel()

	r := NewSceneRenderer()
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		d := sampleBond()
		d.Energy = bad
		_, err := r.Render(context.Background(), d, Request{BondName: d.Name, Single: true})
		require.Error(t, err)
		require.Contains(t, err.Error(), "non-finite")
	}
}

func TestRenderHonorsContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSceneRenderer().Render(ctx, sampleBond(), Request{BondName: "2q7q_75D_140D", Single: true})
	require.ErrorIs(t, err, context.Canceled)
}

func TestPanelMeasurementsAtTwoDecimals(t *testing.T) {
	t.Parallel()

	r := NewSceneRenderer()
	h, err := r.Render(context.Background(), sampleBond(), Request{BondName: "2q7q_75D_140D", Single: true})
	require.NoError(t, err)
	for _, want := range []string{"145.62", "2.59", "5.72", "4.10"} {
		require.True(t, strings.Contains(h.Frame, want), "frame missing %s", want)
	}
}
