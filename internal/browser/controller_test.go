package browser

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/protlab/ssbrowse/internal/database/repository"
	"github.com/protlab/ssbrowse/internal/render"
)

type fakeDB struct {
	bonds map[string][]string
	items map[string]repository.Disulfide
}

func (f *fakeDB) ListStructureIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(f.bonds))
	for id := range f.bonds {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeDB) ListBondNames(ctx context.Context, structureID string) ([]string, error) {
	names, ok := f.bonds[structureID]
	if !ok {
		return nil, repository.ErrUnknownStructure
	}
	return names, nil
}

func (f *fakeDB) GetBond(ctx context.Context, name string) (repository.Disulfide, error) {
	d, ok := f.items[name]
	if !ok {
		return repository.Disulfide{}, repository.ErrDisulfideNotFound
	}
	return d, nil
}

type fakeRenderer struct {
	requests []render.Request
	fail     error
}

func (f *fakeRenderer) Render(ctx context.Context, d repository.Disulfide, req render.Request) (render.Handle, error) {
	f.requests = append(f.requests, req)
	if f.fail != nil {
		return render.Handle{}, f.fail
	}
	return render.Handle{BondName: d.Name, Single: req.Single, Frame: "frame:" + d.Name}, nil
}

func (f *fakeRenderer) last() render.Request {
	return f.requests[len(f.requests)-1]
}

type recordedRegions struct {
	title  string
	info   string
	output string
}

func (r *recordedRegions) SetTitle(s string)  { r.title = s }
func (r *recordedRegions) SetInfo(s string)   { r.info = s }
func (r *recordedRegions) SetOutput(s string) { r.output = s }

func testFixture() (*fakeDB, *fakeRenderer, *recordedRegions, *Controller) {
	bond := func(name, structure string) repository.Disulfide {
		return repository.Disulfide{
			Name:          name,
			StructureID:   structure,
			Energy:        2.59,
			Resolution:    1.32,
			CaDistance:    5.72,
			CbDistance:    4.10,
			TorsionLength: 145.62,
		}
	}
	db := &fakeDB{
		bonds: map[string][]string{
			"2q7q": {"2q7q_75D_140D", "2q7q_26D_84D"},
			"5rsa": {"5rsa_26A_84A"},
		},
		items: map[string]repository.Disulfide{
			"2q7q_75D_140D": bond("2q7q_75D_140D", "2q7q"),
			"2q7q_26D_84D":  bond("2q7q_26D_84D", "2q7q"),
			"5rsa_26A_84A":  bond("5rsa_26A_84A", "5rsa"),
		},
	}
	renderer := &fakeRenderer{}
	reg := &recordedRegions{}
	state := NewSessionState(ThemeDefault)
	ctrl := NewController(db, renderer, NewRenderSlot(), reg, state, SurfaceLayout{MinHeight: 10, Controls: true})
	return db, renderer, reg, ctrl
}

func TestStructureSelectedCascadesToDefaultBond(t *testing.T) {
	t.Parallel()

	_, renderer, reg, ctrl := testFixture()
	ctx := context.Background()

	require.NoError(t, ctrl.Dispatch(ctx, StructureSelected{ID: "2q7q"}))

	require.Equal(t, "2q7q", ctrl.State().Structure())
	require.Equal(t, "2q7q_75D_140D", ctrl.State().SelectedBond())
	require.Len(t, renderer.requests, 1)
	require.Equal(t, render.Request{
		BondName: "2q7q_75D_140D",
		Style:    render.StyleSplitBonds,
		Single:   true,
		Shadows:  false,
		Light:    true,
	}, renderer.last())

	require.NotNil(t, ctrl.Slot().Current())
	require.Equal(t, "frame:2q7q_75D_140D", ctrl.Slot().Current().Handle.Frame)
	require.Contains(t, reg.title, "2q7q_75D_140D")
	require.Contains(t, reg.info, "kcal/mol")
}

func TestUnknownStructureLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	_, renderer, reg, ctrl := testFixture()
	ctx := context.Background()
	require.NoError(t, ctrl.Dispatch(ctx, StructureSelected{ID: "2q7q"}))
	before := ctrl.Slot().Current()

	err := ctrl.Dispatch(ctx, StructureSelected{ID: "9xyz"})
	require.ErrorIs(t, err, repository.ErrUnknownStructure)

	require.Equal(t, "2q7q", ctrl.State().Structure())
	require.Equal(t, "2q7q_75D_140D", ctrl.State().SelectedBond())
	require.Equal(t, []string{"2q7q_75D_140D", "2q7q_26D_84D"}, ctrl.State().BondNames())
	require.Same(t, before, ctrl.Slot().Current())
	require.Len(t, renderer.requests, 1)
	require.Contains(t, reg.output, "9xyz")
}

func TestBondSelectedRendersNewBond(t *testing.T) {
	t.Parallel()

	_, renderer, _, ctrl := testFixture()
	ctx := context.Background()
	require.NoError(t, ctrl.Dispatch(ctx, StructureSelected{ID: "2q7q"}))

	require.NoError(t, ctrl.Dispatch(ctx, BondSelected{Name: "2q7q_26D_84D"}))
	require.Equal(t, "2q7q_26D_84D", ctrl.State().SelectedBond())
	require.Equal(t, "2q7q_26D_84D", renderer.last().BondName)

	err := ctrl.Dispatch(ctx, BondSelected{Name: "5rsa_26A_84A"})
	require.ErrorIs(t, err, ErrInvalidBond)
	require.Equal(t, "2q7q_26D_84D", ctrl.State().SelectedBond())
}

func TestStyleAppliedOnlyInSingleView(t *testing.T) {
	t.Parallel()

	_, renderer, _, ctrl := testFixture()
	ctx := context.Background()
	require.NoError(t, ctrl.Dispatch(ctx, StructureSelected{ID: "2q7q"}))

	require.NoError(t, ctrl.Dispatch(ctx, ViewModeChanged{Single: false}))
	require.False(t, renderer.last().Single)

	// style edits while multi view are stored but not applied
	require.NoError(t, ctrl.Dispatch(ctx, StyleChanged{Style: render.StyleCPK}))
	require.Equal(t, render.StyleCPK, ctrl.State().Style())
	require.Equal(t, render.StyleSplitBonds, renderer.last().Style)
	require.False(t, renderer.last().Single)

	// flipping back to single view applies the stored style
	require.NoError(t, ctrl.Dispatch(ctx, ViewModeChanged{Single: true}))
	require.Equal(t, render.StyleCPK, renderer.last().Style)
	require.True(t, renderer.last().Single)

	// CPK stays the applied style across another flip plus a stored edit
	require.NoError(t, ctrl.Dispatch(ctx, ViewModeChanged{Single: false}))
	require.NoError(t, ctrl.Dispatch(ctx, StyleChanged{Style: render.StyleBallAndStick}))
	require.Equal(t, render.StyleCPK, renderer.last().Style)
	require.Equal(t, render.StyleBallAndStick, ctrl.State().Style())
}

func TestRefreshRerendersCurrentSelection(t *testing.T) {
	t.Parallel()

	_, renderer, _, ctrl := testFixture()
	ctx := context.Background()
	require.NoError(t, ctrl.Dispatch(ctx, StructureSelected{ID: "2q7q"}))
	first := renderer.last()

	require.NoError(t, ctrl.Dispatch(ctx, RefreshRequested{}))
	require.Len(t, renderer.requests, 2)
	require.Equal(t, first, renderer.last())
}

func TestRefreshWithoutSelectionIsNoop(t *testing.T) {
	t.Parallel()

	_, renderer, _, ctrl := testFixture()
	err := ctrl.Dispatch(context.Background(), RefreshRequested{})
	require.ErrorIs(t, err, ErrEmptySelection)
	require.Empty(t, renderer.requests)
	require.Nil(t, ctrl.Slot().Current())
}

func TestRenderFailureRetainsSurface(t *testing.T) {
	t.Parallel()

	_, renderer, reg, ctrl := testFixture()
	ctx := context.Background()
	require.NoError(t, ctrl.Dispatch(ctx, StructureSelected{ID: "2q7q"}))
	before := ctrl.Slot().Current()

	renderer.fail = errors.New("gpu on fire")
	err := ctrl.Dispatch(ctx, BondSelected{Name: "2q7q_26D_84D"})
	require.Error(t, err)
	require.Same(t, before, ctrl.Slot().Current())
	require.Contains(t, reg.output, "render failed")
}

func TestBondLookupFailureRetainsSurface(t *testing.T) {
	t.Parallel()

	db, _, reg, ctrl := testFixture()
	ctx := context.Background()
	require.NoError(t, ctrl.Dispatch(ctx, StructureSelected{ID: "2q7q"}))
	before := ctrl.Slot().Current()

	// the bond vanishes between listing and lookup
	delete(db.items, "2q7q_26D_84D")
	err := ctrl.Dispatch(ctx, BondSelected{Name: "2q7q_26D_84D"})
	require.ErrorIs(t, err, repository.ErrDisulfideNotFound)
	require.Same(t, before, ctrl.Slot().Current())
	require.Contains(t, reg.output, "cannot find disulfide")
}

func TestEmptyStructureClearsSelection(t *testing.T) {
	t.Parallel()

	db, _, reg, ctrl := testFixture()
	db.bonds["1edge"] = nil
	ctx := context.Background()
	require.NoError(t, ctrl.Dispatch(ctx, StructureSelected{ID: "2q7q"}))

	err := ctrl.Dispatch(ctx, StructureSelected{ID: "1edge"})
	require.ErrorIs(t, err, ErrEmptySelection)
	require.Equal(t, "1edge", ctrl.State().Structure())
	require.Empty(t, ctrl.State().SelectedBond())
	require.Contains(t, reg.output, "no disulfides")
}
