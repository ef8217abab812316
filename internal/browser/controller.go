package browser

import (
	"context"
	"fmt"

	"github.com/protlab/ssbrowse/internal/database/repository"
	"github.com/protlab/ssbrowse/internal/render"
)

// Database is the read-only structural database collaborator.
type Database interface {
	ListStructureIDs(ctx context.Context) ([]string, error)
	ListBondNames(ctx context.Context, structureID string) ([]string, error)
	GetBond(ctx context.Context, name string) (repository.Disulfide, error)
}

// Renderer is the rendering collaborator.
type Renderer interface {
	Render(ctx context.Context, d repository.Disulfide, req render.Request) (render.Handle, error)
}

// TextRegions receives presenter output and error text. Each region accepts a
// plain (markdown) string; display mechanics are the caller's concern.
type TextRegions interface {
	SetTitle(string)
	SetInfo(string)
	SetOutput(string)
}

// Controller wires user events to state mutations and render invocations in a
// fixed propagation order. Dispatch runs each cascade synchronously to
// completion, so no two cascades ever interleave; any failure leaves the
// previously valid state and the current render surface intact.
type Controller struct {
	db       Database
	renderer Renderer
	slot     *RenderSlot
	regions  TextRegions
	state    *SessionState
	layout   SurfaceLayout

	// appliedStyle is the style of the most recent single-view render. Multi
	// view requests carry it unchanged: style edits made while the control is
	// disabled are stored but take effect only once single view returns.
	appliedStyle render.Style
}

func NewController(db Database, renderer Renderer, slot *RenderSlot, regions TextRegions, state *SessionState, layout SurfaceLayout) *Controller {
	return &Controller{
		db:           db,
		renderer:     renderer,
		slot:         slot,
		regions:      regions,
		state:        state,
		layout:       layout,
		appliedStyle: state.Style(),
	}
}

func (c *Controller) State() *SessionState { return c.state }

func (c *Controller) Slot() *RenderSlot { return c.slot }

// Dispatch handles one event and its entire cascade before returning. The
// returned error is also surfaced to the output region; callers may use it
// for a status line but need not handle it further.
func (c *Controller) Dispatch(ctx context.Context, ev Event) error {
	switch e := ev.(type) {
	case StructureSelected:
		return c.structureSelected(ctx, e.ID)
	case BondSelected:
		return c.bondSelected(ctx, e.Name)
	case StyleChanged:
		return c.styleChanged(ctx, e.Style)
	case ViewModeChanged:
		c.state.SetSingleView(e.Single)
		return c.invokeRender(ctx)
	case RefreshRequested:
		return c.invokeRender(ctx)
	default:
		return fmt.Errorf("unhandled event %T", ev)
	}
}

// structureSelected validates the entry against the database before touching
// state, so a failed lookup leaves the previous bond list and selection
// untouched. On success the bond list is refreshed and the default bond is
// selected through the ordinary BondSelected path.
func (c *Controller) structureSelected(ctx context.Context, id string) error {
	names, err := c.db.ListBondNames(ctx, id)
	if err != nil {
		c.regions.SetOutput(fmt.Sprintf("**Error:** cannot load structure `%s`: %v", id, err))
		return err
	}
	c.state.SetStructure(id)
	if err := c.state.SetBondNames(names); err != nil {
		c.regions.SetOutput(fmt.Sprintf("**Note:** structure `%s` has no disulfides to display", id))
		return err
	}
	return c.bondSelected(ctx, c.state.SelectedBond())
}

func (c *Controller) bondSelected(ctx context.Context, name string) error {
	if err := c.state.SetSelectedBond(name); err != nil {
		c.regions.SetOutput(fmt.Sprintf("**Error:** %v", err))
		return err
	}
	return c.invokeRender(ctx)
}

func (c *Controller) styleChanged(ctx context.Context, v render.Style) error {
	if err := c.state.SetStyle(v); err != nil {
		c.regions.SetOutput(fmt.Sprintf("**Error:** %v", err))
		return err
	}
	// A render still occurs in multi view; the new style is just not applied.
	return c.invokeRender(ctx)
}
