package browser

import (
	"context"
	"fmt"

	"github.com/protlab/ssbrowse/internal/render"
)

// SurfaceLayout carries the display configuration attached to every surface.
type SurfaceLayout struct {
	Margin    int
	MinHeight int
	Controls  bool // interactive camera controls / keybindings
}

// Surface is one embeddable render result: the handle plus its layout.
type Surface struct {
	Handle render.Handle
	Layout SurfaceLayout
}

// RenderSlot owns exactly one currently displayed surface. Replace is the
// only way to change it, so a half-built surface is never visible.
type RenderSlot struct {
	current *Surface
}

func NewRenderSlot() *RenderSlot { return &RenderSlot{} }

func (s *RenderSlot) Current() *Surface { return s.current }

// Replace swaps in a fully constructed surface.
func (s *RenderSlot) Replace(next *Surface) { s.current = next }

// invokeRender resolves the selected bond, asks the renderer for a handle and
// swaps the visible surface. Any failure before the swap leaves the previous
// surface untouched and surfaces the error through the output region.
func (c *Controller) invokeRender(ctx context.Context) error {
	name := c.state.SelectedBond()
	if name == "" {
		c.regions.SetOutput("**Note:** nothing selected; rendering disabled")
		return ErrEmptySelection
	}

	d, err := c.db.GetBond(ctx, name)
	if err != nil {
		c.regions.SetOutput(fmt.Sprintf("**Error:** cannot find disulfide `%s`: %v", name, err))
		return err
	}

	req := c.buildRequest(name)
	handle, err := c.renderer.Render(ctx, d, req)
	if err != nil {
		c.regions.SetOutput(fmt.Sprintf("**Error:** render failed for `%s`: %v", name, err))
		return err
	}

	next := &Surface{Handle: handle, Layout: c.layout}
	c.slot.Replace(next)

	c.regions.SetTitle(Title(d))
	c.regions.SetInfo(Info(d))
	c.regions.SetOutput(Summary(d))
	return nil
}

// buildRequest assembles the render request from current state. The stored
// style is applied only in single view; multi view reuses the last applied
// style, which the renderer ignores for the grid anyway.
func (c *Controller) buildRequest(bondName string) render.Request {
	single := c.state.SingleView()
	if single {
		c.appliedStyle = c.state.Style()
	}
	return render.Request{
		BondName: bondName,
		Style:    c.appliedStyle,
		Single:   single,
		Shadows:  false,
		Light:    c.state.Theme().Light(),
	}
}
