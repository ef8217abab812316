package browser

import "github.com/protlab/ssbrowse/internal/render"

// Event is a user-originated action dispatched through the Controller. The
// variants replace the scattered widget callbacks of a click-wired UI with a
// closed set of typed payloads.
type Event interface {
	isEvent()
}

// StructureSelected picks a new parent entry.
type StructureSelected struct {
	ID string
}

// BondSelected picks a disulfide from the current list.
type BondSelected struct {
	Name string
}

// StyleChanged picks a rendering style.
type StyleChanged struct {
	Style render.Style
}

// ViewModeChanged toggles between single and multi view.
type ViewModeChanged struct {
	Single bool
}

// RefreshRequested forces a re-render with no state change.
type RefreshRequested struct{}

func (StructureSelected) isEvent() {}
func (BondSelected) isEvent()      {}
func (StyleChanged) isEvent()      {}
func (ViewModeChanged) isEvent()   {}
func (RefreshRequested) isEvent()  {}
