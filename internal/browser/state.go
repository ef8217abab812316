package browser

import (
	"fmt"

	"github.com/protlab/ssbrowse/internal/render"
)

// SessionState holds the selection state that keeps the dependent controls
// consistent: current structure, its bond list, the selected bond, the render
// style and the view mode. It is mutated only by the Controller and enforces
// the referential invariants at every mutation:
//
//   - a non-empty selected bond always appears in the bond list;
//   - the bond list is exactly the current set for the selected structure;
//   - style is stored even while multi view disables the control;
//   - theme is fixed for the session.
type SessionState struct {
	selectedStructure string
	bondNames         []string
	selectedBond      string
	style             render.Style
	singleView        bool
	theme             Theme
}

// NewSessionState returns the session-start state: default style, single view
// enabled, nothing selected yet.
func NewSessionState(theme Theme) *SessionState {
	return &SessionState{
		style:      render.StyleSplitBonds,
		singleView: true,
		theme:      theme,
	}
}

func (s *SessionState) Structure() string { return s.selectedStructure }

func (s *SessionState) SelectedBond() string { return s.selectedBond }

func (s *SessionState) Style() render.Style { return s.style }

func (s *SessionState) SingleView() bool { return s.singleView }

func (s *SessionState) Theme() Theme { return s.theme }

// BondNames returns a copy of the current bond list.
func (s *SessionState) BondNames() []string {
	return append([]string(nil), s.bondNames...)
}

// StyleEnabled reports whether the style control is active. Derived rather
// than stored: the control is enabled exactly when single view is on.
func (s *SessionState) StyleEnabled() bool { return s.singleView }

// SetStructure records a new selected structure. The caller must have
// validated the ID against the database and must refresh the bond list before
// any render.
func (s *SessionState) SetStructure(id string) {
	s.selectedStructure = id
}

// SetBondNames replaces the bond list. An empty list clears the selection and
// returns ErrEmptySelection; a non-empty list that no longer contains the
// selected bond defaults the selection to its first element.
func (s *SessionState) SetBondNames(names []string) error {
	s.bondNames = append([]string(nil), names...)
	if len(s.bondNames) == 0 {
		s.selectedBond = ""
		return ErrEmptySelection
	}
	if !s.contains(s.selectedBond) {
		s.selectedBond = s.bondNames[0]
	}
	return nil
}

// SetSelectedBond selects a bond from the current list.
func (s *SessionState) SetSelectedBond(name string) error {
	if !s.contains(name) {
		return fmt.Errorf("bond %q not in current list: %w", name, ErrInvalidBond)
	}
	s.selectedBond = name
	return nil
}

// SetStyle replaces the stored style. The value persists even while the
// control is disabled; it is just not applied to multi-view render requests.
func (s *SessionState) SetStyle(v render.Style) error {
	if !v.Valid() {
		return fmt.Errorf("style %d: %w", int(v), ErrInvalidStyle)
	}
	s.style = v
	return nil
}

// SetSingleView toggles the view mode.
func (s *SessionState) SetSingleView(flag bool) {
	s.singleView = flag
}

func (s *SessionState) contains(name string) bool {
	if name == "" {
		return false
	}
	for _, n := range s.bondNames {
		if n == name {
			return true
		}
	}
	return false
}
