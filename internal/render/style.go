package render

import (
	"fmt"
	"strings"
)

// Style selects how a disulfide is depicted in single view.
type Style int

const (
	StyleSplitBonds Style = iota
	StyleCPK
	StyleBallAndStick
)

// Styles returns all styles in display order.
func Styles() []Style {
	return []Style{StyleSplitBonds, StyleCPK, StyleBallAndStick}
}

// Code returns the short engine code for a style. Total over all values;
// unknown values fall back to split bonds rather than panicking.
func (s Style) Code() string {
	switch s {
	case StyleCPK:
		return "cpk"
	case StyleBallAndStick:
		return "bs"
	default:
		return "sb"
	}
}

func (s Style) String() string {
	switch s {
	case StyleCPK:
		return "CPK"
	case StyleBallAndStick:
		return "Ball and Stick"
	default:
		return "Split Bonds"
	}
}

// Valid reports whether s is a defined style value.
func (s Style) Valid() bool {
	return s >= StyleSplitBonds && s <= StyleBallAndStick
}

// Next cycles to the following style, wrapping at the end.
func (s Style) Next() Style {
	if !s.Valid() {
		return StyleSplitBonds
	}
	return (s + 1) % 3
}

// ParseStyle maps a label or engine code to a style.
func ParseStyle(v string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "sb", "split bonds", "splitbonds", "split_bonds":
		return StyleSplitBonds, nil
	case "cpk":
		return StyleCPK, nil
	case "bs", "ball and stick", "ballandstick", "ball_and_stick":
		return StyleBallAndStick, nil
	}
	return StyleSplitBonds, fmt.Errorf("unknown render style %q", v)
}
