package browser

import "errors"

var (
	// ErrEmptySelection signals a structure with no bonds: the selector is
	// cleared and no render is attempted. Non-fatal to the session.
	ErrEmptySelection = errors.New("empty selection")

	// ErrInvalidBond rejects a bond name outside the current bond list at the
	// store boundary; the triggering event is dropped.
	ErrInvalidBond = errors.New("invalid bond id")

	// ErrInvalidStyle rejects a style value outside the enum.
	ErrInvalidStyle = errors.New("invalid render style")
)
