package hydro

import "errors"

var (
	// ErrDraftOutOfRange reports a draft query outside the hydrostatic
	// table's domain.
	ErrDraftOutOfRange = errors.New("draft out of range")

	// ErrDisplacementOutOfRange reports a displacement query outside the
	// KN grid's domain. Since displacement is normally derived from the
	// hydrostatic table, hitting this usually means the two tables were
	// configured inconsistently.
	ErrDisplacementOutOfRange = errors.New("displacement out of range")

	// ErrUnknownAngle reports a heel angle that is not one of the KN
	// grid's tabulated angles.
	ErrUnknownAngle = errors.New("heel angle not in grid")
)
