package world

import "errors"

var (
	// ErrDirectionUnknown means the direction label was never registered by
	// any room in this world. Surfaced to the player as a typo hint.
	ErrDirectionUnknown = errors.New("direction not registered")

	// ErrNoDoor means the direction is registered somewhere in the world,
	// but the current room has no door in that direction.
	ErrNoDoor = errors.New("no doorway in that direction")

	// ErrFrozen is returned by world-building methods after Freeze.
	ErrFrozen = errors.New("world is frozen")
)
