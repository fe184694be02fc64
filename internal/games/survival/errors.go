package survival

import "errors"

var (
	// ErrInvalidDelta is returned by Tick for negative or non-finite deltas.
	ErrInvalidDelta = errors.New("survival: invalid tick delta")

	// ErrUnknownObstacle is returned for obstacle kinds outside the catalog.
	ErrUnknownObstacle = errors.New("survival: unknown obstacle type")

	// ErrGameOver is returned by operations that need a live session.
	ErrGameOver = errors.New("survival: game is over")
)
