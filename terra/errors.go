package terra

import "errors"

// Sentinel errors for solver configuration.
var (
	// ErrBadDimensions indicates non-positive grid dimensions.
	ErrBadDimensions = errors.New("terra: rows and cols must be positive")
	// ErrUnknownFamily indicates a terrain family outside the known set.
	ErrUnknownFamily = errors.New("terra: unrecognized terrain family")
)
