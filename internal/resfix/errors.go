package resfix

import "errors"

// Error kinds surfaced by the package. All are detected synchronously before
// or during a transform and are never retried or downgraded. Callers should
// match with errors.Is; the wrapped message identifies the offending value.
var (
	// ErrInvalidParameter reports a rounding multiple outside the allowed
	// set, a non-positive dimension, or a non-positive resample target.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnsupportedFitMode reports a fit mode outside the four variants.
	ErrUnsupportedFitMode = errors.New("unsupported fit mode")

	// ErrUnsupportedFilter reports a resample filter outside the six kernels.
	ErrUnsupportedFilter = errors.New("unsupported resample filter")

	// ErrInvalidImage reports an input image with zero width or height.
	ErrInvalidImage = errors.New("invalid image")
)
