package resfix

import "fmt"

// Multiples is the allowed set of rounding factors, matching the divisibility
// requirements of common model architectures (VAE strides, patch sizes,
// macroblock sizes).
var Multiples = []int{2, 4, 8, 14, 16, 28, 32, 64, 128, 256, 512}

// DefaultMultiple is the rounding factor used when a caller does not pick one.
const DefaultMultiple = 16

// ValidMultiple reports whether m is in the allowed set of rounding factors.
func ValidMultiple(m int) bool {
	for _, v := range Multiples {
		if v == m {
			return true
		}
	}
	return false
}

// ComputeTarget returns the smallest (targetWidth, targetHeight) such that
// both components are >= the input and exact multiples of multiple. Each
// axis is rounded independently; a dimension that is already an exact
// multiple is returned unchanged.
//
// Returns ErrInvalidParameter if width or height is not positive or multiple
// is not in the allowed set.
func ComputeTarget(width, height, multiple int) (int, int, error) {
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidParameter, width, height)
	}
	if !ValidMultiple(multiple) {
		return 0, 0, fmt.Errorf("%w: multiple %d not in allowed set %v", ErrInvalidParameter, multiple, Multiples)
	}
	return roundUp(width, multiple), roundUp(height, multiple), nil
}

// roundUp rounds d up to the nearest multiple of m. Never rounds down.
func roundUp(d, m int) int {
	return (d + m - 1) / m * m
}
