package resfix

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Filter selects the interpolation kernel used wherever resampling occurs.
type Filter string

// The six supported kernels, ordered roughly by quality/cost. Lanczos has
// the widest support and highest quality; Nearest is blocky but exact.
const (
	FilterLanczos  Filter = "lanczos"
	FilterBicubic  Filter = "bicubic"
	FilterHamming  Filter = "hamming"
	FilterBilinear Filter = "bilinear"
	FilterBox      Filter = "box"
	FilterNearest  Filter = "nearest"
)

// DefaultFilter is used when a caller does not pick a kernel.
const DefaultFilter = FilterLanczos

// kernels maps each Filter to its imaging kernel. Adding a filter is a
// one-line table extension. The kernel support is scaled on downscale, so
// FilterBox degrades to area averaging rather than point sampling.
var kernels = map[Filter]imaging.ResampleFilter{
	FilterLanczos:  imaging.Lanczos,
	FilterBicubic:  imaging.CatmullRom,
	FilterHamming:  imaging.Hamming,
	FilterBilinear: imaging.Linear,
	FilterBox:      imaging.Box,
	FilterNearest:  imaging.NearestNeighbor,
}

// Filters returns the supported kernel names in menu order.
func Filters() []string {
	return []string{
		string(FilterLanczos), string(FilterBicubic), string(FilterHamming),
		string(FilterBilinear), string(FilterBox), string(FilterNearest),
	}
}

// ParseFilter converts a kernel name to a Filter.
// Returns ErrUnsupportedFilter for anything outside the six kernels.
func ParseFilter(s string) (Filter, error) {
	f := Filter(s)
	if _, ok := kernels[f]; !ok {
		return "", fmt.Errorf("%w: %q (supported: %v)", ErrUnsupportedFilter, s, Filters())
	}
	return f, nil
}

// Resample scales img to exactly width x height using the given kernel.
// Handles both upscaling and downscaling; deterministic for identical
// inputs. The result is a new NRGBA image, the input is not modified.
//
// Returns ErrInvalidParameter if width or height is not positive, and
// ErrUnsupportedFilter for an unknown kernel.
func Resample(img image.Image, width, height int, filter Filter) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: resample target %dx%d must be positive", ErrInvalidParameter, width, height)
	}
	kernel, ok := kernels[filter]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %v)", ErrUnsupportedFilter, filter, Filters())
	}
	return imaging.Resize(img, width, height, kernel), nil
}
