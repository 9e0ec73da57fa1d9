package resfix

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Params bundles the parameters of a resolution fix. The zero value is not
// usable; DefaultParams returns the standard menu defaults.
type Params struct {
	// Multiple is the rounding factor; must be in Multiples.
	Multiple int

	// Fit selects the content-adaptation strategy.
	Fit FitMode

	// Method selects the resampling kernel for strategies that resample.
	Method Filter

	// Fill is the letterbox background. Nil means opaque black.
	Fill color.Color
}

// DefaultParams returns the default parameter set: round to a multiple of
// 16, smart_fill, lanczos.
func DefaultParams() Params {
	return Params{
		Multiple: DefaultMultiple,
		Fit:      DefaultFit,
		Method:   DefaultFilter,
	}
}

// Result is the outcome of Fix: the adapted image and its final dimensions,
// which always equal the computed target.
type Result struct {
	Image  *image.NRGBA
	Width  int
	Height int
}

// Fix computes the target size for img from p.Multiple and adapts the image
// to it with p.Fit and p.Method. The input is never modified.
//
// An image whose dimensions are already exact multiples passes through with
// unchanged dimensions; for FitSmartFill the pixels are unchanged as well.
func Fix(img image.Image, p Params) (*Result, error) {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: zero-area image", ErrInvalidImage)
	}

	tw, th, err := ComputeTarget(w, h, p.Multiple)
	if err != nil {
		return nil, err
	}

	fill := p.Fill
	if fill == nil {
		fill = color.NRGBA{0, 0, 0, 255}
	}
	out, err := AdaptFill(img, tw, th, p.Fit, p.Method, fill)
	if err != nil {
		return nil, err
	}

	return &Result{Image: out, Width: tw, Height: th}, nil
}

// ParseFillColor parses a "#rrggbb" hex string into an opaque fill color
// for letterbox bars.
// Returns ErrInvalidParameter for malformed input.
func ParseFillColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: fill color %q: %v", ErrInvalidParameter, hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
