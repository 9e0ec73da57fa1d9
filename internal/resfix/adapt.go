package resfix

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// FitMode selects the content-adaptation strategy used to reach the target
// size.
type FitMode string

// The four fit strategies. Names follow the parameter menu of the hosting
// tools rather than the algorithm names.
const (
	// FitSmartFill extends the right/bottom edges by mirror reflection
	// without resampling (MirrorExtend).
	FitSmartFill FitMode = "smart_fill"

	// FitLetterbox scales preserving aspect ratio and centers the result on
	// a filled canvas (pad).
	FitLetterbox FitMode = "letterbox"

	// FitCrop scales to cover the target and crops a centered window.
	FitCrop FitMode = "crop"

	// FitFill stretches the image directly to the target size.
	FitFill FitMode = "fill"
)

// DefaultFit is used when a caller does not pick a strategy.
const DefaultFit = FitSmartFill

// FitModes returns the supported strategy names in menu order.
func FitModes() []string {
	return []string{
		string(FitSmartFill), string(FitLetterbox), string(FitCrop), string(FitFill),
	}
}

// ParseFitMode converts a strategy name to a FitMode.
// Returns ErrUnsupportedFitMode for anything outside the four variants.
func ParseFitMode(s string) (FitMode, error) {
	switch m := FitMode(s); m {
	case FitSmartFill, FitLetterbox, FitCrop, FitFill:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: %v)", ErrUnsupportedFitMode, s, FitModes())
	}
}

// Adapt produces an image of exactly targetWidth x targetHeight from img
// using the given fit strategy. Letterbox bars are opaque black; use
// AdaptFill to choose another color. The filter is only consulted by
// strategies that resample; FitSmartFill ignores it.
//
// Returns ErrInvalidImage for a zero-area input, ErrInvalidParameter for a
// non-positive target, and ErrUnsupportedFitMode for an unknown strategy.
func Adapt(img image.Image, targetWidth, targetHeight int, mode FitMode, filter Filter) (*image.NRGBA, error) {
	return AdaptFill(img, targetWidth, targetHeight, mode, filter, color.NRGBA{0, 0, 0, 255})
}

// AdaptFill is Adapt with an explicit letterbox fill color.
func AdaptFill(img image.Image, targetWidth, targetHeight int, mode FitMode, filter Filter, fill color.Color) (*image.NRGBA, error) {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: zero-area image", ErrInvalidImage)
	}
	if targetWidth <= 0 || targetHeight <= 0 {
		return nil, fmt.Errorf("%w: target %dx%d must be positive", ErrInvalidParameter, targetWidth, targetHeight)
	}

	switch mode {
	case FitFill:
		return Resample(img, targetWidth, targetHeight, filter)
	case FitLetterbox:
		return letterbox(img, targetWidth, targetHeight, filter, fill)
	case FitCrop:
		return centerCrop(img, targetWidth, targetHeight, filter)
	case FitSmartFill:
		return smartFill(img, targetWidth, targetHeight)
	default:
		return nil, fmt.Errorf("%w: %q (supported: %v)", ErrUnsupportedFitMode, mode, FitModes())
	}
}

// letterbox scales img by the smaller axis ratio, preserving aspect ratio,
// and centers it on a fill-colored canvas. Offsets are left/top-biased on
// odd remainders.
func letterbox(img image.Image, tw, th int, filter Filter, fill color.Color) (*image.NRGBA, error) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	scale := math.Min(float64(tw)/float64(w), float64(th)/float64(h))
	nw, nh := scaleDims(w, h, scale)
	// Float rounding must never overshoot the canvas.
	nw = min(nw, tw)
	nh = min(nh, th)

	scaled, err := Resample(img, nw, nh, filter)
	if err != nil {
		return nil, err
	}
	canvas := imaging.New(tw, th, fill)
	return imaging.Paste(canvas, scaled, image.Pt((tw-nw)/2, (th-nh)/2)), nil
}

// centerCrop scales img by the larger axis ratio so it covers the target,
// then crops a centered window of exactly tw x th. Discarded margins are
// equal on both sides, left/top-biased on odd remainders.
func centerCrop(img image.Image, tw, th int, filter Filter) (*image.NRGBA, error) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	scale := math.Max(float64(tw)/float64(w), float64(th)/float64(h))
	nw, nh := scaleDims(w, h, scale)
	// Float rounding must never leave the window uncovered.
	nw = max(nw, tw)
	nh = max(nh, th)

	scaled, err := Resample(img, nw, nh, filter)
	if err != nil {
		return nil, err
	}
	left := (nw - tw) / 2
	top := (nh - th) / 2
	return imaging.Crop(scaled, image.Rect(left, top, left+tw, top+th)), nil
}

// smartFill extends the image to the target by mirror reflection, anchored
// top-left. Targets are rounded up from the source size, so the pad amounts
// are never negative when tw/th come from ComputeTarget.
func smartFill(img image.Image, tw, th int) (*image.NRGBA, error) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	if tw < w || th < h {
		return nil, fmt.Errorf("%w: smart_fill target %dx%d smaller than image %dx%d", ErrInvalidParameter, tw, th, w, h)
	}
	return MirrorExtend(img, tw-w, th-h)
}

// scaleDims applies a scale factor to both axes, rounding to the nearest
// pixel with a floor of 1.
func scaleDims(w, h int, scale float64) (int, int) {
	nw := int(math.Round(float64(w) * scale))
	nh := int(math.Round(float64(h) * scale))
	return max(nw, 1), max(nh, 1)
}
