// Package tensor bridges the resolution-fixing core and the float tensor
// representation used by model inference pipelines.
//
// A tensor image is a height x width x channels array of float32 samples in
// [0, 1], row-major with channels innermost (HWC). Conversion to and from
// image.NRGBA uses v*255 with round-half-up and clamping, so a roundtrip
// through the byte domain is lossless for byte-aligned values.
package tensor

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"

	"github.com/pixelfit/resfix-mcp/internal/resfix"
)

// Image is a float32 HWC tensor with values in [0, 1].
// Channels is 3 (RGB) or 4 (RGBA).
type Image struct {
	Height   int
	Width    int
	Channels int
	Data     []float32
}

// New allocates a zero-valued tensor image.
// Returns an error for non-positive dimensions or a channel count other
// than 3 or 4.
func New(height, width, channels int) (*Image, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: tensor dimensions %dx%d must be positive", resfix.ErrInvalidParameter, width, height)
	}
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("%w: channel count %d must be 3 or 4", resfix.ErrInvalidParameter, channels)
	}
	return &Image{
		Height:   height,
		Width:    width,
		Channels: channels,
		Data:     make([]float32, height*width*channels),
	}, nil
}

// At returns the sample at row y, column x, channel c. No bounds checking.
func (t *Image) At(y, x, c int) float32 {
	return t.Data[(y*t.Width+x)*t.Channels+c]
}

// Set stores the sample at row y, column x, channel c. No bounds checking.
func (t *Image) Set(y, x, c int, v float32) {
	t.Data[(y*t.Width+x)*t.Channels+c] = v
}

// FromImage converts any image to a tensor with the given channel count.
// With 3 channels the alpha channel is dropped.
func FromImage(img image.Image, channels int) (*Image, error) {
	src := imaging.Clone(img)
	w := src.Rect.Dx()
	h := src.Rect.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: zero-area image", resfix.ErrInvalidImage)
	}

	t, err := New(h, w, channels)
	if err != nil {
		return nil, err
	}

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			srow := src.Pix[y*src.Stride:]
			for x := 0; x < w; x++ {
				for c := 0; c < channels; c++ {
					t.Set(y, x, c, float32(srow[x*4+c])/255)
				}
			}
		}
	})

	return t, nil
}

// ToNRGBA converts the tensor back to an NRGBA image. Values are clamped to
// [0, 1] before quantization; 3-channel tensors become fully opaque.
// Returns an error if the data slice does not match the declared shape.
func (t *Image) ToNRGBA() (*image.NRGBA, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, t.Width, t.Height))
	parallel.Line(t.Height, func(start, end int) {
		for y := start; y < end; y++ {
			drow := img.Pix[y*img.Stride:]
			for x := 0; x < t.Width; x++ {
				for c := 0; c < t.Channels; c++ {
					drow[x*4+c] = quantize(t.At(y, x, c))
				}
				if t.Channels == 3 {
					drow[x*4+3] = 255
				}
			}
		}
	})

	return img, nil
}

// Fix applies a resolution fix to the tensor: decode to NRGBA, round the
// dimensions up per p, adapt the content, and re-encode with the same
// channel count. Batch callers apply it per frame.
func Fix(t *Image, p resfix.Params) (*Image, int, int, error) {
	img, err := t.ToNRGBA()
	if err != nil {
		return nil, 0, 0, err
	}

	res, err := resfix.Fix(img, p)
	if err != nil {
		return nil, 0, 0, err
	}

	out, err := FromImage(res.Image, t.Channels)
	if err != nil {
		return nil, 0, 0, err
	}
	return out, res.Width, res.Height, nil
}

func (t *Image) validate() error {
	if t.Height <= 0 || t.Width <= 0 {
		return fmt.Errorf("%w: tensor dimensions %dx%d must be positive", resfix.ErrInvalidParameter, t.Width, t.Height)
	}
	if t.Channels != 3 && t.Channels != 4 {
		return fmt.Errorf("%w: channel count %d must be 3 or 4", resfix.ErrInvalidParameter, t.Channels)
	}
	if want := t.Height * t.Width * t.Channels; len(t.Data) != want {
		return fmt.Errorf("%w: data length %d does not match shape %dx%dx%d", resfix.ErrInvalidParameter, len(t.Data), t.Height, t.Width, t.Channels)
	}
	return nil
}

func quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(float64(v) * 255))
}
