package resfix

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"
)

// MirrorExtend grows img by padRight columns and padBottom rows, filling the
// new region by reflecting existing content across the right and bottom
// edges. The original pixels stay anchored at the top-left and are copied
// untouched; no resampling or interpolation happens, so the operation is
// exact for any pad size.
//
// Reflection does not duplicate the border pixel: a row [A B C] continues as
// [A B C B A B ...]. The bottom-right corner region reflects across both
// axes.
//
// Returns ErrInvalidImage for a zero-area input and ErrInvalidParameter for
// negative pad amounts.
func MirrorExtend(img image.Image, padRight, padBottom int) (*image.NRGBA, error) {
	if padRight < 0 || padBottom < 0 {
		return nil, fmt.Errorf("%w: pad amounts %d,%d must be non-negative", ErrInvalidParameter, padRight, padBottom)
	}

	// Clone normalizes bounds to a zero origin and gives direct Pix access.
	src := imaging.Clone(img)
	w := src.Rect.Dx()
	h := src.Rect.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: zero-area image", ErrInvalidImage)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w+padRight, h+padBottom))

	parallel.Line(h+padBottom, func(start, end int) {
		for y := start; y < end; y++ {
			srow := src.Pix[reflectIndex(y, h)*src.Stride:]
			drow := dst.Pix[y*dst.Stride:]
			copy(drow[:w*4], srow[:w*4])
			for x := w; x < w+padRight; x++ {
				sx := reflectIndex(x, w) * 4
				copy(drow[x*4:x*4+4], srow[sx:sx+4])
			}
		}
	})

	return dst, nil
}

// reflectIndex maps i into [0, n) by reflecting without repeating the edge
// sample: for n=3 the sequence of mapped indices is 0,1,2,1,0,1,2,...
// (period 2n-2). Indices inside [0, n) map to themselves.
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * (n - 1)
	m := i % period
	if m >= n {
		m = period - m
	}
	return m
}
