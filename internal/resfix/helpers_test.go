package resfix

import (
	"image"
	"image/color"
)

// solidImage creates an in-memory test image of a single color
func solidImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// gradientImage creates an image where every pixel encodes its own
// coordinates, so copies and reflections can be verified exactly
func gradientImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x % 256),
				G: uint8(y % 256),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}
	return img
}

// samePixels reports whether two NRGBA images have identical pixel data
func samePixels(a, b *image.NRGBA) bool {
	if a.Rect.Dx() != b.Rect.Dx() || a.Rect.Dy() != b.Rect.Dy() {
		return false
	}
	w := a.Rect.Dx()
	for y := 0; y < a.Rect.Dy(); y++ {
		ar := a.Pix[y*a.Stride : y*a.Stride+w*4]
		br := b.Pix[y*b.Stride : y*b.Stride+w*4]
		for i := range ar {
			if ar[i] != br[i] {
				return false
			}
		}
	}
	return true
}
