package testcases

import (
	"image"
	"image/color"

	"seehuhn.de/go/softraster"
)

var imageCases = []TestCase{
	{
		Name: "checker_scaled",
		Scene: canvas(64, 64, softraster.Image{
			Box:    box(8, 8, 56, 56),
			Source: checkerboard(4, 4),
		}),
		Width:  64,
		Height: 64,
	},
	{
		Name: "checker_over_fill",
		Scene: canvas(64, 64,
			softraster.Rect{Box: box(0, 0, 64, 64), Style: fill(blue)},
			softraster.Image{Box: box(16, 16, 48, 48), Source: checkerboard(8, 8)},
		),
		Width:      64,
		Height:     64,
		SampleRate: 2,
	},
}

// checkerboard returns a w×h image of alternating opaque white and
// half-transparent red pixels.
func checkerboard(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			if (x+y)%2 == 0 {
				img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 128})
			}
		}
	}
	return img
}
