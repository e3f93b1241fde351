package testcases

import (
	"seehuhn.de/go/softraster"
)

// largeCases contains scenes which are big, or which reach far outside
// the render target.
var largeCases = []TestCase{
	{
		Name: "large_rectangle",
		Scene: canvas(512, 512, softraster.Rect{
			Box:   box(50, 50, 462, 462),
			Style: fill(red),
		}),
		Width:  512,
		Height: 512,
	},
	{
		Name:       "large_grid",
		Scene:      canvas(512, 512, rectangleGrid(8, 8, 512, 512, 4)...),
		Width:      512,
		Height:     512,
		SampleRate: 2,
	},
	{
		Name: "large_clipped",
		Scene: canvas(512, 512, softraster.Rect{
			Box:   box(-100, 100, 612, 400),
			Style: softraster.Style{Fill: blue, Stroke: softraster.White},
		}),
		Width:  512,
		Height: 512,
	},
	{
		Name: "far_outside",
		Scene: canvas(64, 64,
			line(-1e7, 32, 1e7, 33, softraster.White),
			triangle(-1e6, -1e6, 1e6, -1e6, 0, 1e6, rgba(0, 0, 1, 0.25)),
		),
		Width:  64,
		Height: 64,
	},
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) []softraster.Element {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	var res []softraster.Element
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap

			c := rgba(float64(col)/float64(cols-1), float64(row)/float64(rows-1), 0.5, 1)
			res = append(res, softraster.Rect{Box: box(x1, y1, x2, y2), Style: fill(c)})
		}
	}
	return res
}
