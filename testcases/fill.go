package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/softraster"
)

var fillCases = []TestCase{
	{
		Name:   "triangle",
		Scene:  canvas(64, 64, triangle(10, 50, 32, 10, 54, 50, red)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "triangle_reversed",
		Scene:  canvas(64, 64, triangle(54, 50, 32, 10, 10, 50, red)),
		Width:  64,
		Height: 64,
	},
	{
		Name:       "triangle_aa",
		Scene:      canvas(64, 64, triangle(10, 50, 32, 10, 54, 50, red)),
		Width:      64,
		Height:     64,
		SampleRate: 4,
	},
	{
		Name: "rectangle",
		Scene: canvas(64, 64, softraster.Rect{
			Box:   box(10, 10, 54, 54),
			Style: softraster.Style{Fill: green, Stroke: softraster.Black},
		}),
		Width:  64,
		Height: 64,
	},
	{
		Name:       "star",
		Scene:      canvas(64, 64, star(32, 32, 25, 10, blue)),
		Width:      64,
		Height:     64,
		SampleRate: 2,
	},
	{
		Name: "translucent_overlap",
		Scene: canvas(64, 64,
			softraster.Rect{Box: box(8, 8, 40, 40), Style: fill(rgba(1, 0, 0, 0.5))},
			softraster.Rect{Box: box(24, 24, 56, 56), Style: fill(rgba(0, 0, 1, 0.5))},
		),
		Width:  64,
		Height: 64,
	},
	{
		Name: "points",
		Scene: canvas(16, 16,
			softraster.Point{Position: pt(1.5, 1.5), Style: fill(red)},
			softraster.Point{Position: pt(8, 8), Style: fill(green)},
			softraster.Point{Position: pt(14.9, 3.2), Style: fill(blue)},
		),
		Width:      16,
		Height:     16,
		SampleRate: 3,
	},
}

// triangle builds a filled triangle.
func triangle(x1, y1, x2, y2, x3, y3 float64, c softraster.Color) softraster.Polygon {
	return softraster.Polygon{
		Points: []vec.Vec2{pt(x1, y1), pt(x2, y2), pt(x3, y3)},
		Style:  fill(c),
	}
}

// star builds a five-pointed star as a simple, concave polygon.
func star(cx, cy, outer, inner float64, c softraster.Color) softraster.Polygon {
	pts := make([]vec.Vec2, 10)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := float64(i)*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return softraster.Polygon{
		Points: pts,
		Style:  softraster.Style{Fill: c, Stroke: softraster.Black},
	}
}
