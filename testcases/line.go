package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/softraster"
)

var lineCases = []TestCase{
	{
		Name:   "horizontal",
		Scene:  canvas(64, 64, line(5, 10, 59, 10, softraster.White)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "vertical",
		Scene:  canvas(64, 64, line(10, 5, 10, 59, softraster.White)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "diagonal",
		Scene:  canvas(64, 64, line(5, 5, 59, 59, softraster.White)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "shallow",
		Scene:  canvas(64, 64, line(5, 40, 59, 20, softraster.White)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "steep",
		Scene:  canvas(64, 64, line(20, 59, 40, 5, softraster.White)),
		Width:  64,
		Height: 64,
	},
	{
		Name:       "fan_aa",
		Scene:      canvas(64, 64, fan(32, 32, 28, 16)...),
		Width:      64,
		Height:     64,
		SampleRate: 4,
	},
	{
		Name: "zigzag",
		Scene: canvas(64, 64, softraster.Polyline{
			Points: []vec.Vec2{pt(5, 50), pt(15, 10), pt(25, 50), pt(35, 10), pt(45, 50), pt(55, 10)},
			Style:  stroke(softraster.White),
		}),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "zero_length",
		Scene:  canvas(16, 16, line(7.5, 7.5, 7.5, 7.5, softraster.White)),
		Width:  16,
		Height: 16,
	},
}

func line(x1, y1, x2, y2 float64, c softraster.Color) softraster.Line {
	return softraster.Line{From: pt(x1, y1), To: pt(x2, y2), Style: stroke(c)}
}

// fan builds n lines radiating from (cx, cy).
func fan(cx, cy, r float64, n int) []softraster.Element {
	var res []softraster.Element
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		res = append(res, softraster.Line{
			From:  vec.Vec2{X: cx, Y: cy},
			To:    vec.Vec2{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)},
			Style: stroke(softraster.White),
		})
	}
	return res
}
