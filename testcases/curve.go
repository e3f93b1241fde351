// seehuhn.de/go/softraster - a supersampling software rasterizer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import (
	"seehuhn.de/go/softraster"
)

var curveCases = []TestCase{
	{
		Name:   "circle",
		Scene:  canvas(64, 64, ellipse(32, 32, 25, 25, fill(red))),
		Width:  64,
		Height: 64,
	},
	{
		Name:       "circle_aa",
		Scene:      canvas(64, 64, ellipse(32, 32, 25, 25, fill(red))),
		Width:      64,
		Height:     64,
		SampleRate: 4,
	},
	{
		Name:       "ellipse_wide",
		Scene:      canvas(64, 64, ellipse(32, 32, 28, 12, fill(blue))),
		Width:      64,
		Height:     64,
		SampleRate: 2,
	},
	{
		Name:   "ellipse_outline",
		Scene:  canvas(64, 64, ellipse(32, 32, 12, 28, stroke(softraster.White))),
		Width:  64,
		Height: 64,
	},
	{
		Name: "ellipse_filled_outlined",
		Scene: canvas(64, 64, ellipse(32, 32, 20, 20, softraster.Style{
			Fill:   rgba(1, 1, 0, 0.75),
			Stroke: softraster.Black,
		})),
		Width:      64,
		Height:     64,
		SampleRate: 4,
	},
	{
		Name:   "tiny_circle",
		Scene:  canvas(16, 16, ellipse(8, 8, 1.5, 1.5, fill(green))),
		Width:  16,
		Height: 16,
	},
}

func ellipse(cx, cy, rx, ry float64, style softraster.Style) softraster.Ellipse {
	return softraster.Ellipse{
		Center: pt(cx, cy),
		Radius: pt(rx, ry),
		Style:  style,
	}
}
