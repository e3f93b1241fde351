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
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/softraster"
)

var ctmCases = []TestCase{
	// ========================================
	// Renderer CTM
	// ========================================
	{
		Name: "scale_2x",
		Scene: canvas(20, 20, softraster.Rect{
			Box:   box(0, 0, 20, 20),
			Style: fill(red),
		}),
		Width:  128,
		Height: 128,
		CTM:    matrix.Scale(2, 2).Translate(24, 24),
	},
	{
		Name: "scale_half",
		Scene: canvas(80, 80, softraster.Rect{
			Box:   box(0, 0, 80, 80),
			Style: fill(red),
		}),
		Width:  64,
		Height: 64,
		CTM:    matrix.Scale(0.5, 0.5).Translate(12, 12),
	},
	{
		Name: "rotate_30",
		Scene: canvas(32, 32, softraster.Rect{
			Box:   box(-16, -16, 16, 16),
			Style: softraster.Style{Fill: green, Stroke: softraster.White},
		}),
		Width:      64,
		Height:     64,
		SampleRate: 4,
		CTM:        matrix.RotateDeg(30).Translate(32, 32),
	},

	// ========================================
	// Group transforms
	// ========================================
	{
		Name: "group_translate",
		Scene: canvas(64, 64, softraster.Group{
			Transform: matrix.Identity.Translate(20, 10),
			Elements: []softraster.Element{
				softraster.Rect{Box: box(0, 0, 20, 20), Style: fill(blue)},
			},
		}),
		Width:  64,
		Height: 64,
	},
	{
		Name: "group_nested",
		Scene: canvas(64, 64, softraster.Group{
			Transform: matrix.Identity.Translate(32, 32),
			Elements: []softraster.Element{
				softraster.Group{
					Transform: matrix.RotateDeg(45),
					Elements: []softraster.Element{
						softraster.Rect{Box: box(-10, -10, 10, 10), Style: fill(red)},
						line(-20, 0, 20, 0, softraster.White),
					},
				},
				ellipse(0, 0, 3, 3, fill(green)),
			},
		}),
		Width:      64,
		Height:     64,
		SampleRate: 2,
	},
	{
		Name: "group_scaled_ellipse",
		Scene: canvas(64, 64, softraster.Group{
			Transform: matrix.Scale(4, 2).Translate(32, 32),
			Elements: []softraster.Element{
				ellipse(0, 0, 6, 6, softraster.Style{Fill: blue, Stroke: softraster.White}),
			},
		}),
		Width:      64,
		Height:     64,
		SampleRate: 4,
	},
}
