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

var precisionCases = []TestCase{
	{
		Name:       "subpixel_offset_00",
		Scene:      canvas(64, 64, offsetRectangle(20, 20, 24, 24, 0.0)),
		Width:      64,
		Height:     64,
		SampleRate: 4,
	},
	{
		Name:       "subpixel_offset_25",
		Scene:      canvas(64, 64, offsetRectangle(20, 20, 24, 24, 0.25)),
		Width:      64,
		Height:     64,
		SampleRate: 4,
	},
	{
		Name:       "subpixel_offset_50",
		Scene:      canvas(64, 64, offsetRectangle(20, 20, 24, 24, 0.5)),
		Width:      64,
		Height:     64,
		SampleRate: 4,
	},
	{
		Name:       "subpixel_offset_75",
		Scene:      canvas(64, 64, offsetRectangle(20, 20, 24, 24, 0.75)),
		Width:      64,
		Height:     64,
		SampleRate: 4,
	},
	{
		Name:       "thin_sliver",
		Scene:      canvas(64, 64, triangle(4, 30, 60, 31, 4, 31.2, softraster.White)),
		Width:      64,
		Height:     64,
		SampleRate: 8,
	},
}

// offsetRectangle builds a filled rectangle shifted by a fraction of a pixel.
func offsetRectangle(x, y, w, h, offset float64) softraster.Rect {
	return softraster.Rect{
		Box:   box(x+offset, y+offset, x+offset+w, y+offset+h),
		Style: fill(softraster.White),
	}
}
