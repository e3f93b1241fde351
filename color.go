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

package softraster

import (
	"image/color"
	"math"
)

// Color is a straight (non-premultiplied) RGBA color.
// Each channel is in the range [0, 1].
type Color struct {
	R, G, B, A float64
}

// Frequently used colors.
var (
	Transparent = Color{}
	Black       = Color{A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
)

// Over composites s over d using the Porter-Duff "over" operator on
// straight colors:
//
//	out.rgb = (1 - s.a) * d.rgb + s.a * s.rgb
//	out.a   = 1 - (1 - d.a) * (1 - s.a)
//
// An opaque source replaces d; a fully transparent source leaves d unchanged.
func Over(d, s Color) Color {
	switch s.A {
	case 1:
		return s
	case 0:
		return d
	}
	t := 1 - s.A
	return Color{
		R: t*d.R + s.A*s.R,
		G: t*d.G + s.A*s.G,
		B: t*d.B + s.A*s.B,
		A: 1 - (1-d.A)*t,
	}
}

// ColorFromImage converts a color from the image/color package into a
// straight-alpha Color.
func ColorFromImage(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return colorFromBytes(n.R, n.G, n.B, n.A)
}

// NRGBA returns the quantized form of c.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: quantize(c.R),
		G: quantize(c.G),
		B: quantize(c.B),
		A: quantize(c.A),
	}
}

// colorFromBytes decodes four stored channel bytes.
func colorFromBytes(r, g, b, a byte) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// quantize maps a channel value in [0, 1] to a byte, rounding to nearest.
// Values outside the range are clamped; NaN maps to 0.
func quantize(v float64) byte {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(math.Round(v * 255))
}
