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

// Package testcases contains example scenes for the rasterizer tests and
// tools.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/softraster"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name       string            // lowercase a-z, 0-9 and _ only
	Scene      *softraster.Scene // the scene to render
	Width      int               // render target width in pixels
	Height     int               // render target height in pixels
	SampleRate int               // supersampling rate (zero means 1)
	CTM        matrix.Matrix     // scene to screen transform (zero-value means identity)
}

// Rate returns the sample rate of the test case.
func (tc *TestCase) Rate() int {
	return max(tc.SampleRate, 1)
}

// Render draws the test case into a new RGBA buffer of size
// 4*tc.Width*tc.Height.
func (tc *TestCase) Render() ([]byte, error) {
	buf := make([]byte, 4*tc.Width*tc.Height)
	r := softraster.NewRenderer()
	if err := r.SetRenderTarget(buf, tc.Width, tc.Height); err != nil {
		return nil, err
	}
	if err := r.SetSampleRate(tc.Rate()); err != nil {
		return nil, err
	}
	if tc.CTM != (matrix.Matrix{}) {
		r.CTM = tc.CTM
	}
	r.Draw(tc.Scene)
	return buf, nil
}

// canvas returns a scene of the given size.
func canvas(w, h float64, elems ...softraster.Element) *softraster.Scene {
	return &softraster.Scene{Width: w, Height: h, Elements: elems}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// box is a helper to create a rectangle from its corners.
func box(x1, y1, x2, y2 float64) rect.Rect {
	return rect.Rect{LLx: x1, LLy: y1, URx: x2, URy: y2}
}

func rgba(r, g, b, a float64) softraster.Color {
	return softraster.Color{R: r, G: g, B: b, A: a}
}

func fill(c softraster.Color) softraster.Style {
	return softraster.Style{Fill: c}
}

func stroke(c softraster.Color) softraster.Style {
	return softraster.Style{Stroke: c}
}

var (
	red   = rgba(1, 0, 0, 1)
	green = rgba(0, 1, 0, 1)
	blue  = rgba(0, 0, 1, 1)
)
