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
	"image"
	"math"
	"slices"

	xdraw "golang.org/x/image/draw"
	"seehuhn.de/go/geom/vec"
)

// RasterizeImage draws src stretched over the axis-aligned screen-space
// rectangle with opposite corners p0 and p1. The rectangle is snapped to
// the sample grid and src is sampled with nearest-neighbour lookup; each
// resulting sample is composited over the existing contents.
func (r *Renderer) RasterizeImage(p0, p1 vec.Vec2, src image.Image) {
	if src == nil || src.Bounds().Empty() {
		return
	}
	s := float64(r.sampleRate)
	dr := image.Rect(roundInt(p0.X*s), roundInt(p0.Y*s), roundInt(p1.X*s), roundInt(p1.Y*s))
	clip := dr.Intersect(image.Rect(0, 0, r.samples.width, r.samples.height))
	if clip.Empty() {
		return
	}

	size := 4 * clip.Dx() * clip.Dy()
	r.scratch = slices.Grow(r.scratch[:0], size)[:size]
	dst := &image.NRGBA{
		Pix:    r.scratch,
		Stride: 4 * clip.Dx(),
		Rect:   clip,
	}
	xdraw.NearestNeighbor.Scale(dst, dr, src, src.Bounds(), xdraw.Src, nil)

	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			i := dst.PixOffset(x, y)
			px := dst.Pix[i : i+4 : i+4]
			r.samples.Blend(x, y, colorFromBytes(px[0], px[1], px[2], px[3]))
		}
	}
}

// roundInt rounds x to the nearest integer. NaN and values far outside the
// int32 range are clamped.
func roundInt(x float64) int {
	if math.IsNaN(x) {
		return 0
	}
	return floorInt(x + 0.5)
}
