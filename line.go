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
	"math"

	"seehuhn.de/go/geom/vec"
)

// RasterizeLine draws a one-sample wide line from p0 to p1.
// Coordinates are in screen space.
//
// The walk covers the half-open interval from the endpoint with the smaller
// major coordinate up to, but excluding, the other endpoint. Consequently
// p0→p1 and p1→p0 produce the same samples, and polyline vertices are not
// blended twice. A zero-length line draws the single sample containing p0.
func (r *Renderer) RasterizeLine(p0, p1 vec.Vec2, c Color) {
	s := float64(r.sampleRate)
	x0, y0 := p0.X*s, p0.Y*s
	x1, y1 := p1.X*s, p1.Y*s
	if !isFinite(x0) || !isFinite(y0) || !isFinite(x1) || !isFinite(y1) {
		Logger().Warn("line with non-finite coordinates ignored")
		return
	}

	if x0 == x1 && y0 == y1 {
		r.samples.Blend(floorInt(x0), floorInt(y0), c)
		return
	}

	// In steep lines x and y swap roles, so that the walk always advances
	// by one sample along the major axis. Vertical lines are steep, which
	// keeps the slope computation below free of division by zero.
	steep := x0 == x1 || math.Abs(y1-y0) > math.Abs(x1-x0)
	limit := r.samples.width
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
		limit = r.samples.height
	}
	if x1 < x0 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	m := (y1 - y0) / (x1 - x0)

	x, y := x0, y0
	eps := 0.0
	if x < 0 {
		// skip the part of the walk which lies before the buffer
		k := math.Ceil(-x)
		x += k
		if m >= 0 {
			n := math.Floor(m*k + 0.5)
			y += n
			eps = m*k - n
		} else {
			n := math.Floor(0.5 - m*k)
			y -= n
			eps = m*k + n
		}
	}
	end := min(x1, float64(limit))

	for ; x < end; x++ {
		u, v := floorInt(x), floorInt(y)
		if steep {
			r.samples.Blend(v, u, c)
		} else {
			r.samples.Blend(u, v, c)
		}

		// eps is the offset of the ideal line from y; keep it within
		// half a sample.
		if m >= 0 {
			if 2*(eps+m) < 1 {
				eps += m
			} else {
				y++
				eps += m - 1
			}
		} else {
			if 2*(eps+m) > -1 {
				eps += m
			} else {
				y--
				eps += m + 1
			}
		}
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// floorInt converts x to the index of the sample cell containing it.
// Values far outside the int32 range are clamped, which is enough to keep
// them outside every buffer.
func floorInt(x float64) int {
	const big = 1 << 30
	f := math.Floor(x)
	if f < -big {
		return -big
	}
	if f > big {
		return big
	}
	return int(f)
}
