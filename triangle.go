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

// triEdge is a directed triangle edge, prepared for evaluating the edge
// function
//
//	E(x, y) = (x - xi)*Vy - (y - yi)*Vx
//
// The function is always evaluated relative to the endpoint which comes
// first in (y, x) order. This makes E for b→a the exact negation of E for
// a→b, so that triangles sharing an edge agree on every sample.
type triEdge struct {
	x0, y0 float64 // canonical start point
	vx, vy float64 // canonical edge vector
	flip   bool    // true if the canonical direction is reversed

	// owns is true if samples exactly on the edge belong to this triangle.
	owns bool
}

func newTriEdge(from, to vec.Vec2) triEdge {
	vx, vy := to.X-from.X, to.Y-from.Y

	// Top-left rule: with the interior on the positive side and y pointing
	// down, left edges run downwards and top edges run right to left.
	e := triEdge{owns: vy > 0 || (vy == 0 && vx < 0)}

	if to.Y < from.Y || (to.Y == from.Y && to.X < from.X) {
		from, to = to, from
		vx, vy = -vx, -vy
		e.flip = true
	}
	e.x0, e.y0 = from.X, from.Y
	e.vx, e.vy = vx, vy
	return e
}

func (e *triEdge) eval(x, y float64) float64 {
	v := (x-e.x0)*e.vy - (y-e.y0)*e.vx
	if e.flip {
		return -v
	}
	return v
}

func (e *triEdge) contains(x, y float64) bool {
	v := e.eval(x, y)
	return v > 0 || (v == 0 && e.owns)
}

// RasterizeTriangle fills the triangle with vertices p0, p1, p2, given in
// screen space. Both winding orders are accepted. A sample belongs to the
// triangle if its center lies inside; centers exactly on an edge follow
// the top-left rule, so that triangles sharing an edge cover every sample
// along it exactly once. Degenerate triangles draw nothing.
func (r *Renderer) RasterizeTriangle(p0, p1, p2 vec.Vec2, c Color) {
	s := float64(r.sampleRate)
	a, b, d := p0.Mul(s), p1.Mul(s), p2.Mul(s)
	for _, p := range [...]vec.Vec2{a, b, d} {
		if !isFinite(p.X) || !isFinite(p.Y) {
			Logger().Warn("triangle with non-finite coordinates ignored")
			return
		}
	}

	ab := newTriEdge(a, b)
	area := ab.eval(d.X, d.Y)
	if area == 0 {
		return
	}
	if area < 0 {
		b, d = d, b
	}
	edges := [3]triEdge{newTriEdge(a, b), newTriEdge(b, d), newTriEdge(d, a)}

	// candidate sample cells, clamped to the buffer
	xMin := max(floorInt(min(a.X, b.X, d.X)), 0)
	xMax := min(floorInt(math.Ceil(max(a.X, b.X, d.X))), r.samples.width)
	yMin := max(floorInt(min(a.Y, b.Y, d.Y)), 0)
	yMax := min(floorInt(math.Ceil(max(a.Y, b.Y, d.Y))), r.samples.height)

	for y := yMin; y < yMax; y++ {
		cy := float64(y) + 0.5
		for x := xMin; x < xMax; x++ {
			cx := float64(x) + 0.5
			if edges[0].contains(cx, cy) && edges[1].contains(cx, cy) && edges[2].contains(cx, cy) {
				r.samples.Blend(x, y, c)
			}
		}
	}
}
