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

import "seehuhn.de/go/geom/vec"

// Triangulator decomposes polygons into triangles.
type Triangulator interface {
	// Triangulate appends the triangles covering the interior of poly to
	// tris, three vertices per triangle, and returns the extended slice.
	Triangulate(tris, poly []vec.Vec2) []vec.Vec2
}

// EarClipper triangulates simple polygons of either orientation by ear
// clipping. Self-intersecting input does not cause a failure, but the
// result then only approximates the polygon.
type EarClipper struct{}

// Triangulate implements the [Triangulator] interface.
func (EarClipper) Triangulate(tris, poly []vec.Vec2) []vec.Vec2 {
	// remove repeated vertices, including a repeated start point
	idx := make([]int, 0, len(poly))
	for i, p := range poly {
		if len(idx) > 0 && poly[idx[len(idx)-1]] == p {
			continue
		}
		idx = append(idx, i)
	}
	for len(idx) > 1 && poly[idx[0]] == poly[idx[len(idx)-1]] {
		idx = idx[:len(idx)-1]
	}
	if len(idx) < 3 {
		return tris
	}

	var area2 float64
	for i, k := range idx {
		a := poly[k]
		b := poly[idx[(i+1)%len(idx)]]
		area2 += a.X*b.Y - b.X*a.Y
	}
	if area2 == 0 {
		return tris
	}
	orient := 1.0
	if area2 < 0 {
		orient = -1
	}

	for len(idx) > 3 {
		n := len(idx)
		clipped := false
		for i := range n {
			a := poly[idx[(i+n-1)%n]]
			b := poly[idx[i]]
			c := poly[idx[(i+1)%n]]
			if orient*cross(a, b, c) <= 0 {
				continue // reflex or collinear
			}
			if anyInside(poly, idx, a, b, c) {
				continue
			}
			tris = append(tris, a, b, c)
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}
		if clipped {
			continue
		}

		// No ear was found. Drop a collinear vertex if there is one,
		// otherwise the polygon is not simple: fan out what is left.
		if i := collinearVertex(poly, idx); i >= 0 {
			idx = append(idx[:i], idx[i+1:]...)
			continue
		}
		for i := 1; i+1 < len(idx); i++ {
			tris = append(tris, poly[idx[0]], poly[idx[i]], poly[idx[i+1]])
		}
		return tris
	}

	if cross(poly[idx[0]], poly[idx[1]], poly[idx[2]]) != 0 {
		tris = append(tris, poly[idx[0]], poly[idx[1]], poly[idx[2]])
	}
	return tris
}

// cross returns the z component of (b-a)×(c-b).
func cross(a, b, c vec.Vec2) float64 {
	return (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
}

// anyInside reports whether a remaining polygon vertex, other than a, b
// and c themselves, lies inside or on the triangle abc.
func anyInside(poly []vec.Vec2, idx []int, a, b, c vec.Vec2) bool {
	for _, k := range idx {
		p := poly[k]
		if p == a || p == b || p == c {
			continue
		}
		d1 := cross(a, b, p)
		d2 := cross(b, c, p)
		d3 := cross(c, a, p)
		hasNeg := d1 < 0 || d2 < 0 || d3 < 0
		hasPos := d1 > 0 || d2 > 0 || d3 > 0
		if !(hasNeg && hasPos) {
			return true
		}
	}
	return false
}

// collinearVertex returns the position in idx of a vertex lying on the line
// through its neighbours, or -1.
func collinearVertex(poly []vec.Vec2, idx []int) int {
	n := len(idx)
	for i := range n {
		if cross(poly[idx[(i+n-1)%n]], poly[idx[i]], poly[idx[(i+1)%n]]) == 0 {
			return i
		}
	}
	return -1
}
