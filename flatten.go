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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// maxSegments limits the number of line segments per curve.
const maxSegments = 1 << 14

// flattener converts paths in scene space into polygons in screen space.
// Buffers grow as needed and are reused between calls.
type flattener struct {
	ctm      matrix.Matrix
	flatness float64

	pts     []vec.Vec2 // vertices of all polygons (screen space), contiguous
	offsets []int      // start index of each polygon in pts
}

// flatten walks p, replacing curves by line segments, and stores one
// polygon per subpath. Subpaths are treated as closed. Polygons with fewer
// than three vertices are dropped.
func (f *flattener) flatten(p path.Path, ctm matrix.Matrix, flatness float64) {
	f.ctm = ctm
	f.flatness = flatness
	f.pts = f.pts[:0]
	f.offsets = f.offsets[:0]

	var current vec.Vec2
	start := 0
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			f.endSubpath(start)
			start = len(f.pts)
			current = pts[0]
			f.emit(current)

		case path.CmdLineTo:
			current = pts[0]
			f.emit(current)

		case path.CmdQuadTo:
			f.flattenQuadratic(current, pts[0], pts[1])
			current = pts[1]

		case path.CmdCubeTo:
			f.flattenCubic(current, pts[0], pts[1], pts[2])
			current = pts[2]

		case path.CmdClose:
			f.endSubpath(start)
			start = len(f.pts)
		}
	}
	f.endSubpath(start)
}

func (f *flattener) endSubpath(start int) {
	n := len(f.pts) - start
	if n == 0 {
		return
	}
	// drop a closing vertex which repeats the first one
	if n > 1 && f.pts[len(f.pts)-1] == f.pts[start] {
		f.pts = f.pts[:len(f.pts)-1]
		n--
	}
	if n < 3 {
		f.pts = f.pts[:start]
		return
	}
	f.offsets = append(f.offsets, start)
}

// polygons returns the number of polygons from the last call to flatten.
func (f *flattener) polygons() int {
	return len(f.offsets)
}

// polygon returns the vertices of polygon i as a slice into f.pts.
func (f *flattener) polygon(i int) []vec.Vec2 {
	start := f.offsets[i]
	end := len(f.pts)
	if i+1 < len(f.offsets) {
		end = f.offsets[i+1]
	}
	return f.pts[start:end]
}

// emit appends the screen-space image of the scene-space point p.
func (f *flattener) emit(p vec.Vec2) {
	f.pts = append(f.pts, apply(f.ctm, p))
}

// transformLinear applies only the 2×2 linear part of the CTM to a vector.
// Used for CTM-aware tolerance checking where translation is irrelevant.
func (f *flattener) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: f.ctm[0]*v.X + f.ctm[2]*v.Y,
		Y: f.ctm[1]*v.X + f.ctm[3]*v.Y,
	}
}

// flattenQuadratic approximates a quadratic Bézier by line segments.
// p0 is the current point, p1 the control point, p2 the endpoint.
func (f *flattener) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	// e = (P0 - 2*P1 + P2) / 4 bounds the deviation from the chord
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := f.transformLinear(e).Length()

	n := 1
	if errDev > f.flatness {
		n = int(min(math.Ceil(math.Sqrt(errDev/f.flatness)), maxSegments))
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		f.emit(p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t)))
	}
}

// flattenCubic approximates a cubic Bézier by line segments, using Wang's
// formula for the number of segments.
func (f *flattener) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := f.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := f.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		// n = ceil(sqrt(3 * m / (4 * ε)))
		if nf := math.Sqrt(3 * m / (4 * f.flatness)); nf > 1 {
			n = int(min(math.Ceil(nf), maxSegments))
		}
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).
			Add(p1.Mul(3 * omt2 * t)).
			Add(p2.Mul(3 * omt * t2)).
			Add(p3.Mul(t2 * t))
		f.emit(pt)
	}
}

// apply maps p through the affine transformation m.
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}
