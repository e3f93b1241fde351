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
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func polygonArea(poly []vec.Vec2) float64 {
	var a float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(a) / 2
}

func trianglesArea(tris []vec.Vec2) float64 {
	var a float64
	for i := 0; i+2 < len(tris); i += 3 {
		a += math.Abs(cross(tris[i], tris[i+1], tris[i+2])) / 2
	}
	return a
}

func starPolygon(n int, r0, r1 float64) []vec.Vec2 {
	var res []vec.Vec2
	for i := range 2 * n {
		rad := r0
		if i%2 == 1 {
			rad = r1
		}
		phi := math.Pi * float64(i) / float64(n)
		res = append(res, v(rad*math.Cos(phi), rad*math.Sin(phi)))
	}
	return res
}

func TestEarClipper(t *testing.T) {
	square := []vec.Vec2{v(0, 0), v(4, 0), v(4, 4), v(0, 4)}
	lShape := []vec.Vec2{v(0, 0), v(6, 0), v(6, 2), v(2, 2), v(2, 6), v(0, 6)}
	star := starPolygon(5, 10, 4)

	cases := []struct {
		name  string
		poly  []vec.Vec2
		count int
	}{
		{"square", square, 2},
		{"square reversed", reversed(square), 2},
		{"square closed", append(slices.Clone(square), square[0]), 2},
		{"L shape", lShape, 4},
		{"L shape reversed", reversed(lShape), 4},
		{"star", star, 8},
		{"collinear vertex", []vec.Vec2{v(0, 0), v(2, 0), v(4, 0), v(4, 4), v(0, 4)}, 3},
		{"repeated vertex", []vec.Vec2{v(0, 0), v(4, 0), v(4, 0), v(4, 4), v(0, 4)}, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tris := EarClipper{}.Triangulate(nil, c.poly)
			if len(tris)%3 != 0 {
				t.Fatalf("%d vertices returned", len(tris))
			}
			if n := len(tris) / 3; n != c.count {
				t.Errorf("%d triangles, want %d", n, c.count)
			}
			want := polygonArea(c.poly)
			if got := trianglesArea(tris); math.Abs(got-want) > 1e-9*want {
				t.Errorf("triangles cover area %g, want %g", got, want)
			}
		})
	}
}

func TestEarClipperAppends(t *testing.T) {
	prefix := []vec.Vec2{v(1, 2), v(3, 4), v(5, 6)}
	tris := EarClipper{}.Triangulate(slices.Clone(prefix), []vec.Vec2{v(0, 0), v(1, 0), v(0, 1)})
	if len(tris) != 6 || !slices.Equal(tris[:3], prefix) {
		t.Errorf("unexpected result %v", tris)
	}
}

func TestEarClipperDegenerate(t *testing.T) {
	cases := [][]vec.Vec2{
		nil,
		{v(1, 1)},
		{v(0, 0), v(1, 1)},
		{v(0, 0), v(1, 1), v(2, 2)},
		{v(0, 0), v(1, 1), v(0, 0)},
		{v(3, 3), v(3, 3), v(3, 3), v(3, 3)},
	}
	for _, poly := range cases {
		if tris := (EarClipper{}).Triangulate(nil, poly); len(tris) != 0 {
			t.Errorf("%v: got %d triangles", poly, len(tris)/3)
		}
	}
}

func TestEarClipperSelfIntersecting(t *testing.T) {
	bowtie := []vec.Vec2{v(0, 0), v(4, 4), v(4, 0), v(0, 4)}
	tris := EarClipper{}.Triangulate(nil, bowtie)
	if len(tris)%3 != 0 || len(tris) > 3*len(bowtie) {
		t.Errorf("unexpected result with %d vertices", len(tris))
	}
}

func reversed(poly []vec.Vec2) []vec.Vec2 {
	res := slices.Clone(poly)
	slices.Reverse(res)
	return res
}
