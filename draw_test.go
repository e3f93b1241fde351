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
	"image/color"
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// drawn returns the target pixels with non-zero alpha.
func drawn(buf []byte, w int) map[[2]int]bool {
	res := make(map[[2]int]bool)
	for i := 3; i < len(buf); i += 4 {
		if buf[i] != 0 {
			res[[2]int{(i / 4) % w, (i / 4) / w}] = true
		}
	}
	return res
}

func pixel(buf []byte, w, x, y int) []byte {
	i := 4 * (y*w + x)
	return buf[i : i+4]
}

func TestDrawRect(t *testing.T) {
	r, buf := newTestRenderer(t, 8, 8, 2)
	red := Color{R: 1, A: 1}
	r.Draw(&Scene{
		Width: 8, Height: 8,
		Elements: []Element{
			Rect{Box: rect.Rect{LLx: 2, LLy: 2, URx: 6, URy: 6}, Style: Style{Fill: red}},
		},
	})

	got := drawn(buf, 8)
	if len(got) != 16 {
		t.Errorf("%d pixels drawn, want 16", len(got))
	}
	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			if p := pixel(buf, 8, x, y); p[0] != 255 || p[3] != 255 {
				t.Errorf("pixel (%d, %d) = %v", x, y, p)
			}
		}
	}
	if !r.Samples().IsClear() {
		t.Error("Draw did not resolve")
	}
}

func TestDrawBorder(t *testing.T) {
	r, buf := newTestRenderer(t, 8, 8, 1)
	r.CTM = matrix.Identity.Translate(2, 2)
	r.Draw(&Scene{Width: 4, Height: 4})

	var want [][2]int
	for i := 1; i < 7; i++ {
		want = append(want,
			[2]int{i, 1}, // top
			[2]int{1, i}, // left
			[2]int{7, i}, // right
			[2]int{i, 7}) // bottom
	}
	// The bottom-right corner is the far end of both lines meeting
	// there, so it is not drawn.
	sameCells(t, drawn(buf, 8), cells(want...))
	for p := range cells(want...) {
		if px := pixel(buf, 8, p[0], p[1]); px[0] != 0 || px[3] != 255 {
			t.Errorf("border pixel %v = %v, want opaque black", p, px)
		}
	}
}

func TestDrawGroups(t *testing.T) {
	white := Style{Fill: White}
	cases := []struct {
		name string
		elem Element
		want [2]int
	}{
		{
			name: "translate",
			elem: Group{
				Transform: matrix.Identity.Translate(4, 0),
				Elements:  []Element{Point{Position: v(1, 1), Style: white}},
			},
			want: [2]int{5, 1},
		},
		{
			name: "nested",
			elem: Group{
				Transform: matrix.Scale(2, 2),
				Elements: []Element{
					&Group{
						Transform: matrix.Identity.Translate(1, 0),
						Elements:  []Element{&Point{Position: v(1, 1), Style: white}},
					},
				},
			},
			want: [2]int{4, 2},
		},
		{
			name: "zero transform",
			elem: Group{Elements: []Element{Point{Position: v(3, 6), Style: white}}},
			want: [2]int{3, 6},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, buf := newTestRenderer(t, 8, 8, 1)
			r.Draw(&Scene{Width: 8, Height: 8, Elements: []Element{c.elem}})
			sameCells(t, drawn(buf, 8), cells(c.want))
		})
	}
}

func TestDrawPolyline(t *testing.T) {
	r, buf := newTestRenderer(t, 8, 8, 1)
	r.Draw(&Scene{
		Width: 8, Height: 8,
		Elements: []Element{
			&Polyline{
				Points: []vec.Vec2{v(0, 0), v(4, 0), v(4, 4)},
				Style:  Style{Stroke: Color{G: 1, A: 0.5}},
			},
		},
	})

	var want [][2]int
	for i := range 4 {
		want = append(want, [2]int{i, 0}, [2]int{4, i})
	}
	sameCells(t, drawn(buf, 8), cells(want...))
	for _, p := range want {
		if a := pixel(buf, 8, p[0], p[1])[3]; a != 128 {
			t.Errorf("pixel %v has alpha %d, want 128", p, a)
		}
	}
}

func TestDrawConcavePolygon(t *testing.T) {
	r, buf := newTestRenderer(t, 8, 8, 1)
	r.Draw(&Scene{
		Width: 8, Height: 8,
		Elements: []Element{
			Polygon{
				Points: []vec.Vec2{v(0, 0), v(6, 0), v(6, 2), v(2, 2), v(2, 6), v(0, 6)},
				Style:  Style{Fill: Color{B: 1, A: 0.5}},
			},
		},
	})

	got := drawn(buf, 8)
	if len(got) != 20 {
		t.Errorf("%d pixels drawn, want 20", len(got))
	}
	for p := range got {
		inside := p[1] < 2 && p[0] < 6 || p[0] < 2 && p[1] < 6
		if !inside {
			t.Errorf("pixel %v outside the polygon", p)
		}
		if a := pixel(buf, 8, p[0], p[1])[3]; a != 128 {
			t.Errorf("pixel %v has alpha %d, want 128", p, a)
		}
	}
}

type countingTriangulator struct {
	calls int
}

func (c *countingTriangulator) Triangulate(tris, poly []vec.Vec2) []vec.Vec2 {
	c.calls++
	return EarClipper{}.Triangulate(tris, poly)
}

func TestDrawCustomTriangulator(t *testing.T) {
	r, buf := newTestRenderer(t, 8, 8, 1)
	tri := &countingTriangulator{}
	r.Triangulator = tri
	r.Draw(&Scene{
		Width: 8, Height: 8,
		Elements: []Element{
			Polygon{Points: []vec.Vec2{v(1, 1), v(5, 1), v(5, 5), v(1, 5)}, Style: Style{Fill: White}},
		},
	})
	if tri.calls != 1 {
		t.Errorf("triangulator called %d times", tri.calls)
	}
	if n := len(drawn(buf, 8)); n != 16 {
		t.Errorf("%d pixels drawn, want 16", n)
	}
}

func TestDrawEllipse(t *testing.T) {
	r, buf := newTestRenderer(t, 32, 32, 1)
	r.Draw(&Scene{
		Width: 32, Height: 32,
		Elements: []Element{
			Ellipse{Center: v(16, 16), Radius: v(10, 10), Style: Style{Fill: White}},
		},
	})

	got := drawn(buf, 32)
	area := math.Pi * 10 * 10
	if math.Abs(float64(len(got))-area) > 0.05*area {
		t.Errorf("%d pixels drawn, want about %.0f", len(got), area)
	}
	for p := range got {
		dx := float64(p[0]) + 0.5 - 16
		dy := float64(p[1]) + 0.5 - 16
		if math.Hypot(dx, dy) > 10.5 {
			t.Errorf("pixel %v outside the circle", p)
		}
	}

	// degenerate radii draw nothing
	r.Draw(&Scene{
		Width: 32, Height: 32,
		Elements: []Element{
			Ellipse{Center: v(16, 16), Radius: v(0, 10), Style: Style{Fill: White}},
			Ellipse{Center: v(16, 16), Radius: v(10, -1), Style: Style{Stroke: White}},
		},
	})
	if n := len(drawn(buf, 32)); n != 0 {
		t.Errorf("degenerate ellipses drew %d pixels", n)
	}
}

func TestDrawImageElement(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})

	r, buf := newTestRenderer(t, 8, 8, 2)
	r.CTM = matrix.Scale(2, 2)
	r.Draw(&Scene{
		Width: 4, Height: 4,
		Elements: []Element{
			&Image{Box: rect.Rect{LLx: 1, LLy: 1, URx: 2, URy: 3}, Source: src},
		},
	})

	var want [][2]int
	for y := 2; y < 6; y++ {
		for x := 2; x < 4; x++ {
			want = append(want, [2]int{x, y})
		}
	}
	got := drawn(buf, 8)
	for _, p := range want {
		if px := pixel(buf, 8, p[0], p[1]); px[0] != 255 || px[3] != 255 {
			t.Errorf("pixel %v = %v, want opaque red", p, px)
		}
		delete(got, p)
	}
	// what remains is the scene border
	for p := range got {
		if px := pixel(buf, 8, p[0], p[1]); px[0] != 0 {
			t.Errorf("unexpected pixel %v = %v", p, px)
		}
	}
}

func TestDrawInvisibleStyle(t *testing.T) {
	r, buf := newTestRenderer(t, 8, 8, 2)
	r.Draw(&Scene{
		Width: 8, Height: 8,
		Elements: []Element{
			Rect{Box: rect.Rect{LLx: 1, LLy: 1, URx: 6, URy: 6}},
			Polygon{Points: []vec.Vec2{v(0, 0), v(5, 0), v(0, 5)}},
			Line{From: v(0, 0), To: v(7, 7)},
			Polyline{Points: []vec.Vec2{v(0, 3), v(7, 3)}},
			Ellipse{Center: v(4, 4), Radius: v(3, 2)},
			Point{Position: v(2, 2)},
			Image{Box: rect.Rect{URx: 8, URy: 8}},
		},
	})
	if n := len(drawn(buf, 8)); n != 0 {
		t.Errorf("%d pixels drawn, want 0", n)
	}
}
