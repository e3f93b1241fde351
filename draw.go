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
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Draw renders a complete scene: all elements in order, transformed by the
// CTM and the transforms of enclosing groups, then a black border just
// outside the canvas. Draw ends with a call to Resolve, so the result is
// in the render target when Draw returns.
func (r *Renderer) Draw(s *Scene) {
	ctm := orIdentity(r.CTM)
	Logger().Debug("draw",
		"elements", len(s.Elements),
		"rate", r.sampleRate,
		"width", r.targetW, "height", r.targetH)

	for _, e := range s.Elements {
		r.drawElement(e, ctm)
	}
	r.drawBorder(s, ctm)
	r.Resolve()
}

func (r *Renderer) drawElement(e Element, ctm matrix.Matrix) {
	switch e := e.(type) {
	case Point:
		r.drawPoint(&e, ctm)
	case *Point:
		r.drawPoint(e, ctm)
	case Line:
		r.drawLine(&e, ctm)
	case *Line:
		r.drawLine(e, ctm)
	case Polyline:
		r.drawPolyline(&e, ctm)
	case *Polyline:
		r.drawPolyline(e, ctm)
	case Rect:
		r.drawRect(&e, ctm)
	case *Rect:
		r.drawRect(e, ctm)
	case Polygon:
		r.drawPolygon(&e, ctm)
	case *Polygon:
		r.drawPolygon(e, ctm)
	case Ellipse:
		r.drawEllipse(&e, ctm)
	case *Ellipse:
		r.drawEllipse(e, ctm)
	case Image:
		r.drawImage(&e, ctm)
	case *Image:
		r.drawImage(e, ctm)
	case Group:
		r.drawGroup(&e, ctm)
	case *Group:
		r.drawGroup(e, ctm)
	default:
		Logger().Warn("unknown element ignored", "type", fmt.Sprintf("%T", e))
	}
}

func (r *Renderer) drawPoint(e *Point, ctm matrix.Matrix) {
	r.RasterizePoint(apply(ctm, e.Position), e.Style.Fill)
}

func (r *Renderer) drawLine(e *Line, ctm matrix.Matrix) {
	r.RasterizeLine(apply(ctm, e.From), apply(ctm, e.To), e.Style.Stroke)
}

func (r *Renderer) drawPolyline(e *Polyline, ctm matrix.Matrix) {
	c := e.Style.Stroke
	if c.A == 0 {
		return
	}
	for i := 0; i+1 < len(e.Points); i++ {
		r.RasterizeLine(apply(ctm, e.Points[i]), apply(ctm, e.Points[i+1]), c)
	}
}

func (r *Renderer) drawRect(e *Rect, ctm matrix.Matrix) {
	b := e.Box
	p0 := apply(ctm, vec.Vec2{X: b.LLx, Y: b.LLy})
	p1 := apply(ctm, vec.Vec2{X: b.URx, Y: b.LLy})
	p2 := apply(ctm, vec.Vec2{X: b.LLx, Y: b.URy})
	p3 := apply(ctm, vec.Vec2{X: b.URx, Y: b.URy})

	if c := e.Style.Fill; c.A != 0 {
		r.RasterizeTriangle(p0, p1, p2, c)
		r.RasterizeTriangle(p2, p1, p3, c)
	}
	if c := e.Style.Stroke; c.A != 0 {
		r.RasterizeLine(p0, p1, c)
		r.RasterizeLine(p1, p3, c)
		r.RasterizeLine(p3, p2, c)
		r.RasterizeLine(p2, p0, c)
	}
}

func (r *Renderer) drawPolygon(e *Polygon, ctm matrix.Matrix) {
	if c := e.Style.Fill; c.A != 0 {
		t := r.Triangulator
		if t == nil {
			t = EarClipper{}
		}
		r.tris = t.Triangulate(r.tris[:0], e.Points)
		for i := 0; i+2 < len(r.tris); i += 3 {
			r.RasterizeTriangle(
				apply(ctm, r.tris[i]),
				apply(ctm, r.tris[i+1]),
				apply(ctm, r.tris[i+2]),
				c)
		}
	}
	if c := e.Style.Stroke; c.A != 0 {
		n := len(e.Points)
		for i := range n {
			r.RasterizeLine(apply(ctm, e.Points[i]), apply(ctm, e.Points[(i+1)%n]), c)
		}
	}
}

func (r *Renderer) drawEllipse(e *Ellipse, ctm matrix.Matrix) {
	fill, stroke := e.Style.Fill, e.Style.Stroke
	if fill.A == 0 && stroke.A == 0 {
		return
	}
	if e.Radius.X <= 0 || e.Radius.Y <= 0 {
		return
	}

	flatness := r.Flatness
	if !(flatness > 0) {
		flatness = DefaultFlatness
	}
	r.flat.flatten(ellipsePath(e.Center, e.Radius), ctm, flatness)

	for i := range r.flat.polygons() {
		poly := r.flat.polygon(i)
		if fill.A != 0 {
			// affine images of ellipses are convex, so a fan is enough
			center := apply(ctm, e.Center)
			for j := range poly {
				r.RasterizeTriangle(center, poly[j], poly[(j+1)%len(poly)], fill)
			}
		}
		if stroke.A != 0 {
			for j := range poly {
				r.RasterizeLine(poly[j], poly[(j+1)%len(poly)], stroke)
			}
		}
	}
}

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936

// ellipsePath returns an axis-aligned ellipse as four cubic Bézier arcs.
func ellipsePath(c, rad vec.Vec2) path.Path {
	kx, ky := kappa*rad.X, kappa*rad.Y
	pt := func(x, y float64) vec.Vec2 {
		return vec.Vec2{X: c.X + x, Y: c.Y + y}
	}
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{pt(rad.X, 0)}) {
			return
		}
		arcs := [4][3]vec.Vec2{
			{pt(rad.X, ky), pt(kx, rad.Y), pt(0, rad.Y)},
			{pt(-kx, rad.Y), pt(-rad.X, ky), pt(-rad.X, 0)},
			{pt(-rad.X, -ky), pt(-kx, -rad.Y), pt(0, -rad.Y)},
			{pt(kx, -rad.Y), pt(rad.X, -ky), pt(rad.X, 0)},
		}
		for _, arc := range arcs {
			if !yield(path.CmdCubeTo, arc[:]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

func (r *Renderer) drawImage(e *Image, ctm matrix.Matrix) {
	p0 := apply(ctm, vec.Vec2{X: e.Box.LLx, Y: e.Box.LLy})
	p1 := apply(ctm, vec.Vec2{X: e.Box.URx, Y: e.Box.URy})
	r.RasterizeImage(p0, p1, e.Source)
}

func (r *Renderer) drawGroup(e *Group, ctm matrix.Matrix) {
	m := orIdentity(e.Transform).Mul(ctm)
	for _, child := range e.Elements {
		r.drawElement(child, m)
	}
}

// drawBorder strokes the canvas outline one pixel outside the scene
// rectangle.
func (r *Renderer) drawBorder(s *Scene, ctm matrix.Matrix) {
	a := apply(ctm, vec.Vec2{X: 0, Y: 0}).Add(vec.Vec2{X: -1, Y: -1})
	b := apply(ctm, vec.Vec2{X: s.Width, Y: 0}).Add(vec.Vec2{X: 1, Y: -1})
	c := apply(ctm, vec.Vec2{X: 0, Y: s.Height}).Add(vec.Vec2{X: -1, Y: 1})
	d := apply(ctm, vec.Vec2{X: s.Width, Y: s.Height}).Add(vec.Vec2{X: 1, Y: 1})

	r.RasterizeLine(a, b, Black)
	r.RasterizeLine(a, c, Black)
	r.RasterizeLine(d, b, Black)
	r.RasterizeLine(d, c, Black)
}

// orIdentity returns m, or the identity matrix if m is the zero matrix.
func orIdentity(m matrix.Matrix) matrix.Matrix {
	if m == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return m
}
