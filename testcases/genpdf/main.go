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

// Command genpdf generates reference images for the rasterizer tests.
// It writes each test case as a PDF file and renders the PDF to PNG using
// Ghostscript. Geometry is painted in gray levels equal to the alpha of
// its color on a black background, so the references show coverage.
package main

import (
	"fmt"
	"image/color"
	"maps"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/softraster"
	"seehuhn.de/go/softraster/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// writer emits scene elements as PDF path operations. All coordinates are
// transformed to screen space before they are written.
type writer struct {
	page *document.Page
	rate float64
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(pdfcolor.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; screen space has the origin top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})
	page.SetLineCap(graphics.LineCapButt)

	// lines are one sample wide
	w := &writer{page: page, rate: float64(tc.Rate())}
	page.SetLineWidth(1 / w.rate)

	ctm := tc.CTM
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}
	for _, e := range tc.Scene.Elements {
		w.element(e, ctm)
	}

	s := tc.Scene
	a := apply(ctm, 0, 0).Add(vec.Vec2{X: -1, Y: -1})
	b := apply(ctm, s.Width, 0).Add(vec.Vec2{X: 1, Y: -1})
	c := apply(ctm, 0, s.Height).Add(vec.Vec2{X: -1, Y: 1})
	d := apply(ctm, s.Width, s.Height).Add(vec.Vec2{X: 1, Y: 1})
	w.polyline(softraster.Black, false, a, b, d, c, a)

	return page.Close()
}

func (w *writer) element(e softraster.Element, ctm matrix.Matrix) {
	switch e := e.(type) {
	case softraster.Point:
		p := apply(ctm, e.Position.X, e.Position.Y)
		if w.setFill(e.Style.Fill) {
			w.page.Rectangle(math.Floor(p.X), math.Floor(p.Y), 1, 1)
			w.page.Fill()
		}
	case softraster.Line:
		w.polyline(e.Style.Stroke, false, apply(ctm, e.From.X, e.From.Y), apply(ctm, e.To.X, e.To.Y))
	case softraster.Polyline:
		w.polyline(e.Style.Stroke, false, transformAll(ctm, e.Points)...)
	case softraster.Rect:
		b := e.Box
		pts := []vec.Vec2{
			apply(ctm, b.LLx, b.LLy),
			apply(ctm, b.URx, b.LLy),
			apply(ctm, b.URx, b.URy),
			apply(ctm, b.LLx, b.URy),
		}
		w.polygon(e.Style, pts)
	case softraster.Polygon:
		w.polygon(e.Style, transformAll(ctm, e.Points))
	case softraster.Ellipse:
		w.ellipse(e, ctm)
	case softraster.Image:
		w.image(e, ctm)
	case softraster.Group:
		m := e.Transform
		if m == (matrix.Matrix{}) {
			m = matrix.Identity
		}
		m = m.Mul(ctm)
		for _, child := range e.Elements {
			w.element(child, m)
		}
	}
}

func (w *writer) polygon(style softraster.Style, pts []vec.Vec2) {
	if len(pts) < 2 {
		return
	}
	if w.setFill(style.Fill) {
		w.path(pts, true)
		w.page.Fill()
	}
	w.polyline(style.Stroke, true, pts...)
}

func (w *writer) polyline(c softraster.Color, closed bool, pts ...vec.Vec2) {
	if len(pts) < 2 || c.A == 0 {
		return
	}
	w.page.SetStrokeColor(pdfcolor.DeviceGray(c.A))
	w.path(pts, closed)
	w.page.Stroke()
}

func (w *writer) path(pts []vec.Vec2, closed bool) {
	w.page.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		w.page.LineTo(p.X, p.Y)
	}
	if closed {
		w.page.ClosePath()
	}
}

// ellipse writes the ellipse as four cubic Bézier arcs. Affine maps send
// Bézier control points to control points, so the arcs stay exact.
func (w *writer) ellipse(e softraster.Ellipse, ctm matrix.Matrix) {
	const kappa = 0.5522847498307936
	cx, cy := e.Center.X, e.Center.Y
	rx, ry := e.Radius.X, e.Radius.Y
	kx, ky := kappa*rx, kappa*ry
	pts := [13]vec.Vec2{
		apply(ctm, cx+rx, cy),
		apply(ctm, cx+rx, cy+ky), apply(ctm, cx+kx, cy+ry), apply(ctm, cx, cy+ry),
		apply(ctm, cx-kx, cy+ry), apply(ctm, cx-rx, cy+ky), apply(ctm, cx-rx, cy),
		apply(ctm, cx-rx, cy-ky), apply(ctm, cx-kx, cy-ry), apply(ctm, cx, cy-ry),
		apply(ctm, cx+kx, cy-ry), apply(ctm, cx+rx, cy-ky), apply(ctm, cx+rx, cy),
	}
	outline := func() {
		w.page.MoveTo(pts[0].X, pts[0].Y)
		for i := 1; i+2 < len(pts); i += 3 {
			w.page.CurveTo(pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y, pts[i+2].X, pts[i+2].Y)
		}
		w.page.ClosePath()
	}

	if w.setFill(e.Style.Fill) {
		outline()
		w.page.Fill()
	}
	if c := e.Style.Stroke; c.A != 0 {
		w.page.SetStrokeColor(pdfcolor.DeviceGray(c.A))
		outline()
		w.page.Stroke()
	}
}

// image fills the image box with the mean alpha of the source.
func (w *writer) image(e softraster.Image, ctm matrix.Matrix) {
	if e.Source == nil || e.Source.Bounds().Empty() {
		return
	}
	bounds := e.Source.Bounds()
	var sum float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			sum += float64(color.NRGBAModel.Convert(e.Source.At(x, y)).(color.NRGBA).A) / 255
		}
	}
	mean := sum / float64(bounds.Dx()*bounds.Dy())

	p0 := apply(ctm, e.Box.LLx, e.Box.LLy)
	p1 := apply(ctm, e.Box.URx, e.Box.URy)
	w.page.SetFillColor(pdfcolor.DeviceGray(mean))
	w.page.Rectangle(min(p0.X, p1.X), min(p0.Y, p1.Y), abs(p1.X-p0.X), abs(p1.Y-p0.Y))
	w.page.Fill()
}

// setFill selects the fill gray level for c and reports whether c is
// visible at all.
func (w *writer) setFill(c softraster.Color) bool {
	if c.A == 0 {
		return false
	}
	w.page.SetFillColor(pdfcolor.DeviceGray(c.A))
	return true
}

func apply(m matrix.Matrix, x, y float64) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*x + m[2]*y + m[4],
		Y: m[1]*x + m[3]*y + m[5],
	}
}

func transformAll(m matrix.Matrix, pts []vec.Vec2) []vec.Vec2 {
	res := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		res[i] = apply(m, p.X, p.Y)
	}
	return res
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
