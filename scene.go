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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Scene is a tree of drawing elements on a canvas of the given size,
// in scene coordinates.
type Scene struct {
	Width, Height float64
	Elements      []Element
}

// Element is one node of a scene. The set of element types is closed:
// Point, Line, Polyline, Rect, Polygon, Ellipse, Image and Group.
type Element interface {
	isElement()
}

// Style holds the paint of an element. A color with zero alpha disables
// the corresponding operation.
type Style struct {
	Fill   Color
	Stroke Color
}

// Point is a single pixel, painted with the fill color.
type Point struct {
	Position vec.Vec2
	Style    Style
}

// Line is a line segment, painted with the stroke color.
type Line struct {
	From, To vec.Vec2
	Style    Style
}

// Polyline is an open chain of line segments, painted with the stroke color.
type Polyline struct {
	Points []vec.Vec2
	Style  Style
}

// Rect is an axis-aligned rectangle. LLx, LLy is the corner with the
// smaller coordinates.
type Rect struct {
	Box   rect.Rect
	Style Style
}

// Polygon is a simple closed polygon. The interior is filled using the
// renderer's Triangulator; the outline is closed automatically.
type Polygon struct {
	Points []vec.Vec2
	Style  Style
}

// Ellipse is an axis-aligned ellipse with the given center and radii.
type Ellipse struct {
	Center vec.Vec2
	Radius vec.Vec2
	Style  Style
}

// Image places a bitmap into the rectangle Box.
type Image struct {
	Box    rect.Rect
	Source image.Image
}

// Group applies Transform to its children. The zero matrix is treated as
// the identity.
type Group struct {
	Transform matrix.Matrix
	Elements  []Element
}

func (Point) isElement()    {}
func (Line) isElement()     {}
func (Polyline) isElement() {}
func (Rect) isElement()     {}
func (Polygon) isElement()  {}
func (Ellipse) isElement()  {}
func (Image) isElement()    {}
func (Group) isElement()    {}
