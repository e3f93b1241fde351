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

// Package softraster implements a supersampling software rasterizer for
// points, lines, triangles and images.
//
// A [Renderer] draws into an internal sample buffer whose resolution is the
// render target's resolution times the sample rate. All writes composite
// with the "over" operator. [Renderer.Resolve] averages each block of
// samples into one target pixel and clears the samples again.
//
// Typical use:
//
//	buf := make([]byte, 4*width*height)
//	r := softraster.NewRenderer()
//	r.SetRenderTarget(buf, width, height)
//	r.SetSampleRate(4)
//	r.Draw(scene)
//
// Triangles use the top-left fill rule. Lines are one sample wide and do
// not include the final sample of their major axis.
package softraster

//go:generate go run ./testcases/export
