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

// RasterizePoint fills the target pixel containing p, given in screen
// space. All samples of the pixel are blended with c, so that after Resolve
// the pixel shows c composited over its previous contents.
// Points outside the render target are ignored.
func (r *Renderer) RasterizePoint(p vec.Vec2, c Color) {
	if !isFinite(p.X) || !isFinite(p.Y) {
		return
	}
	px, py := floorInt(p.X), floorInt(p.Y)
	if px < 0 || px >= r.targetW || py < 0 || py >= r.targetH {
		return
	}

	n := r.sampleRate
	for y := py * n; y < (py+1)*n; y++ {
		for x := px * n; x < (px+1)*n; x++ {
			r.samples.Blend(x, y, c)
		}
	}
}
