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

// Resolve box-filters the sample buffer into the render target: each target
// pixel receives the per-channel mean of its SampleRate×SampleRate block of
// samples, rounded to the nearest byte. Afterwards the sample buffer is
// cleared to transparent black.
//
// With sample rate 1 the target becomes an exact copy of the samples.
func (r *Renderer) Resolve() {
	if r.target != nil {
		r.downsample()
	}
	r.samples.Clear()
}

func (r *Renderer) downsample() {
	n := r.sampleRate
	count := n * n
	half := count / 2
	src := r.samples.pix
	srcStride := 4 * r.samples.width
	dstStride := 4 * r.targetW

	for ty := range r.targetH {
		dst := r.target[ty*dstStride : (ty+1)*dstStride]
		for tx := range r.targetW {
			var sr, sg, sb, sa int
			for sy := ty * n; sy < (ty+1)*n; sy++ {
				row := src[sy*srcStride+4*tx*n : sy*srcStride+4*(tx+1)*n]
				for i := 0; i < len(row); i += 4 {
					sr += int(row[i])
					sg += int(row[i+1])
					sb += int(row[i+2])
					sa += int(row[i+3])
				}
			}
			px := dst[4*tx : 4*tx+4 : 4*tx+4]
			px[0] = byte((sr + half) / count)
			px[1] = byte((sg + half) / count)
			px[2] = byte((sb + half) / count)
			px[3] = byte((sa + half) / count)
		}
	}
}
