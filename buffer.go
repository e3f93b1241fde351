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

	"seehuhn.de/go/geom/rect"
)

// SampleBuffer is a grid of RGBA samples at supersampled resolution.
// Samples are stored row-major, four bytes per sample in R, G, B, A order,
// with the origin in the top-left corner.
type SampleBuffer struct {
	width  int
	height int
	pix    []byte
}

// newSampleBuffer returns a buffer of the given size, cleared to transparent
// black.
func newSampleBuffer(width, height int) *SampleBuffer {
	return &SampleBuffer{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}
}

// Width returns the number of sample columns.
func (b *SampleBuffer) Width() int { return b.width }

// Height returns the number of sample rows.
func (b *SampleBuffer) Height() int { return b.height }

// Bytes returns the raw sample data. The slice aliases the buffer.
func (b *SampleBuffer) Bytes() []byte { return b.pix }

// Bounds returns the buffer extent in sample coordinates.
func (b *SampleBuffer) Bounds() rect.Rect {
	return rect.Rect{URx: float64(b.width), URy: float64(b.height)}
}

// Image returns an image view of the samples. The image shares its pixels
// with the buffer.
func (b *SampleBuffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.pix,
		Stride: 4 * b.width,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

// At returns the sample at (x, y), or Transparent outside the buffer.
func (b *SampleBuffer) At(x, y int) Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Transparent
	}
	i := 4 * (y*b.width + x)
	return colorFromBytes(b.pix[i], b.pix[i+1], b.pix[i+2], b.pix[i+3])
}

// Blend composites c over the sample at (x, y).
// Writes outside the buffer are silently dropped.
//
// This is the only place where primitives modify sample data.
func (b *SampleBuffer) Blend(x, y int, c Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := 4 * (y*b.width + x)
	px := b.pix[i : i+4 : i+4]
	out := Over(colorFromBytes(px[0], px[1], px[2], px[3]), c)
	px[0] = quantize(out.R)
	px[1] = quantize(out.G)
	px[2] = quantize(out.B)
	px[3] = quantize(out.A)
}

// Clear resets every sample to transparent black.
func (b *SampleBuffer) Clear() {
	clear(b.pix)
}

// IsClear reports whether every sample is transparent black.
func (b *SampleBuffer) IsClear() bool {
	for _, v := range b.pix {
		if v != 0 {
			return false
		}
	}
	return true
}
