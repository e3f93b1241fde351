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

import "testing"

func TestSampleBufferBounds(t *testing.T) {
	b := newSampleBuffer(4, 3)
	if !b.IsClear() {
		t.Fatal("new buffer is not clear")
	}

	// writes outside the buffer are dropped without effect
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}, {-5, -5}} {
		b.Blend(p[0], p[1], White)
	}
	if !b.IsClear() {
		t.Error("out-of-bounds write modified the buffer")
	}
	if got := b.At(-1, 0); got != Transparent {
		t.Errorf("At outside = %v", got)
	}

	b.Blend(3, 2, White)
	if got := b.At(3, 2); got != White {
		t.Errorf("At(3, 2) = %v, want white", got)
	}
	pix := b.Bytes()
	i := 4 * (2*4 + 3)
	for k := range 4 {
		if pix[i+k] != 255 {
			t.Errorf("byte %d = %d, want 255", k, pix[i+k])
		}
	}

	b.Clear()
	if !b.IsClear() {
		t.Error("Clear left samples behind")
	}
}

func TestSampleBufferBlend(t *testing.T) {
	b := newSampleBuffer(1, 1)
	half := Color{R: 1, A: 0.5}
	b.Blend(0, 0, half)
	b.Blend(0, 0, half)

	got := b.Bytes()
	// Both channels end up near 0.75; the intermediate result is
	// quantized to 128/255, so allow for rounding either way.
	for _, k := range []int{0, 3} {
		if got[k] < 191 || got[k] > 192 {
			t.Errorf("channel %d = %d, want 191 or 192", k, got[k])
		}
	}
	if got[1] != 0 || got[2] != 0 {
		t.Errorf("green, blue = %d, %d, want 0, 0", got[1], got[2])
	}
}

func TestSampleBufferImage(t *testing.T) {
	b := newSampleBuffer(3, 2)
	b.Blend(2, 1, Color{G: 1, A: 1})

	img := b.Image()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("image bounds = %v", img.Bounds())
	}
	c := img.NRGBAAt(2, 1)
	if c.G != 255 || c.A != 255 || c.R != 0 {
		t.Errorf("image pixel = %v", c)
	}

	r := b.Bounds()
	if r.URx != 3 || r.URy != 2 || r.LLx != 0 || r.LLy != 0 {
		t.Errorf("Bounds = %v", r)
	}
}
