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
	"bytes"
	"math"
	"testing"
)

func TestResolveAverage(t *testing.T) {
	const rate = 4
	c := Color{R: 0.8, G: 0.4, B: 0.2, A: 1}
	want := c.NRGBA()

	for n := 0; n <= rate*rate; n++ {
		r, buf := newTestRenderer(t, 2, 2, rate)
		for i := range n {
			r.Samples().Blend(rate+i%rate, i/rate, c)
		}
		r.Resolve()

		px := buf[4:8]
		f := float64(n) / (rate * rate)
		for k, ch := range []uint8{want.R, want.G, want.B, want.A} {
			exp := f * float64(ch)
			if math.Abs(float64(px[k])-exp) > 1 {
				t.Errorf("n=%d channel %d: got %d, want %.2f", n, k, px[k], exp)
			}
		}

		// the other pixels received nothing
		for _, i := range []int{0, 8, 12} {
			if !bytes.Equal(buf[i:i+4], []byte{0, 0, 0, 0}) {
				t.Errorf("n=%d: pixel at byte %d is %v", n, i, buf[i:i+4])
			}
		}
	}
}

func TestResolveRateOneCopies(t *testing.T) {
	r, buf := newTestRenderer(t, 7, 5, 1)
	s := r.Samples()
	for y := range 5 {
		for x := range 7 {
			s.Blend(x, y, Color{
				R: float64(x) / 7,
				G: float64(y) / 5,
				B: 0.5,
				A: float64(x+y+1) / 12,
			})
		}
	}
	samples := bytes.Clone(s.Bytes())

	r.Resolve()
	if !bytes.Equal(buf, samples) {
		t.Error("rate 1 resolve is not an exact copy")
	}
}

func TestResolveClears(t *testing.T) {
	r, buf := newTestRenderer(t, 8, 8, 3)
	r.RasterizeTriangle(v(0, 0), v(8, 0), v(0, 8), White)
	r.Resolve()
	if !r.Samples().IsClear() {
		t.Error("samples not cleared by Resolve")
	}

	// a second resolve overwrites the target with transparent black
	r.Resolve()
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d is %d after resolving an empty buffer", i, b)
		}
	}
}

func TestResolveWithoutTarget(t *testing.T) {
	r := NewRenderer()
	if err := r.SetSampleRate(2); err != nil {
		t.Fatal(err)
	}
	r.Resolve()
	if !r.Samples().IsClear() {
		t.Error("samples not clear")
	}
}
