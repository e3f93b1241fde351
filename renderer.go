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
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Configuration errors.
var (
	ErrSampleRate = errors.New("sample rate must be at least 1")
	ErrTargetSize = errors.New("invalid render target size")
)

// Renderer rasterizes primitives into a supersampled buffer and resolves
// the result into a caller-owned render target.
//
// The Rasterize* methods take screen-space coordinates, measured in target
// pixels, and scale them to sample space themselves. Draw additionally
// applies CTM and group transforms before calling them.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	// CTM maps scene coordinates to screen space. It is used by Draw only.
	// The zero matrix is treated as the identity.
	CTM matrix.Matrix

	// Flatness is the curve flattening tolerance in target pixels.
	// Must be > 0.
	Flatness float64

	// Triangulator splits polygons into triangles for Draw.
	// If nil, EarClipper is used.
	Triangulator Triangulator

	sampleRate int

	target  []byte // caller-owned, 4 bytes per pixel
	targetW int
	targetH int

	samples *SampleBuffer

	// buffers reused across calls
	flat    flattener
	tris    []vec.Vec2
	scratch []byte
}

// NewRenderer returns a Renderer with sample rate 1, no render target,
// an identity CTM, and default values for all other parameters.
func NewRenderer() *Renderer {
	r := &Renderer{
		CTM:        matrix.Identity,
		Flatness:   DefaultFlatness,
		sampleRate: 1,
	}
	r.samples = newSampleBuffer(0, 0)
	return r
}

// DefaultFlatness is the default curve flattening tolerance in target
// pixels.
const DefaultFlatness = 0.25

// SampleRate returns the number of samples per target pixel along each axis.
func (r *Renderer) SampleRate() int {
	return r.sampleRate
}

// SetSampleRate changes the supersampling rate. The sample buffer is
// reallocated and cleared; previously drawn, unresolved samples are lost.
func (r *Renderer) SetSampleRate(rate int) error {
	if rate < 1 {
		return fmt.Errorf("sample rate %d: %w", rate, ErrSampleRate)
	}
	r.sampleRate = rate
	r.reallocate()
	return nil
}

// SetRenderTarget binds buf as the output of Resolve. The buffer holds
// width*height pixels, four bytes each, in row-major RGBA order. The sample
// buffer is reallocated and cleared.
func (r *Renderer) SetRenderTarget(buf []byte, width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%dx%d: %w", width, height, ErrTargetSize)
	}
	if need := width * height * 4; len(buf) < need {
		return fmt.Errorf("%dx%d needs %d bytes, got %d: %w",
			width, height, need, len(buf), ErrTargetSize)
	}
	r.target = buf
	r.targetW = width
	r.targetH = height
	r.reallocate()
	return nil
}

// TargetSize returns the size of the render target in pixels.
func (r *Renderer) TargetSize() (width, height int) {
	return r.targetW, r.targetH
}

// Samples returns the current sample buffer. The returned value becomes
// stale after the next call to SetSampleRate or SetRenderTarget.
func (r *Renderer) Samples() *SampleBuffer {
	return r.samples
}

func (r *Renderer) reallocate() {
	w := r.targetW * r.sampleRate
	h := r.targetH * r.sampleRate
	r.samples = newSampleBuffer(w, h)
	Logger().Debug("sample buffer reallocated",
		"width", w, "height", h, "rate", r.sampleRate)
}
