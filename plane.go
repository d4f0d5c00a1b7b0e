// seehuhn.de/go/bitblt - bit-block transfers between monochrome bit planes
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

package bitblt

import (
	"math"
	"strings"
)

// A Plane is a rectangular array of bits mapped one-to-one with pixels:
// a top-down uncompressed monochrome bitmap without a palette.  Row 0
// is the top row of pixels.  Each row occupies ceil(width/8) scan
// bytes, and bit (x, y) sits in the scan byte at index y*stride + x/8,
// at position x%8 counted from the most significant bit.  Nominally,
// plane bits have the sense: 0 is black, 1 is white.
//
// A Plane either owns its buffer (Create, New, Clone) or borrows a
// caller-supplied one (Wrap).  The zero value is an empty 0×0 plane,
// valid and safe for blitting: nothing transfers to or from it.
type Plane struct {
	width  int
	height int
	stride int
	pix    []byte
	owned  bool
}

// scanStride returns the number of scan bytes per row for a width given
// in bits.
func scanStride(width int) int {
	stride := width >> 3
	if width&7 != 0 {
		stride++
	}
	return stride
}

// New returns a plane with a fresh zeroed buffer of the given
// dimensions, following the rules of Create.  If Create fails, the
// returned plane is empty.
func New(width, height int) *Plane {
	p := &Plane{}
	p.Create(width, height)
	return p
}

// Wrap returns a plane over a caller-supplied buffer.  The plane
// borrows pix without taking ownership and remains valid for the
// lifetime of the buffer.  The buffer must hold at least
// ceil(width/8)*height bytes; this is not checked.  Negative dimensions
// are normalized by absolute value, and if either dimension is not
// positive afterwards the plane is empty.
func Wrap(width, height int, pix []byte) *Plane {
	if width < 0 {
		width = -width
	}
	if height < 0 {
		height = -height
	}
	p := &Plane{pix: pix}
	if width > 0 && height > 0 {
		p.width = width
		p.height = height
		p.stride = scanStride(width)
	}
	return p
}

// Create gives the plane a fresh zeroed buffer of the given dimensions,
// replacing whatever the plane held before.  Negative dimensions are
// permitted and negated, like extents.  Create returns false, with the
// plane reset to the empty state, if either dimension is not positive
// after negation or if the buffer size does not fit in an int.  To
// release an owned buffer without allocating a new one, use Reset or
// Create(0, 0).
//
// An owned buffer of sufficient capacity is cleared and reused; a
// borrowed buffer is left to its owner and replaced by a fresh
// allocation.
func (p *Plane) Create(width, height int) bool {
	if width < 0 { // permit negative widths and heights
		width = -width // by negating them, like extents
	}
	if height < 0 {
		height = -height
	}
	if width <= 0 || height <= 0 { // <= traps math.MinInt
		p.Reset()
		return false
	}
	stride := scanStride(width)
	if stride > math.MaxInt/height { // the allocation cannot succeed
		p.Reset()
		return false
	}
	size := stride * height
	if p.owned && cap(p.pix) >= size {
		p.pix = p.pix[:size]
		clear(p.pix)
	} else {
		p.pix = make([]byte, size)
		p.owned = true
	}
	p.width = width
	p.height = height
	p.stride = stride
	return true
}

// Reset returns the plane to the empty 0×0 state.  An owned buffer is
// released to the garbage collector.
func (p *Plane) Reset() {
	*p = Plane{}
}

// Clone returns a deep copy of the plane.  The copy always owns its
// bits, whether or not p does; to alias a buffer instead, call Wrap
// again.
func (p *Plane) Clone() *Plane {
	if p.width == 0 || p.height == 0 {
		return &Plane{}
	}
	q := &Plane{
		width:  p.width,
		height: p.height,
		stride: p.stride,
		pix:    make([]byte, p.stride*p.height),
		owned:  true,
	}
	copy(q.pix, p.pix)
	return q
}

// Width returns the width of the plane, in bits.
func (p *Plane) Width() int { return p.width }

// Height returns the height of the plane, in rows.
func (p *Plane) Height() int { return p.height }

// Stride returns the number of scan bytes per row.
func (p *Plane) Stride() int { return p.stride }

// Bytes returns the plane's backing buffer.  Mutating the bytes mutates
// the plane.
func (p *Plane) Bytes() []byte { return p.pix }

// bitIndex returns the buffer index of the scan byte holding bit (x, y).
// Coordinates are not clipped.
func (p *Plane) bitIndex(x, y int) int {
	return y*p.stride + x>>3
}

// Bits returns the backing buffer starting at the scan byte which holds
// bit (x, y).  Coordinates are not clipped; keeping them inside the
// plane is the caller's responsibility.  Bits is meant for inspection
// and tests, not as a primary operation.
func (p *Plane) Bits(x, y int) []byte {
	return p.pix[p.bitIndex(x, y):]
}

// At reports whether bit (x, y) is set.  Coordinates outside the plane
// read as unset.
func (p *Plane) At(x, y int) bool {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return false
	}
	return p.pix[p.bitIndex(x, y)]&(0x80>>(x&7)) != 0
}

// Set sets bit (x, y) to the given value.  Coordinates outside the
// plane are ignored.
func (p *Plane) Set(x, y int, bit bool) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	mask := byte(0x80) >> (x & 7)
	if bit {
		p.pix[p.bitIndex(x, y)] |= mask
	} else {
		p.pix[p.bitIndex(x, y)] &^= mask
	}
}

// String renders the plane as text, one line per row, with '#' for set
// bits and '.' for clear bits.
func (p *Plane) String() string {
	var sb strings.Builder
	sb.Grow((p.width + 1) * p.height)
	for y := range p.height {
		for x := range p.width {
			if p.At(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
