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
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBltEdges checks that bits outside the destination rectangle are
// untouched, byte for byte, when the rectangle's edges fall inside scan
// bytes.
func TestBltEdges(t *testing.T) {
	dst := New(24, 4)
	for i := range dst.Bytes() {
		dst.Bytes()[i] = 0xff
	}
	src := New(24, 4)

	require.True(t, dst.Blt(3, 1, 10, 2, src, 3, 1, SrcCopy))

	want := []byte{
		0xff, 0xff, 0xff,
		0xe0, 0x07, 0xff,
		0xe0, 0x07, 0xff,
		0xff, 0xff, 0xff,
	}
	assert.Equal(t, want, dst.Bytes())
}

// TestBltSubByte exercises lines which begin and end in the same scan
// byte, where the two edge masks merge into one.
func TestBltSubByte(t *testing.T) {
	dst := Wrap(16, 2, []byte{0xff, 0xff, 0xff, 0xff})
	src := New(16, 2)

	require.True(t, dst.Blt(2, 0, 4, 1, src, 0, 0, SrcCopy))
	assert.Equal(t, []byte{0xc3, 0xff, 0xff, 0xff}, dst.Bytes())
}

// TestBltInterior exercises lines wide enough to store interior scan
// bytes without a mask.
func TestBltInterior(t *testing.T) {
	src := New(40, 2)
	for i := range src.Bytes() {
		src.Bytes()[i] = 0xff
	}
	dst := New(40, 2)

	require.True(t, dst.Blt(1, 0, 36, 2, src, 1, 0, SrcCopy))

	want := []byte{
		0x7f, 0xff, 0xff, 0xff, 0xf8,
		0x7f, 0xff, 0xff, 0xff, 0xf8,
	}
	assert.Equal(t, want, dst.Bytes())
}

// TestBltShifted checks both phase-align directions against
// hand-computed scan bytes.
func TestBltShifted(t *testing.T) {
	// source phase 0, destination phase 3: bits move towards the low end
	src := Wrap(8, 1, []byte{0xb4})
	dst := New(16, 1)
	require.True(t, dst.Blt(3, 0, 8, 1, src, 0, 0, SrcCopy))
	assert.Equal(t, []byte{0x16, 0x80}, dst.Bytes())

	// source phase 3, destination phase 0: bits move towards the high end
	src = Wrap(16, 1, []byte{0x12, 0x34})
	dst = New(8, 1)
	require.True(t, dst.Blt(0, 0, 8, 1, src, 3, 0, SrcCopy))
	assert.Equal(t, []byte{0x91}, dst.Bytes())
}

// TestBltRoundTrip moves a block out to a holding plane and back at
// every pair of sub-byte phases, which must restore the original bits.
func TestBltRoundTrip(t *testing.T) {
	orig := New(24, 8)
	for y := range orig.Height() {
		for x := range orig.Width() {
			orig.Set(x, y, (x*31+y*17)%5 < 2)
		}
	}

	for dx := range 8 {
		for sx := range 8 {
			t.Run(fmt.Sprintf("d%d_s%d", dx, sx), func(t *testing.T) {
				work := orig.Clone()
				hold := New(16, 8)

				require.True(t, hold.Blt(sx, 0, 8, 6, work, dx, 1, SrcCopy))
				require.True(t, work.Blt1(dx, 1, 8, 6, Whiteness))
				require.True(t, work.Blt(dx, 1, 8, 6, hold, sx, 0, SrcCopy))

				assert.Equal(t, orig.Bytes(), work.Bytes())
			})
		}
	}
}

func TestBltReturn(t *testing.T) {
	src := New(8, 4)

	tests := []struct {
		name                 string
		x, y, cx, cy, sx, sy int
		want                 bool
	}{
		{"inside", 2, 2, 4, 2, 1, 1, true},
		{"partial", 14, 6, 4, 4, 0, 0, true},
		{"negative_extent", 6, 4, -4, -2, 4, 2, true},
		{"zero_width", 2, 2, 0, 2, 0, 0, false},
		{"zero_height", 2, 2, 4, 0, 0, 0, false},
		{"dst_right_of_plane", 16, 0, 4, 2, 0, 0, false},
		{"dst_below_plane", 0, 8, 4, 2, 0, 0, false},
		{"dst_left_of_plane", -4, 0, 4, 2, 0, 0, false},
		{"src_exhausted", 0, 0, 4, 2, 8, 0, false},
		{"src_negative_consumes_extent", 0, 0, 4, 2, -4, 0, false},
		{"negative_extent_outside", 0, 0, -4, -2, 0, 0, false},
		{"min_int_extent", 2, 2, math.MinInt, 2, 0, 0, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dst := New(16, 8)
			got := dst.Blt(test.x, test.y, test.cx, test.cy, src, test.sx, test.sy, SrcPaint)
			assert.Equal(t, test.want, got)
			if !got {
				assert.Equal(t, make([]byte, 16), dst.Bytes(), "bits modified")
			}
		})
	}

	// transfers into or out of an empty plane move nothing
	dst := New(16, 8)
	empty := &Plane{}
	assert.False(t, dst.Blt(0, 0, 4, 4, empty, 0, 0, SrcCopy))
	assert.False(t, empty.Blt(0, 0, 4, 4, src, 0, 0, SrcCopy))
}

// TestBltClipMovesSource checks that when clipping moves the
// destination origin, the source origin moves in lockstep, so the
// surviving bits land at the position requested.
func TestBltClipMovesSource(t *testing.T) {
	src := New(16, 4)
	for y := range src.Height() {
		for x := range src.Width() {
			src.Set(x, y, (x+y)%3 == 0)
		}
	}
	dst := New(16, 4)

	require.True(t, dst.Blt(-3, 0, 8, 2, src, 2, 1, SrcCopy))

	for y := range dst.Height() {
		for x := range dst.Width() {
			want := false
			if x < 5 && y < 2 {
				want = src.At(x+5, y+1)
			}
			assert.Equal(t, want, dst.At(x, y), "bit (%d, %d)", x, y)
		}
	}
}

// TestBltSelf transfers between non-overlapping rectangles of a single
// plane, which is well defined.
func TestBltSelf(t *testing.T) {
	p := New(32, 4)
	for y := range p.Height() {
		for x := range 8 {
			p.Set(x, y, (x^y)&1 == 0)
		}
	}
	snap := p.Clone()

	require.True(t, p.Blt(16, 0, 8, 4, p, 0, 0, SrcCopy))

	for y := range p.Height() {
		for x := range p.Width() {
			want := snap.At(x, y)
			if x >= 16 && x < 24 {
				want = snap.At(x-16, y)
			}
			assert.Equal(t, want, p.At(x, y), "bit (%d, %d)", x, y)
		}
	}
}

// TestBlitterLazyFetch checks that operations which do not reference
// the source skip the fetch, leaving the source cursor where it is.
func TestBlitterLazyFetch(t *testing.T) {
	b := newBlitter(Dn, newAligner(0, 0, []byte{0xff}, 0), []byte{0x0f}, 0)
	require.False(t, b.fetch)

	b.store()
	assert.Equal(t, byte(0xf0), b.pix[0])
	assert.Zero(t, b.src.pos)

	b = newBlitter(DSx, newAligner(0, 0, []byte{0xff}, 0), []byte{0x0f}, 0)
	require.True(t, b.fetch)

	b.store()
	assert.Equal(t, byte(0xf0), b.pix[0])
	assert.Equal(t, 1, b.src.pos)
}

// TestBltNoop checks that the operation D, which keeps every
// destination bit, leaves the plane unchanged through the masked store
// path.
func TestBltNoop(t *testing.T) {
	dst := New(24, 6)
	for y := range dst.Height() {
		for x := range dst.Width() {
			dst.Set(x, y, (x*7+y)%4 == 1)
		}
	}
	snap := dst.Clone()
	src := New(8, 8)

	require.True(t, dst.Blt(1, 1, 6, 5, src, 0, 0, D))
	assert.Equal(t, snap.Bytes(), dst.Bytes())
}

func TestBlt1(t *testing.T) {
	p := Wrap(16, 2, []byte{0xff, 0xff, 0xff, 0xff})

	require.True(t, p.Blt1(4, 0, 8, 1, Blackness))
	assert.Equal(t, []byte{0xf0, 0x0f, 0xff, 0xff}, p.Bytes())

	require.True(t, p.Blt1(4, 0, 8, 1, DstInvert))
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, p.Bytes())

	require.True(t, p.Blt1(0, 1, 16, 1, Blackness))
	require.True(t, p.Blt1(2, 1, 4, 1, Whiteness))
	assert.Equal(t, []byte{0xff, 0xff, 0x3c, 0x00}, p.Bytes())

	// unary transfers clip like binary ones
	assert.False(t, p.Blt1(16, 0, 4, 1, Whiteness))
	require.True(t, p.Blt1(-2, 0, 4, 1, Blackness))
	assert.Equal(t, []byte{0x3f, 0xff, 0x3c, 0x00}, p.Bytes())
}
