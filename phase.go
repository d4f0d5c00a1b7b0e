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

// alignMode selects one of the three phase-align strategies.
type alignMode uint8

const (
	alignNone alignMode = iota // source and destination are in phase
	alignLow                   // source bits move towards the low end
	alignHigh                  // source bits move towards the high end
)

// An aligner fetches scan bytes from a source plane and shifts them
// into phase with the destination.  When the first source bit sits at a
// different sub-byte offset than the first destination bit, each
// fetched byte combines bits from two consecutive source bytes; the
// carry register holds the byte fetched last, whose remaining bits the
// next fetch consumes.
//
// An aligner is transfer-local state.  Blt creates one per call, after
// clipping, and drives it with one prefetch per scan line followed by
// one fetch per destination scan byte.
type aligner struct {
	mode  alignMode
	shift uint // shift count, 1 to 7 (alignLow and alignHigh only)
	pix   []byte
	pos   int // index of the next scan byte (alignHigh: of the current one)
	carry byte
}

// newAligner selects the strategy from the sub-byte offsets of the
// destination and source origins.  The shifting strategies never see a
// zero shift count; offsets in phase route to alignNone.
func newAligner(x, sx int, pix []byte, pos int) aligner {
	a := aligner{pix: pix, pos: pos}
	switch shift := x&7 - sx&7; {
	case shift < 0:
		a.mode = alignHigh
		a.shift = uint(-shift)
	case shift > 0:
		a.mode = alignLow
		a.shift = uint(shift)
	}
	return a
}

// prefetch prepares the aligner at the start of a scan line.  Only
// alignHigh loads anything: its first fetch of a line combines the
// line's first scan byte, loaded here, with the second.  For alignLow
// the carry left over from the previous line contributes only bits
// which fall under the line's leading mask.
func (a *aligner) prefetch() {
	if a.mode == alignHigh {
		a.carry = a.load(a.pos)
	}
}

// fetch returns the next 8 source bits, in phase with the destination,
// and steps along the scan line.  Treating carry and the newly loaded
// byte as one 16-bit window, the result is the 8-bit slice at the
// strategy's shift offset.
func (a *aligner) fetch() byte {
	switch a.mode {
	case alignLow:
		b := a.load(a.pos)
		a.pos++
		v := a.carry<<(8-a.shift) | b>>a.shift
		a.carry = b
		return v
	case alignHigh:
		a.pos++
		b := a.load(a.pos)
		v := a.carry<<a.shift | b>>(8-a.shift)
		a.carry = b
		return v
	default: // alignNone
		b := a.load(a.pos)
		a.pos++
		return b
	}
}

// load returns the scan byte at index i, or 0 outside the buffer.  The
// shifting strategies read up to one scan byte beyond the last byte a
// line needs; the surplus bits never survive the edge masks, but on the
// final line the index can fall past the end of the buffer.
func (a *aligner) load(i int) byte {
	if i < 0 || i >= len(a.pix) {
		return 0
	}
	return a.pix[i]
}
