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

// A blitter binds one raster operation and one phase aligner to a
// destination cursor.  Each store fetches 8 phase-aligned source bits
// if the operation references the source, runs the Boolean logic on the
// scan byte under the cursor, writes the result back and steps one scan
// byte to the right.  Row-to-row displacement is the caller's job.
type blitter struct {
	rop   func(d, s byte) byte
	fetch bool // the operation references the source operand
	src   aligner
	pix   []byte // destination buffer
	pos   int    // index of the scan byte under the cursor
}

func newBlitter(op Op, src aligner, pix []byte, pos int) blitter {
	return blitter{
		rop:   ropFuncs[op],
		fetch: op.readsSource(),
		src:   src,
		pix:   pix,
		pos:   pos,
	}
}

// logic evaluates the raster operation for the scan byte under the
// cursor.  Operations without a source operand skip the fetch, which
// also leaves the source cursor where it is.
func (b *blitter) logic() byte {
	var s byte
	if b.fetch {
		s = b.src.fetch()
	}
	return b.rop(b.pix[b.pos], s)
}

// store overwrites the scan byte under the cursor and advances.
func (b *blitter) store() {
	b.pix[b.pos] = b.logic()
	b.pos++
}

// storeMasked stores only where the mask has one bits, preserving the
// destination elsewhere, and advances.  Lines whose edges fall inside a
// scan byte use it for their boundary bytes.
func (b *blitter) storeMasked(mask byte) {
	b.pix[b.pos] = b.pix[b.pos]&^mask | mask&b.logic()
	b.pos++
}

// clipOffset returns the smallest offset which moves both origins to
// non-negative positions: the magnitude of the more negative origin, or
// zero when neither is negative.
func clipOffset(a, b int) int {
	switch {
	case a < 0 && a < b:
		return -a
	case a < 0 || b < 0:
		return -b
	}
	return 0
}

// Blt performs a bit-block transfer from the source plane src into the
// plane p.
//
// Parameters x, y, cx and cy give the destination rectangle: bits
// inside it are written, bits outside it are untouched.  The rectangle
// is clipped against both planes; if clipping moves the destination
// origin, the source origin moves by the same amount, so the surviving
// bits land at the position requested rather than at the intersection.
// A negative extent re-anchors the rectangle: it means the origins name
// the far corner instead of the top left one.  Parameters sx and sy
// give the source origin, and op selects how source bits combine with
// destination bits.
//
// Blt reports whether any bits transferred.  A rectangle clipped to
// nothing returns false with no bits modified; this includes transfers
// into or out of an empty plane.
//
// When src is p itself and the source and destination rectangles
// overlap, the result is undefined: the transfer proceeds top to bottom
// and left to right regardless of the overlap direction, so the
// resulting bit pattern is likely not what you want.
func (p *Plane) Blt(x, y, cx, cy int, src *Plane, sx, sy int, op Op) bool {
	// Normalize the extents.  Extents are normally positive.  A
	// negative extent means the origins give the far edge of the
	// rectangle; negate it and move both origins to the rectangle's
	// true origin.
	if cx < 0 {
		cx = -cx
		x -= cx
		sx -= cx
	}
	if cy < 0 {
		cy = -cy
		y -= cy
		sy -= cy
	}

	// The transfer rectangle has one extent but two origins: it may
	// sit at different places in the two planes, and either part may
	// stick out.  Clip per axis.  If an origin is negative, move both
	// origins by the offset that brings them to >= 0 and deflate the
	// extent by the same amount; if the offset consumes the whole
	// extent the rectangle misses the planes entirely (this catches
	// zero extents too).  Then deflate the extent further where it
	// runs past a plane's far edge.
	xoff := clipOffset(x, sx)
	if xoff >= cx {
		return false
	}
	x += xoff
	sx += xoff
	cx -= xoff
	cxMax := p.width - x
	if cxMax <= 0 {
		return false
	}
	if cxMax < cx {
		cx = cxMax
	}
	cxMax = src.width - sx
	if cxMax <= 0 {
		return false
	}
	if cxMax < cx {
		cx = cxMax
	}
	yoff := clipOffset(y, sy)
	if yoff >= cy {
		return false
	}
	y += yoff
	sy += yoff
	cy -= yoff
	cyMax := p.height - y
	if cyMax <= 0 {
		return false
	}
	if cyMax < cy {
		cy = cyMax
	}
	cyMax = src.height - sy
	if cyMax <= 0 {
		return false
	}
	if cyMax < cy {
		cy = cyMax
	}

	// Decide how to fetch the source bits.  The destination phase is
	// x&7, the number of bits from the left edge of its scan byte, and
	// sx&7 is the source phase.  The sign and magnitude of their
	// difference select the strategy and shift count.
	blt := newBlitter(op,
		newAligner(x, sx, src.pix, src.bitIndex(sx, sy)),
		p.pix, p.bitIndex(x, y))

	// The blit walks scan lines top to bottom and scan bytes left to
	// right, always.
	//
	// The last bit of each line sits at x+cx-1.  Its scan byte index
	// minus the first bit's counts the "extra" scan bytes a line
	// touches after the first one; there is always at least the first,
	// because cx > 0.  The masks select the line's bits within its
	// first and last scan byte.
	xMax := x + cx - 1
	extra := xMax>>3 - x>>3
	orgMask := byte(0xff) >> (x & 7)
	extMask := byte(0xff) << (7 - xMax&7)
	displace := p.stride - 1 - extra
	displaceSrc := src.stride - 1 - extra

	if extra == 0 {
		// The line's bits begin and end in the same scan byte.  Merge
		// the masks for a single masked store per line.
		mask := orgMask & extMask
		for range cy {
			blt.src.prefetch()
			blt.storeMasked(mask)
			blt.pos += displace
			blt.src.pos += displaceSrc
		}
	} else {
		for range cy {
			blt.src.prefetch()
			blt.storeMasked(orgMask)
			for n := extra - 1; n > 0; n-- {
				blt.store()
			}
			blt.storeMasked(extMask)
			blt.pos += displace
			blt.src.pos += displaceSrc
		}
	}
	return true
}

// Blt1 performs a unary bit-block transfer: it combines the bits of the
// destination rectangle with themselves through op, under the same
// clipping rules as Blt.  Blackness clears the rectangle, Whiteness
// sets it, and DstInvert inverts it.
func (p *Plane) Blt1(x, y, cx, cy int, op Op1) bool {
	// Not separately optimized: delegate to the binary form with the
	// plane as its own source.  The phase aligner is set up but, the
	// operation being unary, never fetches.
	return p.Blt(x, y, cx, cy, p, x, y, Op(op))
}
