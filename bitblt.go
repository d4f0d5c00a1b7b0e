// Package bitblt implements bit-block transfers between monochrome bit
// planes.
//
// A Plane is a rectangular array of bits mapped one-to-one with pixels.
// Blt transfers a rectangular block of bits from a source plane into a
// destination plane, combining source and destination bits through one
// of 16 binary raster operations, clipping the rectangle against both
// planes and shifting fetched source bits into phase with the
// destination when the two origins disagree modulo 8.  This is the
// classic windowing-toolkit BitBlt primitive, implemented from scratch
// at the bit level.
package bitblt

//go:generate go run ./testcases/export

import "seehuhn.de/go/bitblt/testcases"

// RunExample builds the planes of a test case and applies its steps in
// order.  It returns the final destination plane.
func RunExample(tc testcases.TestCase) *Plane {
	dst := Wrap(tc.Width, tc.Height, tc.DstBits())
	src := Wrap(tc.SrcWidth, tc.SrcHeight, tc.SrcBits())
	for _, step := range tc.Steps {
		switch s := step.(type) {
		case testcases.Blt:
			dst.Blt(s.X, s.Y, s.CX, s.CY, src, s.SX, s.SY, Op(s.Rop))
		case testcases.Blt1:
			dst.Blt1(s.X, s.Y, s.CX, s.CY, Op1(s.Rop))
		}
	}
	return dst
}
