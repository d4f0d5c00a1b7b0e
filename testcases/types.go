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

package testcases

// TestCase defines a single blitting test: the initial destination and
// source planes, and a sequence of transfer steps applied to the
// destination.
type TestCase struct {
	Name      string // lowercase a-z, 0-9 and _ only
	Width     int    // destination width in bits
	Height    int    // destination height in rows
	Dst       Pattern
	SrcWidth  int // source width in bits (0 for source-free cases)
	SrcHeight int // source height in rows
	Src       Pattern
	Seed      uint64 // seed for Noise patterns
	Steps     []Step
}

// DstBits materializes the initial destination plane.
func (tc TestCase) DstBits() []byte {
	return Bits(tc.Dst, tc.Width, tc.Height, tc.Seed)
}

// SrcBits materializes the initial source plane.  The source draws from
// a noise stream distinct from the destination's.
func (tc TestCase) SrcBits() []byte {
	return Bits(tc.Src, tc.SrcWidth, tc.SrcHeight, tc.Seed+1)
}

// Step is one transfer applied to the destination plane.
type Step interface {
	isStep()
}

// Blt is a binary transfer step.  Rop is the raster-operation code in
// truth-table order, 0 to 15.
type Blt struct {
	X, Y   int // destination origin
	CX, CY int // extent
	SX, SY int // source origin
	Rop    int
}

func (Blt) isStep() {}

// Blt1 is a unary transfer step.  Rop must be one of the
// source-independent raster-operation codes: 0 (blackness),
// 5 (destination invert) or 15 (whiteness).
type Blt1 struct {
	X, Y   int // destination origin
	CX, CY int // extent
	Rop    int
}

func (Blt1) isStep() {}

// The raster-operation codes, for use in case definitions.  The names
// are reverse Polish: D destination, S source, a AND, n NOT, o OR,
// x XOR.
const (
	ropZero = iota
	ropDSon
	ropDSna
	ropSn
	ropSDna
	ropDn
	ropDSx
	ropDSan
	ropDSa
	ropDSxn
	ropD
	ropDSno
	ropS
	ropSDno
	ropDSo
	ropOne
)

// Pattern selects the initial contents of a plane.
type Pattern int

const (
	Empty   Pattern = iota // all bits clear
	Full                   // all bits set
	Checker                // bit (x, y) = (x&1) ^ (y&1)
	Stripes                // vertical stripes two bits wide
	Noise                  // deterministic pseudo-random bits
	Star                   // a filled five-pointed star
)
