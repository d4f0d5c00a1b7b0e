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

import "fmt"

// Op selects one of the 16 binary raster operations.
//
// The names are Boolean functions in reverse Polish notation: D stands
// for the destination operand, S for the source operand, and the
// lower-case letters a, n, o and x stand for the bitwise operators AND,
// NOT, OR and XOR.  DSon, for example, ORs destination and source and
// then inverts the result.
//
// The numeric codes enumerate the truth tables of two Boolean inputs:
// bit 2*s+d of the code is the function value for source bit s and
// destination bit d.  This encoding is the wire contract for callers
// passing raw codes.
type Op int

// The binary raster operations, in truth-table order.
const (
	Zero Op = iota // 0x00
	DSon           // ^(d | s)
	DSna           // d &^ s
	Sn             // ^s
	SDna           // s &^ d
	Dn             // ^d
	DSx            // d ^ s
	DSan           // ^(d & s)
	DSa            // d & s
	DSxn           // ^(d ^ s)
	D              // d
	DSno           // d | ^s
	S              // s
	SDno           // s | ^d
	DSo            // d | s
	One            // 0xff
)

// NumOps is the number of binary raster operations.
const NumOps = 16

// Windows-style aliases for the common operations.
const (
	NotSrcErase = DSon
	NotSrcCopy  = Sn
	SrcErase    = SDna
	SrcInvert   = DSx
	SrcAnd      = DSa
	MergePaint  = DSno
	SrcCopy     = S
	SrcPaint    = DSo
)

// Op1 selects a unary raster operation for transfers which do not read
// a source plane.  The values are the source-independent subset of the
// binary codes.
type Op1 int

// The unary raster operations.
const (
	Blackness = Op1(Zero)
	DstInvert = Op1(Dn)
	Whiteness = Op1(One)
)

// ropFuncs holds the 16 Boolean functions.  Each function operates on
// all 8 bit positions of its operands simultaneously.
var ropFuncs = [NumOps]func(d, s byte) byte{
	Zero: func(d, s byte) byte { return 0x00 },
	DSon: func(d, s byte) byte { return ^(d | s) },
	DSna: func(d, s byte) byte { return d &^ s },
	Sn:   func(d, s byte) byte { return ^s },
	SDna: func(d, s byte) byte { return s &^ d },
	Dn:   func(d, s byte) byte { return ^d },
	DSx:  func(d, s byte) byte { return d ^ s },
	DSan: func(d, s byte) byte { return ^(d & s) },
	DSa:  func(d, s byte) byte { return d & s },
	DSxn: func(d, s byte) byte { return ^(d ^ s) },
	D:    func(d, s byte) byte { return d },
	DSno: func(d, s byte) byte { return d | ^s },
	S:    func(d, s byte) byte { return s },
	SDno: func(d, s byte) byte { return s | ^d },
	DSo:  func(d, s byte) byte { return d | s },
	One:  func(d, s byte) byte { return 0xff },
}

// Apply combines the destination byte d with the source byte s.  The
// Boolean function is applied to all 8 bit positions at once.  Codes
// outside [0, NumOps) are programming errors and panic.
func (op Op) Apply(d, s byte) byte {
	return ropFuncs[op](d, s)
}

// readsSource reports whether op's Boolean function references the
// source operand.  The low two bits of the code are the truth table for
// s=0, the high two bits the table for s=1; the source is irrelevant
// exactly when the two halves agree.
func (op Op) readsSource() bool {
	return op>>2&3 != op&3
}

var opNames = [NumOps]string{
	"Zero", "DSon", "DSna", "Sn", "SDna", "Dn", "DSx", "DSan",
	"DSa", "DSxn", "D", "DSno", "S", "SDno", "DSo", "One",
}

func (op Op) String() string {
	if op < 0 || op >= NumOps {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}

func (op1 Op1) String() string {
	switch op1 {
	case Blackness:
		return "Blackness"
	case DstInvert:
		return "DstInvert"
	case Whiteness:
		return "Whiteness"
	}
	return fmt.Sprintf("Op1(%d)", int(op1))
}
