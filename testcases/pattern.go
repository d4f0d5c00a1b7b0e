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

// patternCases recreate the classic pattern-painting demos: a small
// source block tiled across the destination by repeated copies.
var patternCases = makePatternCases()

// tile covers a w by h destination with copies of a pw by ph source
// block.  Blocks sticking out past the right and bottom edges rely on
// clipping.
func tile(w, h, pw, ph int) []Step {
	var steps []Step
	for y := 0; y < h; y += ph {
		for x := 0; x < w; x += pw {
			steps = append(steps, Blt{X: x, Y: y, CX: pw, CY: ph, Rop: ropS})
		}
	}
	return steps
}

func makePatternCases() []TestCase {
	return []TestCase{
		{
			Name:      "checker_8x8",
			Width:     8,
			Height:    8,
			Dst:       Empty,
			SrcWidth:  2,
			SrcHeight: 2,
			Src:       Checker,
			Steps:     tile(8, 8, 2, 2),
		},
		{
			Name:      "checker_32x32",
			Width:     32,
			Height:    32,
			Dst:       Empty,
			SrcWidth:  2,
			SrcHeight: 2,
			Src:       Checker,
			Steps:     tile(32, 32, 2, 2),
		},
		{
			// tile size does not divide the destination size
			Name:      "stripes_tiled",
			Width:     42,
			Height:    17,
			Dst:       Empty,
			SrcWidth:  4,
			SrcHeight: 4,
			Src:       Stripes,
			Steps:     tile(42, 17, 4, 4),
		},
		{
			Name:      "star_copy",
			Width:     72,
			Height:    72,
			Dst:       Checker,
			SrcWidth:  64,
			SrcHeight: 64,
			Src:       Star,
			Steps:     []Step{Blt{X: 5, Y: 3, CX: 64, CY: 64, Rop: ropS}},
		},
		{
			Name:      "star_merge",
			Width:     64,
			Height:    64,
			Dst:       Stripes,
			SrcWidth:  64,
			SrcHeight: 64,
			Src:       Star,
			Steps: []Step{
				Blt{CX: 64, CY: 64, Rop: ropDSo},
				Blt{X: 1, CX: 63, CY: 64, Rop: ropDSx},
			},
		},
	}
}
