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

// Command smoke tiles a 2x2 pattern block across a 32x32 plane using
// repeated copy transfers, prints the result as text art, and exits
// non-zero if any bit disagrees with the expected checkerboard.
package main

import (
	"fmt"
	"os"

	"seehuhn.de/go/bitblt"
)

func main() {
	pat := bitblt.Wrap(2, 2, []byte{
		0x40, // .#
		0x80, // #.
	})

	img := bitblt.New(32, 32)
	for y := 0; y < img.Height(); y += pat.Height() {
		for x := 0; x < img.Width(); x += pat.Width() {
			img.Blt(x, y, pat.Width(), pat.Height(), pat, 0, 0, bitblt.SrcCopy)
		}
	}

	fmt.Print(img)

	for y := range img.Height() {
		for x := range img.Width() {
			want := (x&1)^(y&1) != 0
			if img.At(x, y) != want {
				fmt.Fprintf(os.Stderr, "smoke: bit (%d, %d) is wrong\n", x, y)
				os.Exit(1)
			}
		}
	}
}
