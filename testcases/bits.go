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

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"

	"golang.org/x/image/vector"
)

// Bits materializes a pattern as MSB-first scan bytes with a stride of
// ceil(width/8) bytes per row, ready for wrapping into a bit plane.
// The seed matters only for Noise.
func Bits(p Pattern, width, height int, seed uint64) []byte {
	stride := (width + 7) / 8
	pix := make([]byte, stride*height)
	switch p {
	case Full:
		for i := range pix {
			pix[i] = 0xff
		}
	case Checker:
		for y := range height {
			for x := range width {
				if (x&1)^(y&1) != 0 {
					pix[y*stride+x/8] |= 0x80 >> (x % 8)
				}
			}
		}
	case Stripes:
		for y := range height {
			for x := range width {
				if x>>1&1 != 0 {
					pix[y*stride+x/8] |= 0x80 >> (x % 8)
				}
			}
		}
	case Noise:
		rng := rand.New(rand.NewPCG(seed, 0x626c74))
		for i := range pix {
			pix[i] = byte(rng.Uint32())
		}
	case Star:
		starBits(pix, width, height, stride)
	}
	return pix
}

// starBits rasterizes a filled five-pointed star through
// x/image/vector and thresholds the coverage at half intensity.
func starBits(pix []byte, width, height, stride int) {
	if width <= 0 || height <= 0 {
		return
	}
	cx := float64(width) / 2
	cy := float64(height) / 2
	radius := min(cx, cy) * 0.95

	// five points, connecting every second point
	var pts [5][2]float32
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = [2]float32{
			float32(cx + radius*math.Cos(angle)),
			float32(cy + radius*math.Sin(angle)),
		}
	}

	r := vector.NewRasterizer(width, height)
	order := []int{0, 2, 4, 1, 3}
	r.MoveTo(pts[order[0]][0], pts[order[0]][1])
	for _, i := range order[1:] {
		r.LineTo(pts[i][0], pts[i][1])
	}
	r.ClosePath()

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 0xff}), image.Point{})

	for y := range height {
		for x := range width {
			if dst.Pix[y*dst.Stride+x] >= 0x80 {
				pix[y*stride+x/8] |= 0x80 >> (x % 8)
			}
		}
	}
}
