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
	"image"
	"image/color"
)

// Gray renders the plane as an 8-bit grayscale image, mapping clear
// bits to black and set bits to white.
func (p *Plane) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, p.width, p.height))
	for y := range p.height {
		row := img.Pix[y*img.Stride:]
		for x := range p.width {
			if p.At(x, y) {
				row[x] = 0xff
			}
		}
	}
	return img
}

// FromImage converts an image into an owned plane of the same size.  A
// pixel becomes a set (white) bit when its grayscale value is at least
// half intensity.  For images holding only pure black and white,
// FromImage is the inverse of Gray.
func FromImage(m image.Image) *Plane {
	bounds := m.Bounds()
	p := New(bounds.Dx(), bounds.Dy())
	for y := range p.height {
		for x := range p.width {
			c := color.GrayModel.Convert(m.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			if c.Y >= 0x80 {
				p.Set(x, y, true)
			}
		}
	}
	return p
}
