// Command export writes the final destination plane of every test case
// as a PNG image under testdata/images.
// Run from the bitblt module root directory.
package main

import (
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/bitblt"
	"seehuhn.de/go/bitblt/testcases"
)

func main() {
	dir := filepath.Join("testdata", "images")
	if err := os.MkdirAll(dir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			dst := bitblt.RunExample(tc)
			if dst.Width() == 0 || dst.Height() == 0 {
				continue // png cannot encode empty images
			}
			name := filepath.Join(dir, category+"_"+tc.Name+".png")
			if err := writePNG(name, dst); err != nil {
				panic(err)
			}
		}
	}
}

func writePNG(name string, p *bitblt.Plane) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, p.Gray())
}
