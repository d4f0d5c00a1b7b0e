package testcases

import "fmt"

// copyCases exercise plain source copies: the full grid of sub-byte
// origin phases, so that every phase-align strategy runs, plus lines
// which fit in a single scan byte and exact full-plane round trips.
var copyCases = makeCopyCases()

func makeCopyCases() []TestCase {
	cases := []TestCase{
		{
			Name:      "full_plane",
			Width:     48,
			Height:    20,
			Dst:       Empty,
			SrcWidth:  48,
			SrcHeight: 20,
			Src:       Noise,
			Seed:      1,
			Steps:     []Step{Blt{CX: 48, CY: 20, Rop: ropS}},
		},
		{
			Name:      "full_plane_narrow",
			Width:     7,
			Height:    9,
			Dst:       Full,
			SrcWidth:  7,
			SrcHeight: 9,
			Src:       Noise,
			Seed:      2,
			Steps:     []Step{Blt{CX: 7, CY: 9, Rop: ropS}},
		},
		{
			Name:      "one_column",
			Width:     8,
			Height:    64,
			Dst:       Stripes,
			SrcWidth:  8,
			SrcHeight: 64,
			Src:       Noise,
			Seed:      3,
			Steps:     []Step{Blt{X: 7, CX: 1, CY: 64, SX: 0, Rop: ropS}},
		},
	}

	// a 25x13 block between every pair of sub-byte phases
	for dx := range 8 {
		for sx := range 8 {
			cases = append(cases, TestCase{
				Name:      fmt.Sprintf("phase_d%d_s%d", dx, sx),
				Width:     48,
				Height:    20,
				Dst:       Stripes,
				SrcWidth:  40,
				SrcHeight: 18,
				Src:       Noise,
				Seed:      uint64(10 + dx*8 + sx),
				Steps: []Step{
					Blt{X: 8 + dx, Y: 3, CX: 25, CY: 13, SX: sx, SY: 2, Rop: ropS},
				},
			})
		}
	}

	// lines which begin and end inside the same scan byte
	for dx := range 6 {
		cases = append(cases, TestCase{
			Name:      fmt.Sprintf("single_byte_d%d", dx),
			Width:     16,
			Height:    8,
			Dst:       Checker,
			SrcWidth:  16,
			SrcHeight: 8,
			Src:       Noise,
			Seed:      uint64(80 + dx),
			Steps: []Step{
				Blt{X: dx, Y: 1, CX: 3, CY: 5, SX: 5, SY: 0, Rop: ropS},
			},
		})
	}
	return cases
}
