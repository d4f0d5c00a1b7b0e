package testcases

// clipCases cover rectangle clipping: negative origins on either side,
// extents running past the planes, negative and zero extents, and
// empty planes.
var clipCases = []TestCase{
	{
		Name:      "dst_origin_negative",
		Width:     32,
		Height:    16,
		Dst:       Stripes,
		SrcWidth:  24,
		SrcHeight: 12,
		Src:       Noise,
		Seed:      200,
		Steps: []Step{
			Blt{X: -5, Y: -3, CX: 20, CY: 10, SX: 2, SY: 1, Rop: ropS},
		},
	},
	{
		Name:      "src_origin_negative",
		Width:     32,
		Height:    16,
		Dst:       Stripes,
		SrcWidth:  24,
		SrcHeight: 12,
		Src:       Noise,
		Seed:      201,
		Steps: []Step{
			Blt{X: 4, Y: 2, CX: 20, CY: 10, SX: -6, SY: -2, Rop: ropS},
		},
	},
	{
		// x is the more negative origin horizontally, sy vertically
		Name:      "both_origins_negative",
		Width:     32,
		Height:    16,
		Dst:       Stripes,
		SrcWidth:  24,
		SrcHeight: 12,
		Src:       Noise,
		Seed:      202,
		Steps: []Step{
			Blt{X: -7, Y: -1, CX: 20, CY: 10, SX: -3, SY: -5, Rop: ropS},
		},
	},
	{
		Name:      "dst_overflow",
		Width:     32,
		Height:    16,
		Dst:       Stripes,
		SrcWidth:  24,
		SrcHeight: 12,
		Src:       Noise,
		Seed:      203,
		Steps: []Step{
			Blt{X: 20, Y: 10, CX: 30, CY: 30, Rop: ropDSx},
		},
	},
	{
		Name:      "src_overflow",
		Width:     32,
		Height:    16,
		Dst:       Stripes,
		SrcWidth:  24,
		SrcHeight: 12,
		Src:       Noise,
		Seed:      204,
		Steps: []Step{
			Blt{X: 1, Y: 1, CX: 30, CY: 14, SX: 10, SY: 6, Rop: ropDSo},
		},
	},
	{
		Name:      "negative_extent",
		Width:     32,
		Height:    16,
		Dst:       Stripes,
		SrcWidth:  24,
		SrcHeight: 12,
		Src:       Noise,
		Seed:      205,
		Steps: []Step{
			Blt{X: 25, Y: 12, CX: -20, CY: -8, SX: 22, SY: 10, Rop: ropS},
		},
	},
	{
		// the re-anchored origin falls off the left edge
		Name:      "negative_extent_overflow",
		Width:     32,
		Height:    16,
		Dst:       Stripes,
		SrcWidth:  24,
		SrcHeight: 12,
		Src:       Noise,
		Seed:      206,
		Steps: []Step{
			Blt{X: 10, Y: 5, CX: -20, CY: -10, SX: 8, SY: 4, Rop: ropS},
		},
	},
	{
		Name:      "zero_extent",
		Width:     32,
		Height:    16,
		Dst:       Stripes,
		SrcWidth:  24,
		SrcHeight: 12,
		Src:       Noise,
		Seed:      207,
		Steps: []Step{
			Blt{X: 4, Y: 4, CY: 5, Rop: ropS},
			Blt{X: 4, Y: 4, CX: 5, Rop: ropS},
		},
	},
	{
		Name:      "outside",
		Width:     32,
		Height:    16,
		Dst:       Stripes,
		SrcWidth:  24,
		SrcHeight: 12,
		Src:       Noise,
		Seed:      208,
		Steps: []Step{
			Blt{X: 40, CX: 8, CY: 8, Rop: ropS},
			Blt{X: -30, Y: 2, CX: 8, CY: 8, Rop: ropS},
			Blt{Y: 16, CX: 8, CY: 8, Rop: ropS},
		},
	},
	{
		Name:      "empty_dst",
		Dst:       Empty,
		SrcWidth:  24,
		SrcHeight: 12,
		Src:       Noise,
		Seed:      209,
		Steps: []Step{
			Blt{CX: 8, CY: 8, Rop: ropS},
		},
	},
	{
		Name:   "empty_src",
		Width:  32,
		Height: 16,
		Dst:    Stripes,
		Src:    Empty,
		Seed:   210,
		Steps: []Step{
			Blt{CX: 8, CY: 8, Rop: ropS},
			Blt1{X: 2, Y: 2, CX: 4, CY: 4, Rop: ropOne},
		},
	},
	{
		Name:      "corner_pixels",
		Width:     32,
		Height:    16,
		Dst:       Empty,
		SrcWidth:  24,
		SrcHeight: 12,
		Src:       Full,
		Seed:      211,
		Steps: []Step{
			Blt{CX: 1, CY: 1, SX: 23, SY: 11, Rop: ropS},
			Blt{X: 31, CX: 1, CY: 1, Rop: ropS},
			Blt{Y: 15, CX: 1, CY: 1, SX: 5, SY: 5, Rop: ropS},
			Blt{X: 31, Y: 15, CX: 1, CY: 1, Rop: ropS},
		},
	},
}
