package testcases

// ropCases run each of the 16 binary raster operations over noise
// planes, both in phase and shifted.
var ropCases = makeRopCases()

// ropNames give the case-name spelling of each raster-operation code,
// in truth-table order.
var ropNames = [16]string{
	"zero", "dson", "dsna", "sn", "sdna", "dn", "dsx", "dsan",
	"dsa", "dsxn", "d", "dsno", "s", "sdno", "dso", "one",
}

func makeRopCases() []TestCase {
	var cases []TestCase
	for rop := range 16 {
		cases = append(cases,
			TestCase{
				Name:      ropNames[rop] + "_aligned",
				Width:     64,
				Height:    32,
				Dst:       Noise,
				SrcWidth:  64,
				SrcHeight: 32,
				Src:       Noise,
				Seed:      uint64(100 + 2*rop),
				Steps: []Step{
					Blt{X: 8, Y: 4, CX: 48, CY: 24, SX: 8, SY: 6, Rop: rop},
				},
			},
			TestCase{
				Name:      ropNames[rop] + "_shifted",
				Width:     64,
				Height:    32,
				Dst:       Noise,
				SrcWidth:  64,
				SrcHeight: 32,
				Src:       Noise,
				Seed:      uint64(101 + 2*rop),
				Steps: []Step{
					Blt{X: 3, Y: 4, CX: 49, CY: 24, SX: 6, SY: 1, Rop: rop},
				},
			},
		)
	}
	return cases
}
