package testcases

// unaryCases exercise the source-free transfers.  None of them define a
// source plane.
var unaryCases = []TestCase{
	{
		Name:   "blackness_full",
		Width:  24,
		Height: 10,
		Dst:    Noise,
		Seed:   300,
		Steps:  []Step{Blt1{CX: 24, CY: 10, Rop: ropZero}},
	},
	{
		Name:   "whiteness_full",
		Width:  24,
		Height: 10,
		Dst:    Noise,
		Seed:   301,
		Steps:  []Step{Blt1{CX: 24, CY: 10, Rop: ropOne}},
	},
	{
		Name:   "invert_full",
		Width:  24,
		Height: 10,
		Dst:    Noise,
		Seed:   302,
		Steps:  []Step{Blt1{CX: 24, CY: 10, Rop: ropDn}},
	},
	{
		// window edges fall inside scan bytes
		Name:   "blackness_window",
		Width:  24,
		Height: 10,
		Dst:    Full,
		Steps:  []Step{Blt1{X: 3, Y: 2, CX: 13, CY: 5, Rop: ropZero}},
	},
	{
		Name:   "whiteness_window",
		Width:  24,
		Height: 10,
		Dst:    Checker,
		Steps:  []Step{Blt1{X: 5, Y: 1, CX: 11, CY: 7, Rop: ropOne}},
	},
	{
		// inverting twice restores the original
		Name:   "invert_window_twice",
		Width:  24,
		Height: 10,
		Dst:    Noise,
		Seed:   303,
		Steps: []Step{
			Blt1{X: 2, Y: 3, CX: 17, CY: 4, Rop: ropDn},
			Blt1{X: 2, Y: 3, CX: 17, CY: 4, Rop: ropDn},
		},
	},
	{
		Name:   "invert_clipped",
		Width:  24,
		Height: 10,
		Dst:    Stripes,
		Steps:  []Step{Blt1{X: -4, Y: 8, CX: 40, CY: 20, Rop: ropDn}},
	},
	{
		Name:   "whiteness_negative_extent",
		Width:  24,
		Height: 10,
		Dst:    Noise,
		Seed:   304,
		Steps:  []Step{Blt1{X: 20, Y: 9, CX: -10, CY: -6, Rop: ropOne}},
	},
}
