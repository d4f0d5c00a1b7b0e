package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in artifact filenames.
var All = map[string][]TestCase{
	"copy":    copyCases,
	"rop":     ropCases,
	"clip":    clipCases,
	"unary":   unaryCases,
	"pattern": patternCases,
}
