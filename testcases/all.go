package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output and reference filenames.
var All = map[string][]TestCase{
	"fill":      fillCases,
	"line":      lineCases,
	"curve":     curveCases,
	"ctm":       ctmCases,
	"precision": precisionCases,
	"large":     largeCases,
	"image":     imageCases,
}
