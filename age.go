package readability

// Reading-age conversion tables. Each table maps metric values to estimated
// reading ages; queries between breakpoints interpolate linearly and queries
// outside the table clamp to the boundary age.
//
// The reference tables returned clamped boundaries as string sentinels and
// interpolated values as numbers; here both are float64.

type agePoint struct {
	value float64
	age   float64
}

// Ordered by metric value ascending. FRES runs inverse to age: a higher
// score means easier text and a younger reader.
var fresAges = []agePoint{
	{30, 24}, {50, 18}, {60, 15}, {70, 13}, {80, 12}, {90, 11}, {100, 10},
}

var ariAges = []agePoint{
	{1, 5}, {2, 6}, {3, 7}, {4, 9}, {5, 10}, {6, 11}, {7, 12},
	{8, 13}, {9, 14}, {10, 15}, {11, 16}, {12, 17}, {13, 18}, {14, 24},
}

var gfiAges = []agePoint{
	{6, 11}, {7, 12}, {8, 13}, {9, 14}, {10, 15}, {11, 16},
	{12, 17}, {13, 19}, {14, 20}, {15, 21}, {16, 23}, {17, 24},
}

// ConvertFRES maps a Flesch Reading Ease Score to an estimated reading age.
// Scores below 30 clamp to age 24, scores above 100 to age 10.
func ConvertFRES(value float64) float64 {
	if value < 30 {
		return 24
	}
	if value > 100 {
		return 10
	}
	return interpolate(fresAges, value)
}

// ConvertARI maps an Automated Readability Index to an estimated reading
// age. Values above 14 clamp to age 24, values below 1 to age 5.
func ConvertARI(value float64) float64 {
	if value > 14 {
		return 24
	}
	if value < 1 {
		return 5
	}
	return interpolate(ariAges, value)
}

// ConvertGFI maps a Gunning Fog Index to an estimated reading age. Values
// above 17 clamp to age 24, values below 6 to age 11.
func ConvertGFI(value float64) float64 {
	if value > 17 {
		return 24
	}
	if value < 6 {
		return 11
	}
	return interpolate(gfiAges, value)
}

func interpolate(points []agePoint, v float64) float64 {
	for i := 1; i < len(points); i++ {
		if v <= points[i].value {
			lo, hi := points[i-1], points[i]
			t := (v - lo.value) / (hi.value - lo.value)
			return lo.age + t*(hi.age-lo.age)
		}
	}
	return points[len(points)-1].age
}
