package geom2

import "math"

// DefaultPosEqualEps is the default fuzzy equality tolerance for coordinate
// comparisons (spec: pos_equal_eps).
const DefaultPosEqualEps = 1e-5

// FuzzyEqualEps reports whether a and b differ by no more than eps.
func FuzzyEqualEps(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// FuzzyEqual reports whether a and b differ by no more than DefaultPosEqualEps.
func FuzzyEqual(a, b float64) bool {
	return FuzzyEqualEps(a, b, DefaultPosEqualEps)
}

// FuzzyZeroEps reports whether a is within eps of zero.
func FuzzyZeroEps(a, eps float64) bool {
	return math.Abs(a) <= eps
}

// FuzzyZero reports whether a is within DefaultPosEqualEps of zero.
func FuzzyZero(a float64) bool {
	return FuzzyZeroEps(a, DefaultPosEqualEps)
}

// FuzzyLessEps reports whether a < b, treating values within eps as equal
// (so never true when a and b are fuzzy-equal).
func FuzzyLessEps(a, b, eps float64) bool {
	return a < b-eps
}

// FuzzyGreaterEps reports whether a > b, treating values within eps as equal.
func FuzzyGreaterEps(a, b, eps float64) bool {
	return a > b+eps
}

// FuzzyInRangeEps reports whether a lies within [min, max] inclusive, with
// eps tolerance at the boundary.
func FuzzyInRangeEps(a, min, max, eps float64) bool {
	return !FuzzyLessEps(a, min, eps) && !FuzzyGreaterEps(a, max, eps)
}

// MinMax returns a and b sorted in ascending order.
func MinMax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}

// TotalCompare is a NaN-safe total ordering comparator: it returns -1, 0, or
// 1, treating NaN as greater than every other value (and equal to itself) so
// that sorts never panic or loop on polluted input.
func TotalCompare(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
