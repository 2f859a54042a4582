package widerand

import (
	"math"
)

// Epsilon is the default tolerance for ApproxEqual.
const Epsilon = 1e-5

// ApproxEqual reports whether a and b are within eps of each other, along
// with the magnitude of their difference. The comparison is strict: values
// exactly eps apart are not equal. NaN and infinite inputs get no special
// treatment; in particular the difference of two like-signed infinities is
// NaN and compares unequal.
func ApproxEqual(a, b, eps float64) (bool, float64) {
	delta := math.Abs(a - b)
	return delta < eps, delta
}
