package widerand

import (
	"math"
)

const (
	mantissaBits = 52
	exponentBits = 11
	exponentBias = 1023
	exponentMask = 1<<exponentBits - 1
	mantissaMask = 1<<mantissaBits - 1
)

// MinExponent is the unbiased exponent of the zero/denormal band. Using it
// as a floor places no restriction on how small a draw may get.
const MinExponent = -exponentBias

// Real draws random doubles constrained to an inclusive range. The sign,
// exponent, and mantissa fields are drawn independently and assembled, so
// the result lands on the requested range at the bit level rather than by
// scaling a unit draw.
type Real struct {
	src  Source
	mant *Wide
}

// NewReal constructs a generator drawing from src.
func NewReal(src Source) *Real {
	mant, _ := NewWide(mantissaBits, src) // 52 is a valid width
	return &Real{src: src, mant: mant}
}

// bound is the exponent and mantissa half of a decomposed double.
type bound struct {
	exp  uint32
	mant uint64
}

// split breaks f into its sign bit and its exponent/mantissa fields.
func split(f float64) (sign uint32, b bound) {
	u := math.Float64bits(f)
	return uint32(u >> 63), bound{
		exp:  uint32(u>>mantissaBits) & exponentMask,
		mant: u & mantissaMask,
	}
}

// Random draws a value in [min, max] with no exponent floor.
func (r *Real) Random(min, max float64) (float64, error) {
	return r.RandomMinExp(min, max, MinExponent)
}

// RandomMinExp draws a value in [min, max] whose unbiased exponent is at
// least minExp, so callers can keep results away from the denormal band.
// Infinite or NaN bounds are not guarded; the result is whatever the field
// arithmetic yields.
func (r *Real) RandomMinExp(min, max float64, minExp int) (float64, error) {
	if min > max {
		return 0, Error.New("invalid range: min %v > max %v", min, max)
	}

	minSign, minB := split(min)
	maxSign, maxB := split(max)

	// The sign is forced whenever the range lies on one side of zero and
	// drawn otherwise.
	var sign uint32
	switch {
	case maxSign == 1:
		sign = 1
	case minSign == 0:
		sign = 0
	default:
		sign = r.src.Uint32Range(0, 1)
	}

	// Pick which input's fields limit the magnitude. For a negative result
	// the roles flip: min holds the larger magnitude. A range straddling
	// zero bottoms out at magnitude zero on either side.
	var lo, hi bound
	switch {
	case sign == 0 && minSign == 1:
		lo, hi = bound{}, maxB
	case sign == 0:
		lo, hi = minB, maxB
	case maxSign == 0:
		lo, hi = bound{}, minB
	default:
		lo, hi = maxB, minB
	}

	// Clamp the low exponent up to the caller's floor. The mantissa bound
	// belonged to the unclamped exponent, so it resets to zero.
	if floor := biased(minExp); lo.exp < floor {
		if floor > hi.exp {
			return 0, Error.New("exponent floor %d excludes range [%v, %v]", minExp, min, max)
		}
		lo = bound{exp: floor}
	}

	exp := r.src.Uint32Range(lo.exp, hi.exp)
	mant, err := r.mantissa(exp, lo, hi)
	if err != nil {
		return 0, err
	}

	u := uint64(sign)<<63 | uint64(exp)<<mantissaBits | mant
	return math.Float64frombits(u), nil
}

// mantissa draws the 52 bit mantissa for the chosen exponent. A bound only
// applies when the exponent landed on the matching edge of the range;
// interior exponents take the full field.
func (r *Real) mantissa(exp uint32, lo, hi bound) (uint64, error) {
	var min, max Uint
	if exp == hi.exp {
		max = UintFrom64(mantissaBits, hi.mant)
	}
	if exp == lo.exp {
		min = UintFrom64(mantissaBits, lo.mant)
	}

	u, err := r.mant.RandomRange(min, max)
	if err != nil {
		return 0, err
	}
	return u.Uint64(), nil
}

// biased converts an unbiased exponent to the stored field, saturating at
// the zero/denormal band.
func biased(exp int) uint32 {
	if exp < -exponentBias {
		exp = -exponentBias
	}
	return uint32(exp + exponentBias)
}
