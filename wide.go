package widerand

import (
	"github.com/zeebo/widerand/internal/debug"
)

// Wide draws random unsigned integers of a fixed bit width, composing them
// out of 32 bit draws so that widths beyond the native 32 bits work.
type Wide struct {
	width int
	mask  uint32 // valid bits in the most significant word
	src   Source
}

// NewWide constructs a generator for width bit integers drawing from src.
// The width must be positive.
func NewWide(width int, src Source) (*Wide, error) {
	if width <= 0 {
		return nil, Error.New("unsupported width: %d", width)
	}
	return &Wide{
		width: width,
		mask:  topMask(width),
		src:   src,
	}, nil
}

// Width returns the configured bit width.
func (w *Wide) Width() int { return w.width }

// Max returns the largest representable value, all width bits set.
func (w *Wide) Max() Uint {
	u := NewUint(w.width)
	for i := range u {
		u[i] = ^uint32(0)
	}
	u[len(u)-1] = w.mask
	return u
}

// Random draws a value in [0, max]. A nil max means the full width.
func (w *Wide) Random(max Uint) (Uint, error) {
	return w.RandomRange(nil, max)
}

// RandomRange draws a value in [min, max] inclusive. A nil min means zero
// and a nil max means the largest representable value.
//
// Words are drawn most significant first. A word stays constrained by a
// bound only while every higher word drawn so far equals that bound's
// corresponding word; once the drawn prefix diverges from a bound's prefix
// that bound can no longer be violated and its side goes unconstrained for
// the remaining words.
func (w *Wide) RandomRange(min, max Uint) (Uint, error) {
	if max == nil {
		max = w.Max()
	}
	if min == nil {
		min = NewUint(w.width)
	}
	if err := w.check(min); err != nil {
		return nil, err
	}
	if err := w.check(max); err != nil {
		return nil, err
	}
	if min.Cmp(max) > 0 {
		return nil, Error.New("invalid range: min %v > max %v", min, max)
	}

	out := NewUint(w.width)
	pinLo, pinHi := true, true
	for i := len(out) - 1; i >= 0; i-- {
		lo, hi := uint32(0), ^uint32(0)
		if i == len(out)-1 {
			hi = w.mask
		}
		if pinLo {
			lo = min[i]
		}
		if pinHi {
			hi = max[i]
		}

		d := w.src.Uint32Range(lo, hi)
		out[i] = d

		pinLo = pinLo && d == min[i]
		pinHi = pinHi && d == max[i]
	}

	debug.Assert("draw within bounds", func() bool {
		return min.Cmp(out) <= 0 && out.Cmp(max) <= 0
	})

	return out, nil
}

// check verifies that the bound covers exactly the configured width.
func (w *Wide) check(u Uint) error {
	if len(u) != words(w.width) {
		return Error.New("bound has %d words, want %d", len(u), words(w.width))
	}
	if u[len(u)-1]&^w.mask != 0 {
		return Error.New("bound exceeds %d bit width", w.width)
	}
	return nil
}
