// Package widerand generates random unsigned integers of arbitrary bit
// width and random IEEE-754 doubles constrained to an inclusive range. It
// builds both out of the 32 bit draws a Source hands out.
package widerand

import (
	"github.com/zeebo/errs"
)

// Error wraps all of the errors returned by this package.
var Error = errs.Class("widerand")

// Source is the uniform randomness a generator consumes. Implementations
// are not required to be safe for concurrent use; callers sharing one
// across goroutines must synchronize it themselves.
type Source interface {
	// Uint32 returns an unconstrained random 32 bit value.
	Uint32() uint32

	// Uint32Range returns a random value in [lo, hi] inclusive. It
	// requires lo <= hi.
	Uint32Range(lo, hi uint32) uint32
}
