// Package source provides pseudo random Sources for the generators in
// widerand.
package source

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
	"github.com/minio/highwayhash"
	"github.com/zeebo/errs"

	"github.com/zeebo/widerand/internal/pcg"
)

// Error wraps all of the errors returned by this package.
var Error = errs.Class("source")

// T is a pcg backed source of uniform randomness. It is cheap to construct
// and not safe for concurrent use.
type T struct {
	gen pcg.T
}

// New constructs a source from the given pcg state and stream increment.
// Equal arguments yield equal draw sequences.
func New(state, inc uint64) *T {
	return &T{gen: pcg.New(state, inc)}
}

// FromString constructs a source seeded deterministically from a label,
// so that named streams are reproducible across runs.
func FromString(s string) *T {
	return New(xxhash.Sum64String(s), xxhash.Sum64String(s+"\x00"))
}

// Keyed constructs a source whose seed is derived from material under a 32
// byte key, so that holders of different keys get unrelated streams for the
// same material.
func Keyed(material, key []byte) (*T, error) {
	h, err := highwayhash.New128(key)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	_, _ = h.Write(material)
	sum := h.Sum(nil)

	return New(
		binary.LittleEndian.Uint64(sum[0:8]),
		binary.LittleEndian.Uint64(sum[8:16]),
	), nil
}

// Uint32 returns an unconstrained random 32 bit value.
func (t *T) Uint32() uint32 { return t.gen.Uint32() }

// Uint32Range returns a random value in [lo, hi] inclusive. It requires
// lo <= hi.
func (t *T) Uint32Range(lo, hi uint32) uint32 { return t.gen.Uint32Range(lo, hi) }
