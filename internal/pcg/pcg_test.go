package pcg

import (
	"testing"

	"github.com/zeebo/widerand/internal/assert"
)

func TestPCG(t *testing.T) {
	pi := New(2345, 2378)
	out := make([]uint32, 10)
	for i := range out {
		out[i] = pi.Uint32()
	}

	// this is for a left rotate
	assert.DeepEqual(t, out, []uint32{
		0xa066bccc,
		0xee77540c,
		0x69020df4,
		0x981fbe29,
		0xb85fc8bf,
		0xb3f67bbc,
		0xb0c96811,
		0xbe14c31a,
		0x38a77bed,
		0x5a330581,
	})
}

func TestPCGZero(t *testing.T) {
	var a T
	b := New(0, 0)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Uint32(), b.Uint32())
	}
}

func TestPCGRange(t *testing.T) {
	pi := New(2345, 2378)

	for i := 0; i < 10000; i++ {
		v := pi.Uint32Range(100, 200)
		assert.That(t, v >= 100)
		assert.That(t, v <= 200)
	}

	// degenerate span
	assert.Equal(t, pi.Uint32Range(7, 7), uint32(7))

	// a span above 1<<31 must not wrap
	for i := 0; i < 10000; i++ {
		assert.That(t, pi.Uint32Range(1, ^uint32(0)) >= 1)
	}

	// the full span cannot be represented and falls back to a raw draw
	var lo, hi bool
	for i := 0; i < 10000; i++ {
		if pi.Uint32Range(0, ^uint32(0)) < 1<<31 {
			lo = true
		} else {
			hi = true
		}
	}
	assert.That(t, lo)
	assert.That(t, hi)
}

var blackholeUint32 uint32

func BenchmarkPCG(b *testing.B) {
	pi := New(2345, 2378)

	for i := 0; i < b.N; i++ {
		blackholeUint32 += pi.Uint32()
	}
}

func BenchmarkPCGRange(b *testing.B) {
	pi := New(2345, 2378)

	for i := 0; i < b.N; i++ {
		blackholeUint32 += pi.Uint32Range(100, 200)
	}
}
