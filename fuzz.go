// +build gofuzz

package widerand

import (
	"encoding/binary"

	"github.com/zeebo/widerand/internal/pcg"
)

// Fuzz derives a width and a seed from data, draws a pair of bounds, draws
// between them, and panics if the draw escapes the range.
func Fuzz(data []byte) int {
	if len(data) < 17 {
		return 0
	}

	width := int(data[0])%255 + 1
	gen := pcg.New(
		binary.BigEndian.Uint64(data[1:9]),
		binary.BigEndian.Uint64(data[9:17]),
	)

	w, err := NewWide(width, &gen)
	if err != nil {
		return 0
	}

	a, _ := w.Random(nil)
	b, _ := w.Random(nil)
	min, max := a, b
	if min.Cmp(max) > 0 {
		min, max = max, min
	}

	out, err := w.RandomRange(min, max)
	if err != nil {
		panic(err)
	}
	if min.Cmp(out) > 0 || out.Cmp(max) > 0 {
		panic("draw escaped its bounds")
	}

	return 1
}
