package widerand

import (
	"fmt"
	"testing"

	"github.com/zeebo/widerand/internal/assert"
)

func TestWide(t *testing.T) {
	t.Run("Bounds", func(t *testing.T) {
		for _, width := range []int{1, 7, 8, 32, 33, 52, 64, 255} {
			t.Run(fmt.Sprint(width), func(t *testing.T) {
				w, err := NewWide(width, &gen)
				assert.NoError(t, err)

				for i := 0; i < trials; i++ {
					max, err := w.Random(nil)
					assert.NoError(t, err)

					got, err := w.Random(max)
					assert.NoError(t, err)
					assert.That(t, got.Cmp(max) <= 0)
				}
			})
		}
	})

	t.Run("Range", func(t *testing.T) {
		for _, width := range []int{1, 7, 33, 64, 255} {
			t.Run(fmt.Sprint(width), func(t *testing.T) {
				w, err := NewWide(width, &gen)
				assert.NoError(t, err)

				for i := 0; i < trials; i++ {
					a, err := w.Random(nil)
					assert.NoError(t, err)
					b, err := w.Random(nil)
					assert.NoError(t, err)

					min, max := a, b
					if min.Cmp(max) > 0 {
						min, max = max, min
					}

					got, err := w.RandomRange(min, max)
					assert.NoError(t, err)
					assert.That(t, min.Cmp(got) <= 0)
					assert.That(t, got.Cmp(max) <= 0)
				}
			})
		}
	})

	t.Run("Degenerate", func(t *testing.T) {
		w, err := NewWide(255, &gen)
		assert.NoError(t, err)

		for i := 0; i < 100; i++ {
			v, err := w.Random(nil)
			assert.NoError(t, err)

			got, err := w.RandomRange(v, v)
			assert.NoError(t, err)
			assert.DeepEqual(t, got, v)
		}
	})

	t.Run("Coverage", func(t *testing.T) {
		// a small width should visit every representable value
		w, err := NewWide(7, &gen)
		assert.NoError(t, err)

		seen := make([]bool, 128)
		for i := 0; i < trials; i++ {
			got, err := w.Random(nil)
			assert.NoError(t, err)
			seen[got.Uint64()] = true
		}
		for v, ok := range seen {
			if !ok {
				t.Fatalf("value %d never drawn", v)
			}
		}

		// a full width should visit both halves of the domain
		w, err = NewWide(64, &gen)
		assert.NoError(t, err)

		var top, bottom bool
		for i := 0; i < trials; i++ {
			got, err := w.Random(nil)
			assert.NoError(t, err)
			if got.Bit(63) == 1 {
				top = true
			} else {
				bottom = true
			}
		}
		assert.That(t, top)
		assert.That(t, bottom)
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := NewWide(0, &gen)
		assert.Error(t, err)
		_, err = NewWide(-3, &gen)
		assert.Error(t, err)

		w, err := NewWide(7, &gen)
		assert.NoError(t, err)

		// bound with too many words
		_, err = w.Random(Uint{0, 0})
		assert.Error(t, err)

		// bound with bits above the width
		_, err = w.Random(Uint{0xff})
		assert.Error(t, err)

		// inverted range
		_, err = w.RandomRange(Uint{2}, Uint{1})
		assert.Error(t, err)
	})
}

var blackholeUint Uint

func BenchmarkWide(b *testing.B) {
	w, err := NewWide(255, &gen)
	if err != nil {
		b.Fatal(err)
	}
	max := w.Max()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		blackholeUint, _ = w.Random(max)
	}
}
