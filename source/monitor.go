package source

import (
	"github.com/zeebo/widerand"
	"github.com/zeebo/widerand/internal/mon"
)

// Monitor wraps a source and accounts every draw it hands out, which is
// handy for measuring how much entropy a generation consumes.
type Monitor struct {
	src  widerand.Source
	ring mon.Ring
}

// NewMonitor wraps src, counting draws and keeping a ring of recent values.
func NewMonitor(src widerand.Source) *Monitor {
	return &Monitor{src: src}
}

// Uint32 returns an unconstrained random 32 bit value, recording it.
func (m *Monitor) Uint32() uint32 {
	v := m.src.Uint32()
	m.ring.Record(v)
	return v
}

// Uint32Range returns a random value in [lo, hi] inclusive, recording it.
func (m *Monitor) Uint32Range(lo, hi uint32) uint32 {
	v := m.src.Uint32Range(lo, hi)
	m.ring.Record(v)
	return v
}

// Draws returns how many values have been handed out.
func (m *Monitor) Draws() int64 { return m.ring.Total() }

// Recent returns a copy of the most recently handed out values.
func (m *Monitor) Recent() []uint32 { return m.ring.Recent() }

// Average returns the average of the recent values.
func (m *Monitor) Average() float64 { return m.ring.Average() }
