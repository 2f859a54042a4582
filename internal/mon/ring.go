package mon

import (
	"sync/atomic"
)

const (
	bufferShift = 8 // 256 elements
	bufferElems = 1 << bufferShift
	bufferMask  = bufferElems - 1
)

// Ring is a ring of the most recently observed draws.
type Ring struct {
	total int64
	vals  [bufferElems]uint32
}

// Record stores v in the ring, incrementing the count.
func (r *Ring) Record(v uint32) {
	loc := &r.vals[(atomic.AddInt64(&r.total, 1)-1)&bufferMask]
	atomic.StoreUint32(loc, v)
}

// Total returns the amount of draws that have been recorded.
func (r *Ring) Total() int64 { return atomic.LoadInt64(&r.total) }

// valsLen returns the number of valid entries in the vals buffer.
func (r *Ring) valsLen() int {
	if n := r.Total(); n < bufferElems {
		return int(n)
	}
	return bufferElems
}

// Recent returns a copy of the observed draws.
func (r *Ring) Recent() []uint32 {
	out := make([]uint32, r.valsLen())
	for i := range out {
		out[i] = atomic.LoadUint32(&r.vals[i])
	}
	return out
}

// Average returns the average of the recent draws.
func (r *Ring) Average() float64 {
	total := float64(0)
	n := r.valsLen()
	for i := 0; i < n; i++ {
		total += float64(atomic.LoadUint32(&r.vals[i]))
	}
	return total / float64(n)
}
