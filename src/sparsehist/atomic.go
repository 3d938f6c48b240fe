package sparsehist

import (
	"sync/atomic"
)

// AtomicHist is the concurrent recorder that sits in front of the sparse
// layer. Goroutines record into a fixed array of atomic counters; the
// sparse code itself never sees it. Snapshot drains the counters into a
// plain LogHist, and only that quiesced snapshot is converted or merged.
type AtomicHist struct {
	m uint32
	r uint32
	n uint32

	linear int
	sub    int

	counts []atomic.Uint32
	count  atomic.Uint64
	sum    atomic.Uint64
}

// NewAtomicHist returns a concurrent recorder with the same bucket
// geometry as NewLogHist(m, r, n).
func NewAtomicHist(m, r, n uint32) (*AtomicHist, error) {
	template, err := NewLogHist(m, r, n)
	if err != nil {
		return nil, err
	}

	return &AtomicHist{
		m:      m,
		r:      r,
		n:      n,
		linear: template.linear,
		sub:    template.sub,
		counts: make([]atomic.Uint32, template.NumBuckets()),
	}, nil
}

// Parameters returns the (m, r, n) configuration triple.
func (a *AtomicHist) Parameters() (m, r, n uint32) {
	return a.m, a.r, a.n
}

// RecordValue records a single observation. Safe for concurrent use.
func (a *AtomicHist) RecordValue(value uint64) {
	a.RecordValues(value, 1)
}

// RecordValues records n observations of value. Safe for concurrent use.
func (a *AtomicHist) RecordValues(value uint64, n uint32) {
	i := bucketIndex(a.m, a.r, a.n, a.linear, a.sub, len(a.counts), value)
	a.counts[i].Add(n)
	a.count.Add(uint64(n))
	a.sum.Add(value * uint64(n))
}

// TotalCount returns the number of observations recorded since the last
// snapshot.
func (a *AtomicHist) TotalCount() uint64 {
	return a.count.Load()
}

// Snapshot swaps every counter back to zero and returns the drained
// counts as a plain dense histogram. Counts recorded while the swap is in
// flight land in the next interval.
func (a *AtomicHist) Snapshot() *LogHist {
	h, _ := NewLogHist(a.m, a.r, a.n)

	for i := range a.counts {
		h.counts[i] = a.counts[i].Swap(0)
	}
	h.count = a.count.Swap(0)
	h.sum = a.sum.Swap(0)

	return h
}
