package sparsehist

import (
	"math/bits"
)

// LogHist is the dense log-linear histogram the sparse form is taken from.
//
// Values below 2^r land in linear buckets of width 2^m; past that, every
// power-of-two range [2^k, 2^(k+1)) is split into 2^(r-m-1) buckets, up to
// 2^n. The relative error of a bucket is therefore bounded by the (m, r)
// resolution parameters no matter how large the recorded value is, which
// is the usual trade for request latencies: fine resolution near the
// common case, coarse but bounded at the tail.
type LogHist struct {
	m uint32
	r uint32
	n uint32

	// derived from (m, r, n) at construction
	linear int
	sub    int

	counts []uint32
	count  uint64
	sum    uint64
}

// NewLogHist returns an empty dense histogram for the given parameters.
// The parameters must satisfy m < r <= n <= 64.
func NewLogHist(m, r, n uint32) (*LogHist, error) {
	if m >= r || r > n || n > 64 || r-m > 32 {
		return nil, ErrInvalidParams
	}

	h := &LogHist{
		m:      m,
		r:      r,
		n:      n,
		linear: 1 << (r - m),
		sub:    1 << (r - m - 1),
	}
	h.counts = make([]uint32, h.linear+int(n-r)*h.sub)

	return h, nil
}

// Parameters returns the (m, r, n) configuration triple.
func (h *LogHist) Parameters() (m, r, n uint32) {
	return h.m, h.r, h.n
}

// NumBuckets returns the total number of dense buckets.
func (h *LogHist) NumBuckets() int {
	return len(h.counts)
}

// BucketCount returns the count in bucket i.
func (h *LogHist) BucketCount(i int) uint32 {
	return h.counts[i]
}

// TotalCount returns the total number of recorded observations.
func (h *LogHist) TotalCount() uint64 {
	return h.count
}

// Mean returns the arithmetic mean of the recorded values, approximated
// from bucket lower bounds for expanded histograms.
func (h *LogHist) Mean() float64 {
	if h.count == 0 {
		return 0
	}
	return float64(h.sum) / float64(h.count)
}

// bucketFor maps a raw value onto its bucket ordinal.
func (h *LogHist) bucketFor(value uint64) int {
	return bucketIndex(h.m, h.r, h.n, h.linear, h.sub, len(h.counts), value)
}

// bucketIndex maps a raw value onto its bucket ordinal for the given
// geometry. Values at or past 2^n clamp into the top bucket.
func bucketIndex(m, r, n uint32, linear, sub, buckets int, value uint64) int {
	if n < 64 && value >= uint64(1)<<n {
		return buckets - 1
	}

	// r of 64 puts the whole value range in the linear region; 1<<64
	// would wrap to zero and send everything down the log path
	if r == 64 || value < uint64(1)<<r {
		return int(value >> m)
	}

	k := uint32(bits.Len64(value) - 1)
	width := k - r + m + 1
	j := (value - uint64(1)<<k) >> width

	return linear + int(k-r)*sub + int(j)
}

// ValueAt returns the lower bound of bucket i.
func (h *LogHist) ValueAt(i int) uint64 {
	if i < h.linear {
		return uint64(i) << h.m
	}

	g := (i - h.linear) / h.sub
	j := (i - h.linear) % h.sub
	k := h.r + uint32(g)
	width := k - h.r + h.m + 1

	return uint64(1)<<k + uint64(j)<<width
}

// RecordValue records a single observation.
func (h *LogHist) RecordValue(value uint64) {
	h.RecordValues(value, 1)
}

// RecordValues records n observations of value. Bucket counters wrap on
// overflow, matching the merge semantics of the sparse form.
func (h *LogHist) RecordValues(value uint64, n uint32) {
	h.counts[h.bucketFor(value)] += n
	h.count += uint64(n)
	h.sum += value * uint64(n)
}

// GetPercentiles returns the values at percentiles 0 through 99, walked
// off the bucket counts using each bucket's lower bound.
func (h *LogHist) GetPercentiles() []uint64 {
	if h.count == 0 {
		return make([]uint64, 0)
	}

	percentiles := make([]uint64, 101)

	cumulative := uint64(0)
	prevP := 0
	for i, c := range h.counts {
		if c == 0 {
			continue
		}

		cumulative += uint64(c)
		p := int(100 * cumulative / h.count)
		for ip := prevP; ip <= p; ip++ {
			percentiles[ip] = h.ValueAt(i)
		}
		prevP = p
	}

	return percentiles[:100]
}

// Expand materializes a sparse histogram back into its dense form so that
// higher layers can read percentiles off it. Percentiles are never
// computed on the sparse columns directly.
func Expand(s *SparseHist) (*LogHist, error) {
	if len(s.Index) != len(s.Count) {
		return nil, ErrRaggedColumns{indexLen: len(s.Index), countLen: len(s.Count)}
	}

	d, err := NewLogHist(s.M, s.R, s.N)
	if err != nil {
		return nil, err
	}

	for k, idx := range s.Index {
		if idx < 0 || idx >= len(d.counts) {
			return nil, ErrBucketRange{index: idx, buckets: len(d.counts)}
		}

		c := s.Count[k]
		d.counts[idx] = c
		d.count += uint64(c)
		d.sum += d.ValueAt(idx) * uint64(c)
	}

	return d, nil
}
