//go:build hdrhist
// +build hdrhist

package sparsehist

import "github.com/codahale/hdrhistogram"

var ENABLE_HDR = true

// {{{ HDR HIST

type HDRHist struct {
	*hdrhistogram.Histogram
}

func newHDRHist(params HistogramParameters) (Recorder, error) {
	if params.M >= params.R || params.R > params.N || params.N > 62 {
		return nil, ErrInvalidParams
	}

	max := int64(1)<<params.N - 1
	return &HDRHist{hdrhistogram.New(0, max, 3)}, nil
}

func (h *HDRHist) RecordValue(value uint64) {
	// out of range values are dropped; the log backend clamps instead
	h.Histogram.RecordValue(int64(value))
}

func (h *HDRHist) TotalCount() uint64 {
	return uint64(h.Histogram.TotalCount())
}

func (h *HDRHist) GetPercentiles() []uint64 {
	ret := make([]uint64, 100)
	for i := 0; i < 100; i++ {
		ret[i] = uint64(h.ValueAtQuantile(float64(i)))
	}

	return ret
}

// }}} HDR HIST
