//go:build tdigest
// +build tdigest

package sparsehist

import "github.com/honeycombio/go-tdigest"

var ENABLE_TDIGEST = true

// {{{ TDigest HIST

type TDigestHist struct {
	*tdigest.TDigest

	count uint64
}

func newTDigestHist(params HistogramParameters) (Recorder, error) {
	return &TDigestHist{TDigest: tdigest.New(1)}, nil
}

func (h *TDigestHist) RecordValue(value uint64) {
	h.count++
	h.TDigest.Add(float64(value), 1)
}

func (h *TDigestHist) TotalCount() uint64 {
	return h.count
}

func (h *TDigestHist) GetPercentiles() []uint64 {
	ret := make([]uint64, 100)
	for i := 0; i < 100; i++ {
		ret[i] = uint64(h.Quantile(float64(i) / 100.0))
	}

	return ret
}

// }}} TDigest HIST
