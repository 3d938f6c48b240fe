//go:build !tdigest
// +build !tdigest

package sparsehist

var ENABLE_TDIGEST = false

func newTDigestHist(params HistogramParameters) (Recorder, error) {
	return nil, ErrInvalidParams
}
