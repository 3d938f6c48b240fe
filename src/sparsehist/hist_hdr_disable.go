//go:build !hdrhist
// +build !hdrhist

package sparsehist

var ENABLE_HDR = false

func newHDRHist(params HistogramParameters) (Recorder, error) {
	return nil, ErrInvalidParams
}
