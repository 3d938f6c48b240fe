package sparsehist

import (
	"errors"
	"fmt"
)

var (
	// ErrMismatchedParams is returned when merging histograms whose
	// (m, r, n) parameters differ. Treat it as a caller bug.
	ErrMismatchedParams = errors.New("histograms with different parameters can't be merged")

	// ErrInvalidParams is returned when constructing a histogram with
	// parameters that don't satisfy m < r <= n <= 64.
	ErrInvalidParams = errors.New("invalid histogram parameters")
)

type ErrBucketRange struct {
	index   int
	buckets int
}

func (e ErrBucketRange) Error() string {
	return fmt.Sprintf("bucket index %d is out of range for %d buckets", e.index, e.buckets)
}

type ErrRaggedColumns struct {
	indexLen int
	countLen int
}

func (e ErrRaggedColumns) Error() string {
	return fmt.Sprintf("index column has %d entries but count column has %d", e.indexLen, e.countLen)
}
