package sparsehist

// SparseHist is a sparse, columnar representation of a dense log-linear
// histogram. It is significantly smaller than the dense form when most
// buckets are zero, which is the common case for request latencies, so it
// doubles as the serialization shape for snapshots. Assuming Index[0] = n,
// (Index[0], Count[0]) corresponds to the nth dense bucket.
type SparseHist struct {
	// resolution and range parameters of the histogram the buckets
	// were taken from. two SparseHists only merge when all three match.
	M uint32
	R uint32
	N uint32

	// Index holds the ordinals of the non-zero buckets, strictly
	// ascending, no duplicates. Count[k] is the number of observations
	// in bucket Index[k]. Buckets with a zero count are never stored.
	Index []int
	Count []uint32
}

// NewSparseHist returns an empty SparseHist with the given parameters.
func NewSparseHist(m, r, n uint32) *SparseHist {
	return &SparseHist{
		M:     m,
		R:     r,
		N:     n,
		Index: make([]int, 0),
		Count: make([]uint32, 0),
	}
}

// NewSparseHistFromBuckets builds a SparseHist around the supplied columns.
// The caller guarantees index is strictly ascending with no duplicates and
// that no count is zero; the columns are not re-sorted or de-duplicated.
// The returned value takes ownership of both slices.
func NewSparseHistFromBuckets(m, r, n uint32, index []int, count []uint32) *SparseHist {
	return &SparseHist{
		M:     m,
		R:     r,
		N:     n,
		Index: index,
		Count: count,
	}
}

func (h *SparseHist) addBucket(idx int, n uint32) {
	h.Index = append(h.Index, idx)
	h.Count = append(h.Count, n)
}

// NumBuckets returns how many non-zero buckets are stored.
func (h *SparseHist) NumBuckets() int {
	return len(h.Index)
}

// TotalCount returns the total number of observations across all stored
// buckets.
func (h *SparseHist) TotalCount() uint64 {
	total := uint64(0)
	for _, c := range h.Count {
		total += uint64(c)
	}
	return total
}

// Equals reports structural equality: parameters, indices and counts all
// match, in order. Nil and empty columns are considered the same.
func (h *SparseHist) Equals(other *SparseHist) bool {
	if h.M != other.M || h.R != other.R || h.N != other.N {
		return false
	}

	if len(h.Index) != len(other.Index) || len(h.Count) != len(other.Count) {
		return false
	}

	for i, idx := range h.Index {
		if idx != other.Index[i] {
			return false
		}
	}

	for i, c := range h.Count {
		if c != other.Count[i] {
			return false
		}
	}

	return true
}

// DenseHistogram is the narrow contract a dense histogram has to satisfy
// for conversion: its three configuration parameters and a finite,
// index-ordered walk over every bucket's count. The core only reads.
type DenseHistogram interface {
	Parameters() (m, r, n uint32)
	NumBuckets() int
	BucketCount(i int) uint32
}

// FromDense converts a dense histogram snapshot into its sparse form.
// Buckets are visited in ascending index order and zero-count buckets are
// skipped, so Index comes out strictly ascending with no duplicates. The
// stored index is the bucket's ordinal among all dense buckets, not a
// compacted rank.
func FromDense(d DenseHistogram) *SparseHist {
	m, r, n := d.Parameters()
	h := NewSparseHist(m, r, n)

	for i := 0; i < d.NumBuckets(); i++ {
		if count := d.BucketCount(i); count != 0 {
			h.addBucket(i, count)
		}
	}

	return h
}
