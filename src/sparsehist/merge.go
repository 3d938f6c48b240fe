package sparsehist

// Merge combines two SparseHists and returns the result as a new
// SparseHist; neither input is modified.
//
// Both histograms must have the same configuration parameters. Buckets
// which have counts in both histograms are summed with wraparound, so a
// sum past the top of uint32 cycles instead of saturating. Downstream
// rollups rely on the wraparound being consistent across repeated merges.
func (h *SparseHist) Merge(other *SparseHist) (*SparseHist, error) {
	if h.M != other.M || h.R != other.R || h.N != other.N {
		return nil, ErrMismatchedParams
	}

	merged := &SparseHist{
		M:     h.M,
		R:     h.R,
		N:     h.N,
		Index: make([]int, 0, len(h.Index)+len(other.Index)),
		Count: make([]uint32, 0, len(h.Count)+len(other.Count)),
	}

	// two cursor walk over both ascending index columns
	i, j := 0, 0
	for i < len(h.Index) && j < len(other.Index) {
		k1, v1 := h.Index[i], h.Count[i]
		k2, v2 := other.Index[j], other.Count[j]

		switch {
		case k1 == k2:
			merged.addBucket(k1, v1+v2)
			i++
			j++
		case k1 < k2:
			merged.addBucket(k1, v1)
			i++
		default:
			merged.addBucket(k2, v2)
			j++
		}
	}

	// at most one of these tails is non-empty; each side copies from its
	// own remaining range
	merged.Index = append(merged.Index, h.Index[i:]...)
	merged.Count = append(merged.Count, h.Count[i:]...)

	merged.Index = append(merged.Index, other.Index[j:]...)
	merged.Count = append(merged.Count, other.Count[j:]...)

	return merged, nil
}
