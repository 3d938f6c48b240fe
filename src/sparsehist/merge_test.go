package sparsehist

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func testHists() (h1, h2, h3 *SparseHist) {
	h1 = NewSparseHistFromBuckets(0, 7, 32, []int{1, 3, 5}, []uint32{6, 12, 7})
	h2 = NewSparseHist(0, 7, 32)
	h3 = NewSparseHistFromBuckets(0, 7, 32, []int{2, 3, 4, 11}, []uint32{5, 7, 3, 15})
	return
}

func TestMergeMismatchedParams(t *testing.T) {
	t.Parallel()
	h1, _, _ := testHists()

	// the zero value has different parameters than h1
	if _, err := h1.Merge(&SparseHist{}); err != ErrMismatchedParams {
		t.Error("MERGING MISMATCHED HISTS RETURNED", err)
	}

	for _, other := range []*SparseHist{
		NewSparseHist(1, 7, 32),
		NewSparseHist(0, 8, 32),
		NewSparseHist(0, 7, 64),
	} {
		if _, err := h1.Merge(other); err != ErrMismatchedParams {
			t.Error("MERGING MISMATCHED HISTS RETURNED", err)
		}
	}
}

func TestMergeWithEmpty(t *testing.T) {
	t.Parallel()
	h1, h2, h3 := testHists()

	merged, err := h1.Merge(h2)
	if err != nil {
		t.Fatal(err)
	}
	if !merged.Equals(h1) {
		t.Error("MERGING WITH EMPTY CHANGED THE HISTOGRAM", merged)
	}

	merged, err = h2.Merge(h3)
	if err != nil {
		t.Fatal(err)
	}
	if !merged.Equals(h3) {
		t.Error("MERGING INTO EMPTY CHANGED THE HISTOGRAM", merged)
	}

	merged, err = h2.Merge(h2)
	if err != nil {
		t.Fatal(err)
	}
	if merged.NumBuckets() != 0 {
		t.Error("MERGING TWO EMPTY HISTS PRODUCED BUCKETS", merged)
	}
}

func TestMergeOverlapping(t *testing.T) {
	t.Parallel()
	h1, _, h3 := testHists()

	merged, err := h1.Merge(h3)
	if err != nil {
		t.Fatal(err)
	}

	expected := NewSparseHistFromBuckets(0, 7, 32,
		[]int{1, 2, 3, 4, 5, 11},
		[]uint32{6, 5, 19, 3, 7, 15})

	if diff := cmp.Diff(expected, merged, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("merged histogram differs: %v", diff)
	}

	// inputs stay untouched
	if diff := cmp.Diff(NewSparseHistFromBuckets(0, 7, 32, []int{1, 3, 5}, []uint32{6, 12, 7}), h1); diff != "" {
		t.Errorf("left input was modified: %v", diff)
	}
	if diff := cmp.Diff(NewSparseHistFromBuckets(0, 7, 32, []int{2, 3, 4, 11}, []uint32{5, 7, 3, 15}), h3); diff != "" {
		t.Errorf("right input was modified: %v", diff)
	}
}

func TestMergeDisjoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		left  *SparseHist
		right *SparseHist
	}{
		{"left then right",
			NewSparseHistFromBuckets(0, 7, 32, []int{1, 2, 3}, []uint32{1, 2, 3}),
			NewSparseHistFromBuckets(0, 7, 32, []int{10, 11}, []uint32{10, 11})},
		{"right then left",
			NewSparseHistFromBuckets(0, 7, 32, []int{10, 11}, []uint32{10, 11}),
			NewSparseHistFromBuckets(0, 7, 32, []int{1, 2, 3}, []uint32{1, 2, 3})},
		{"interleaved",
			NewSparseHistFromBuckets(0, 7, 32, []int{1, 4, 7}, []uint32{1, 4, 7}),
			NewSparseHistFromBuckets(0, 7, 32, []int{2, 5, 9}, []uint32{2, 5, 9})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, err := tt.left.Merge(tt.right)
			if err != nil {
				t.Fatal(err)
			}

			if merged.NumBuckets() != tt.left.NumBuckets()+tt.right.NumBuckets() {
				t.Error("DISJOINT MERGE LOST BUCKETS", merged)
			}

			checkAscending(t, merged)

			// every input bucket shows up with its original count
			for k, idx := range tt.left.Index {
				if findCount(merged, idx) != tt.left.Count[k] {
					t.Error("BUCKET", idx, "LOST ITS COUNT IN DISJOINT MERGE")
				}
			}
			for k, idx := range tt.right.Index {
				if findCount(merged, idx) != tt.right.Count[k] {
					t.Error("BUCKET", idx, "LOST ITS COUNT IN DISJOINT MERGE")
				}
			}
		})
	}
}

// the tail after the last shared index has to come from the correct
// operand, whichever side is longer
func TestMergeTails(t *testing.T) {
	t.Parallel()

	left := NewSparseHistFromBuckets(0, 7, 32, []int{1, 5}, []uint32{1, 5})
	right := NewSparseHistFromBuckets(0, 7, 32, []int{5, 6, 7, 100}, []uint32{50, 6, 7, 100})

	merged, err := left.Merge(right)
	if err != nil {
		t.Fatal(err)
	}

	expected := NewSparseHistFromBuckets(0, 7, 32, []int{1, 5, 6, 7, 100}, []uint32{1, 55, 6, 7, 100})
	if diff := cmp.Diff(expected, merged); diff != "" {
		t.Errorf("right tail mishandled: %v", diff)
	}

	// and the mirror image, left side longer
	merged, err = right.Merge(left)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(expected, merged); diff != "" {
		t.Errorf("left tail mishandled: %v", diff)
	}
}

func TestMergeWraparound(t *testing.T) {
	t.Parallel()

	left := NewSparseHistFromBuckets(0, 7, 32, []int{3}, []uint32{math.MaxUint32})
	right := NewSparseHistFromBuckets(0, 7, 32, []int{3}, []uint32{6})

	merged, err := left.Merge(right)
	if err != nil {
		t.Fatal(err)
	}

	// counts wrap modulo 2^32 instead of saturating
	if merged.Count[0] != 5 {
		t.Error("OVERFLOWING COUNTS SHOULD WRAP, GOT", merged.Count[0])
	}
}

func TestMergeInvariants(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(0xbadc0ffee))
	for trial := 0; trial < 100; trial++ {
		left := randomSparse(rng)
		right := randomSparse(rng)

		merged, err := left.Merge(right)
		if err != nil {
			t.Fatal(err)
		}

		checkAscending(t, merged)

		if len(merged.Index) != len(merged.Count) {
			t.Fatal("MERGED COLUMNS HAVE DIFFERENT LENGTHS")
		}

		if merged.TotalCount() != left.TotalCount()+right.TotalCount() {
			t.Error("MERGE LOST OBSERVATIONS", merged.TotalCount())
		}
	}
}

func randomSparse(rng *rand.Rand) *SparseHist {
	bucketSet := make(map[int]bool)
	for i := 0; i < rng.Intn(20); i++ {
		bucketSet[rng.Intn(200)] = true
	}

	index := make([]int, 0, len(bucketSet))
	for idx := range bucketSet {
		index = append(index, idx)
	}
	sort.Ints(index)

	count := make([]uint32, len(index))
	for i := range count {
		count[i] = uint32(rng.Intn(1000)) + 1
	}

	return NewSparseHistFromBuckets(0, 7, 32, index, count)
}

func checkAscending(t *testing.T, h *SparseHist) {
	for i := 1; i < len(h.Index); i++ {
		if h.Index[i] <= h.Index[i-1] {
			t.Fatal("INDEX COLUMN NOT STRICTLY ASCENDING AT", i, h.Index)
		}
	}
}

func findCount(h *SparseHist, idx int) uint32 {
	i := sort.SearchInts(h.Index, idx)
	if i < len(h.Index) && h.Index[i] == idx {
		return h.Count[i]
	}
	return 0
}
