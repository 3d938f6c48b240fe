package sparsehist

import "testing"

func TestNewRecorderDefaultsToLog(t *testing.T) {
	t.Parallel()

	r, err := NewRecorder(HistogramParameters{M: 0, R: 7, N: 32})
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := r.(*LogHist); !ok {
		t.Error("DEFAULT RECORDER SHOULD BE THE LOG BACKEND, GOT", r)
	}

	r.RecordValue(10)
	if r.TotalCount() != 1 {
		t.Error("EXPECTED 1 OBSERVATION, GOT", r.TotalCount())
	}
}

func TestNewRecorderBadParams(t *testing.T) {
	t.Parallel()

	r, err := NewRecorder(HistogramParameters{M: 7, R: 7, N: 32})
	if err != ErrInvalidParams {
		t.Error("EXPECTED BAD PARAMS, GOT", err)
	}

	// the interface itself must be nil, not a nil pointer inside it
	if r != nil {
		t.Error("FAILED CONSTRUCTION SHOULD RETURN A NIL RECORDER, GOT", r)
	}
}
