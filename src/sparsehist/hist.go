package sparsehist

// recorder backends:
// LogHist / AtomicHist (the log-linear histograms the sparse form converts from)
// HDRHist (wrapper around github.com/codahale/hdrhistogram, behind the hdrhist build tag)
// TDigestHist (wrapper around github.com/honeycombio/go-tdigest, behind the tdigest build tag)

type HistogramType string

const (
	HistogramTypeLog     HistogramType = "log"
	HistogramTypeHDR     HistogramType = "hdr"
	HistogramTypeTDigest HistogramType = "tdigest"
)

type HistogramParameters struct {
	Type HistogramType `json:",omitempty"`

	M uint32
	R uint32
	N uint32
}

// Recorder is the common surface of the percentile backends. Only the
// log backend feeds the sparse layer; the others exist to sanity check
// its percentiles against independent implementations.
type Recorder interface {
	RecordValue(value uint64)
	TotalCount() uint64
	GetPercentiles() []uint64
}

func NewRecorder(params HistogramParameters) (Recorder, error) {
	switch params.Type {
	case HistogramTypeHDR:
		if ENABLE_HDR {
			return newHDRHist(params)
		}
		return nil, ErrInvalidParams
	case HistogramTypeTDigest:
		if ENABLE_TDIGEST {
			return newTDigestHist(params)
		}
		return nil, ErrInvalidParams
	default:
		h, err := NewLogHist(params.M, params.R, params.N)
		if err != nil {
			// a bare nil, not a nil *LogHist wrapped in the interface
			return nil, err
		}
		return h, nil
	}
}
