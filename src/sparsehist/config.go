package sparsehist

import "flag"

func init() {
	setDefaults()
}

func NewFalseFlag() *bool {
	r := false
	return &r
}

func NewTrueFlag() *bool {
	r := true
	return &r
}

var TEST_MODE = false

type FlagDefs struct {
	DIR  *string
	NAME *string
	FILE *string

	// histogram resolution / range parameters
	M *uint
	R *uint
	N *uint

	HIST_TYPE *string

	// ingestion
	VALUE_FIELD *string
	WORKERS     *int

	DEBUG *bool
	JSON  *bool

	PROFILE     *bool
	PROFILE_MEM *bool
}

var FLAGS = FlagDefs{}

func setDefaults() {
	FLAGS.DIR = flag.String("dir", "./snapshots/", "Directory to store snapshot files")
	FLAGS.NAME = flag.String("name", "", "Snapshot name to operate on")

	FLAGS.M = flag.Uint("m", 0, "min resolution exponent (bucket width 2^m)")
	FLAGS.R = flag.Uint("r", 7, "min resolution range exponent (linear below 2^r)")
	FLAGS.N = flag.Uint("n", 32, "max value exponent (values clamp at 2^n)")

	FLAGS.DEBUG = flag.Bool("debug", false, "enable debug logging")
	FLAGS.JSON = flag.Bool("json", false, "use JSON for input and output")

	FLAGS.HIST_TYPE = NewStringFlag(string(HistogramTypeLog))
	FLAGS.VALUE_FIELD = NewStringFlag("value")

	DEFAULT_WORKERS := 4
	FLAGS.WORKERS = &DEFAULT_WORKERS

	FLAGS.PROFILE = NewFalseFlag()
	FLAGS.PROFILE_MEM = NewFalseFlag()
	if PROFILER_ENABLED {
		FLAGS.PROFILE = flag.Bool("profile", false, "turn profiling on?")
		FLAGS.PROFILE_MEM = flag.Bool("mem", false, "turn memory profiling on")
	}
}

func NewStringFlag(s string) *string {
	return &s
}
