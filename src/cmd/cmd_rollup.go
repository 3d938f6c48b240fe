package cmd

import (
	"flag"

	sparsehist "github.com/logv/sparsehist/src/sparsehist"
)

func RunRollupCmdLine() {
	flag.Parse()

	if *sparsehist.FLAGS.PROFILE {
		profile := sparsehist.RUN_PROFILER()
		defer profile.Start().Stop()
	}

	rollup, err := sparsehist.RollupSnapshots(*sparsehist.FLAGS.DIR)
	if err != nil {
		sparsehist.Error("ROLLUP FAILED", err)
	}

	if err := sparsehist.SaveSnapshot(*sparsehist.FLAGS.DIR, rollup); err != nil {
		sparsehist.Error("SAVING ROLLUP", err)
	}

	sparsehist.Print("rolled up", rollup.Hist.TotalCount(), "observations into",
		rollup.Hist.NumBuckets(), "non-zero buckets")
}
