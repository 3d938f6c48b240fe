package cmd

import (
	"flag"
	"path"

	sparsehist "github.com/logv/sparsehist/src/sparsehist"
)

func RunReportCmdLine() {
	flag.Parse()

	name := *sparsehist.FLAGS.NAME
	if name == "" {
		name = sparsehist.ROLLUP_NAME
	}

	filename := path.Join(*sparsehist.FLAGS.DIR, name+sparsehist.DB_EXT)
	s, err := sparsehist.LoadSnapshot(filename)
	if err != nil {
		sparsehist.Error("LOADING SNAPSHOT", filename, err)
	}

	if err := sparsehist.PrintReport(s); err != nil {
		sparsehist.Error("REPORTING ON", filename, err)
	}
}
