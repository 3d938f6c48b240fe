package cmd

import (
	"flag"

	sparsehist "github.com/logv/sparsehist/src/sparsehist"
)

func RunInspectCmdLine() {
	sparsehist.FLAGS.FILE = flag.String("file", "", "Name of snapshot file to inspect")
	flag.Parse()

	if *sparsehist.FLAGS.FILE == "" {
		sparsehist.Print("Please specify a file to inspect with the -file flag")
		return
	}

	s, err := sparsehist.LoadSnapshot(*sparsehist.FLAGS.FILE)
	if err != nil {
		sparsehist.Error("INSPECTING", *sparsehist.FLAGS.FILE, err)
	}

	sparsehist.PrintSnapshot(s)
}
