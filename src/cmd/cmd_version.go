package cmd

import (
	"flag"

	sparsehist "github.com/logv/sparsehist/src/sparsehist"
)

func RunVersionCmdLine() {
	flag.Parse()

	sparsehist.PrintVersionInfo()

}
