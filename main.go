package main

import cmd "github.com/logv/sparsehist/src/cmd"

import "fmt"
import "os"
import "sort"

var cmdFuncs = make(map[string]func())
var cmdKeys = make([]string, 0)

func setupCommands() {
	cmdFuncs["record"] = cmd.RunRecordCmdLine
	cmdFuncs["rollup"] = cmd.RunRollupCmdLine
	cmdFuncs["report"] = cmd.RunReportCmdLine
	cmdFuncs["inspect"] = cmd.RunInspectCmdLine
	cmdFuncs["version"] = cmd.RunVersionCmdLine

	for k := range cmdFuncs {
		cmdKeys = append(cmdKeys, k)
	}
}

// USAGE Explain sparsehist's usage
var USAGE = `sparsehist: sparse latency histogram snapshots and rollups

Commands: record, rollup, report, inspect

Snapshot Commands:

  record: read latency values from stdin into a histogram snapshot

    example: sparsehist record -dir SNAPSHOTS -name web01 < latencies.txt
    example: sparsehist record -dir SNAPSHOTS -name web01 -json -value-field latency_us < rows.json

  rollup: merge every snapshot in a directory into a single rollup snapshot

    example: sparsehist rollup -dir SNAPSHOTS

Reporting Commands:

  report: print percentiles and buckets for a snapshot

    example: sparsehist report -dir SNAPSHOTS -name web01
    example: sparsehist report -dir SNAPSHOTS -name rollup -json

  inspect: examine a snapshot .db file

    example: sparsehist inspect -file ./SNAPSHOTS/web01.db

`

func printCommandHelp() {
	sort.Strings(cmdKeys)

	fmt.Print(USAGE)
	os.Exit(1)
}

func main() {
	setupCommands()

	if len(os.Args) < 2 {
		printCommandHelp()
	}

	firstArg := os.Args[1]
	os.Args = os.Args[1:]

	handler, ok := cmdFuncs[firstArg]
	if !ok {
		printCommandHelp()
	}

	handler()

}
