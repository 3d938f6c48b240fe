package sparsehist

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"
)

func printJSON(data interface{}) {
	b, err := json.Marshal(data)
	if err == nil {
		os.Stdout.Write(b)
		os.Stdout.Write([]byte("\n"))
	} else {
		Error("JSON encoding error", err)
	}
}

// PrintSnapshot prints the envelope fields and the non-zero buckets of a
// stored snapshot.
func PrintSnapshot(s *SavedSnapshot) {
	if *FLAGS.JSON {
		printJSON(s)
		return
	}

	Print("name:", s.Name)
	Print("recorded:", time.Unix(s.Timestamp, 0).Format(time.RFC3339))
	Print("params: m =", s.Hist.M, "r =", s.Hist.R, "n =", s.Hist.N)
	Print("buckets:", s.Hist.NumBuckets(), "count:", s.Hist.TotalCount())
	if s.Distinct > 0 {
		Print("distinct values: ~", s.Distinct)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "index\tcount\t")
	for k, idx := range s.Hist.Index {
		fmt.Fprintln(w, strconv.Itoa(idx), "\t", s.Hist.Count[k], "\t")
	}
	w.Flush()
}

type reportResult struct {
	Name     string
	Count    uint64
	Mean     float64
	Distinct uint64 `json:",omitempty"`

	Percentiles map[string]uint64
}

// PrintReport expands a snapshot back to its dense form and prints the
// usual latency percentiles off it.
func PrintReport(s *SavedSnapshot) error {
	dense, err := Expand(s.Hist)
	if err != nil {
		return err
	}

	percentiles := dense.GetPercentiles()
	result := reportResult{
		Name:        s.Name,
		Count:       dense.TotalCount(),
		Mean:        dense.Mean(),
		Distinct:    s.Distinct,
		Percentiles: make(map[string]uint64),
	}

	for _, p := range []int{50, 90, 95, 99} {
		if len(percentiles) > p {
			result.Percentiles["p"+strconv.Itoa(p)] = percentiles[p]
		}
	}

	if *FLAGS.JSON {
		printJSON(result)
		return nil
	}

	Print("name:", result.Name)
	Print("count:", result.Count, "mean:", fmt.Sprintf("%.2f", result.Mean))
	if result.Distinct > 0 {
		Print("distinct values: ~", result.Distinct)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "percentile\tvalue\t")
	for _, p := range []int{50, 90, 95, 99} {
		if len(percentiles) > p {
			fmt.Fprintln(w, "p"+strconv.Itoa(p), "\t", percentiles[p], "\t")
		}
	}
	w.Flush()

	return nil
}

func PrintVersionInfo() {
	versionInfo := GetVersionInfo()

	if *FLAGS.JSON {
		printJSON(versionInfo)
		return
	}

	for k, v := range versionInfo {
		Print(k, ":", v)
	}
}
