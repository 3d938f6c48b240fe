package cmd

import (
	"bufio"
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	hll "github.com/logv/loglogbeta"

	sparsehist "github.com/logv/sparsehist/src/sparsehist"
)

func parseValue(line string) (uint64, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, false
	}

	if *sparsehist.FLAGS.JSON {
		row := make(map[string]interface{})
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			return 0, false
		}

		v, ok := row[*sparsehist.FLAGS.VALUE_FIELD].(float64)
		if !ok || v < 0 {
			return 0, false
		}

		return uint64(v), true
	}

	if v, err := strconv.ParseUint(line, 10, 64); err == nil {
		return v, true
	}

	// fall back to floats so "12.0" style input still records
	if f, err := strconv.ParseFloat(line, 64); err == nil && f >= 0 {
		return uint64(f), true
	}

	return 0, false
}

func RunRecordCmdLine() {
	sparsehist.FLAGS.HIST_TYPE = flag.String("hist-type", string(sparsehist.HistogramTypeLog),
		"extra percentile backend to cross check against (hdr, tdigest)")
	sparsehist.FLAGS.VALUE_FIELD = flag.String("value-field", "value", "JSON field holding the latency value")
	sparsehist.FLAGS.WORKERS = flag.Int("workers", 4, "number of parser goroutines")
	flag.Parse()

	if *sparsehist.FLAGS.NAME == "" {
		flag.PrintDefaults()
		return
	}

	if *sparsehist.FLAGS.PROFILE {
		profile := sparsehist.RUN_PROFILER()
		defer profile.Start().Stop()
	}

	m := uint32(*sparsehist.FLAGS.M)
	r := uint32(*sparsehist.FLAGS.R)
	n := uint32(*sparsehist.FLAGS.N)

	hist, err := sparsehist.NewAtomicHist(m, r, n)
	if err != nil {
		sparsehist.Error("BAD HISTOGRAM PARAMETERS", m, r, n, err)
	}

	distinct := hll.New()

	var crossCheck sparsehist.Recorder
	histType := sparsehist.HistogramType(*sparsehist.FLAGS.HIST_TYPE)
	if histType != sparsehist.HistogramTypeLog {
		crossCheck, err = sparsehist.NewRecorder(sparsehist.HistogramParameters{
			Type: histType, M: m, R: r, N: n,
		})
		if err != nil {
			sparsehist.Warn("cross check backend", histType, "unavailable, skipping:", err)
			crossCheck = nil
		}
	}

	var mu sync.Mutex
	dropped := 0

	lines := make(chan string, 1024)
	var wg sync.WaitGroup
	for w := 0; w < *sparsehist.FLAGS.WORKERS; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for line := range lines {
				v, ok := parseValue(line)
				if !ok {
					mu.Lock()
					dropped++
					mu.Unlock()
					continue
				}

				hist.RecordValue(v)

				mu.Lock()
				distinct.Add([]byte(strconv.FormatUint(v, 10)))
				if crossCheck != nil {
					crossCheck.RecordValue(v)
				}
				mu.Unlock()
			}
		}()
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		lines <- scanner.Text()
	}
	close(lines)
	wg.Wait()

	if err := scanner.Err(); err != nil {
		sparsehist.Error("READING STDIN", err)
	}

	snapshot := hist.Snapshot()
	sparse := sparsehist.FromDense(snapshot)

	saved := &sparsehist.SavedSnapshot{
		Name:      *sparsehist.FLAGS.NAME,
		Timestamp: time.Now().Unix(),
		Hist:      sparse,
		Distinct:  distinct.Cardinality(),
	}

	if err := sparsehist.SaveSnapshot(*sparsehist.FLAGS.DIR, saved); err != nil {
		sparsehist.Error("SAVING SNAPSHOT", err)
	}

	sparsehist.Print("recorded", snapshot.TotalCount(), "values into",
		sparse.NumBuckets(), "non-zero buckets")
	if dropped > 0 {
		sparsehist.Warn("dropped", dropped, "unparseable lines")
	}

	if crossCheck != nil {
		logP := snapshot.GetPercentiles()
		otherP := crossCheck.GetPercentiles()
		for _, p := range []int{50, 99} {
			if len(logP) > p && len(otherP) > p {
				sparsehist.Print("p"+strconv.Itoa(p), "log:", logP[p], string(histType)+":", otherP[p])
			}
		}
	}
}
