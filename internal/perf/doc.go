// Package perf drives every data structure of the module through a fixed set
// of timed scenarios fed with generated data.
//
// Each scenario also checks the answers it gets back (a drained heap must be
// sorted, every inserted word must be found, ...) so a run doubles as a smoke
// test. Per-operation latencies are recorded into a VictoriaMetrics set that
// can be written out in Prometheus text format.
//
// Example usage:
//
//	r, err := perf.NewRunner(perf.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	results, err := r.Run()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	perf.WriteTable(os.Stdout, results)
package perf
