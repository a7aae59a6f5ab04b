package perf

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// WriteTable prints results as an aligned text table.
func WriteTable(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "scenario\tops\ttotal\tns/op")

	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%.1f\n", r.Name, r.Ops, r.Elapsed, r.NsPerOp())
	}

	return tw.Flush()
}

// WriteCSV writes results with a header row, one scenario per line.
func WriteCSV(w io.Writer, cfg Config, results []Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"scenario", "ops", "total_ns", "ns_per_op", "seed", "buckets"}); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			r.Name,
			strconv.Itoa(r.Ops),
			strconv.FormatInt(r.Elapsed.Nanoseconds(), 10),
			strconv.FormatFloat(r.NsPerOp(), 'f', 1, 64),
			strconv.FormatInt(cfg.Seed, 10),
			strconv.Itoa(cfg.Buckets),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
