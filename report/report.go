// Package report writes measurement records to delimited output and renders
// run summaries.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/Dawit-Getachew/In-place-benchmark/harness"
)

// Header is the fixed CSV column set, kept column-compatible with the other
// implementations of this benchmark so one analysis pipeline can process all
// result files.
var Header = []string{
	"timestamp_iso", "impl_name", "scenario", "N", "seed", "rep_id",
	"ops_in_run", "total_time_ns", "ns_per_op", "init_time_ns_if_recorded",
	"relocations_count", "conversions_count",
}

// CSV streams records to a delimited writer, one row per execution. Rows are
// flushed as they arrive so an aborted run still leaves a readable prefix.
type CSV struct {
	w *csv.Writer
}

// NewCSV writes the header row and returns a sink for the records.
func NewCSV(w io.Writer) (*CSV, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("flush header: %w", err)
	}
	return &CSV{w: cw}, nil
}

// WriteRecord appends one row and flushes it.
func (c *CSV) WriteRecord(rec harness.Record) error {
	row := []string{
		rec.Timestamp,
		rec.Impl,
		rec.Scenario,
		strconv.Itoa(rec.N),
		strconv.FormatInt(rec.Seed, 10),
		strconv.Itoa(rec.Rep),
		strconv.Itoa(rec.Ops),
		strconv.FormatInt(rec.TotalNs, 10),
		strconv.FormatFloat(rec.NsPerOp, 'f', 4, 64),
		strconv.FormatInt(rec.InitNs, 10),
		strconv.FormatUint(rec.Relocations, 10),
		strconv.FormatUint(rec.Conversions, 10),
	}
	if err := c.w.Write(row); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return fmt.Errorf("flush row: %w", err)
	}
	return nil
}

// Generate writes a markdown table of the given records.
func Generate(w io.Writer, records []harness.Record) error {
	if len(records) == 0 {
		return fmt.Errorf("no records to report")
	}

	fmt.Fprintln(w, "## Benchmark Results")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Impl | Scenario | N | Rep | Ops | Total | ns/op |")
	fmt.Fprintln(w, "|------|----------|---|-----|-----|-------|-------|")

	for _, r := range records {
		fmt.Fprintf(w, "| %s | %s | %d | %d | %d | %s | %.4f |\n",
			r.Impl,
			r.Scenario,
			r.N,
			r.Rep,
			r.Ops,
			formatNs(r.TotalNs),
			r.NsPerOp,
		)
	}

	return nil
}

// GenerateJSON writes records as indented JSON to w.
func GenerateJSON(w io.Writer, records []harness.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(records)
}

func formatNs(ns int64) string {
	switch {
	case ns < 1_000:
		return fmt.Sprintf("%dns", ns)
	case ns < 1_000_000:
		return fmt.Sprintf("%.2fµs", float64(ns)/1e3)
	case ns < 1_000_000_000:
		return fmt.Sprintf("%.2fms", float64(ns)/1e6)
	default:
		return fmt.Sprintf("%.2fs", float64(ns)/1e9)
	}
}
