// Package harness iterates the benchmark cross-product and turns scenario
// executions into measurement records.
package harness

// Record is one normalized measurement: a single (implementation, size,
// scenario, seed, repetition) execution. Records are append-only; sinks
// receive each one as soon as its repetition completes and no record is
// mutated after emission.
type Record struct {
	Timestamp   string  `json:"timestamp_iso"`
	Impl        string  `json:"impl_name"`
	Scenario    string  `json:"scenario"`
	N           int     `json:"n"`
	Seed        int64   `json:"seed"`
	Rep         int     `json:"rep_id"`
	Ops         int     `json:"ops_in_run"`
	TotalNs     int64   `json:"total_time_ns"`
	NsPerOp     float64 `json:"ns_per_op"`
	InitNs      int64   `json:"init_time_ns_if_recorded"`
	Relocations uint64  `json:"relocations_count"`
	Conversions uint64  `json:"conversions_count"`
}

// Sink receives records in emission order.
type Sink interface {
	WriteRecord(Record) error
}
