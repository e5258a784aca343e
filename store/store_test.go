package store

import (
	"path/filepath"
	"testing"

	"github.com/Dawit-Getachew/In-place-benchmark/harness"
)

func TestOpenAndWriteRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	rec := harness.Record{
		Timestamp:   "2025-09-10T11:19:27Z",
		Impl:        "go_inplace_pair",
		Scenario:    "ADVERSARIAL_HOTSPOT",
		N:           10000,
		Seed:        42,
		Rep:         2,
		Ops:         10000,
		TotalNs:     987654,
		NsPerOp:     98.7654,
		InitNs:      0,
		Relocations: 3,
		Conversions: 17,
	}
	if err := s.WriteRecord(rec); err != nil {
		t.Fatalf("WriteRecord failed: %v", err)
	}
	if err := s.WriteRecord(rec); err != nil {
		t.Fatalf("second WriteRecord failed: %v", err)
	}

	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	var (
		scenarioName string
		conversions  uint64
		nsPerOp      float64
	)
	err = s.db.QueryRow(
		`SELECT scenario, conversions_count, ns_per_op FROM records LIMIT 1`,
	).Scan(&scenarioName, &conversions, &nsPerOp)
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if scenarioName != "ADVERSARIAL_HOTSPOT" {
		t.Errorf("scenario = %q, want ADVERSARIAL_HOTSPOT", scenarioName)
	}
	if conversions != 17 {
		t.Errorf("conversions = %d, want 17", conversions)
	}
	if nsPerOp != 98.7654 {
		t.Errorf("ns_per_op = %v, want 98.7654", nsPerOp)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")

	s1, err := Open(path)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	if err := s1.WriteRecord(harness.Record{Scenario: "INIT_ONLY"}); err != nil {
		t.Fatalf("WriteRecord failed: %v", err)
	}
	if err := s1.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Reopening must keep the existing rows.
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer s2.Close()

	var count int
	if err := s2.db.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d after reopen, want 1", count)
	}
}
