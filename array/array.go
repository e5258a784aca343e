// Package array provides the fixed-size int64 containers the benchmark
// drives. Implementations are registered by name so the sweep can compare
// alternative memory layouts behind the same interface.
package array

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Array is a fixed-capacity, randomly indexable int64 container. Capacity is
// set at construction and never changes. Callers guarantee every index is in
// [0, N); implementations do not bounds-check, so measured latencies reflect
// the access pattern rather than guard code.
type Array interface {
	// Name identifies the implementation in output records.
	Name() string

	// Init sets every slot to v and returns the wall-clock cost of the pass.
	// It fully overwrites prior contents.
	Init(v int64) time.Duration

	// Read returns the value at index i.
	Read(i int) int64

	// Write sets the slot at index i to v. The write must be immediately
	// visible to a subsequent Read.
	Write(i int, v int64)
}

// Counters tracks structural work done by implementations that move or
// re-encode blocks during reads and writes.
type Counters struct {
	Relocations uint64
	Conversions uint64
}

// CounterProvider is implemented by arrays that maintain Counters. The
// harness emits the counts in the reserved record columns when present.
type CounterProvider interface {
	Counters() Counters
}

// ErrUnsupportedSize reports a size the implementation's block layout cannot
// back. The sweep skips such (implementation, size) pairs instead of failing.
var ErrUnsupportedSize = errors.New("unsupported array size")

// Int64Slice is the reference implementation: a plain contiguous slice with
// O(1) reads and writes and an O(N) init pass.
type Int64Slice struct {
	a []int64
}

// NewInt64Slice returns a zero-initialized slice-backed array of size n.
func NewInt64Slice(n int) *Int64Slice {
	return &Int64Slice{a: make([]int64, n)}
}

func (s *Int64Slice) Name() string { return "go_slice_int64" }

func (s *Int64Slice) Init(v int64) time.Duration {
	start := time.Now()
	for i := range s.a {
		s.a[i] = v
	}
	return time.Since(start)
}

func (s *Int64Slice) Read(i int) int64 { return s.a[i] }

func (s *Int64Slice) Write(i int, v int64) { s.a[i] = v }

// Known returns the implementation names accepted by New, in display order.
func Known() []string {
	return []string{"slice", "inplace"}
}

// Validate checks that impl names a known implementation without
// constructing one.
func Validate(impl string) error {
	for _, k := range Known() {
		if k == impl {
			return nil
		}
	}
	return fmt.Errorf("unknown implementation %q (known: %s)",
		impl, strings.Join(Known(), ", "))
}

// New constructs a fresh zero-initialized array of size n for the named
// implementation. Unknown names are an error: a typo must fail the run, not
// silently benchmark nothing.
func New(impl string, n int) (Array, error) {
	switch impl {
	case "slice":
		return NewInt64Slice(n), nil
	case "inplace":
		return NewInPlace(n)
	default:
		return nil, fmt.Errorf("unknown implementation %q (known: %s)",
			impl, strings.Join(Known(), ", "))
	}
}
