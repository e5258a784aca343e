package array

import (
	"fmt"
	mrand "math/rand"
)

// Verify cross-checks the named implementation against the slice reference
// by replaying a seeded stream of interleaved init/read/write operations on
// both and comparing every read, followed by a full final sweep. It returns
// an error describing the first divergence.
func Verify(impl string, n int, seed int64, ops int) error {
	ref := NewInt64Slice(n)
	dut, err := New(impl, n)
	if err != nil {
		return err
	}

	rng := mrand.New(mrand.NewSource(seed))
	value := func() int64 { return int64(rng.Intn(2001) - 1000) }

	for op := 0; op < ops; op++ {
		switch rng.Intn(3) {
		case 0:
			v := value()
			ref.Init(v)
			dut.Init(v)
		case 1:
			i := rng.Intn(n)
			want, got := ref.Read(i), dut.Read(i)
			if want != got {
				return fmt.Errorf("read(%d) diverged after %d ops: reference=%d, %s=%d",
					i, op, want, dut.Name(), got)
			}
		case 2:
			i := rng.Intn(n)
			v := value()
			ref.Write(i, v)
			dut.Write(i, v)
		}
	}

	for i := 0; i < n; i++ {
		if want, got := ref.Read(i), dut.Read(i); want != got {
			return fmt.Errorf("final sweep diverged at %d: reference=%d, %s=%d",
				i, want, dut.Name(), got)
		}
	}
	return nil
}
