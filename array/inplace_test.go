package array

import (
	"errors"
	"fmt"
	mrand "math/rand"
	"testing"
)

func TestInPlaceRequiresPositiveEvenSize(t *testing.T) {
	for _, n := range []int{-2, 0, 1, 7, 999} {
		if _, err := NewInPlace(n); !errors.Is(err, ErrUnsupportedSize) {
			t.Errorf("NewInPlace(%d) error = %v, want ErrUnsupportedSize", n, err)
		}
	}
	if _, err := NewInPlace(2); err != nil {
		t.Errorf("NewInPlace(2) failed: %v", err)
	}
}

func TestInPlaceInitIsObservable(t *testing.T) {
	p, err := NewInPlace(100)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 100; i++ {
		if got := p.Read(i); got != 0 {
			t.Fatalf("Read(%d) = %d on fresh array, want 0", i, got)
		}
	}

	p.Write(17, 5)
	p.Write(62, -9)

	p.Init(42)
	for i := 0; i < 100; i++ {
		if got := p.Read(i); got != 42 {
			t.Fatalf("Read(%d) = %d after Init(42), want 42", i, got)
		}
	}
}

func TestInPlaceReadAfterWrite(t *testing.T) {
	p, err := NewInPlace(10)
	if err != nil {
		t.Fatal(err)
	}
	p.Init(7)

	p.Write(0, 100)
	p.Write(9, 200)
	p.Write(0, 300) // overwrite

	if got := p.Read(0); got != 300 {
		t.Errorf("Read(0) = %d, want 300", got)
	}
	if got := p.Read(9); got != 200 {
		t.Errorf("Read(9) = %d, want 200", got)
	}
	if got := p.Read(5); got != 7 {
		t.Errorf("Read(5) = %d, want init value 7", got)
	}
}

func TestInPlaceSequentialFill(t *testing.T) {
	const n = 1000

	p, err := NewInPlace(n)
	if err != nil {
		t.Fatal(err)
	}
	p.Init(0)

	for i := 0; i < n; i++ {
		p.Write(i, int64(i))
	}
	for i := 0; i < n; i++ {
		if got := p.Read(i); got != int64(i) {
			t.Fatalf("Read(%d) = %d, want %d", i, got, i)
		}
	}
}

// TestInPlaceMatchesReference drives the block-pair array and the slice
// reference with the same random operation stream and requires identical
// observable state throughout.
func TestInPlaceMatchesReference(t *testing.T) {
	sizes := []int{2, 4, 10, 64, 1000}

	for _, n := range sizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			ref := NewInt64Slice(n)
			dut, err := NewInPlace(n)
			if err != nil {
				t.Fatal(err)
			}

			rng := mrand.New(mrand.NewSource(int64(n)))
			for op := 0; op < 5000; op++ {
				switch rng.Intn(3) {
				case 0:
					v := int64(rng.Intn(2001) - 1000)
					ref.Init(v)
					dut.Init(v)
				case 1:
					i := rng.Intn(n)
					if want, got := ref.Read(i), dut.Read(i); want != got {
						t.Fatalf("n=%d op=%d: Read(%d) = %d, want %d",
							n, op, i, got, want)
					}
				case 2:
					i := rng.Intn(n)
					v := int64(rng.Intn(2001) - 1000)
					ref.Write(i, v)
					dut.Write(i, v)
				}
			}

			for i := 0; i < n; i++ {
				if want, got := ref.Read(i), dut.Read(i); want != got {
					t.Fatalf("n=%d final sweep: Read(%d) = %d, want %d",
						n, i, got, want)
				}
			}
		})
	}
}

func TestInPlaceCountersAdvance(t *testing.T) {
	p, err := NewInPlace(100)
	if err != nil {
		t.Fatal(err)
	}
	p.Init(0)

	rng := mrand.New(mrand.NewSource(1))
	for i := 0; i < 200; i++ {
		p.Write(rng.Intn(100), int64(i))
	}

	c := p.Counters()
	if c.Conversions == 0 {
		t.Error("expected chain conversions after scattered writes")
	}
}

func TestVerify(t *testing.T) {
	if err := Verify("inplace", 1000, 42, 5000); err != nil {
		t.Errorf("Verify(inplace) failed: %v", err)
	}
	if err := Verify("slice", 1000, 42, 1000); err != nil {
		t.Errorf("Verify(slice) failed: %v", err)
	}
	if err := Verify("bogus", 1000, 42, 10); err == nil {
		t.Error("Verify accepted an unknown implementation")
	}
}
