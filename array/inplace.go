package array

import (
	"fmt"
	"time"
)

// InPlace is an in-place initializable array: Init is O(1) regardless of
// size, at the cost of extra bookkeeping on reads and writes.
//
// The layout follows Katoh and Goto's block-pair construction. Slots are
// grouped into blocks of two. Blocks below the boundary b form the
// written-chained area; blocks at or above it are unwritten unless chained
// to a written partner across the boundary. A block whose first slot points
// at a partner block that points back is "chained"; chained blocks borrow
// the partner's second slot to store one displaced value. Everything not
// reachable through a valid chain reads as the current init value, which is
// why Init only has to reset b and remember the value.
type InPlace struct {
	n      int
	blocks int
	a      []int64
	b      int   // written-block boundary
	initv  int64 // value unwritten slots read as
	ctr    Counters
}

// NewInPlace returns a zero-initialized in-place array of size n. The
// block-pair layout needs a positive even size.
func NewInPlace(n int) (*InPlace, error) {
	if n <= 0 || n%2 != 0 {
		return nil, fmt.Errorf("%w: block-pair layout needs a positive even size, got %d",
			ErrUnsupportedSize, n)
	}
	return &InPlace{n: n, blocks: n / 2, a: make([]int64, n)}, nil
}

func (p *InPlace) Name() string { return "go_inplace_pair" }

// Init resets the whole array to v in constant time: no slot is touched,
// only the boundary and the remembered init value change.
func (p *InPlace) Init(v int64) time.Duration {
	start := time.Now()
	p.initv = v
	p.b = 0
	return time.Since(start)
}

// Counters reports the relocation and conversion work done since
// construction.
func (p *InPlace) Counters() Counters { return p.ctr }

func first(blk int) int { return blk << 1 }

// chainedTo returns the block chained with bi, or -1. A chain is only valid
// when the stored offset is even, in range, crosses the boundary, and the
// partner points back. Spurious data values fail at least one of these.
func (p *InPlace) chainedTo(bi int) int {
	k0 := p.a[first(bi)]
	if k0&1 != 0 {
		return -1
	}
	if k0 < 0 || k0 >= int64(p.n) {
		return -1
	}
	k := int(k0) >> 1
	cross := (bi < p.b && k >= p.b) || (k < p.b && bi >= p.b)
	if !cross {
		return -1
	}
	if p.a[k0] != int64(first(bi)) {
		return -1
	}
	return k
}

func (p *InPlace) makeChain(bi, bj int) {
	p.a[first(bi)] = int64(first(bj))
	p.a[first(bj)] = int64(first(bi))
	p.ctr.Conversions++
}

func (p *InPlace) breakChain(bi int) {
	if k := p.chainedTo(bi); k >= 0 {
		p.a[first(k)] = int64(first(k))
		p.ctr.Conversions++
	}
}

func (p *InPlace) initBlock(bi int) {
	p.a[first(bi)] = p.initv
	p.a[first(bi)+1] = p.initv
}

// extend grows the written area by one block and returns a block inside it
// that is free to take a value. If the boundary block was chained, its
// partner's displaced value moves down and the partner is handed back.
func (p *InPlace) extend() int {
	s := p.b
	k := p.chainedTo(s)
	p.b++
	if k < 0 {
		p.initBlock(s)
		p.breakChain(s)
		return s
	}
	p.a[first(s)] = p.a[first(k)+1]
	p.breakChain(s)
	p.initBlock(k)
	p.breakChain(k)
	p.ctr.Relocations++
	return k
}

func (p *InPlace) Read(i int) int64 {
	bi := i >> 1
	k := p.chainedTo(bi)
	if i < 2*p.b {
		if k >= 0 {
			return p.initv
		}
		return p.a[i]
	}
	if k >= 0 {
		if i&1 == 0 {
			return p.a[first(k)+1]
		}
		return p.a[i]
	}
	return p.initv
}

func (p *InPlace) Write(i int, v int64) {
	bi := i >> 1
	k := p.chainedTo(bi)

	if bi < p.b {
		if k < 0 {
			p.a[i] = v
			p.breakChain(bi)
			return
		}
		bj := p.extend()
		if bj == bi {
			p.a[i] = v
			p.breakChain(bi)
			return
		}
		p.a[first(bj)], p.a[first(bi)] = p.a[first(bi)], p.a[first(bj)]
		p.a[first(bj)+1], p.a[first(bi)+1] = p.a[first(bi)+1], p.a[first(bj)+1]
		p.ctr.Relocations++
		p.makeChain(bj, k)
		p.initBlock(bi)
		p.a[i] = v
		p.breakChain(bi)
		return
	}

	if k >= 0 {
		if i&1 == 0 {
			p.a[first(k)+1] = v
		} else {
			p.a[i] = v
		}
		return
	}
	bk := p.extend()
	if bk == bi {
		p.a[i] = v
		p.breakChain(bi)
		return
	}
	p.initBlock(bi)
	p.makeChain(bk, bi)
	if i&1 == 0 {
		p.a[first(bk)+1] = v
	} else {
		p.a[i] = v
	}
}
