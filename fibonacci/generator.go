package fibonacci

import (
	"math/big"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/fibsearch/internal/conv"
)

// MaxIndex is the largest k for which F(k) fits in a uint64.
const MaxIndex = 93

// Default is the process-wide generator shared by package-level functions.
var Default = NewGenerator()

// Generator memoizes Fibonacci numbers.
//
// The table only grows; entries are never evicted since F(k) is a pure function
// of k. All methods are safe for concurrent use and the zero value is ready to use.
type Generator struct {
	mu    sync.RWMutex
	table []uint64   // table[k] = F(k), k <= MaxIndex
	big   []*big.Int // big[i] = F(MaxIndex+1+i)

	hits   atomic.Int64
	misses atomic.Int64
}

// NewGenerator creates a Generator seeded with F(0) and F(1).
func NewGenerator() *Generator {
	g := &Generator{}
	g.table = append(make([]uint64, 0, MaxIndex+1), 0, 1)
	return g
}

// Get returns F(k).
//
// It fails with ErrNegativeIndex for k < 0 and ErrOverflow for k > MaxIndex.
func (g *Generator) Get(k int) (uint64, error) {
	if k < 0 {
		return 0, newError(KindDomain, k)
	}
	if k > MaxIndex {
		return 0, newError(KindOverflow, k)
	}

	g.mu.RLock()
	if k < len(g.table) {
		v := g.table[k]
		g.mu.RUnlock()
		g.hits.Add(1)
		return v, nil
	}
	g.mu.RUnlock()

	g.misses.Add(1)

	g.mu.Lock()
	defer g.mu.Unlock()

	// Another writer may have extended the table in the meantime; extending
	// is a no-op then.
	g.extendLocked(k)

	return g.table[k], nil
}

// Int returns F(k) as a host int.
func (g *Generator) Int(k int) (int, error) {
	v, err := g.Get(k)
	if err != nil {
		return 0, err
	}

	n, err := conv.Uint64ToInt(v)
	if err != nil {
		return 0, newErrorInput(KindOverflow, itoa(k), err)
	}

	return n, nil
}

// Big returns F(k) with arbitrary precision.
//
// The returned value is a copy and may be modified by the caller.
func (g *Generator) Big(k int) (*big.Int, error) {
	if k < 0 {
		return nil, newError(KindDomain, k)
	}

	if k <= MaxIndex {
		v, err := g.Get(k)
		if err != nil {
			return nil, err
		}
		return new(big.Int).SetUint64(v), nil
	}

	i := k - MaxIndex - 1

	g.mu.RLock()
	if i < len(g.big) {
		v := new(big.Int).Set(g.big[i])
		g.mu.RUnlock()
		g.hits.Add(1)
		return v, nil
	}
	g.mu.RUnlock()

	g.misses.Add(1)

	g.mu.Lock()
	defer g.mu.Unlock()

	g.extendLocked(MaxIndex)

	for len(g.big) <= i {
		var a, b *big.Int
		switch n := len(g.big); n {
		case 0:
			a = new(big.Int).SetUint64(g.table[MaxIndex-1])
			b = new(big.Int).SetUint64(g.table[MaxIndex])
		case 1:
			a = new(big.Int).SetUint64(g.table[MaxIndex])
			b = g.big[0]
		default:
			a, b = g.big[n-2], g.big[n-1]
		}
		g.big = append(g.big, new(big.Int).Add(a, b))
	}

	return new(big.Int).Set(g.big[i]), nil
}

// Len returns the number of cached fixed-width values.
func (g *Generator) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.table)
}

// Stats returns cache hit/miss counters.
func (g *Generator) Stats() (hits, misses int64) {
	return g.hits.Load(), g.misses.Load()
}

// extendLocked grows the table up to and including k. Caller must hold mu.
func (g *Generator) extendLocked(k int) {
	if len(g.table) < 2 {
		g.table = append(g.table[:0], 0, 1)
	}

	n := len(g.table)
	if k < n {
		return
	}

	a, b := g.table[n-2], g.table[n-1]
	for i := n; i <= k; i++ {
		a, b = b, a+b
		g.table = append(g.table, b)
	}
}

// Get returns F(k) from the Default generator.
func Get(k int) (uint64, error) {
	return Default.Get(k)
}

// Big returns F(k) with arbitrary precision from the Default generator.
func Big(k int) (*big.Int, error) {
	return Default.Big(k)
}
