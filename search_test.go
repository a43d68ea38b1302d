package fibsearch

import (
	"slices"
	"strings"
	"testing"

	"github.com/hupe1980/fibsearch/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intRange(start, stop, step int) []int {
	var s []int
	for v := start; v < stop; v += step {
		s = append(s, v)
	}
	return s
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name  string
		s     []int
		value int
		want  int
	}{
		{"first", []int{4, 5, 6, 7}, 4, 0},
		{"second", []int{4, 5, 6, 7}, 5, 1},
		{"third", []int{4, 5, 6, 7}, 6, 2},
		{"last", []int{4, 5, 6, 7}, 7, 3},
		{"below range", []int{4, 5, 6, 7}, -10, NotFound},
		{"above range", []int{4, 5, 6, 7}, 10, NotFound},

		{"empty", []int{}, 1, NotFound},
		{"nil", nil, 0, NotFound},

		{"single match", []int{5}, 5, 0},
		{"single below", []int{5}, 3, NotFound},
		{"single above", []int{5}, 7, NotFound},
		{"single zero", []int{0}, 0, 0},
		{"single negative", []int{-1}, -1, 0},

		{"two first", []int{-18, 2}, -18, 0},
		{"two second", []int{-18, 2}, 2, 1},
		{"two gap", []int{-18, 2}, 0, NotFound},
		{"two below", []int{1, 2}, 0, NotFound},
		{"two above", []int{1, 2}, 3, NotFound},

		{"three first", []int{1, 2, 3}, 1, 0},
		{"three middle", []int{1, 2, 3}, 2, 1},
		{"three last", []int{1, 2, 3}, 3, 2},
		{"three below", []int{1, 2, 3}, 0, NotFound},
		{"three above", []int{1, 2, 3}, 4, NotFound},

		{"negatives first", []int{-10, -5, -1, 0, 1, 5}, -10, 0},
		{"negatives second", []int{-10, -5, -1, 0, 1, 5}, -5, 1},
		{"negatives zero", []int{-10, -5, -1, 0, 1, 5}, 0, 3},
		{"negatives last", []int{-10, -5, -1, 0, 1, 5}, 5, 5},
		{"negatives absent", []int{-10, -5, -1, 0, 1, 5}, -15, NotFound},

		{"range100 zero", intRange(0, 100, 1), 0, 0},
		{"range100 one", intRange(0, 100, 1), 1, 1},
		{"range100 fifty", intRange(0, 100, 1), 50, 50},
		{"range100 sixty-three", intRange(0, 100, 1), 63, 63},
		{"range100 last", intRange(0, 100, 1), 99, 99},
		{"range100 above", intRange(0, 100, 1), 100, NotFound},
		{"range100 below", intRange(0, 100, 1), -1, NotFound},

		{"step3 first", intRange(-100, 100, 3), -100, 0},
		{"step3 second", intRange(-100, 100, 3), -97, 1},
		{"step3 absent", intRange(-100, 100, 3), 0, NotFound},
		{"step3 last", intRange(-100, 100, 3), 98, 66},
		{"step5 zero", intRange(-100, 100, 5), 0, 20},
		{"step5 last", intRange(-100, 100, 5), 95, 39},
		{"step5 first", intRange(-100, 100, 5), -100, 0},
		{"step5 second", intRange(-100, 100, 5), -95, 1},

		{"duplicates middle", []int{1, 2, 2, 2, 3}, 2, 3},
		{"duplicates head", []int{1, 1, 1, 2, 3}, 1, 2},
		{"duplicates zeros", []int{0, 0, 0, 0, 1}, 0, 3},

		{"fib8 first", []int{1, 2, 3, 4, 5, 6, 7, 8}, 1, 0},
		{"fib8 last", []int{1, 2, 3, 4, 5, 6, 7, 8}, 8, 7},
		{"fib8 middle", []int{1, 2, 3, 4, 5, 6, 7, 8}, 4, 3},
		{"fib8 above", []int{1, 2, 3, 4, 5, 6, 7, 8}, 9, NotFound},

		{"fib13 first", intRange(1, 14, 1), 1, 0},
		{"fib13 last", intRange(1, 14, 1), 13, 12},
		{"fib13 middle", intRange(1, 14, 1), 7, 6},
		{"fib13 above", intRange(1, 14, 1), 14, NotFound},

		{"fib21 first", intRange(1, 22, 1), 1, 0},
		{"fib21 last", intRange(1, 22, 1), 21, 20},
		{"fib21 middle", intRange(1, 22, 1), 11, 10},
		{"fib21 above", intRange(1, 22, 1), 22, NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Search(tt.s, tt.value))
		})
	}
}

func TestSearch_Strings(t *testing.T) {
	s := []string{"a", "c", "d"}

	assert.Equal(t, 0, Search(s, "a"))
	assert.Equal(t, 1, Search(s, "c"))
	assert.Equal(t, 2, Search(s, "d"))
	assert.Equal(t, NotFound, Search(s, "b"))
	assert.Equal(t, NotFound, Search(s, "f"))
	assert.Equal(t, 1, Search([]string{"apple", "banana", "cherry"}, "banana"))
}

func TestSearch_Floats(t *testing.T) {
	s := []float64{.1, .4, 7}

	assert.Equal(t, 0, Search(s, .1))
	assert.Equal(t, 1, Search(s, .4))
	assert.Equal(t, 2, Search(s, 7))
	assert.Equal(t, 2, Search([]float64{0.1, 0.2, 0.3, 0.4, 0.5}, 0.3))
	assert.Equal(t, 1, Search([]float64{1.1, 2.2, 3.3}, 2.2))
}

type celsius float64

func TestSearch_NamedTypes(t *testing.T) {
	type temps []celsius

	s := temps{-3.5, 0, 12, 21.5}
	assert.Equal(t, 3, Search(s, 21.5))
	assert.Equal(t, NotFound, Search(s, 20))
}

func TestSearch_Deterministic(t *testing.T) {
	s := []int{1, 1, 1, 2, 2, 2, 2, 3, 3}

	for _, v := range []int{1, 2, 3} {
		first := Search(s, v)
		for range 10 {
			assert.Equal(t, first, Search(s, v))
		}
	}
}

func TestSearch_Randomized(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for _, n := range []int{0, 1, 2, 3, 5, 7, 8, 12, 13, 20, 21, 34, 100, 233, 1000} {
		for _, maxGap := range []int{0, 1, 3} {
			s := rng.SortedInts(n, maxGap)
			require.True(t, slices.IsSorted(s))

			lo, hi := -n-2, n*maxGap+2
			for v := lo; v <= hi; v++ {
				idx := Search(s, v)
				if slices.Contains(s, v) {
					require.NotEqual(t, NotFound, idx, "n=%d v=%d", n, v)
					require.Equal(t, v, s[idx], "n=%d v=%d", n, v)
				} else {
					require.Equal(t, NotFound, idx, "n=%d v=%d", n, v)
				}
			}
		}
	}
}

func TestSearch_RandomizedFloats(t *testing.T) {
	rng := testutil.NewRNG(42)
	s := rng.SortedFloats(500)

	for i, v := range s {
		idx := Search(s, v)
		require.NotEqual(t, NotFound, idx, "i=%d", i)
		assert.Equal(t, v, s[idx])
	}

	assert.Equal(t, NotFound, Search(s, -1.0))
	assert.Equal(t, NotFound, Search(s, 2.0))
}

func TestSearchFunc(t *testing.T) {
	type person struct {
		Name string
		Age  int
	}

	people := []person{
		{"alice", 31}, {"bob", 25}, {"carol", 47}, {"dave", 19}, {"erin", 52},
	}

	byName := func(p person, name string) int { return strings.Compare(p.Name, name) }

	idx := SearchFunc(people, "carol", byName)
	require.Equal(t, 2, idx)
	assert.Equal(t, 47, people[idx].Age)

	assert.Equal(t, NotFound, SearchFunc(people, "zoe", byName))
	assert.Equal(t, NotFound, SearchFunc([]person{}, "alice", byName))
}

type evens struct{ n int }

func (e evens) Len() int       { return e.n }
func (e evens) At(i int) int   { return 2 * i }

func TestSearchSeq(t *testing.T) {
	seq := evens{n: 1_000_000}

	assert.Equal(t, 0, SearchSeq[int](seq, 0))
	assert.Equal(t, 21, SearchSeq[int](seq, 42))
	assert.Equal(t, 999_999, SearchSeq[int](seq, 1_999_998))
	assert.Equal(t, NotFound, SearchSeq[int](seq, 43))
	assert.Equal(t, NotFound, SearchSeq[int](evens{}, 0))
}

func TestIndex(t *testing.T) {
	idx, err := Index([]int{4, 5, 6, 7}, 6)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	idx, err = Index([]int{4, 5, 6, 7}, 9)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "not found: 9")
	assert.Equal(t, NotFound, idx)
}

func BenchmarkSearch(b *testing.B) {
	s := intRange(0, 1<<20, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Search(s, i&(1<<20-1))
	}
}
