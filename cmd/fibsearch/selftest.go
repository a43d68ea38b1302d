package main

import (
	"fmt"

	"github.com/hupe1980/fibsearch"
)

type scenario struct {
	values []int
	target int
	want   int
}

func scenarios() []scenario {
	hundred := make([]int, 100)
	for i := range hundred {
		hundred[i] = i
	}

	return []scenario{
		{[]int{4, 5, 6, 7}, 6, 2},
		{[]int{1, 2, 3, 4, 5, 6, 7, 8}, 8, 7},
		{hundred, 63, 63},
		{[]int{1, 1, 1, 2, 3}, 1, 2},
		{[]int{-10, -5, -1, 0, 1, 5}, -15, fibsearch.NotFound},
		{nil, 1, fibsearch.NotFound},
		{[]int{5}, 5, 0},
		{[]int{5}, 3, fibsearch.NotFound},
	}
}

func (c *cli) selftest() error {
	failed := 0
	for i, s := range scenarios() {
		got := c.engine.Find(len(s.values), fibsearch.Comparator(s.values, s.target))
		status := "ok"
		if got != s.want {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(c.stdout, "%-4s #%d target=%d want=%d got=%d\n", status, i, s.target, s.want, got)
	}

	if failed > 0 {
		return fmt.Errorf("%d scenario(s) failed", failed)
	}
	return nil
}
