package fibonacci

import (
	"errors"
	"strconv"
	"strings"
)

// ParseIndex parses an untyped Fibonacci index.
//
// Anything that is not a base-10 integer, including "3.14", "5.0" and the
// empty string, fails with ErrNotInteger. Negative values fail with
// ErrNegativeIndex.
func ParseIndex(s string) (int, error) {
	t := strings.TrimSpace(s)

	k, err := strconv.Atoi(t)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			if strings.HasPrefix(t, "-") {
				return 0, newErrorInput(KindDomain, strconv.Quote(s), nil)
			}
			return 0, newErrorInput(KindOverflow, strconv.Quote(s), nil)
		}
		return 0, newErrorInput(KindType, strconv.Quote(s), nil)
	}

	if k < 0 {
		return 0, newError(KindDomain, k)
	}

	return k, nil
}

func itoa(k int) string { return strconv.Itoa(k) }
