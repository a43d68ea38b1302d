package conv

import (
	"fmt"
	"math"
)

// Uint64ToInt converts uint64 to int, failing if the value exceeds math.MaxInt.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}
