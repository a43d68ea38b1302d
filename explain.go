package fibsearch

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Outcome is the result of comparing the target with a probed element.
type Outcome int8

const (
	// Less means the target orders before the probed element.
	Less Outcome = -1
	// Equal means the probed element matches the target.
	Equal Outcome = 0
	// Greater means the target orders after the probed element.
	Greater Outcome = 1
)

func (o Outcome) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return fmt.Sprintf("Outcome(%d)", int8(o))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Step is a single probe.
type Step struct {
	Level   int     `json:"level"`
	Offset  uint64  `json:"offset"`
	Probe   int     `json:"probe"`
	Outcome Outcome `json:"outcome"`
}

// Explanation describes how a search reached its result.
type Explanation struct {
	Length       int    `json:"length"`
	InitialLevel int    `json:"initial_level"`
	Index        int    `json:"index"`
	Steps        []Step `json:"steps"`

	// Probed holds every probed index.
	Probed *roaring64.Bitmap `json:"-"`
}

func newExplanation(n int) *Explanation {
	return &Explanation{
		Length: n,
		Index:  NotFound,
		Probed: roaring64.New(),
	}
}

func (x *Explanation) record(level int, offset uint64, probe, c int) {
	// Outcome is the target relative to the element, c is the reverse.
	o := Equal
	switch {
	case c > 0:
		o = Less
	case c < 0:
		o = Greater
	}

	x.Steps = append(x.Steps, Step{
		Level:   level,
		Offset:  offset,
		Probe:   probe,
		Outcome: o,
	})
	x.Probed.Add(uint64(probe))
}

// Found reports whether the search found the target.
func (x *Explanation) Found() bool {
	return x.Index != NotFound
}

// Probes returns the number of comparisons made.
func (x *Explanation) Probes() int {
	return len(x.Steps)
}
