package gen

import (
	"time"

	"github.com/spritegen/spritegen/frame"
)

// Policy bounds retries against the generator. Delay is the fixed pause
// between attempts, also applied between successive requests to stay under
// upstream rate limits.
type Policy struct {
	Attempts int
	Delay    time.Duration
}

// DefaultPolicy matches the behaviour of the original generation scripts.
var DefaultPolicy = Policy{
	Attempts: 3,
	Delay:    500 * time.Millisecond,
}

// An Accept predicate judges a candidate frame set before it is kept; a
// rejection triggers another attempt.
type Accept func(frames map[string]frame.Frame) bool

// DistinctFrames rejects a candidate set whose frames are all identical,
// the usual failure mode of a lazy completion.
func DistinctFrames(frames map[string]frame.Frame) bool {
	var first frame.Frame
	n := 0
	for _, f := range frames {
		if n == 0 {
			first = f
		} else if !f.Equal(first) {
			return true
		}
		n++
	}
	return n <= 1
}
