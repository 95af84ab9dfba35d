package store

import (
	"fmt"
	"math"
	"time"
)

// invertedTimestamp returns a string that sorts in descending order.
// Uses MaxInt64 - UnixNano so newest timestamps come first during forward iteration.
func invertedTimestamp(t time.Time) string {
	inverted := math.MaxInt64 - t.UnixNano()
	return fmt.Sprintf("%019d", inverted)
}

// invertedTimestampLen is the fixed width of an inverted timestamp segment.
const invertedTimestampLen = 19
