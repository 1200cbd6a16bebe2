package parsekit

import "fmt"

// Range takes as little as possible (two ints) to represent a region
// of the input.  Both ends are byte offsets.
type Range struct{ Start, End int }

func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

func (r Range) String() string {
	if r.Start == r.End {
		return fmt.Sprintf("%d", r.Start)
	}
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// Str returns the slice of `input` covered by the range.  It doesn't
// copy the bytes.
func (r Range) Str(input string) string {
	return input[r.Start:r.End]
}

func (r Range) Len() int { return r.End - r.Start }

func (r Range) Contains(other Range) bool {
	return other.Start >= r.Start && other.End <= r.End
}
