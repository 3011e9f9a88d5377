package source

import (
	"fmt"
)

// Span is a half-open byte range into one Text.
type Span struct {
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

func NewSpan(start, end uint32) Span {
	return Span{Start: start, End: end}
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Contains reports whether off falls inside the span.
func (s Span) Contains(off uint32) bool {
	return off >= s.Start && off < s.End
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Overlaps reports whether the two half-open ranges intersect.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}
