package source

import (
	"testing"
)

func TestSpan_Contains(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		off      uint32
		expected bool
	}{
		{
			name:     "offset at start",
			span:     Span{Start: 10, End: 20},
			off:      10,
			expected: true,
		},
		{
			name:     "offset in middle",
			span:     Span{Start: 10, End: 20},
			off:      15,
			expected: true,
		},
		{
			name:     "offset at end is outside (half-open)",
			span:     Span{Start: 10, End: 20},
			off:      20,
			expected: false,
		},
		{
			name:     "offset before start",
			span:     Span{Start: 10, End: 20},
			off:      9,
			expected: false,
		},
		{
			name:     "empty span contains nothing",
			span:     Span{Start: 10, End: 10},
			off:      10,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Contains(tt.off); got != tt.expected {
				t.Errorf("Contains(%d) = %v, want %v", tt.off, got, tt.expected)
			}
		})
	}
}

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		other    Span
		expected Span
	}{
		{
			name:     "disjoint spans",
			span:     Span{Start: 10, End: 20},
			other:    Span{Start: 30, End: 40},
			expected: Span{Start: 10, End: 40},
		},
		{
			name:     "other inside span",
			span:     Span{Start: 10, End: 40},
			other:    Span{Start: 20, End: 30},
			expected: Span{Start: 10, End: 40},
		},
		{
			name:     "other before span",
			span:     Span{Start: 10, End: 20},
			other:    Span{Start: 0, End: 5},
			expected: Span{Start: 0, End: 20},
		},
		{
			name:     "identical spans",
			span:     Span{Start: 10, End: 20},
			other:    Span{Start: 10, End: 20},
			expected: Span{Start: 10, End: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Cover(tt.other); got != tt.expected {
				t.Errorf("Cover() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSpan_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected bool
	}{
		{name: "disjoint", a: Span{Start: 0, End: 5}, b: Span{Start: 5, End: 10}, expected: false},
		{name: "touching interiors", a: Span{Start: 0, End: 6}, b: Span{Start: 5, End: 10}, expected: true},
		{name: "contained", a: Span{Start: 0, End: 10}, b: Span{Start: 3, End: 4}, expected: true},
		{name: "empty never overlaps", a: Span{Start: 5, End: 5}, b: Span{Start: 0, End: 10}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.expected {
				t.Errorf("Overlaps() = %v, want %v", got, tt.expected)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.expected {
				t.Errorf("Overlaps() is not symmetric: %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSpan_LenEmpty(t *testing.T) {
	s := Span{Start: 7, End: 12}
	if s.Len() != 5 {
		t.Errorf("Len() = %d, want 5", s.Len())
	}
	if s.Empty() {
		t.Errorf("Empty() = true for non-empty span")
	}
	z := Span{Start: 3, End: 3}
	if !z.Empty() {
		t.Errorf("Empty() = false for zero-length span")
	}
	if z.Len() != 0 {
		t.Errorf("Len() = %d, want 0", z.Len())
	}
}
