package core

import "testing"

func TestSpanOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected bool
	}{
		{
			name:     "overlapping spans",
			a:        NewSpan(0, 40),
			b:        NewSpan(20, 60),
			expected: true,
		},
		{
			name:     "disjoint",
			a:        NewSpan(0, 40),
			b:        NewSpan(50, 60),
			expected: false,
		},
		{
			name:     "touching edges overlap",
			a:        NewSpan(0, 40),
			b:        NewSpan(40, 60),
			expected: true,
		},
		{
			name:     "contained",
			a:        NewSpan(10, 5),
			b:        NewSpan(0, 90),
			expected: true,
		},
		{
			name:     "zero width inside",
			a:        NewSpan(30, 0),
			b:        NewSpan(0, 90),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() reversed = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return 5")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return 10")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned wrong value")
	}
}
