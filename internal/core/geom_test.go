package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching right edge",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching bottom edge",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxAxisOverlap(t *testing.T) {
	a := NewBox(0, 0, 10, 10)
	b := NewBox(5, 20, 10, 10)

	if !a.OverlapsX(b) {
		t.Error("OverlapsX should be true for shared horizontal extent")
	}
	if a.OverlapsY(b) {
		t.Error("OverlapsY should be false for disjoint vertical extent")
	}
	if a.Right() != 10 || a.Bottom() != 10 {
		t.Errorf("edges = (%v, %v), expected (10, 10)", a.Right(), a.Bottom())
	}
}

func TestApproach(t *testing.T) {
	tests := []struct {
		cur, target, step, expected float64
	}{
		{50, 100, 1, 51},
		{99.5, 100, 1, 100},
		{120, 100, 1, 119},
		{100.4, 100, 1, 100},
		{100, 100, 1, 100},
	}

	for _, tc := range tests {
		if got := Approach(tc.cur, tc.target, tc.step); got != tc.expected {
			t.Errorf("Approach(%v, %v, %v) = %v, expected %v", tc.cur, tc.target, tc.step, got, tc.expected)
		}
	}
}
