package core

import "testing"

func TestOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "edge touch horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "edge touch vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "corner touch (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single unit overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
		{
			name:     "negative coordinates",
			a:        NewRect(-10, -10, 15, 15),
			b:        NewRect(0, 0, 4, 4),
			expected: true,
		},
		{
			name:     "zero width strictly inside overlaps",
			a:        NewRect(5, 0, 0, 10),
			b:        NewRect(0, 0, 10, 10),
			expected: true,
		},
		{
			name:     "zero width on the edge does not overlap",
			a:        NewRect(10, 0, 0, 10),
			b:        NewRect(0, 0, 10, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlap(tc.a, tc.b); got != tc.expected {
				t.Errorf("Overlap() = %v, expected %v", got, tc.expected)
			}
			if got := Overlap(tc.b, tc.a); got != tc.expected {
				t.Errorf("Overlap() (reversed) = %v, expected %v", got, tc.expected)
			}
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestOverlapSymmetryGrid(t *testing.T) {
	base := NewRect(0, 0, 4, 3)
	for x := -6; x <= 6; x++ {
		for y := -5; y <= 5; y++ {
			for w := 0; w <= 3; w++ {
				other := NewRect(x, y, w, 2)
				if Overlap(base, other) != Overlap(other, base) {
					t.Fatalf("Overlap not symmetric for %v and %v", base, other)
				}
			}
		}
	}
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	if !a.Intersects(NewRect(10, 0, 10, 10)) {
		t.Error("edge-touching rects should intersect")
	}
	if !a.Intersects(NewRect(5, 5, 2, 2)) {
		t.Error("contained rect should intersect")
	}
	if a.Intersects(NewRect(11, 0, 10, 10)) {
		t.Error("separated rects should not intersect")
	}
	if a.Intersects(NewRect(0, -12, 10, 10)) {
		t.Error("rect above should not intersect")
	}
}

func TestRectInside(t *testing.T) {
	outer := NewRect(0, 0, 20, 20)

	tests := []struct {
		name     string
		r        Rect
		expected bool
	}{
		{"strictly inside", NewRect(5, 5, 5, 5), true},
		{"identical", outer, true},
		{"sharing edges", NewRect(0, 0, 20, 5), true},
		{"sticking out right", NewRect(15, 0, 10, 5), false},
		{"sticking out top", NewRect(5, -1, 5, 5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Inside(outer); got != tc.expected {
				t.Errorf("Inside() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEmpty(t *testing.T) {
	if !NewRect(3, 3, 0, 0).Empty() {
		t.Error("zero-size rect should be empty")
	}
	if NewRect(0, 0, 0, 5).Empty() {
		t.Error("rect with height should not be empty")
	}
	if NewRect(0, 0, 0, 5).HasArea() {
		t.Error("zero-width rect has no area")
	}
	if NewRect(0, 0, 3, 4).Area() != 12 {
		t.Errorf("Area() = %d, expected 12", NewRect(0, 0, 3, 4).Area())
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
	if r.String() != "[5,10,20,15]" {
		t.Errorf("String() = %q", r.String())
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, -4)

	if got := p.Add(Pt(1, 1)); got != Pt(4, -3) {
		t.Errorf("Add() = %v, expected (4,-3)", got)
	}
	if got := p.Sub(Pt(3, 3)); got != Pt(0, -7) {
		t.Errorf("Sub() = %v, expected (0,-7)", got)
	}
	if got := Pt(10, 5).Mul(1.5); got != Pt(15, 7) {
		t.Errorf("Mul() = %v, expected (15,7)", got)
	}
	if got := CenterInside(100, 50, 20, 10); got != Pt(40, 20) {
		t.Errorf("CenterInside() = %v, expected (40,20)", got)
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
	if Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs mismatch")
	}
}
