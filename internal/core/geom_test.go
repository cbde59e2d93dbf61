package core

import "testing"

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        BoxAt(0, 0, 1, 1),
			b:        BoxAt(1, 1, 1, 1),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        BoxAt(0, 0, 1, 1),
			b:        BoxAt(3, 0, 1, 1),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        BoxAt(0, 0, 1, 1),
			b:        BoxAt(0, -3, 1, 1),
			expected: false,
		},
		{
			name:     "touching edges",
			a:        BoxAt(0, 0, 1, 1),
			b:        BoxAt(2, 0, 1, 1),
			expected: false,
		},
		{
			name:     "contained box",
			a:        BoxAt(0, 0, 5, 5),
			b:        BoxAt(1, 1, 0.5, 0.5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() should be symmetric, got %v", got)
			}
		})
	}
}

func TestBoxWithin(t *testing.T) {
	bounds := Box{MinX: -8, MinY: -5, MaxX: 8, MaxY: 5}

	if !BoxAt(0, 0, 0.3, 0.3).Within(bounds) {
		t.Error("centred box should be within bounds")
	}
	if !BoxAt(0, 4.7, 0.3, 0.3).Within(bounds) {
		t.Error("box touching the top should still be within bounds")
	}
	if BoxAt(0, 4.8, 0.3, 0.3).Within(bounds) {
		t.Error("box crossing the top should not be within bounds")
	}
	if BoxAt(0, -4.9, 0.3, 0.3).Within(bounds) {
		t.Error("box crossing the bottom should not be within bounds")
	}
}

func TestBoxSize(t *testing.T) {
	b := BoxAt(2, 3, 0.5, 1.5)
	if b.Width() != 1 {
		t.Errorf("Width() = %v, expected 1", b.Width())
	}
	if b.Height() != 3 {
		t.Errorf("Height() = %v, expected 3", b.Height())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 2, 3, 3)
	if !r.Contains(2, 2) || !r.Contains(4, 4) {
		t.Error("corners inside the rect should be contained")
	}
	if r.Contains(5, 5) || r.Contains(1, 2) {
		t.Error("points outside the rect should not be contained")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 10) != 0 || Clamp(11, 0, 10) != 10 || Clamp(5, 0, 10) != 5 {
		t.Error("Clamp returned a value outside the range")
	}
	if ClampF(-1.5, -1, 1) != -1 || ClampF(2, -1, 1) != 1 || ClampF(0.25, -1, 1) != 0.25 {
		t.Error("ClampF returned a value outside the range")
	}
}
