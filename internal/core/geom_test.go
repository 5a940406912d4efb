package core

import "testing"

func TestCollide(t *testing.T) {
	player := Box{X: 0, Y: 0, W: 32, H: 32}

	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "player inside pipe column",
			a:        player,
			b:        Box{X: 0, Y: 0, W: 64, H: 640},
			expected: true,
		},
		{
			name:     "pipe far to the right",
			a:        player,
			b:        Box{X: 1000, Y: 0, W: 64, H: 640},
			expected: false,
		},
		{
			name:     "partial overlap",
			a:        player,
			b:        Box{X: 20, Y: 20, W: 16, H: 16},
			expected: true,
		},
		{
			name:     "disjoint vertically only",
			a:        player,
			b:        Box{X: 0, Y: 100, W: 64, H: 64},
			expected: false,
		},
		{
			name:     "edges touching horizontally",
			a:        player,
			b:        Box{X: 32, Y: 0, W: 32, H: 32},
			expected: false,
		},
		{
			name:     "edges touching vertically",
			a:        player,
			b:        Box{X: 0, Y: -36, W: 480, H: 40},
			expected: false,
		},
		{
			name:     "sunk into ground",
			a:        Box{X: 0, Y: -265, W: 32, H: 32},
			b:        Box{X: 0, Y: -300, W: 480, H: 40},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collide(tc.a, tc.b); got != tc.expected {
				t.Errorf("Collide() = %v, expected %v", got, tc.expected)
			}
			if got := Collide(tc.b, tc.a); got != tc.expected {
				t.Errorf("Collide() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxCorners(t *testing.T) {
	b := BoxAt(Vec{X: 240, Y: 330}, Vec{X: 64, Y: 640})

	if got := b.Min(); got != (Vec{X: 208, Y: 10}) {
		t.Errorf("Min() = %+v, expected {208 10}", got)
	}
	if got := b.Max(); got != (Vec{X: 272, Y: 650}) {
		t.Errorf("Max() = %+v, expected {272 650}", got)
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
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
