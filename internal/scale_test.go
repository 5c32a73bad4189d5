package internal

import "testing"

func TestPowBase2(t *testing.T) {
	cases := []struct {
		exponent int
		want     float64
	}{
		{0, 1},
		{3, 8},
		{-3, 0.125},
		{-1, 0.5},
	}
	for _, c := range cases {
		got := Pow(2, c.exponent)
		if got != c.want {
			t.Errorf("Pow(2, %d) = %v, want %v", c.exponent, got, c.want)
		}
	}
}

func TestPowNonBase2(t *testing.T) {
	got := Pow(10, 3)
	if got != 1000 {
		t.Errorf("Pow(10, 3) = %v, want 1000", got)
	}
}

func TestScaleDown(t *testing.T) {
	// floor(1.0 / 2^-3) = floor(1.0 * 8) = 8.
	got := ScaleDown(1.0, 2, -3)
	if got != 8 {
		t.Errorf("ScaleDown(1.0, 2, -3) = %d, want 8", got)
	}

	got = ScaleDown(100.0, 2, 0)
	if got != 100 {
		t.Errorf("ScaleDown(100.0, 2, 0) = %d, want 100", got)
	}

	got = ScaleDown(-1.0, 2, -3)
	if got != -8 {
		t.Errorf("ScaleDown(-1.0, 2, -3) = %d, want -8", got)
	}
}

func TestFloorDivInt64(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{7, 2, 3},
		{-7, 2, -4},
		{-8, 2, -4},
		{0, 2, 0},
	}
	for _, c := range cases {
		got := FloorDivInt64(c.a, c.b)
		if got != c.want {
			t.Errorf("FloorDivInt64(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
