package geom

import "testing"
import "math"

func TestSatAdd(t *testing.T) {
	tests := []struct {
		a, b int
		out  int
	}{
		{0, 0, 0}, {1, 2, 3}, {-1, -2, -3}, {5, -7, -2},
		{math.MaxInt, 1, math.MaxInt}, {math.MaxInt, math.MaxInt, math.MaxInt},
		{math.MinInt, -1, math.MinInt}, {math.MinInt, math.MinInt, math.MinInt},
		{math.MaxInt, -1, math.MaxInt - 1}, {math.MinInt, 1, math.MinInt + 1},
	}

	for i, test := range tests {
		out := SatAdd(test.a, test.b)
		if out != test.out {
			t.Fatalf("test #%d: SatAdd(%d, %d) expected %d, but got %d", i, test.a, test.b, test.out, out)
		}
	}
}

func TestSatSub(t *testing.T) {
	tests := []struct {
		a, b int
		out  int
	}{
		{0, 0, 0}, {3, 2, 1}, {2, 3, -1}, {-5, -7, 2},
		{math.MinInt, 1, math.MinInt}, {math.MaxInt, -1, math.MaxInt},
		{math.MinInt, math.MaxInt, math.MinInt},
		{math.MaxInt, math.MinInt, math.MaxInt},
	}

	for i, test := range tests {
		out := SatSub(test.a, test.b)
		if out != test.out {
			t.Fatalf("test #%d: SatSub(%d, %d) expected %d, but got %d", i, test.a, test.b, test.out, out)
		}
	}
}

func TestSatMul(t *testing.T) {
	tests := []struct {
		a, b int
		out  int
	}{
		{0, 0, 0}, {0, 9, 0}, {3, 2, 6}, {7, 7, 49},
		{math.MaxInt, 2, math.MaxInt}, {math.MaxInt/2 + 1, 2, math.MaxInt},
		{math.MaxInt, 1, math.MaxInt},
	}

	for i, test := range tests {
		out := SatMul(test.a, test.b)
		if out != test.out {
			t.Fatalf("test #%d: SatMul(%d, %d) expected %d, but got %d", i, test.a, test.b, test.out, out)
		}
	}
}

func TestPointAdd(t *testing.T) {
	tests := []struct {
		a, b Point
		out  Point
	}{
		{Pt(0, 0), Pt(0, 0), Pt(0, 0)},
		{Pt(1, 2), Pt(3, 4), Pt(4, 6)},
		{Pt(-1, -2), Pt(1, 2), Pt(0, 0)},
		{Pt(math.MaxInt, 0), Pt(1, 1), Pt(math.MaxInt, 1)},
	}

	for i, test := range tests {
		out := test.a.Add(test.b)
		if out != test.out {
			t.Fatalf("test #%d: %s.Add(%s) expected %s, but got %s", i, test.a, test.b, test.out, out)
		}
	}
}

func TestPointIn(t *testing.T) {
	rect := IntsToRect(2, 3, 4, 5)
	tests := []struct {
		point Point
		out   bool
	}{
		{Pt(2, 3), true}, {Pt(5, 7), true}, {Pt(6, 7), false},
		{Pt(5, 8), false}, {Pt(1, 3), false}, {Pt(2, 2), false},
		{Pt(0, 0), false},
	}

	for i, test := range tests {
		out := test.point.In(rect)
		if out != test.out {
			t.Fatalf("test #%d: %s.In(%s) expected %t, but got %t", i, test.point, rect, test.out, out)
		}
	}
}

func TestRect(t *testing.T) {
	rect := IntsToRect(1, 2, 6, 9)
	if rect.Max() != Pt(7, 11) {
		t.Fatalf("expected max (7, 11), but got %s", rect.Max())
	}
	if rect.Area() != 54 {
		t.Fatalf("expected area 54, but got %d", rect.Area())
	}
	if rect.IsEmpty() {
		t.Fatal("expected non-empty rect")
	}
	if !IntsToRect(1, 2, 0, 9).IsEmpty() {
		t.Fatal("expected empty rect")
	}
	if NewSize(-3, 4) != (Size{ Width: 0, Height: 4 }) {
		t.Fatal("expected negative width to clamp to zero")
	}
}
