package geom

import "math"

// Returns a + b, clamped to the int range instead of wrapping.
func SatAdd(a, b int) int {
	sum := a + b
	if b > 0 && sum < a { return math.MaxInt }
	if b < 0 && sum > a { return math.MinInt }
	return sum
}

// Returns a - b, clamped to the int range instead of wrapping.
func SatSub(a, b int) int {
	diff := a - b
	if b < 0 && diff < a { return math.MaxInt }
	if b > 0 && diff > a { return math.MinInt }
	return diff
}

// Returns a*b, clamped to the int range instead of wrapping.
// Both operands must be non-negative.
func SatMul(a, b int) int {
	if a < 0 || b < 0 { panic("SatMul operands must be non-negative") }
	if a == 0 || b == 0 { return 0 }
	if a > math.MaxInt/b { return math.MaxInt }
	return a*b
}
