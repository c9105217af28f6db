package geom

import "strconv"

// A pair of non-negative pixel dimensions. The constructors clamp
// negative values to zero; code building sizes by hand is expected
// to respect the invariant on its own.
type Size struct {
	Width  int
	Height int
}

// Creates a size from a pair of ints. Negative values are
// clamped to zero.
func NewSize(width, height int) Size {
	if width  < 0 { width  = 0 }
	if height < 0 { height = 0 }
	return Size{ Width: width, Height: height }
}

// Returns whether the size has zero area.
func (self Size) IsEmpty() bool {
	return self.Width <= 0 || self.Height <= 0
}

// Returns the area of the size, saturating instead of overflowing.
func (self Size) Area() int {
	if self.IsEmpty() { return 0 }
	return SatMul(self.Width, self.Height)
}

// Returns a textual representation of the size (e.g.: "6x9").
func (self Size) String() string {
	return strconv.Itoa(self.Width) + "x" + strconv.Itoa(self.Height)
}
