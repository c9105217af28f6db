package geom

import "image"
import "strconv"

// A pair of integer pixel coordinates. Commonly used to keep track
// of the pen position while drawing or measuring text.
type Point struct {
	X int
	Y int
}

// Creates a point from a pair of ints.
func Pt(x, y int) Point {
	return Point{ X: x, Y: y }
}

// Creates a point from an [image.Point] stdlib value.
func FromImagePoint(point image.Point) Point {
	return Point{ X: point.X, Y: point.Y }
}

// Returns the point as an [image.Point] stdlib value.
func (self Point) ImagePoint() image.Point {
	return image.Pt(self.X, self.Y)
}

// Returns the result of adding the two points, saturating
// instead of overflowing.
func (self Point) Add(point Point) Point {
	self.X = SatAdd(self.X, point.X)
	self.Y = SatAdd(self.Y, point.Y)
	return self
}

// Returns the result of adding the given value to the
// point's X coordinate, saturating instead of overflowing.
func (self Point) AddX(x int) Point {
	self.X = SatAdd(self.X, x)
	return self
}

// Returns the result of adding the given value to the
// point's Y coordinate, saturating instead of overflowing.
func (self Point) AddY(y int) Point {
	self.Y = SatAdd(self.Y, y)
	return self
}

// Returns whether the current point is inside the given [Rect].
func (self Point) In(rect Rect) bool {
	min, max := rect.Origin, rect.Max()
	return self.X >= min.X && self.X < max.X && self.Y >= min.Y && self.Y < max.Y
}

// Returns a textual representation of the point (e.g.: "(2, -4)").
func (self Point) String() string {
	return "(" + strconv.Itoa(self.X) + ", " + strconv.Itoa(self.Y) + ")"
}
