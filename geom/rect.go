package geom

import "image"

// An axis-aligned rectangle defined by its top-left corner and its
// size. Like [image.Rectangle], the bottom-right corner is excluded
// from the rectangle.
type Rect struct {
	Origin Point
	Size   Size
}

// Creates a rect from an origin point and a size.
func NewRect(origin Point, size Size) Rect {
	return Rect{ Origin: origin, Size: size }
}

// Creates a rect from a set of four ints (origin x, origin y,
// width, height).
func IntsToRect(x, y, width, height int) Rect {
	return Rect{ Origin: Pt(x, y), Size: NewSize(width, height) }
}

// Returns the excluded bottom-right corner of the rect.
func (self Rect) Max() Point {
	return Point{
		X: SatAdd(self.Origin.X, self.Size.Width),
		Y: SatAdd(self.Origin.Y, self.Size.Height),
	}
}

// Returns whether the rect has zero area.
func (self Rect) IsEmpty() bool {
	return self.Size.IsEmpty()
}

// Returns the area of the rect, saturating instead of overflowing.
func (self Rect) Area() int {
	return self.Size.Area()
}

// Returns the rect as an [image.Rectangle] stdlib value.
func (self Rect) ImageRect() image.Rectangle {
	max := self.Max()
	return image.Rect(self.Origin.X, self.Origin.Y, max.X, max.Y)
}

// Returns a textual representation of the rect
// (e.g.: "(2, -4) 6x9").
func (self Rect) String() string {
	return self.Origin.String() + " " + self.Size.String()
}
