package display

import "image"
import "image/draw"
import "image/color"

import "github.com/pxkit/mtxt/geom"

// A [Target] drawing into any [draw.Image]. Draws falling outside
// the image bounds are clipped silently, and no operation fails.
type Image struct {
	target draw.Image
}

// Wraps the given image into a [Target].
func NewImage(target draw.Image) *Image {
	return &Image{ target: target }
}

// Implements [Target].
func (self *Image) FillSolid(rect geom.Rect, fillColor color.Color) error {
	clipped := rect.ImageRect().Intersect(self.target.Bounds())
	for y := clipped.Min.Y; y < clipped.Max.Y; y++ {
		for x := clipped.Min.X; x < clipped.Max.X; x++ {
			self.target.Set(x, y, fillColor)
		}
	}
	return nil
}

// Implements [Target]. The source is consumed in row-major order;
// colors falling outside the image bounds are discarded.
func (self *Image) FillContiguous(rect geom.Rect, colors ColorSource) error {
	bounds := self.target.Bounds()
	max := rect.Max()
	for y := rect.Origin.Y; y < max.Y; y++ {
		for x := rect.Origin.X; x < max.X; x++ {
			nextColor, ok := colors.NextColor()
			if !ok { return nil }
			if !inImageBounds(bounds, x, y) { continue }
			self.target.Set(x, y, nextColor)
		}
	}
	return nil
}

// Implements [Target].
func (self *Image) DrawPixels(pixels PixelSource) error {
	bounds := self.target.Bounds()
	for {
		pixel, ok := pixels.NextPixel()
		if !ok { return nil }
		if !inImageBounds(bounds, pixel.Pos.X, pixel.Pos.Y) { continue }
		self.target.Set(pixel.Pos.X, pixel.Pos.Y, pixel.Color)
	}
}

func inImageBounds(bounds image.Rectangle, x, y int) bool {
	return x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y
}
