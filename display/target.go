package display

import "image/color"

import "github.com/pxkit/mtxt/geom"

// A single pixel: an absolute position and a color.
type Pixel struct {
	Pos   geom.Point
	Color color.Color
}

// A lazy stream of colors, consumed by [Target.FillContiguous].
type ColorSource interface {
	// Returns the next color and true, or nil and false once
	// the stream is exhausted.
	NextColor() (color.Color, bool)
}

// A lazy stream of pixels, consumed by [Target.DrawPixels].
type PixelSource interface {
	// Returns the next pixel and true, or a zero pixel and false
	// once the stream is exhausted.
	NextPixel() (Pixel, bool)
}

// The destination abstraction for all mtxt drawing operations.
//
// Errors are target-defined and opaque: the renderer propagates the
// first failure immediately and never retries or interprets them.
// A failed call leaves the target in whatever partially-drawn state
// it reached.
type Target interface {
	// Fills the given rect with a single color.
	FillSolid(rect geom.Rect, fillColor color.Color) error

	// Fills the given rect with the colors of the given source, in
	// row-major order. The source must yield exactly rect.Area()
	// colors.
	FillContiguous(rect geom.Rect, colors ColorSource) error

	// Draws each pixel of the given source at its own position.
	DrawPixels(pixels PixelSource) error
}
