package display

import "errors"
import "fmt"
import "image/color"
import "strings"

import "github.com/pxkit/mtxt/geom"

// Mock surface size, in pixels.
const mockSize = 64

// Violations reported by [Mock] targets. Both can be downgraded to
// regular draws with [Mock.SetAllowOverdraw] and
// [Mock.SetAllowOutOfBounds].
var (
	ErrOverdraw    = errors.New("mock: pixel drawn more than once")
	ErrOutOfBounds = errors.New("mock: pixel drawn outside the surface")
)

// Reported by [Mock.FillContiguous] when the color source runs dry
// before covering the whole rect.
var ErrShortSource = errors.New("mock: contiguous fill source exhausted early")

// A bounded in-memory [Target] of 64x64 pixels that records every
// drawn pixel, meant for tests. Unlike real targets, a Mock starts
// with every pixel in an "unset" state distinct from any color, and
// by default it fails on overdraw (drawing the same pixel twice) and
// on out-of-bounds draws, so renderer bugs surface as sink errors.
//
// The drawn content can be compared against expectations with
// [Mock.MatchPattern] and [Mock.Diff].
type Mock struct {
	colors [mockSize][mockSize]color.Color
	allowOverdraw    bool
	allowOutOfBounds bool
}

// Creates an empty [Mock] surface.
func NewMock() *Mock { return &Mock{} }

// Makes drawing the same pixel twice a regular draw instead
// of an [ErrOverdraw] failure.
func (self *Mock) SetAllowOverdraw(allow bool) { self.allowOverdraw = allow }

// Makes drawing outside the surface a silent no-op instead
// of an [ErrOutOfBounds] failure.
func (self *Mock) SetAllowOutOfBounds(allow bool) { self.allowOutOfBounds = allow }

// Returns the size of the mock surface.
func (self *Mock) Size() geom.Size { return geom.NewSize(mockSize, mockSize) }

// Returns the color drawn at the given point, or nil if the point
// was never drawn or falls outside the surface.
func (self *Mock) ColorAt(point geom.Point) color.Color {
	if !point.In(geom.NewRect(geom.Pt(0, 0), self.Size())) { return nil }
	return self.colors[point.Y][point.X]
}

// Implements [Target].
func (self *Mock) FillSolid(rect geom.Rect, fillColor color.Color) error {
	max := rect.Max()
	for y := rect.Origin.Y; y < max.Y; y++ {
		for x := rect.Origin.X; x < max.X; x++ {
			err := self.set(geom.Pt(x, y), fillColor)
			if err != nil { return err }
		}
	}
	return nil
}

// Implements [Target].
func (self *Mock) FillContiguous(rect geom.Rect, colors ColorSource) error {
	max := rect.Max()
	for y := rect.Origin.Y; y < max.Y; y++ {
		for x := rect.Origin.X; x < max.X; x++ {
			nextColor, ok := colors.NextColor()
			if !ok { return fmt.Errorf("%w (rect %s)", ErrShortSource, rect) }
			err := self.set(geom.Pt(x, y), nextColor)
			if err != nil { return err }
		}
	}
	return nil
}

// Implements [Target].
func (self *Mock) DrawPixels(pixels PixelSource) error {
	for {
		pixel, ok := pixels.NextPixel()
		if !ok { return nil }
		err := self.set(pixel.Pos, pixel.Color)
		if err != nil { return err }
	}
}

func (self *Mock) set(point geom.Point, pixelColor color.Color) error {
	if !point.In(geom.NewRect(geom.Pt(0, 0), self.Size())) {
		if self.allowOutOfBounds { return nil }
		return fmt.Errorf("%w (at %s)", ErrOutOfBounds, point)
	}
	if self.colors[point.Y][point.X] != nil && !self.allowOverdraw {
		return fmt.Errorf("%w (at %s)", ErrOverdraw, point)
	}
	self.colors[point.Y][point.X] = pixelColor
	return nil
}

// Compares the drawn content against the given pattern and returns
// a descriptive error on the first difference, or nil if it matches.
//
// Each pattern string is one row of pixels, one character per pixel:
// ' ' means "never drawn" and any other character means "drawn with
// the palette color of that code" ('.'/'K' black, 'W'/'#' white, 'R'
// red, 'G' green, 'B' blue, 'Y' yellow, 'C' cyan, 'M' magenta).
// Pixels beyond the pattern must be undrawn for the match to
// succeed.
func (self *Mock) MatchPattern(pattern []string) error {
	for y := 0; y < mockSize; y++ {
		for x := 0; x < mockSize; x++ {
			expectedCode := byte(' ')
			if y < len(pattern) && x < len(pattern[y]) { expectedCode = pattern[y][x] }

			drawnColor := self.colors[y][x]
			if expectedCode == ' ' {
				if drawnColor == nil { continue }
				return fmt.Errorf(
					"mock: unexpected pixel at %s\n%s",
					geom.Pt(x, y), self.String(),
				)
			}

			expectedColor, known := patternPalette[expectedCode]
			if !known {
				return fmt.Errorf("mock: unknown pattern code %q at %s", expectedCode, geom.Pt(x, y))
			}
			if drawnColor == color.Color(expectedColor) { continue }
			if drawnColor == nil {
				return fmt.Errorf(
					"mock: missing pixel at %s (expected %q)\n%s",
					geom.Pt(x, y), expectedCode, self.String(),
				)
			}
			return fmt.Errorf(
				"mock: wrong color at %s (expected %q, got %q)\n%s",
				geom.Pt(x, y), expectedCode, patternCode(drawnColor), self.String(),
			)
		}
	}
	return nil
}

// Compares two mock surfaces pixel by pixel and returns a
// descriptive error on the first difference, or nil if they are
// identical (including which pixels were never drawn).
func (self *Mock) Diff(other *Mock) error {
	for y := 0; y < mockSize; y++ {
		for x := 0; x < mockSize; x++ {
			if self.colors[y][x] == other.colors[y][x] { continue }
			return fmt.Errorf(
				"mock: surfaces differ at %s\n--- got:\n%s\n--- want:\n%s",
				geom.Pt(x, y), self.String(), other.String(),
			)
		}
	}
	return nil
}

// Renders the drawn region of the surface as pattern rows, using
// the same codes as [Mock.MatchPattern] (and '?' for colors outside
// the palette).
func (self *Mock) String() string {
	maxX, maxY := 0, 0
	for y := 0; y < mockSize; y++ {
		for x := 0; x < mockSize; x++ {
			if self.colors[y][x] == nil { continue }
			if x >= maxX { maxX = x + 1 }
			if y >= maxY { maxY = y + 1 }
		}
	}

	var builder strings.Builder
	for y := 0; y < maxY; y++ {
		for x := 0; x < maxX; x++ {
			if self.colors[y][x] == nil {
				builder.WriteByte(' ')
			} else {
				builder.WriteByte(patternCode(self.colors[y][x]))
			}
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}
