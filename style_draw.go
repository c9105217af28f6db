package mtxt

import "image/color"

import "github.com/pxkit/mtxt/geom"
import "github.com/pxkit/mtxt/raster"
import "github.com/pxkit/mtxt/display"

// This file contains the draw operations of [Style] and the glyph
// sample adapters feeding the target. Measuring lives in
// style_measure.go.

// Draws the given text at the given anchor and returns the position
// at which a subsequent call would continue the same line. The
// returned position always keeps the anchor's vertical coordinate,
// for every baseline mode, so chained calls never drift vertically.
//
// Each glyph is drawn with the cheapest strategy its colors allow:
//  - Text and background color set: one contiguous fill covering the
//    full glyph cell.
//  - Only text color: one sparse draw touching only the glyph's "on"
//    samples.
//  - Only background color: one sparse draw touching only the "off"
//    samples.
//  - Neither: nothing is drawn for the glyph.
// Gaps between cells (for fonts with character spacing) are filled
// only when a background color is set. After all the glyphs, the
// strikethrough and underline decorations are drawn spanning the
// full drawn width, if they resolve to a color.
//
// The first failing target call aborts the draw and is returned as
// is; already issued calls are not rolled back. Characters the font
// has no glyph for are drawn as its replacement glyph.
func (self Style) DrawString(text string, position geom.Point, baseline Baseline, target display.Target) (geom.Point, error) {
	if target == nil { panic("can't draw on a nil display.Target") }
	if self.font == nil { panic("can't draw text with a nil font (tip: mtxt.NewBuilder())") }

	lineTop := position.AddY(-self.baselineOffset(baseline))
	cellSize := self.font.CellSize()
	spacing := self.font.CharacterSpacing()

	cursor := lineTop
	width := 0
	first := true

	for _, codePoint := range text {
		if first {
			first = false
		} else if spacing > 0 {
			// fill the gap between cells if a background color is set
			err := self.drawBackground(spacing, cursor, target)
			if err != nil { return geom.Point{}, err }
			cursor = cursor.AddX(spacing)
			width = geom.SatAdd(width, spacing)
		}

		scanner := raster.NewScanner(self.font, codePoint)
		switch {
		case self.textColor != nil && self.backgroundColor != nil:
			// opaque glyph, single rectangular fill
			source := opaqueCellSource{
				scanner: scanner,
				onColor: self.textColor,
				offColor: self.backgroundColor,
			}
			err := target.FillContiguous(geom.NewRect(cursor, cellSize), &source)
			if err != nil { return geom.Point{}, err }
		case self.textColor != nil:
			source := maskPixelSource{
				scanner: scanner,
				origin: cursor,
				pixelColor: self.textColor,
				on: true,
			}
			err := target.DrawPixels(&source)
			if err != nil { return geom.Point{}, err }
		case self.backgroundColor != nil:
			source := maskPixelSource{
				scanner: scanner,
				origin: cursor,
				pixelColor: self.backgroundColor,
				on: false,
			}
			err := target.DrawPixels(&source)
			if err != nil { return geom.Point{}, err }
		default:
			// fully transparent glyph, no target call
		}

		cursor = cursor.AddX(cellSize.Width)
		width = geom.SatAdd(width, cellSize.Width)
	}

	err := self.drawStrikethrough(width, lineTop, target)
	if err != nil { return geom.Point{}, err }
	err = self.drawUnderline(width, lineTop, target)
	if err != nil { return geom.Point{}, err }

	cursor.Y = position.Y
	return cursor, nil
}

// Draws a whitespace span of the given width at the given anchor:
// a background fill at full cell height (if a background color is
// set) plus the decorations, with no glyph sampling at all. Returns
// the position right after the span, keeping the anchor's vertical
// coordinate like [Style.DrawString] does.
//
// Zero and negative widths return immediately, before any target
// call.
func (self Style) DrawWhitespace(width int, position geom.Point, baseline Baseline, target display.Target) (geom.Point, error) {
	if target == nil { panic("can't draw on a nil display.Target") }
	if self.font == nil { panic("can't draw text with a nil font (tip: mtxt.NewBuilder())") }
	if width <= 0 { return position, nil }

	lineTop := position.AddY(-self.baselineOffset(baseline))

	err := self.drawBackground(width, lineTop, target)
	if err != nil { return geom.Point{}, err }
	err = self.drawStrikethrough(width, lineTop, target)
	if err != nil { return geom.Point{}, err }
	err = self.drawUnderline(width, lineTop, target)
	if err != nil { return geom.Point{}, err }

	return position.AddX(width), nil
}

// Fills a background span of the given width at full cell height.
// No-op without a background color or a positive width.
func (self Style) drawBackground(width int, lineTop geom.Point, target display.Target) error {
	if width <= 0 { return nil }
	if self.backgroundColor == nil { return nil }
	fillRect := geom.NewRect(lineTop, geom.NewSize(width, self.font.CellSize().Height))
	return target.FillSolid(fillRect, self.backgroundColor)
}

func (self Style) drawStrikethrough(width int, lineTop geom.Point, target display.Target) error {
	strikeColor := self.strikethrough.Resolve(self.textColor)
	if strikeColor == nil || width <= 0 { return nil }
	fillRect := geom.NewRect(
		lineTop.AddY(self.font.StrikethroughOffset()),
		geom.NewSize(width, self.font.StrikethroughHeight()),
	)
	return target.FillSolid(fillRect, strikeColor)
}

func (self Style) drawUnderline(width int, lineTop geom.Point, target display.Target) error {
	underlineColor := self.underline.Resolve(self.textColor)
	if underlineColor == nil || width <= 0 { return nil }
	fillRect := geom.NewRect(
		lineTop.AddY(self.font.UnderlineOffset()),
		geom.NewSize(width, self.font.UnderlineHeight()),
	)
	return target.FillSolid(fillRect, underlineColor)
}

// Feeds a full glyph cell to FillContiguous, mapping on samples to
// the text color and off samples to the background color.
type opaqueCellSource struct {
	scanner raster.Scanner
	onColor color.Color
	offColor color.Color
}

func (self *opaqueCellSource) NextColor() (color.Color, bool) {
	sample, ok := self.scanner.Next()
	if !ok { return nil, false }
	if sample.On { return self.onColor, true }
	return self.offColor, true
}

// Feeds only the on (or only the off) samples of a glyph cell to
// DrawPixels, translated to the cell's position on the target.
type maskPixelSource struct {
	scanner raster.Scanner
	origin geom.Point
	pixelColor color.Color
	on bool
}

func (self *maskPixelSource) NextPixel() (display.Pixel, bool) {
	for {
		sample, ok := self.scanner.Next()
		if !ok { return display.Pixel{}, false }
		if sample.On != self.on { continue }
		return display.Pixel{
			Pos: self.origin.Add(sample.Offset),
			Color: self.pixelColor,
		}, true
	}
}
