package raster

import "github.com/pxkit/mtxt/geom"
import "github.com/pxkit/mtxt/mono"

// A single monochrome glyph sample: a cell-relative offset and
// whether the sample is "on" (part of the glyph shape) or "off"
// (part of the cell background).
type Sample struct {
	Offset geom.Point
	On     bool
}

// A lazy, finite, restartable stream of glyph [Sample] values.
// See the package documentation for the exact guarantees. The zero
// value is not usable; create scanners with [NewScanner].
type Scanner struct {
	font  *mono.Font
	glyph int
	x     int
	y     int
}

// Creates a [Scanner] over the glyph cell of the given character.
// Characters the font has no glyph for scan as the font's
// replacement glyph.
func NewScanner(font *mono.Font, codePoint rune) Scanner {
	return Scanner{ font: font, glyph: font.GlyphIndex(codePoint) }
}

// Returns the next sample of the glyph cell, in row-major order,
// and true, or a zero sample and false once the whole cell has
// been scanned.
func (self *Scanner) Next() (Sample, bool) {
	cell := self.font.CellSize()
	if self.y >= cell.Height { return Sample{}, false }
	sample := Sample{
		Offset: geom.Pt(self.x, self.y),
		On: self.font.Bit(self.glyph, self.x, self.y),
	}
	self.x += 1
	if self.x >= cell.Width {
		self.x = 0
		self.y += 1
	}
	return sample, true
}

// Rewinds the scanner to the first sample of the cell.
func (self *Scanner) Reset() {
	self.x, self.y = 0, 0
}
