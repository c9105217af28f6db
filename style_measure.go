package mtxt

import "unicode/utf8"

import "github.com/pxkit/mtxt/geom"

// The result of measuring a text: the rectangle that drawing it
// would cover, and the position at which a subsequent draw would
// continue the same line.
type Metrics struct {
	BoundingBox  geom.Rect
	NextPosition geom.Point
}

// Measures the given text as if it were drawn at the given anchor,
// without touching any target. Pure arithmetic: the width accounts
// for every glyph cell plus the character spacing between them (no
// trailing spacing), and the height covers the glyph cells, extended
// to include the underline band whenever the underline decoration is
// enabled — even if it wouldn't resolve to a color at draw time, so
// layouts reserve the space conservatively.
func (self Style) MeasureString(text string, position geom.Point, baseline Baseline) Metrics {
	if self.font == nil { panic("can't measure text with a nil font (tip: mtxt.NewBuilder())") }

	cellSize := self.font.CellSize()
	spacing := self.font.CharacterSpacing()

	runeCount := utf8.RuneCountInString(text)
	width := 0
	if runeCount > 0 {
		width = geom.SatSub(
			geom.SatMul(runeCount, geom.SatAdd(cellSize.Width, spacing)),
			spacing,
		)
	}

	height := cellSize.Height
	if !self.underline.IsDisabled() {
		band := geom.SatAdd(self.font.UnderlineOffset(), self.font.UnderlineHeight())
		height = maxInt(height, band)
	}

	boxOrigin := position.AddY(-self.baselineOffset(baseline))
	return Metrics{
		BoundingBox: geom.NewRect(boxOrigin, geom.NewSize(width, height)),
		NextPosition: position.AddX(width),
	}
}

// Returns the vertical distance between consecutive text lines,
// which for fixed-cell fonts is simply the cell height.
func (self Style) LineHeight() int {
	if self.font == nil { panic("can't measure text with a nil font (tip: mtxt.NewBuilder())") }
	return self.font.CellSize().Height
}
