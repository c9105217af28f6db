package mtxt

import "image/color"

import "github.com/pxkit/mtxt/mono"

// This file contains the Style type definition, the constructors and
// all the property getters and setters. The actual draw and measure
// operations are split between style_draw.go and style_measure.go.

// A Style holds the resolved drawing attributes for monospace bitmap
// text: an optional text color, an optional background color, the
// underline and strikethrough decorations, and the font.
//
// Styles are plain values with no shared mutable state: copy them
// freely, compare them with ==, and use independent copies from
// different goroutines without locking. All fields are adjusted
// through setters, one at a time, with no validation or side
// effects.
type Style struct {
	textColor       color.Color
	backgroundColor color.Color
	underline       DecorationColor
	strikethrough   DecorationColor
	font            *mono.Font
}

// Creates a style with the given font and text color, a transparent
// background and no decorations. For anything fancier, use
// [NewBuilder] or the setters.
func New(font *mono.Font, textColor color.Color) Style {
	return NewBuilder().Font(font).TextColor(textColor).Build()
}

// Returns the style's font.
func (self Style) Font() *mono.Font { return self.font }

// Returns the style's text color. Nil means no text color: glyph
// shapes aren't drawn at all.
func (self Style) TextColor() color.Color { return self.textColor }

// Returns the style's background color. Nil means no background:
// the off samples of glyph cells aren't drawn at all.
func (self Style) BackgroundColor() color.Color { return self.backgroundColor }

// Returns the underline decoration color.
func (self Style) UnderlineColor() DecorationColor { return self.underline }

// Returns the strikethrough decoration color.
func (self Style) StrikethroughColor() DecorationColor { return self.strikethrough }

// Sets the text color. Nil clears it.
func (self *Style) SetTextColor(textColor color.Color) {
	self.textColor = textColor
}

// Sets the background color. Nil clears it.
func (self *Style) SetBackgroundColor(backgroundColor color.Color) {
	self.backgroundColor = backgroundColor
}

// Sets the underline decoration color.
func (self *Style) SetUnderlineColor(underline DecorationColor) {
	self.underline = underline
}

// Sets the strikethrough decoration color.
func (self *Style) SetStrikethroughColor(strikethrough DecorationColor) {
	self.strikethrough = strikethrough
}

// Returns whether drawing with the style can't touch any pixel:
// no text color, no background color, and neither decoration
// resolving to a color. Notice that a following decoration on a
// style without text color counts as absent.
func (self Style) IsTransparent() bool {
	return self.textColor == nil &&
		self.backgroundColor == nil &&
		self.underline.Resolve(self.textColor) == nil &&
		self.strikethrough.Resolve(self.textColor) == nil
}

// Returns the vertical offset between the anchor and the top edge of
// the glyph cells for the given baseline mode.
func (self Style) baselineOffset(baseline Baseline) int {
	cellHeight := self.font.CellSize().Height
	switch baseline {
	case Top    : return 0
	case Bottom : return maxInt(cellHeight - 1, 0)
	case Middle : return maxInt(cellHeight - 1, 0)/2
	case Alphabetic:
		explicit, found := self.font.Baseline()
		if found { return explicit }
		return maxInt(cellHeight - 1, 0)
	default:
		panic(baseline)
	}
}

func maxInt(a, b int) int {
	if a >= b { return a }
	return b
}
