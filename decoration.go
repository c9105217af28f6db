package mtxt

import "image/color"

type decorationMode uint8

const (
	decorationDisabled decorationMode = iota
	decorationFollowText
	decorationFixed
)

// The color configuration of a text decoration (underline or
// strikethrough). A decoration can be disabled, follow the style's
// text color, or use a fixed color of its own.
//
// Decorations resolve to a concrete color only at draw time, as a
// function of the style's text color at that moment; nothing is
// cached, so changing the text color after enabling a following
// decoration behaves as expected.
//
// The zero value is the disabled decoration.
type DecorationColor struct {
	mode  decorationMode
	fixed color.Color
}

// A decoration that isn't drawn at all.
func DecorationDisabled() DecorationColor {
	return DecorationColor{}
}

// A decoration drawn with the style's text color. If the style has
// no text color, the decoration isn't drawn; there's no fallback
// default.
func DecorationFollowText() DecorationColor {
	return DecorationColor{ mode: decorationFollowText }
}

// A decoration always drawn with the given color, regardless of the
// style's text color.
func DecorationFixed(fixedColor color.Color) DecorationColor {
	return DecorationColor{ mode: decorationFixed, fixed: fixedColor }
}

// Returns whether the decoration is disabled.
func (self DecorationColor) IsDisabled() bool {
	return self.mode == decorationDisabled
}

// Returns whether the decoration follows the style's text color.
func (self DecorationColor) FollowsText() bool {
	return self.mode == decorationFollowText
}

// Returns the decoration's fixed color, if it has one.
func (self DecorationColor) Fixed() (color.Color, bool) {
	if self.mode != decorationFixed { return nil, false }
	return self.fixed, true
}

// Resolves the decoration against the given text color. A nil result
// means the decoration isn't drawn.
func (self DecorationColor) Resolve(textColor color.Color) color.Color {
	switch self.mode {
	case decorationDisabled   : return nil
	case decorationFollowText : return textColor
	case decorationFixed      : return self.fixed
	default:
		panic(self.mode)
	}
}

// Returns a textual representation of the decoration color.
func (self DecorationColor) String() string {
	switch self.mode {
	case decorationDisabled   : return "DecorationDisabled"
	case decorationFollowText : return "DecorationFollowText"
	case decorationFixed      : return "DecorationFixed"
	default:
		return "InvalidDecorationColor"
	}
}
