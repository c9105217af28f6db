package mtxt

import "image/color"

import "github.com/pxkit/mtxt/mono"

// The first phase of style construction. A [Builder] only knows how
// to pick a font; every other property lives on the [StyleBuilder]
// that [Builder.Font] returns. The split makes "forgot to set a
// font" unrepresentable: there's simply no Build to call before a
// font is chosen.
type Builder struct{}

// Creates a new style [Builder].
func NewBuilder() Builder { return Builder{} }

// Sets the font, moving construction to the second phase.
func (self Builder) Font(font *mono.Font) StyleBuilder {
	if font == nil { panic("can't build a style with a nil font") }
	return StyleBuilder{ style: Style{ font: font } }
}

// The second phase of style construction, reachable through
// [Builder.Font] or [Derive]. All the setters are fluent and
// optional; unset properties keep their defaults (no text color, no
// background, no decorations).
type StyleBuilder struct {
	style Style
}

// Starts a [StyleBuilder] from an existing style, to copy and
// modify it.
func Derive(style Style) StyleBuilder {
	return StyleBuilder{ style: style }
}

// Replaces the font.
func (self StyleBuilder) Font(font *mono.Font) StyleBuilder {
	if font == nil { panic("can't build a style with a nil font") }
	self.style.font = font
	return self
}

// Sets the text color.
func (self StyleBuilder) TextColor(textColor color.Color) StyleBuilder {
	self.style.textColor = textColor
	return self
}

// Sets the background color.
func (self StyleBuilder) BackgroundColor(backgroundColor color.Color) StyleBuilder {
	self.style.backgroundColor = backgroundColor
	return self
}

// Enables underline using the text color.
func (self StyleBuilder) Underline() StyleBuilder {
	self.style.underline = DecorationFollowText()
	return self
}

// Enables underline with a fixed color.
func (self StyleBuilder) UnderlineWithColor(underlineColor color.Color) StyleBuilder {
	self.style.underline = DecorationFixed(underlineColor)
	return self
}

// Enables strikethrough using the text color.
func (self StyleBuilder) Strikethrough() StyleBuilder {
	self.style.strikethrough = DecorationFollowText()
	return self
}

// Enables strikethrough with a fixed color.
func (self StyleBuilder) StrikethroughWithColor(strikethroughColor color.Color) StyleBuilder {
	self.style.strikethrough = DecorationFixed(strikethroughColor)
	return self
}

// Builds the style. Can be called any number of times.
func (self StyleBuilder) Build() Style {
	return self.style
}
