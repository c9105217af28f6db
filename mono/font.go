package mono

import "fmt"

import "github.com/pxkit/mtxt/geom"

// Configuration used to create a [Font] with [New]. See the field
// comments for the expected sheet layout and the defaulting rules.
type Config struct {
	// Font name, only used for labeling and error messages.
	Name string

	// Packed 1bpp glyph sheet, row-major, most significant bit first,
	// with rows padded to whole bytes. Glyphs are laid out on a grid
	// of SheetWidth/CellSize.Width cells per row, indexed left to
	// right, top to bottom.
	Sheet []byte

	// Sheet width in pixels. Must be a multiple of the cell width.
	SheetWidth int

	// Size of one glyph cell. Both dimensions must be positive.
	CellSize geom.Size

	// Extra horizontal space between consecutive glyph cells.
	// Can't be negative.
	CharacterSpacing int

	// Row index of the alphabetic baseline, measured from the cell
	// top. Zero or negative leaves the font without an explicit
	// baseline, in which case alphabetic positioning falls back to
	// the cell bottom.
	Baseline int

	// Vertical offsets of the decoration bars, measured from the
	// cell top, and their heights in pixels. Zero offsets and heights
	// get the standard defaults: underline right below the cell with
	// height one, strikethrough at half the cell height with height
	// one.
	UnderlineOffset     int
	UnderlineHeight     int
	StrikethroughOffset int
	StrikethroughHeight int

	// Rune to glyph index mapping. Indices must fall within the
	// sheet's glyph grid.
	Glyphs map[rune]int

	// Rune substituted for every rune missing from Glyphs. Must be
	// present in Glyphs itself.
	Replacement rune
}

// A fixed-cell monospace bitmap font. See the package documentation
// and [Config] for the details of the underlying data. Immutable
// after construction.
type Font struct {
	name string
	sheet []byte
	sheetWidth int
	sheetStride int // sheet row length in bytes
	glyphsPerRow int

	cellSize geom.Size
	spacing int
	baseline int // -1 when not explicitly set

	underlineOffset int
	underlineHeight int
	strikethroughOffset int
	strikethroughHeight int

	glyphs map[rune]int
	replacement int // glyph index, not rune
}

// Creates a [Font] from an already packed glyph sheet.
func New(config Config) (*Font, error) {
	cell := config.CellSize
	if cell.Width <= 0 || cell.Height <= 0 {
		return nil, fmt.Errorf("font %q: cell size %s must be positive", config.Name, cell)
	}
	if config.CharacterSpacing < 0 {
		return nil, fmt.Errorf("font %q: character spacing can't be negative", config.Name)
	}
	if config.SheetWidth <= 0 || config.SheetWidth%cell.Width != 0 {
		return nil, fmt.Errorf(
			"font %q: sheet width %d must be a positive multiple of the cell width %d",
			config.Name, config.SheetWidth, cell.Width,
		)
	}
	if len(config.Glyphs) == 0 {
		return nil, fmt.Errorf("font %q: no glyphs", config.Name)
	}

	font := &Font{
		name: config.Name,
		sheet: config.Sheet,
		sheetWidth: config.SheetWidth,
		sheetStride: (config.SheetWidth + 7)/8,
		glyphsPerRow: config.SheetWidth/cell.Width,
		cellSize: cell,
		spacing: config.CharacterSpacing,
		baseline: -1,
		underlineOffset: config.UnderlineOffset,
		underlineHeight: config.UnderlineHeight,
		strikethroughOffset: config.StrikethroughOffset,
		strikethroughHeight: config.StrikethroughHeight,
		glyphs: make(map[rune]int, len(config.Glyphs)),
	}
	if config.Baseline > 0 { font.baseline = config.Baseline }
	if font.underlineOffset == 0 { font.underlineOffset = cell.Height }
	if font.underlineHeight <= 0 { font.underlineHeight = 1 }
	if font.strikethroughOffset == 0 { font.strikethroughOffset = cell.Height/2 }
	if font.strikethroughHeight <= 0 { font.strikethroughHeight = 1 }

	// validate the glyph map against the sheet's glyph grid
	sheetRows := len(config.Sheet)/font.sheetStride
	maxGlyphs := font.glyphsPerRow*(sheetRows/cell.Height)
	for codePoint, index := range config.Glyphs {
		if index < 0 || index >= maxGlyphs {
			return nil, fmt.Errorf(
				"font %q: glyph index %d for %q outside the sheet (%d glyphs)",
				config.Name, index, codePoint, maxGlyphs,
			)
		}
		font.glyphs[codePoint] = index
	}

	replacement, found := font.glyphs[config.Replacement]
	if !found {
		return nil, fmt.Errorf("font %q: replacement rune %q has no glyph", config.Name, config.Replacement)
	}
	font.replacement = replacement
	return font, nil
}

// Returns the font name. Can be empty.
func (self *Font) Name() string { return self.name }

// Returns the size of one glyph cell.
func (self *Font) CellSize() geom.Size { return self.cellSize }

// Returns the extra horizontal space between consecutive glyph cells.
func (self *Font) CharacterSpacing() int { return self.spacing }

// Returns the row index of the alphabetic baseline, measured from
// the cell top, and whether the font declares one explicitly.
func (self *Font) Baseline() (int, bool) {
	if self.baseline < 0 { return 0, false }
	return self.baseline, true
}

// Returns the vertical offset of the underline bar, measured from
// the cell top. Can exceed the cell height.
func (self *Font) UnderlineOffset() int { return self.underlineOffset }

// Returns the height of the underline bar in pixels.
func (self *Font) UnderlineHeight() int { return self.underlineHeight }

// Returns the vertical offset of the strikethrough bar, measured
// from the cell top.
func (self *Font) StrikethroughOffset() int { return self.strikethroughOffset }

// Returns the height of the strikethrough bar in pixels.
func (self *Font) StrikethroughHeight() int { return self.strikethroughHeight }

// Returns the glyph index for the given rune. Lookup never fails:
// runes missing from the font resolve to the replacement glyph.
func (self *Font) GlyphIndex(codePoint rune) int {
	index, found := self.glyphs[codePoint]
	if !found { return self.replacement }
	return index
}

// Returns the number of runes the font has glyphs for.
func (self *Font) NumGlyphs() int { return len(self.glyphs) }

// Returns whether the glyph sample at the given cell-relative
// coordinates is "on". Coordinates outside the cell are "off".
func (self *Font) Bit(glyphIndex, x, y int) bool {
	if x < 0 || x >= self.cellSize.Width  { return false }
	if y < 0 || y >= self.cellSize.Height { return false }
	sheetX := (glyphIndex%self.glyphsPerRow)*self.cellSize.Width + x
	sheetY := (glyphIndex/self.glyphsPerRow)*self.cellSize.Height + y
	byteIndex := sheetY*self.sheetStride + sheetX/8
	if byteIndex < 0 || byteIndex >= len(self.sheet) { return false }
	return self.sheet[byteIndex]&(0x80 >> (sheetX % 8)) != 0
}
