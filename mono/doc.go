// The mono subpackage defines [Font], the static descriptor of a
// fixed-cell monospace bitmap font: a packed 1bpp glyph sheet, a
// rune to glyph lookup with a replacement glyph, the cell size and
// character spacing, the decoration geometry and an optional explicit
// baseline.
//
// Fonts are immutable after construction and can be shared freely by
// any number of styles and goroutines. There are three ways to obtain
// one:
//   - [New], from an already packed glyph sheet.
//   - [NewFromArt], from string-art glyph definitions (also the
//     format used by the shipped mono/ascii fonts).
//   - [FromBasicFace], converting a [basicfont.Face] from
//     golang.org/x/image.
//
// Glyph lookup never fails: runes missing from the font resolve to
// the replacement glyph.
package mono
