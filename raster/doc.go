// The raster subpackage turns one character of a [mono.Font] into a
// stream of monochrome samples covering exactly one glyph cell.
//
// The [Scanner] is lazy, finite and restartable: it yields one
// [Sample] per cell position in row-major order, never allocates, and
// can be rewound with [Scanner.Reset] to walk the same glyph again.
// Characters the font has no glyph for are silently rendered as the
// font's replacement glyph; there is no error path.
package raster
