// The geom subpackage defines the integer pixel geometry values used
// throughout mtxt: [Point], [Size] and [Rect], plus a few saturating
// arithmetic helpers.
//
// Monospace bitmap glyphs always occupy whole pixel cells, so unlike
// most font rendering geometry there's no fractional positioning here;
// plain ints cover every coordinate this module can produce. The
// saturating helpers exist because cursor and width computations must
// clamp at the representable range instead of wrapping around.
package geom
