// The fontdsl subpackage parses the .mft textual font description
// format and turns it into [mono.Font] values. The format is a
// human-editable counterpart of the string-art font files shipped in
// mono/ascii:
//
//	// a tiny demo font
//	font "tiny4x6" {
//		cell: 4 6
//		spacing: 0
//		baseline: 4
//		replacement: '?'
//	}
//
//	glyph 'A' {
//		|.##.|
//		|#..#|
//		|####|
//		|#..#|
//		|#..#|
//	}
//
// Inside glyph rows, '#' and 'X' mark on samples and any other
// character marks off samples. The cmd/fontgen command converts
// .mft files into Go source; [Parse] plus [File.BuildFont] load
// them at runtime instead.
package fontdsl
