package ascii

import "github.com/pxkit/mtxt/geom"
import "github.com/pxkit/mtxt/mono"

var font6x9 = mustFont(mono.NewFromArt(mono.Config{
	Name: "ascii-6x9",
	CellSize: geom.NewSize(6, 9),
	Baseline: 6,
	Replacement: '?',
}, art6x9))

// Returns the shipped 6x9 font: 5x7 glyph shapes on a 6x9 cell,
// printable ASCII coverage, baseline at row 6, descenders on rows
// 7 and 8. The same [mono.Font] instance is returned every time.
func Font6X9() *mono.Font { return font6x9 }

func mustFont(font *mono.Font, err error) *mono.Font {
	if err != nil { panic(err) }
	return font
}

// Glyph shapes, one cell per rune, rows top to bottom. Missing
// bottom rows and short rows are padded with off samples.
var art6x9 = map[rune][]string{
	' ': {},
	'!': {
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		".....",
		"..#..",
	},
	'"': {
		".#.#.",
		".#.#.",
		".#.#.",
	},
	'#': {
		".#.#.",
		".#.#.",
		"#####",
		".#.#.",
		"#####",
		".#.#.",
		".#.#.",
	},
	'$': {
		"..#..",
		".####",
		"#.#..",
		".###.",
		"..#.#",
		"####.",
		"..#..",
	},
	'%': {
		"##...",
		"##..#",
		"...#.",
		"..#..",
		".#...",
		"#..##",
		"...##",
	},
	'&': {
		".##..",
		"#..#.",
		"#.#..",
		".#...",
		"#.#.#",
		"#..#.",
		".##.#",
	},
	'\'': {
		"..#..",
		"..#..",
		"..#..",
	},
	'(': {
		"...#.",
		"..#..",
		".#...",
		".#...",
		".#...",
		"..#..",
		"...#.",
	},
	')': {
		".#...",
		"..#..",
		"...#.",
		"...#.",
		"...#.",
		"..#..",
		".#...",
	},
	'*': {
		".....",
		"..#..",
		"#.#.#",
		".###.",
		"#.#.#",
		"..#..",
	},
	'+': {
		".....",
		"..#..",
		"..#..",
		"#####",
		"..#..",
		"..#..",
	},
	',': {
		".....",
		".....",
		".....",
		".....",
		".....",
		"..##.",
		"..##.",
		"..#..",
		".#...",
	},
	'-': {
		".....",
		".....",
		".....",
		"#####",
	},
	'.': {
		".....",
		".....",
		".....",
		".....",
		".....",
		".##..",
		".##..",
	},
	'/': {
		"....#",
		"....#",
		"...#.",
		"..#..",
		".#...",
		"#....",
		"#....",
	},
	'0': {
		".###.",
		"#...#",
		"#..##",
		"#.#.#",
		"##..#",
		"#...#",
		".###.",
	},
	'1': {
		"..#..",
		".##..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		".###.",
	},
	'2': {
		".###.",
		"#...#",
		"....#",
		"...#.",
		"..#..",
		".#...",
		"#####",
	},
	'3': {
		"#####",
		"...#.",
		"..#..",
		"...#.",
		"....#",
		"#...#",
		".###.",
	},
	'4': {
		"...#.",
		"..##.",
		".#.#.",
		"#..#.",
		"#####",
		"...#.",
		"...#.",
	},
	'5': {
		"#####",
		"#....",
		"####.",
		"....#",
		"....#",
		"#...#",
		".###.",
	},
	'6': {
		"..##.",
		".#...",
		"#....",
		"####.",
		"#...#",
		"#...#",
		".###.",
	},
	'7': {
		"#####",
		"....#",
		"...#.",
		"..#..",
		".#...",
		".#...",
		".#...",
	},
	'8': {
		".###.",
		"#...#",
		"#...#",
		".###.",
		"#...#",
		"#...#",
		".###.",
	},
	'9': {
		".###.",
		"#...#",
		"#...#",
		".####",
		"....#",
		"...#.",
		".##..",
	},
	':': {
		".....",
		".##..",
		".##..",
		".....",
		".##..",
		".##..",
	},
	';': {
		".....",
		".##..",
		".##..",
		".....",
		".##..",
		"..#..",
		".#...",
	},
	'<': {
		"...#.",
		"..#..",
		".#...",
		"#....",
		".#...",
		"..#..",
		"...#.",
	},
	'=': {
		".....",
		".....",
		"#####",
		".....",
		"#####",
	},
	'>': {
		".#...",
		"..#..",
		"...#.",
		"....#",
		"...#.",
		"..#..",
		".#...",
	},
	'?': {
		".###.",
		"#...#",
		"....#",
		"...#.",
		"..#..",
		".....",
		"..#..",
	},
	'@': {
		".###.",
		"#...#",
		"....#",
		".##.#",
		"#.#.#",
		"#.#.#",
		".###.",
	},
	'A': {
		"..#..",
		".#.#.",
		"#...#",
		"#####",
		"#...#",
		"#...#",
		"#...#",
	},
	'B': {
		"####.",
		"#...#",
		"#...#",
		"####.",
		"#...#",
		"#...#",
		"####.",
	},
	'C': {
		".###.",
		"#...#",
		"#....",
		"#....",
		"#....",
		"#...#",
		".###.",
	},
	'D': {
		"####.",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"####.",
	},
	'E': {
		"#####",
		"#....",
		"#....",
		"####.",
		"#....",
		"#....",
		"#####",
	},
	'F': {
		"#####",
		"#....",
		"#....",
		"####.",
		"#....",
		"#....",
		"#....",
	},
	'G': {
		".###.",
		"#...#",
		"#....",
		"#.###",
		"#...#",
		"#...#",
		".###.",
	},
	'H': {
		"#...#",
		"#...#",
		"#...#",
		"#####",
		"#...#",
		"#...#",
		"#...#",
	},
	'I': {
		".###.",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		".###.",
	},
	'J': {
		"..###",
		"...#.",
		"...#.",
		"...#.",
		"...#.",
		"#..#.",
		".##..",
	},
	'K': {
		"#...#",
		"#..#.",
		"#.#..",
		"##...",
		"#.#..",
		"#..#.",
		"#...#",
	},
	'L': {
		"#....",
		"#....",
		"#....",
		"#....",
		"#....",
		"#....",
		"#####",
	},
	'M': {
		"#...#",
		"##.##",
		"#.#.#",
		"#.#.#",
		"#...#",
		"#...#",
		"#...#",
	},
	'N': {
		"#...#",
		"##..#",
		"#.#.#",
		"#..##",
		"#...#",
		"#...#",
		"#...#",
	},
	'O': {
		".###.",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		".###.",
	},
	'P': {
		"####.",
		"#...#",
		"#...#",
		"####.",
		"#....",
		"#....",
		"#....",
	},
	'Q': {
		".###.",
		"#...#",
		"#...#",
		"#...#",
		"#.#.#",
		"#..#.",
		".##.#",
	},
	'R': {
		"####.",
		"#...#",
		"#...#",
		"####.",
		"#.#..",
		"#..#.",
		"#...#",
	},
	'S': {
		".####",
		"#....",
		"#....",
		".###.",
		"....#",
		"....#",
		"####.",
	},
	'T': {
		"#####",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
	},
	'U': {
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		".###.",
	},
	'V': {
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		".#.#.",
		"..#..",
	},
	'W': {
		"#...#",
		"#...#",
		"#...#",
		"#.#.#",
		"#.#.#",
		"##.##",
		"#...#",
	},
	'X': {
		"#...#",
		"#...#",
		".#.#.",
		"..#..",
		".#.#.",
		"#...#",
		"#...#",
	},
	'Y': {
		"#...#",
		"#...#",
		".#.#.",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
	},
	'Z': {
		"#####",
		"....#",
		"...#.",
		"..#..",
		".#...",
		"#....",
		"#####",
	},
	'[': {
		".###.",
		".#...",
		".#...",
		".#...",
		".#...",
		".#...",
		".###.",
	},
	'\\': {
		"#....",
		"#....",
		".#...",
		"..#..",
		"...#.",
		"....#",
		"....#",
	},
	']': {
		".###.",
		"...#.",
		"...#.",
		"...#.",
		"...#.",
		"...#.",
		".###.",
	},
	'^': {
		"..#..",
		".#.#.",
		"#...#",
	},
	'_': {
		".....",
		".....",
		".....",
		".....",
		".....",
		".....",
		".....",
		"#####",
	},
	'`': {
		".#...",
		"..#..",
	},
	'a': {
		".....",
		".....",
		".###.",
		"....#",
		".####",
		"#...#",
		".####",
	},
	'b': {
		"#....",
		"#....",
		"####.",
		"#...#",
		"#...#",
		"#...#",
		"####.",
	},
	'c': {
		".....",
		".....",
		".###.",
		"#....",
		"#....",
		"#...#",
		".###.",
	},
	'd': {
		"....#",
		"....#",
		".####",
		"#...#",
		"#...#",
		"#...#",
		".####",
	},
	'e': {
		".....",
		".....",
		".###.",
		"#...#",
		"#####",
		"#....",
		".###.",
	},
	'f': {
		"..##.",
		".#..#",
		".#...",
		"###..",
		".#...",
		".#...",
		".#...",
	},
	'g': {
		".....",
		".....",
		".####",
		"#...#",
		"#...#",
		"#...#",
		".####",
		"....#",
		".###.",
	},
	'h': {
		"#....",
		"#....",
		"####.",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
	},
	'i': {
		"..#..",
		".....",
		".##..",
		"..#..",
		"..#..",
		"..#..",
		".###.",
	},
	'j': {
		"...#.",
		".....",
		"..##.",
		"...#.",
		"...#.",
		"...#.",
		"...#.",
		"#..#.",
		".##..",
	},
	'k': {
		"#....",
		"#....",
		"#..#.",
		"#.#..",
		"##...",
		"#.#..",
		"#..#.",
	},
	'l': {
		".##..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		".###.",
	},
	'm': {
		".....",
		".....",
		"##.#.",
		"#.#.#",
		"#.#.#",
		"#.#.#",
		"#.#.#",
	},
	'n': {
		".....",
		".....",
		"####.",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
	},
	'o': {
		".....",
		".....",
		".###.",
		"#...#",
		"#...#",
		"#...#",
		".###.",
	},
	'p': {
		".....",
		".....",
		"####.",
		"#...#",
		"#...#",
		"#...#",
		"####.",
		"#....",
		"#....",
	},
	'q': {
		".....",
		".....",
		".####",
		"#...#",
		"#...#",
		"#...#",
		".####",
		"....#",
		"....#",
	},
	'r': {
		".....",
		".....",
		"#.##.",
		"##..#",
		"#....",
		"#....",
		"#....",
	},
	's': {
		".....",
		".....",
		".####",
		"#....",
		".###.",
		"....#",
		"####.",
	},
	't': {
		".#...",
		".#...",
		"###..",
		".#...",
		".#...",
		".#..#",
		"..##.",
	},
	'u': {
		".....",
		".....",
		"#...#",
		"#...#",
		"#...#",
		"#..##",
		".##.#",
	},
	'v': {
		".....",
		".....",
		"#...#",
		"#...#",
		"#...#",
		".#.#.",
		"..#..",
	},
	'w': {
		".....",
		".....",
		"#...#",
		"#...#",
		"#.#.#",
		"#.#.#",
		".#.#.",
	},
	'x': {
		".....",
		".....",
		"#...#",
		".#.#.",
		"..#..",
		".#.#.",
		"#...#",
	},
	'y': {
		".....",
		".....",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		".####",
		"....#",
		".###.",
	},
	'z': {
		".....",
		".....",
		"#####",
		"...#.",
		"..#..",
		".#...",
		"#####",
	},
	'{': {
		"...#.",
		"..#..",
		"..#..",
		".#...",
		"..#..",
		"..#..",
		"...#.",
	},
	'|': {
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
	},
	'}': {
		".#...",
		"..#..",
		"..#..",
		"...#.",
		"..#..",
		"..#..",
		".#...",
	},
	'~': {
		".....",
		".....",
		".#...",
		"#.#.#",
		"...#.",
	},
}
