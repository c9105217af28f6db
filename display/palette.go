package display

import "image/color"

// Small palette shared by [Mock] patterns, the examples and the
// bundled commands. Each color has a single-character code used in
// mock patterns; see [Mock.MatchPattern].
var (
	Black   = color.RGBA{ 0x00, 0x00, 0x00, 0xFF } // '.' or 'K'
	White   = color.RGBA{ 0xFF, 0xFF, 0xFF, 0xFF } // 'W' or '#'
	Red     = color.RGBA{ 0xFF, 0x00, 0x00, 0xFF } // 'R'
	Green   = color.RGBA{ 0x00, 0xFF, 0x00, 0xFF } // 'G'
	Blue    = color.RGBA{ 0x00, 0x00, 0xFF, 0xFF } // 'B'
	Yellow  = color.RGBA{ 0xFF, 0xFF, 0x00, 0xFF } // 'Y'
	Cyan    = color.RGBA{ 0x00, 0xFF, 0xFF, 0xFF } // 'C'
	Magenta = color.RGBA{ 0xFF, 0x00, 0xFF, 0xFF } // 'M'
)

var patternPalette = map[byte]color.RGBA{
	'.': Black, 'K': Black,
	'W': White, '#': White,
	'R': Red, 'G': Green, 'B': Blue,
	'Y': Yellow, 'C': Cyan, 'M': Magenta,
}

func patternCode(pixelColor color.Color) byte {
	for code, paletteColor := range patternPalette {
		if code == '#' || code == 'K' { continue } // aliases
		if pixelColor == color.Color(paletteColor) { return code }
	}
	return '?'
}
