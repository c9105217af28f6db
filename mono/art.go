package mono

import "fmt"
import "sort"

// Creates a [Font] from string-art glyph definitions. Each glyph is a
// slice of rows, where '#' and 'X' mark "on" samples and any other
// character marks "off" samples. Rows shorter than the cell width are
// padded with "off" samples on the right, and missing rows are padded
// at the bottom; rows or row counts exceeding the cell are an error.
//
// The Sheet, SheetWidth and Glyphs fields of the given config are
// ignored and derived from the art instead. Glyph indices are
// assigned in increasing rune order and packed as a single strip,
// one cell per glyph.
func NewFromArt(config Config, art map[rune][]string) (*Font, error) {
	cell := config.CellSize
	if cell.Width <= 0 || cell.Height <= 0 {
		return nil, fmt.Errorf("font %q: cell size %s must be positive", config.Name, cell)
	}
	if len(art) == 0 {
		return nil, fmt.Errorf("font %q: no glyphs", config.Name)
	}

	codePoints := make([]rune, 0, len(art))
	for codePoint := range art {
		codePoints = append(codePoints, codePoint)
	}
	sort.Slice(codePoints, func(i, j int) bool { return codePoints[i] < codePoints[j] })

	sheetWidth := len(codePoints)*cell.Width
	stride := (sheetWidth + 7)/8
	sheet := make([]byte, stride*cell.Height)
	glyphs := make(map[rune]int, len(codePoints))

	for index, codePoint := range codePoints {
		rows := art[codePoint]
		if len(rows) > cell.Height {
			return nil, fmt.Errorf(
				"font %q: glyph %q has %d rows, but the cell is only %d tall",
				config.Name, codePoint, len(rows), cell.Height,
			)
		}
		for y, row := range rows {
			if len(row) > cell.Width {
				return nil, fmt.Errorf(
					"font %q: glyph %q row %d is %d samples wide, but the cell is only %d wide",
					config.Name, codePoint, y, len(row), cell.Width,
				)
			}
			for x := 0; x < len(row); x++ {
				if row[x] != '#' && row[x] != 'X' { continue }
				sheetX := index*cell.Width + x
				sheet[y*stride + sheetX/8] |= 0x80 >> (sheetX % 8)
			}
		}
		glyphs[codePoint] = index
	}

	config.Sheet = sheet
	config.SheetWidth = sheetWidth
	config.Glyphs = glyphs
	return New(config)
}
