package mono

import "fmt"
import "image/color"

import "golang.org/x/image/font/basicfont"

import "github.com/pxkit/mtxt/geom"

// Converts a [basicfont.Face] into a [Font].
//
// The cell width is the face advance and the cell height covers the
// full ascent plus descent, so converted fonts keep their original
// spacing when drawn cell by cell. The alphabetic baseline is set to
// the last ascent row, which is the row latin glyphs sit on.
//
// The replacement glyph is U+FFFD when the face covers it ('?'
// otherwise); faces covering neither can't be converted.
func FromBasicFace(face *basicfont.Face) (*Font, error) {
	if face == nil { return nil, fmt.Errorf("can't convert nil face") }
	cellHeight := face.Ascent + face.Descent
	if face.Advance <= 0 || cellHeight <= 0 {
		return nil, fmt.Errorf("face has degenerate metrics (advance %d, height %d)", face.Advance, cellHeight)
	}

	left := face.Left
	if left < 0 { left = 0 }

	art := make(map[rune][]string)
	for _, runeRange := range face.Ranges {
		for codePoint := runeRange.Low; codePoint < runeRange.High; codePoint++ {
			glyphBase := (int(codePoint - runeRange.Low) + runeRange.Offset)*cellHeight
			rows := make([]string, cellHeight)
			for y := 0; y < cellHeight; y++ {
				row := make([]byte, face.Advance)
				for x := range row { row[x] = '.' }
				for x := 0; x < face.Width && left + x < face.Advance; x++ {
					if alphaAt(face, x, glyphBase + y) { row[left + x] = '#' }
				}
				rows[y] = string(row)
			}
			art[codePoint] = rows
		}
	}

	replacement := rune('\uFFFD')
	if _, found := art[replacement]; !found { replacement = '?' }
	if _, found := art[replacement]; !found {
		return nil, fmt.Errorf("face covers neither U+FFFD nor '?', no usable replacement glyph")
	}

	return NewFromArt(Config{
		Name: "basicfont",
		CellSize: geom.NewSize(face.Advance, cellHeight),
		Baseline: face.Ascent - 1,
		Replacement: replacement,
	}, art)
}

func alphaAt(face *basicfont.Face, x, y int) bool {
	sample := color.AlphaModel.Convert(face.Mask.At(x, y)).(color.Alpha)
	return sample.A >= 0x80
}
