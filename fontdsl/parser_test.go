package fontdsl

import "strings"
import "testing"

import "github.com/pxkit/mtxt/geom"

const testDescription = `
// a tiny demo font
font "tiny2x2" {
	cell: 2 2
	spacing: 1
	baseline: 1
	underline: 2 1
	strikethrough: 1 1
	replacement: '?'
}

glyph '?' {
	|#.|
	|.#|
}

glyph 'o' {
	|##|
	|##|
}
`

func TestParseString(t *testing.T) {
	file, err := ParseString(testDescription)
	if err != nil { t.Fatalf("unexpected error: %v", err) }

	if file.Font == nil { t.Fatalf("expected a font declaration") }
	if file.Font.Name != "tiny2x2" {
		t.Fatalf("expected font name \"tiny2x2\", but got %q", file.Font.Name)
	}
	if len(file.Font.Props) != 6 {
		t.Fatalf("expected 6 properties, but got %d", len(file.Font.Props))
	}
	if len(file.Glyphs) != 2 {
		t.Fatalf("expected 2 glyphs, but got %d", len(file.Glyphs))
	}

	glyph := file.Glyphs[0]
	if glyph.Char != '?' {
		t.Fatalf("expected glyph '?', but got %q", rune(glyph.Char))
	}
	if len(glyph.Rows) != 2 || glyph.Rows[0] != "#." || glyph.Rows[1] != ".#" {
		t.Fatalf("unexpected glyph rows: %v", glyph.Rows)
	}
}

func TestParseReader(t *testing.T) {
	file, err := Parse(strings.NewReader(testDescription))
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	if file.Font == nil || file.Font.Name != "tiny2x2" {
		t.Fatalf("unexpected parse result: %+v", file.Font)
	}
}

func TestBuildFont(t *testing.T) {
	file, err := ParseString(testDescription)
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	font, err := file.BuildFont()
	if err != nil { t.Fatalf("unexpected error: %v", err) }

	if font.Name() != "tiny2x2" {
		t.Fatalf("expected font name \"tiny2x2\", but got %q", font.Name())
	}
	if font.CellSize() != geom.NewSize(2, 2) {
		t.Fatalf("expected cell size 2x2, but got %s", font.CellSize())
	}
	if font.CharacterSpacing() != 1 {
		t.Fatalf("expected spacing 1, but got %d", font.CharacterSpacing())
	}
	baseline, found := font.Baseline()
	if !found || baseline != 1 {
		t.Fatalf("expected explicit baseline 1, but got %d (found %t)", baseline, found)
	}
	if font.UnderlineOffset() != 2 || font.UnderlineHeight() != 1 {
		t.Fatalf(
			"expected underline 2 1, but got %d %d",
			font.UnderlineOffset(), font.UnderlineHeight(),
		)
	}
	if font.NumGlyphs() != 2 {
		t.Fatalf("expected 2 glyphs, but got %d", font.NumGlyphs())
	}

	// '?' is the diagonal, 'o' the full cell
	glyph := font.GlyphIndex('?')
	if !font.Bit(glyph, 0, 0) || font.Bit(glyph, 1, 0) {
		t.Fatalf("unexpected '?' samples")
	}
	glyph = font.GlyphIndex('o')
	if !font.Bit(glyph, 0, 0) || !font.Bit(glyph, 1, 1) {
		t.Fatalf("unexpected 'o' samples")
	}
}

func TestBuildFontErrors(t *testing.T) {
	tests := []struct {
		description string
		errHint     string
	}{
		{ // unknown property
			"font \"x\" { cell: 2 2 volume: 11 }\nglyph '?' { |##| }",
			"unknown font property",
		},
		{ // missing cell
			"font \"x\" { spacing: 1 }\nglyph '?' { |##| }",
			"missing required cell property",
		},
		{ // wrong arity
			"font \"x\" { cell: 2 }\nglyph '?' { |##| }",
			"exactly two numbers",
		},
		{ // duplicate glyph
			"font \"x\" { cell: 2 2 }\nglyph '?' { |##| }\nglyph '?' { |..| }",
			"declared twice",
		},
		{ // replacement glyph missing from the declarations
			"font \"x\" { cell: 2 2 }\nglyph 'o' { |##| }",
			"replacement rune",
		},
	}

	for i, test := range tests {
		file, err := ParseString(test.description)
		if err != nil { t.Fatalf("test #%d: unexpected parse error: %v", i, err) }
		_, err = file.BuildFont()
		if err == nil {
			t.Fatalf("test #%d: expected error containing %q, but got none", i, test.errHint)
		}
		if !strings.Contains(err.Error(), test.errHint) {
			t.Fatalf("test #%d: expected error containing %q, but got %q", i, test.errHint, err.Error())
		}
	}
}

func TestParseErrors(t *testing.T) {
	descriptions := []string{
		"glyph '?' { |##| }",          // missing font declaration
		"font \"x\" { cell: 2 2 ",     // unclosed block
		"font \"x\" { cell: 2 2 } glyph 'ab' { |##| }", // multi-rune char literal
	}

	for i, description := range descriptions {
		_, err := ParseString(description)
		if err == nil { t.Fatalf("test #%d: expected a parse error, but got none", i) }
	}
}
