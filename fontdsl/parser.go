package fontdsl

import "fmt"
import "io"
import "strconv"
import "strings"

import "github.com/alecthomas/participle/v2"
import "github.com/alecthomas/participle/v2/lexer"

var (
	dslLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Row", Pattern: `\|[^|\n]*\|`},
		{Name: "Char", Pattern: `'(?:\\.|[^'\n])*'`},
		{Name: "String", Pattern: `"(?:\\.|[^"\n])*"`},
		{Name: "Number", Pattern: `-?\d+`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[{}:]`},
	})

	fileParser = participle.MustBuild[File](
		participle.Lexer(dslLexer),
		participle.Elide("Whitespace", "LineComment"),
	)
)

// File is the root AST node of a .mft font description.
type File struct {
	Font   *FontDecl    `parser:"@@"`
	Glyphs []*GlyphDecl `parser:"@@*"`
}

// FontDecl carries the font name and its property block.
type FontDecl struct {
	Name  StringLiteral `parser:"'font' @String"`
	Props []*Prop       `parser:"'{' @@* '}'"`
}

// Prop is a single `key: values` property. Numeric properties carry
// one or two numbers; the replacement property carries a char.
type Prop struct {
	Pos     lexer.Position `parser:""`
	Key     string         `parser:"@Ident ':'"`
	Char    *CharLiteral   `parser:"( @Char"`
	Numbers []int          `parser:"| @Number+ )"`
}

// GlyphDecl maps one rune to its cell rows.
type GlyphDecl struct {
	Pos  lexer.Position `parser:""`
	Char CharLiteral    `parser:"'glyph' @Char"`
	Rows []RowLiteral   `parser:"'{' @Row* '}'"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (self *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires a value")
	}
	value, err := strconv.Unquote(values[0])
	if err != nil { return err }
	*self = StringLiteral(value)
	return nil
}

// CharLiteral unquotes Go-style rune literals on capture.
type CharLiteral rune

// Capture implements participle.Capture.
func (self *CharLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("char literal capture requires a value")
	}
	value, err := strconv.Unquote(values[0])
	if err != nil { return err }
	runes := []rune(value)
	if len(runes) != 1 {
		return fmt.Errorf("char literal %s must contain exactly one rune", values[0])
	}
	*self = CharLiteral(runes[0])
	return nil
}

// RowLiteral strips the surrounding pipes of a glyph row on capture.
type RowLiteral string

// Capture implements participle.Capture.
func (self *RowLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("row literal capture requires a value")
	}
	*self = RowLiteral(strings.Trim(values[0], "|"))
	return nil
}

// Parses a .mft font description from an io.Reader.
func Parse(r io.Reader) (*File, error) {
	return fileParser.Parse("", r)
}

// Parses a .mft font description from a string.
func ParseString(input string) (*File, error) {
	return fileParser.ParseString("", input)
}
