// fontgen is a commandline tool turning .mft font descriptions into
// Go source files shaped like the fonts shipped in mono/ascii. Write
// your font as string art (see the fontdsl package docs for the
// format), then run:
//
//	fontgen -in myfont.mft -pkg myfont -o myfont.go
//
// Add the generated file to your project and use the Font() accessor
// with any mtxt style.
package main

import (
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/pxkit/mtxt/fontdsl"
)

var (
	inName  = flag.String("in", "", ".mft font description to read")
	outName = flag.String("o", "", "output file (defaults to stdout)")
	pkgName = flag.String("pkg", "font", "package name of the generated file")
)

func main() {
	log.SetFlags(0)
	flag.Parse()
	if *inName == "" {
		flag.Usage()
		os.Exit(2)
	}

	input, err := os.Open(*inName)
	if err != nil { log.Fatal(err) }
	defer input.Close()

	file, err := fontdsl.Parse(input)
	if err != nil { log.Fatalf("%s: %v", *inName, err) }

	// building the font up front catches description errors (bad
	// cell sizes, missing replacement glyph, oversized art) before
	// any code is emitted
	_, err = file.BuildFont()
	if err != nil { log.Fatalf("%s: %v", *inName, err) }

	source, err := format.Source([]byte(generate(file)))
	if err != nil { log.Fatalf("generated source doesn't format: %v", err) }

	if *outName == "" {
		fmt.Print(string(source))
		return
	}
	err = os.WriteFile(*outName, source, 0644)
	if err != nil { log.Fatal(err) }
}

func generate(file *fontdsl.File) string {
	var builder strings.Builder
	identifier := goIdentifier(string(file.Font.Name))

	fmt.Fprintf(&builder, "// Code generated by fontgen from %s; DO NOT EDIT.\n\n", *inName)
	fmt.Fprintf(&builder, "package %s\n\n", *pkgName)
	builder.WriteString("import \"github.com/pxkit/mtxt/geom\"\n")
	builder.WriteString("import \"github.com/pxkit/mtxt/mono\"\n\n")

	fmt.Fprintf(&builder, "var font%s = mustFont%s(mono.NewFromArt(mono.Config{\n", identifier, identifier)
	fmt.Fprintf(&builder, "\tName: %q,\n", string(file.Font.Name))
	for _, prop := range file.Font.Props {
		switch prop.Key {
		case "cell":
			fmt.Fprintf(&builder, "\tCellSize: geom.NewSize(%d, %d),\n", prop.Numbers[0], prop.Numbers[1])
		case "spacing":
			fmt.Fprintf(&builder, "\tCharacterSpacing: %d,\n", prop.Numbers[0])
		case "baseline":
			fmt.Fprintf(&builder, "\tBaseline: %d,\n", prop.Numbers[0])
		case "underline":
			fmt.Fprintf(&builder, "\tUnderlineOffset: %d,\n\tUnderlineHeight: %d,\n", prop.Numbers[0], prop.Numbers[1])
		case "strikethrough":
			fmt.Fprintf(&builder, "\tStrikethroughOffset: %d,\n\tStrikethroughHeight: %d,\n", prop.Numbers[0], prop.Numbers[1])
		case "replacement":
			fmt.Fprintf(&builder, "\tReplacement: %q,\n", rune(*prop.Char))
		}
	}
	fmt.Fprintf(&builder, "}, art%s))\n\n", identifier)

	fmt.Fprintf(&builder, "// Returns the %q font. The same instance is returned every time.\n", string(file.Font.Name))
	fmt.Fprintf(&builder, "func Font%s() *mono.Font { return font%s }\n\n", identifier, identifier)
	fmt.Fprintf(&builder, "func mustFont%s(font *mono.Font, err error) *mono.Font {\n", identifier)
	builder.WriteString("\tif err != nil { panic(err) }\n\treturn font\n}\n\n")

	glyphs := make([]*fontdsl.GlyphDecl, len(file.Glyphs))
	copy(glyphs, file.Glyphs)
	sort.Slice(glyphs, func(i, j int) bool { return glyphs[i].Char < glyphs[j].Char })

	fmt.Fprintf(&builder, "var art%s = map[rune][]string{\n", identifier)
	for _, glyph := range glyphs {
		if len(glyph.Rows) == 0 {
			fmt.Fprintf(&builder, "\t%q: {},\n", rune(glyph.Char))
			continue
		}
		fmt.Fprintf(&builder, "\t%q: {\n", rune(glyph.Char))
		for _, row := range glyph.Rows {
			fmt.Fprintf(&builder, "\t\t%q,\n", string(row))
		}
		builder.WriteString("\t},\n")
	}
	builder.WriteString("}\n")
	return builder.String()
}

// Turns a font name like "tiny-4x6" into an exported identifier
// suffix like "Tiny4x6".
func goIdentifier(name string) string {
	var builder strings.Builder
	upperNext := true
	for _, codePoint := range name {
		isAlnum := (codePoint >= 'a' && codePoint <= 'z') ||
			(codePoint >= 'A' && codePoint <= 'Z') ||
			(codePoint >= '0' && codePoint <= '9')
		if !isAlnum {
			upperNext = true
			continue
		}
		if upperNext && codePoint >= 'a' && codePoint <= 'z' {
			codePoint -= 'a' - 'A'
		}
		upperNext = false
		builder.WriteRune(codePoint)
	}
	if builder.Len() == 0 { return "X" }
	return builder.String()
}
