package fontdsl

import "fmt"

import "github.com/pxkit/mtxt/geom"
import "github.com/pxkit/mtxt/mono"

// Builds the [mono.Font] described by the file. The `cell` property
// and at least one glyph are required; `spacing`, `baseline`,
// `underline`, `strikethrough` and `replacement` are optional and
// fall back to the usual [mono.Config] defaults (replacement
// defaults to '?', which must then be declared as a glyph).
func (self *File) BuildFont() (*mono.Font, error) {
	if self.Font == nil { return nil, fmt.Errorf("missing font declaration") }

	config := mono.Config{ Name: string(self.Font.Name), Replacement: '?' }
	seenCell := false
	for _, prop := range self.Font.Props {
		switch prop.Key {
		case "cell":
			width, height, err := twoNumbers(prop)
			if err != nil { return nil, err }
			config.CellSize = geom.NewSize(width, height)
			seenCell = true
		case "spacing":
			spacing, err := oneNumber(prop)
			if err != nil { return nil, err }
			config.CharacterSpacing = spacing
		case "baseline":
			baseline, err := oneNumber(prop)
			if err != nil { return nil, err }
			config.Baseline = baseline
		case "underline":
			offset, height, err := twoNumbers(prop)
			if err != nil { return nil, err }
			config.UnderlineOffset, config.UnderlineHeight = offset, height
		case "strikethrough":
			offset, height, err := twoNumbers(prop)
			if err != nil { return nil, err }
			config.StrikethroughOffset, config.StrikethroughHeight = offset, height
		case "replacement":
			if prop.Char == nil {
				return nil, fmt.Errorf("%s: replacement property requires a char value", prop.Pos)
			}
			config.Replacement = rune(*prop.Char)
		default:
			return nil, fmt.Errorf("%s: unknown font property %q", prop.Pos, prop.Key)
		}
	}
	if !seenCell {
		return nil, fmt.Errorf("font %q: missing required cell property", self.Font.Name)
	}

	art := make(map[rune][]string, len(self.Glyphs))
	for _, glyph := range self.Glyphs {
		codePoint := rune(glyph.Char)
		if _, alreadyDeclared := art[codePoint]; alreadyDeclared {
			return nil, fmt.Errorf("%s: glyph %q declared twice", glyph.Pos, codePoint)
		}
		rows := make([]string, len(glyph.Rows))
		for i, row := range glyph.Rows { rows[i] = string(row) }
		art[codePoint] = rows
	}

	return mono.NewFromArt(config, art)
}

func oneNumber(prop *Prop) (int, error) {
	if prop.Char != nil || len(prop.Numbers) != 1 {
		return 0, fmt.Errorf("%s: property %q requires exactly one number", prop.Pos, prop.Key)
	}
	return prop.Numbers[0], nil
}

func twoNumbers(prop *Prop) (int, int, error) {
	if prop.Char != nil || len(prop.Numbers) != 2 {
		return 0, 0, fmt.Errorf("%s: property %q requires exactly two numbers", prop.Pos, prop.Key)
	}
	return prop.Numbers[0], prop.Numbers[1], nil
}
