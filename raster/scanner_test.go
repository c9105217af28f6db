package raster

import "testing"

import "github.com/pxkit/mtxt/geom"
import "github.com/pxkit/mtxt/mono"

func testFont(t *testing.T) *mono.Font {
	t.Helper()
	font, err := mono.NewFromArt(mono.Config{
		Name: "scanner-test",
		CellSize: geom.NewSize(2, 2),
		Replacement: '?',
	}, map[rune][]string{
		'?': {
			"##",
			"..",
		},
		'o': {
			"#.",
			".#",
		},
	})
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	return font
}

func TestScannerOrder(t *testing.T) {
	scanner := NewScanner(testFont(t), 'o')
	expected := []Sample{
		{ Offset: geom.Pt(0, 0), On: true  },
		{ Offset: geom.Pt(1, 0), On: false },
		{ Offset: geom.Pt(0, 1), On: false },
		{ Offset: geom.Pt(1, 1), On: true  },
	}

	for i, want := range expected {
		sample, ok := scanner.Next()
		if !ok { t.Fatalf("test #%d: scanner ran dry early", i) }
		if sample != want {
			t.Fatalf("test #%d: expected sample %v, but got %v", i, want, sample)
		}
	}

	_, ok := scanner.Next()
	if ok { t.Fatalf("expected the scanner to be exhausted") }
	_, ok = scanner.Next()
	if ok { t.Fatalf("expected the scanner to stay exhausted") }
}

func TestScannerReset(t *testing.T) {
	scanner := NewScanner(testFont(t), 'o')
	for {
		_, ok := scanner.Next()
		if !ok { break }
	}

	scanner.Reset()
	sample, ok := scanner.Next()
	if !ok { t.Fatalf("expected samples after Reset") }
	want := Sample{ Offset: geom.Pt(0, 0), On: true }
	if sample != want {
		t.Fatalf("expected sample %v after Reset, but got %v", want, sample)
	}
}

func TestScannerReplacement(t *testing.T) {
	font := testFont(t)

	// 'A' has no glyph, so it must scan exactly like '?'
	missing := NewScanner(font, 'A')
	replacement := NewScanner(font, '?')
	for i := 0; ; i++ {
		missingSample, missingOk := missing.Next()
		replacementSample, replacementOk := replacement.Next()
		if missingOk != replacementOk {
			t.Fatalf("test #%d: scanners ran dry at different samples", i)
		}
		if !missingOk { break }
		if missingSample != replacementSample {
			t.Fatalf(
				"test #%d: expected sample %v, but got %v",
				i, replacementSample, missingSample,
			)
		}
	}
}
