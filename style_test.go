package mtxt

import "testing"

import "github.com/pxkit/mtxt/display"
import "github.com/pxkit/mtxt/mono/ascii"

func TestDecorationResolve(t *testing.T) {
	tests := []struct {
		decoration DecorationColor
		out any // resolved against display.White text color
	}{
		{ DecorationDisabled(), nil },
		{ DecorationColor{}, nil }, // zero value == disabled
		{ DecorationFollowText(), display.White },
		{ DecorationFixed(display.Red), display.Red },
	}

	for i, test := range tests {
		out := test.decoration.Resolve(display.White)
		if out != test.out {
			t.Fatalf("test #%d: %s expected %v, but got %v", i, test.decoration, test.out, out)
		}
	}

	// following decorations inherit "no color" from the text color
	if out := DecorationFollowText().Resolve(nil); out != nil {
		t.Fatalf("expected nil resolution without a text color, but got %v", out)
	}
	// fixed decorations don't care about the text color
	if out := DecorationFixed(display.Red).Resolve(nil); out != display.Red {
		t.Fatalf("expected the fixed color, but got %v", out)
	}
}

func TestDecorationAccessors(t *testing.T) {
	if !DecorationDisabled().IsDisabled() { t.Fatalf("expected IsDisabled") }
	if !DecorationFollowText().FollowsText() { t.Fatalf("expected FollowsText") }
	if DecorationFollowText().IsDisabled() { t.Fatalf("unexpected IsDisabled") }

	fixed, found := DecorationFixed(display.Blue).Fixed()
	if !found || fixed != display.Blue {
		t.Fatalf("expected fixed blue, but got %v (found %t)", fixed, found)
	}
	_, found = DecorationFollowText().Fixed()
	if found { t.Fatalf("unexpected fixed color") }
}

func TestIsTransparent(t *testing.T) {
	font := ascii.Font6X9()
	tests := []struct {
		style Style
		out   bool
	}{
		{ NewBuilder().Font(font).Build(), true },
		{ New(font, display.White), false },
		{ NewBuilder().Font(font).BackgroundColor(display.Black).Build(), false },
		{ NewBuilder().Font(font).UnderlineWithColor(display.Red).Build(), false },
		{ NewBuilder().Font(font).StrikethroughWithColor(display.Red).Build(), false },
		// following decorations without a text color resolve to nothing
		{ NewBuilder().Font(font).Underline().Build(), true },
		{ NewBuilder().Font(font).Strikethrough().Build(), true },
		{ NewBuilder().Font(font).Underline().Strikethrough().Build(), true },
		{ NewBuilder().Font(font).TextColor(display.White).Underline().Build(), false },
	}

	for i, test := range tests {
		out := test.style.IsTransparent()
		if out != test.out {
			t.Fatalf("test #%d: expected IsTransparent %t, but got %t", i, test.out, out)
		}
	}
}

func TestStyleSetters(t *testing.T) {
	style := New(ascii.Font6X9(), display.White)
	if style.TextColor() != display.White {
		t.Fatalf("expected white text color, but got %v", style.TextColor())
	}
	if style.BackgroundColor() != nil {
		t.Fatalf("expected no background color, but got %v", style.BackgroundColor())
	}
	if style.Font() != ascii.Font6X9() {
		t.Fatalf("expected the font passed on construction")
	}

	style.SetTextColor(display.Red)
	style.SetBackgroundColor(display.Black)
	style.SetUnderlineColor(DecorationFollowText())
	style.SetStrikethroughColor(DecorationFixed(display.Blue))

	if style.TextColor() != display.Red {
		t.Fatalf("expected red text color, but got %v", style.TextColor())
	}
	if style.BackgroundColor() != display.Black {
		t.Fatalf("expected black background color, but got %v", style.BackgroundColor())
	}
	if !style.UnderlineColor().FollowsText() {
		t.Fatalf("expected a following underline")
	}
	fixed, found := style.StrikethroughColor().Fixed()
	if !found || fixed != display.Blue {
		t.Fatalf("expected a fixed blue strikethrough, but got %v (found %t)", fixed, found)
	}

	style.SetTextColor(nil)
	if style.TextColor() != nil {
		t.Fatalf("expected the text color to be cleared")
	}
}

func TestBaselineString(t *testing.T) {
	tests := []struct {
		baseline Baseline
		out      string
	}{
		{ Top, "Top" }, { Bottom, "Bottom" },
		{ Middle, "Middle" }, { Alphabetic, "Alphabetic" },
	}
	for i, test := range tests {
		if test.baseline.String() != test.out {
			t.Fatalf("test #%d: expected %q, but got %q", i, test.out, test.baseline.String())
		}
	}
}
