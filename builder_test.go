package mtxt

import "testing"

import "github.com/pxkit/mtxt/display"
import "github.com/pxkit/mtxt/mono/ascii"

func TestBuilderDefaults(t *testing.T) {
	style := NewBuilder().Font(ascii.Font6X9()).Build()
	if style.Font() != ascii.Font6X9() { t.Fatalf("expected the given font") }
	if style.TextColor() != nil { t.Fatalf("expected no text color") }
	if style.BackgroundColor() != nil { t.Fatalf("expected no background color") }
	if !style.UnderlineColor().IsDisabled() { t.Fatalf("expected underline disabled") }
	if !style.StrikethroughColor().IsDisabled() { t.Fatalf("expected strikethrough disabled") }
}

func TestBuilderMatchesNew(t *testing.T) {
	built := NewBuilder().Font(ascii.Font6X9()).TextColor(display.White).Build()
	if built != New(ascii.Font6X9(), display.White) {
		t.Fatalf("expected the builder and New to produce equal styles")
	}
}

func TestBuilderFluentSetters(t *testing.T) {
	style := NewBuilder().
		Font(ascii.Font6X9()).
		TextColor(display.White).
		BackgroundColor(display.Black).
		UnderlineWithColor(display.Red).
		Strikethrough().
		Build()

	if style.TextColor() != display.White { t.Fatalf("expected white text color") }
	if style.BackgroundColor() != display.Black { t.Fatalf("expected black background color") }
	fixed, found := style.UnderlineColor().Fixed()
	if !found || fixed != display.Red {
		t.Fatalf("expected a fixed red underline, but got %v (found %t)", fixed, found)
	}
	if !style.StrikethroughColor().FollowsText() {
		t.Fatalf("expected a following strikethrough")
	}
}

func TestDerive(t *testing.T) {
	base := NewBuilder().Font(ascii.Font6X9()).TextColor(display.White).Underline().Build()
	derived := Derive(base).TextColor(display.Red).Build()

	// the derived style keeps everything but the text color
	if derived.TextColor() != display.Red { t.Fatalf("expected red text color") }
	if derived.Font() != base.Font() { t.Fatalf("expected the same font") }
	if !derived.UnderlineColor().FollowsText() { t.Fatalf("expected the underline to survive") }

	// ...and the base style is untouched
	if base.TextColor() != display.White {
		t.Fatalf("expected the base style to keep its white text color")
	}
}

func TestBuilderReplacesFont(t *testing.T) {
	base := New(ascii.Font6X9(), display.White)
	replaced := Derive(base).Font(ascii.Font6X9()).Build()
	if replaced != base {
		t.Fatalf("expected replacing the font with itself to be a no-op")
	}
}

func TestBuilderNilFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil { t.Fatalf("expected a panic for a nil font") }
	}()
	NewBuilder().Font(nil)
}
