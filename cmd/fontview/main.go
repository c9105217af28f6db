// fontview previews mtxt rendering on the terminal: it draws a
// styled string onto a tcell-backed pixel target, one terminal cell
// per pixel. Useful to eyeball .mft fonts while editing them:
//
//	fontview -mft myfont.mft -text "Hello!" -color yellow -underline
//
// Without -mft, the shipped 6x9 ASCII font is used. Press any key
// to exit.
package main

import (
	"flag"
	"image/color"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/pxkit/mtxt"
	"github.com/pxkit/mtxt/display"
	"github.com/pxkit/mtxt/fontdsl"
	"github.com/pxkit/mtxt/geom"
	"github.com/pxkit/mtxt/mono"
	"github.com/pxkit/mtxt/mono/ascii"
)

var (
	mftName    = flag.String("mft", "", ".mft font description to preview (defaults to the shipped 6x9 font)")
	text       = flag.String("text", "The quick brown fox jumps over the lazy dog", "text to render")
	textColor  = flag.String("color", "white", "text color name")
	background = flag.String("bg", "", "background color name (empty for transparent)")
	underline  = flag.Bool("underline", false, "underline with the text color")
	strike     = flag.Bool("strike", false, "strikethrough with the text color")
)

var namedColors = map[string]color.Color{
	"black": display.Black, "white": display.White,
	"red": display.Red, "green": display.Green, "blue": display.Blue,
	"yellow": display.Yellow, "cyan": display.Cyan, "magenta": display.Magenta,
}

func main() {
	log.SetFlags(0)
	flag.Parse()

	font := ascii.Font6X9()
	if *mftName != "" {
		font = loadFont(*mftName)
	}

	builder := mtxt.NewBuilder().Font(font).TextColor(namedColor(*textColor))
	if *background != "" { builder = builder.BackgroundColor(namedColor(*background)) }
	if *underline { builder = builder.Underline() }
	if *strike { builder = builder.Strikethrough() }
	style := builder.Build()

	screen, err := tcell.NewScreen()
	if err != nil { log.Fatal(err) }
	err = screen.Init()
	if err != nil { log.Fatal(err) }
	defer screen.Fini()

	redraw(screen, style)
	for {
		switch event := screen.PollEvent().(type) {
		case *tcell.EventKey:
			_ = event
			return
		case *tcell.EventResize:
			screen.Clear()
			redraw(screen, style)
		}
	}
}

func redraw(screen tcell.Screen, style mtxt.Style) {
	target := &screenTarget{ screen: screen }
	_, err := style.DrawString(*text, geom.Pt(1, 1), mtxt.Top, target)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	screen.Show()
}

func loadFont(name string) *mono.Font {
	input, err := os.Open(name)
	if err != nil { log.Fatal(err) }
	defer input.Close()

	file, err := fontdsl.Parse(input)
	if err != nil { log.Fatalf("%s: %v", name, err) }
	font, err := file.BuildFont()
	if err != nil { log.Fatalf("%s: %v", name, err) }
	return font
}

func namedColor(name string) color.Color {
	namedColor, found := namedColors[name]
	if !found { log.Fatalf("unknown color %q", name) }
	return namedColor
}

// A display.Target painting one terminal cell per pixel through a
// tcell screen. Draws outside the screen are clipped silently.
type screenTarget struct {
	screen tcell.Screen
}

func (self *screenTarget) FillSolid(rect geom.Rect, fillColor color.Color) error {
	max := rect.Max()
	for y := rect.Origin.Y; y < max.Y; y++ {
		for x := rect.Origin.X; x < max.X; x++ {
			self.set(x, y, fillColor)
		}
	}
	return nil
}

func (self *screenTarget) FillContiguous(rect geom.Rect, colors display.ColorSource) error {
	max := rect.Max()
	for y := rect.Origin.Y; y < max.Y; y++ {
		for x := rect.Origin.X; x < max.X; x++ {
			nextColor, ok := colors.NextColor()
			if !ok { return nil }
			self.set(x, y, nextColor)
		}
	}
	return nil
}

func (self *screenTarget) DrawPixels(pixels display.PixelSource) error {
	for {
		pixel, ok := pixels.NextPixel()
		if !ok { return nil }
		self.set(pixel.Pos.X, pixel.Pos.Y, pixel.Color)
	}
}

func (self *screenTarget) set(x, y int, pixelColor color.Color) {
	width, height := self.screen.Size()
	if x < 0 || x >= width || y < 0 || y >= height { return }
	r, g, b, _ := pixelColor.RGBA()
	cellStyle := tcell.StyleDefault.Background(
		tcell.NewRGBColor(int32(r >> 8), int32(g >> 8), int32(b >> 8)),
	)
	self.screen.SetContent(x, y, ' ', nil, cellStyle)
}
