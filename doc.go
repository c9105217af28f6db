// mtxt is a package for styling, drawing and measuring monospace
// bitmap text on raster pixel surfaces. It assumes nothing about the
// destination beyond a small fill/draw capability, which makes it
// usable on memory-constrained targets where neither a full
// framebuffer nor a vector font stack is available.
//
// Common usage depends only on a couple types and a few functions.
// First, you build a [Style] from a font:
//   style := mtxt.NewBuilder().
//       Font(ascii.Font6X9()).
//       TextColor(display.White).
//       Build()
//
// Then you draw or measure against any [display.Target]:
//   next, err := style.DrawString("Hello!", geom.Pt(0, 0), mtxt.Top, target)
//   if err != nil { ... }
//
// Styles are plain values: copy them freely, tweak copies through the
// setters, and share the underlying fonts between as many styles as
// you want. Everything runs synchronously on the calling goroutine;
// the only thing you must not do is hit a single target from several
// goroutines at once.
package mtxt
