//go:build gtxt

package display

// Compiling with -tags gtxt removes the Ebitengine dependency along
// with the Ebiten adapter. [NewImage] keeps working for any
// [image/draw.Image], Ebitengine images included.
