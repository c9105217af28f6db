//go:build !gtxt

package display

import "github.com/hajimehoshi/ebiten/v2"

// Wraps an Ebitengine image into a [Target]. Ebitengine images
// satisfy [image/draw.Image], so this is the [Image] adapter with
// the conversion spelled out.
//
// To compile the package without Ebitengine, use -tags gtxt.
func Ebiten(target *ebiten.Image) *Image {
	return NewImage(target)
}
