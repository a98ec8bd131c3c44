package qr

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
)

var ErrSizeMismatch = errors.New("size mismatch")

// Composite returns a new image showing fg where mask is opaque and bg elsewhere,
// partially transparent mask pixels blend the two.
func Composite(fg, bg, mask image.Image) (*image.RGBA, error) {
	size := bg.Bounds().Size()
	if fg.Bounds().Size() != size || mask.Bounds().Size() != size {
		return nil, fmt.Errorf("%w: fg %v, bg %v, mask %v",
			ErrSizeMismatch, fg.Bounds().Size(), size, mask.Bounds().Size())
	}

	out := image.NewRGBA(image.Rectangle{Max: size})
	draw.Draw(out, out.Bounds(), bg, bg.Bounds().Min, draw.Src)
	draw.DrawMask(out, out.Bounds(), fg, fg.Bounds().Min, mask, mask.Bounds().Min, draw.Over)

	return out, nil
}
