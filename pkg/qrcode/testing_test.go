package qr

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

var logoColor = color.RGBA{R: 240, G: 80, B: 40, A: 255}

// testLogo returns a dot of logoColor on a transparent square.
func testLogo() image.Image {
	dc := gg.NewContext(64, 64)
	dc.SetColor(logoColor)
	dc.DrawCircle(32, 32, 14)
	dc.Fill()
	return dc.Image()
}
