package qr

import (
	"image"
	"image/color"
	"math"
)

var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{A: 255}
)

// ColorMask decides the colors of a rendered code.
type ColorMask interface {
	Background() color.RGBA
	// Foreground returns the color of a dark pixel at (x, y) of an image with the given bounds.
	Foreground(x, y int, bounds image.Rectangle) color.RGBA
}

// SolidFill paints every dark module with the same color.
type SolidFill struct {
	Back  color.RGBA
	Front color.RGBA
}

func (m SolidFill) Background() color.RGBA { return m.Back }

func (m SolidFill) Foreground(_, _ int, _ image.Rectangle) color.RGBA { return m.Front }

// SquareGradient blends the foreground from Center to Edge
// by the square (Chebyshev) distance from the middle of the image.
type SquareGradient struct {
	Back   color.RGBA
	Center color.RGBA
	Edge   color.RGBA
}

func (m SquareGradient) Background() color.RGBA { return m.Back }

func (m SquareGradient) Foreground(x, y int, bounds image.Rectangle) color.RGBA {
	halfW := float64(bounds.Dx()) / 2
	halfH := float64(bounds.Dy()) / 2
	if halfW == 0 || halfH == 0 {
		return m.Center
	}
	dx := math.Abs(float64(x-bounds.Min.X)-halfW) / halfW
	dy := math.Abs(float64(y-bounds.Min.Y)-halfH) / halfH
	return lerp(m.Center, m.Edge, math.Min(1, math.Max(dx, dy)))
}

// DefaultColorMask is black on white.
var DefaultColorMask ColorMask = SolidFill{Back: White, Front: Black}

func lerp(from, to color.RGBA, t float64) color.RGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return color.RGBA{
		R: mix(from.R, to.R),
		G: mix(from.G, to.G),
		B: mix(from.B, to.B),
		A: mix(from.A, to.A),
	}
}
