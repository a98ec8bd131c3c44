package qr

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolidFill(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	m := SolidFill{Back: White, Front: red}
	bounds := image.Rect(0, 0, 100, 100)

	assert.Equal(t, White, m.Background())
	assert.Equal(t, red, m.Foreground(0, 0, bounds))
	assert.Equal(t, red, m.Foreground(50, 50, bounds))
}

func TestSquareGradient(t *testing.T) {
	edge := color.RGBA{R: 0, G: 0, B: 200, A: 255}
	m := SquareGradient{Back: White, Center: Black, Edge: edge}
	bounds := image.Rect(0, 0, 100, 100)

	assert.Equal(t, White, m.Background())
	assert.Equal(t, Black, m.Foreground(50, 50, bounds))
	assert.Equal(t, edge, m.Foreground(0, 0, bounds))
	assert.Equal(t, edge, m.Foreground(0, 50, bounds))
	assert.Equal(t, edge, m.Foreground(50, 100, bounds))

	// square distance: every point on the same ring has the same color
	assert.Equal(t, m.Foreground(25, 50, bounds), m.Foreground(25, 25, bounds))
	assert.Equal(t, m.Foreground(25, 50, bounds), m.Foreground(50, 75, bounds))
	assert.Equal(t, color.RGBA{B: 100, A: 255}, m.Foreground(25, 50, bounds))
}

func TestSquareGradientOffsetBounds(t *testing.T) {
	m := SquareGradient{Back: White, Center: Black, Edge: White}
	bounds := image.Rect(100, 100, 200, 200)

	assert.Equal(t, Black, m.Foreground(150, 150, bounds))
	assert.Equal(t, White, m.Foreground(100, 100, bounds))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, Black, lerp(Black, White, 0))
	assert.Equal(t, White, lerp(Black, White, 1))
	assert.Equal(t, color.RGBA{R: 128, G: 128, B: 128, A: 255}, lerp(Black, White, 0.5))
}
