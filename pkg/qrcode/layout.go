package qr

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

const (
	finderModules = 7
	pupilOffset   = 2
	pupilModules  = 3

	minModules = 21
)

// Layout maps the module grid to pixel space.
type Layout struct {
	Modules    int // modules per side, without quiet zone
	ModuleSize int // pixels per module
	QuietZone  int // quiet zone width in modules
}

func (l Layout) Validate() error {
	if l.Modules < minModules {
		return fmt.Errorf("layout: %d modules per side, want at least %d", l.Modules, minModules)
	}
	if l.ModuleSize <= 0 {
		return fmt.Errorf("layout: module size must be positive, got %d", l.ModuleSize)
	}
	if l.QuietZone < 0 {
		return fmt.Errorf("layout: quiet zone must not be negative, got %d", l.QuietZone)
	}
	return nil
}

// ImageSize returns the side of the rendered image in pixels.
func (l Layout) ImageSize() int {
	return (l.Modules + 2*l.QuietZone) * l.ModuleSize
}

func (l Layout) Bounds() image.Rectangle {
	size := l.ImageSize()
	return image.Rect(0, 0, size, size)
}

// ModuleRect returns the pixel rectangle covered by a module.
func (l Layout) ModuleRect(row, col int) image.Rectangle {
	return l.moduleSpan(row, col, 1)
}

func (l Layout) moduleSpan(row, col, n int) image.Rectangle {
	x := (l.QuietZone + col) * l.ModuleSize
	y := (l.QuietZone + row) * l.ModuleSize
	return image.Rect(x, y, x+n*l.ModuleSize, y+n*l.ModuleSize)
}

// IsEye reports whether the module belongs to one of the three finder patterns.
func (l Layout) IsEye(row, col int) bool {
	for _, origin := range l.eyeOrigins() {
		if row >= origin.Y && row < origin.Y+finderModules &&
			col >= origin.X && col < origin.X+finderModules {
			return true
		}
	}
	return false
}

// eyeOrigins returns the top left module of each finder pattern:
// top left, top right, bottom left.
func (l Layout) eyeOrigins() []image.Point {
	far := l.Modules - finderModules
	return []image.Point{
		{X: 0, Y: 0},
		{X: far, Y: 0},
		{X: 0, Y: far},
	}
}

// EyeRects returns the pixel rectangles of the three finder patterns.
func (l Layout) EyeRects() []image.Rectangle {
	origins := l.eyeOrigins()
	rects := make([]image.Rectangle, 0, len(origins))
	for _, o := range origins {
		rects = append(rects, l.moduleSpan(o.Y, o.X, finderModules))
	}
	return rects
}

// PupilRects returns the pixel rectangles of the 3x3 centers of the finder patterns.
func (l Layout) PupilRects() []image.Rectangle {
	origins := l.eyeOrigins()
	rects := make([]image.Rectangle, 0, len(origins))
	for _, o := range origins {
		rects = append(rects, l.moduleSpan(o.Y+pupilOffset, o.X+pupilOffset, pupilModules))
	}
	return rects
}

// InnerEyeMask is opaque over the finder pattern centers.
func (l Layout) InnerEyeMask() *image.Alpha {
	return l.mask(l.PupilRects(), nil)
}

// OuterEyeMask is opaque over the finder pattern rings, the centers are cut out.
func (l Layout) OuterEyeMask() *image.Alpha {
	return l.mask(l.EyeRects(), l.PupilRects())
}

func (l Layout) mask(fill, holes []image.Rectangle) *image.Alpha {
	size := l.ImageSize()
	dc := gg.NewContext(size, size)
	dc.SetFillRuleEvenOdd()
	dc.SetRGBA(0, 0, 0, 1)

	for i, r := range fill {
		drawRect(dc, r)
		if holes != nil {
			drawRect(dc, holes[i])
		}
		dc.Fill()
	}

	return toAlpha(dc.Image())
}

func drawRect(dc *gg.Context, r image.Rectangle) {
	dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
}

// toAlpha thresholds the alpha channel of img into a hard mask
func toAlpha(img image.Image) *image.Alpha {
	b := img.Bounds()
	mask := image.NewAlpha(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a >= 0x8000 {
				mask.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}
	return mask
}
