package qr

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/skip2/go-qrcode"
)

// RenderOptions controls how a single variant of a code is painted.
// Zero values fall back to black square modules on white without a logo.
type RenderOptions struct {
	ModuleDrawer ModuleDrawer
	EyeDrawer    ModuleDrawer // finder patterns, Square when unset
	ColorMask    ColorMask
	Logo         image.Image
	LogoRatio    float64
}

// Render paints the code onto a new image sized by the layout.
func (c *Code) Render(l Layout, opts RenderOptions) (*image.RGBA, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if l.Modules != c.Size() {
		return nil, fmt.Errorf("%w: layout has %d modules, code has %d", ErrSizeMismatch, l.Modules, c.Size())
	}
	if opts.Logo != nil && c.Level != qrcode.Highest {
		return nil, ErrLogoNeedsHighRecovery
	}

	modules := opts.ModuleDrawer
	if modules == nil {
		modules = Square{}
	}
	eyes := opts.EyeDrawer
	if eyes == nil {
		eyes = Square{}
	}
	mask := opts.ColorMask
	if mask == nil {
		mask = DefaultColorMask
	}

	img := paint(c.coverage(l, modules, eyes), mask)

	if opts.Logo != nil {
		ratio := opts.LogoRatio
		if ratio <= 0 {
			ratio = DefaultLogoRatio
		}
		embedLogo(img, opts.Logo, l, ratio)
	}

	return img, nil
}

// coverage draws the dark modules in opaque black on a transparent canvas.
func (c *Code) coverage(l Layout, modules, eyes ModuleDrawer) *image.RGBA {
	canvas := image.NewRGBA(l.Bounds())
	dc := gg.NewContextForRGBA(canvas)
	dc.SetRGBA(0, 0, 0, 1)

	for row := 0; row < l.Modules; row++ {
		for col := 0; col < l.Modules; col++ {
			if !c.Dark(row, col) {
				continue
			}

			drawer := modules
			if l.IsEye(row, col) {
				drawer = eyes
			}

			r := l.ModuleRect(row, col)
			drawer.Draw(dc, Cell{
				X:      float64(r.Min.X),
				Y:      float64(r.Min.Y),
				Size:   float64(l.ModuleSize),
				Top:    c.Dark(row-1, col),
				Bottom: c.Dark(row+1, col),
				Left:   c.Dark(row, col-1),
				Right:  c.Dark(row, col+1),
			})
			dc.Fill()
		}
	}

	return canvas
}

// paint blends background and foreground by the coverage alpha of every pixel.
func paint(coverage *image.RGBA, mask ColorMask) *image.RGBA {
	bounds := coverage.Bounds()
	img := image.NewRGBA(bounds)
	back := mask.Background()

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			a := coverage.RGBAAt(x, y).A
			switch a {
			case 0:
				img.SetRGBA(x, y, back)
			case 0xff:
				img.SetRGBA(x, y, mask.Foreground(x, y, bounds))
			default:
				img.SetRGBA(x, y, lerp(back, mask.Foreground(x, y, bounds), float64(a)/0xff))
			}
		}
	}

	return img
}
