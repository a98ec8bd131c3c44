package qr

import (
	"errors"
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
)

const DefaultLogoRatio = 0.25

var ErrLogoNeedsHighRecovery = errors.New("embedded logo requires the highest recovery level")

// LoadLogo reads a logo image from disk
func LoadLogo(path string) (image.Image, error) {
	logo, err := gg.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load logo %s: %w", path, err)
	}
	return logo, nil
}

// logoRect returns where the logo goes: centered, with its offset snapped to the module grid.
func logoRect(l Layout, ratio float64) image.Rectangle {
	total := l.ImageSize()
	approx := int(float64(total) * ratio)
	offset := (total/2 - approx/2) / l.ModuleSize * l.ModuleSize
	return image.Rect(offset, offset, total-offset, total-offset)
}

func embedLogo(dst *image.RGBA, logo image.Image, l Layout, ratio float64) {
	r := logoRect(l, ratio)
	if r.Empty() {
		return
	}

	resized := resize.Resize(uint(r.Dx()), uint(r.Dy()), logo, resize.Lanczos3)

	dc := gg.NewContextForRGBA(dst)
	dc.DrawImage(resized, r.Min.X, r.Min.Y)
}
