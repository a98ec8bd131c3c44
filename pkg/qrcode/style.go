package qr

import (
	"fmt"
	"image/color"
)

// Style holds the colors and geometry shared by every render of one code.
type Style struct {
	Primary    color.RGBA // finder pattern centers
	MaskAccent color.RGBA // edge color of the gradient mask
	Background color.RGBA

	ModuleSize int     // pixels per module
	QuietZone  int     // quiet zone width in modules
	LogoRatio  float64 // approximate logo width relative to the image
}

var GraphOwls = Style{
	Primary:    color.RGBA{R: 29, G: 29, B: 184, A: 255},
	MaskAccent: color.RGBA{R: 29, G: 29, B: 180, A: 255},
	Background: White,
	ModuleSize: 10,
	QuietZone:  4,
	LogoRatio:  DefaultLogoRatio,
}

func (s Style) Validate() error {
	if s.ModuleSize <= 0 {
		return fmt.Errorf("style: module size must be positive, got %d", s.ModuleSize)
	}
	if s.QuietZone < 0 {
		return fmt.Errorf("style: quiet zone must not be negative, got %d", s.QuietZone)
	}
	if s.LogoRatio <= 0 || s.LogoRatio >= 1 {
		return fmt.Errorf("style: logo ratio must be in (0, 1), got %v", s.LogoRatio)
	}
	return nil
}
