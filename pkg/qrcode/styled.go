package qr

import (
	"fmt"
	"image"

	"github.com/skip2/go-qrcode"
)

// StyledOptions selects the look of the final render.
type StyledOptions struct {
	ModuleDrawer ModuleDrawer
	Gradient     bool // square gradient towards Style.MaskAccent instead of solid black
	Logo         image.Image
}

// Variants are the three renders merged into a styled code.
type Variants struct {
	Inner *image.RGBA // chosen drawer in Style.Primary, source of the finder centers
	Outer *image.RGBA // plain black squares, source of the finder rings
	Final *image.RGBA // chosen drawer, colors and logo
}

// RenderVariants encodes content at the highest recovery level and renders all three variants.
func RenderVariants(content string, style Style, opts StyledOptions) (*Code, *Variants, error) {
	if err := style.Validate(); err != nil {
		return nil, nil, err
	}

	code, err := Encode(content, qrcode.Highest)
	if err != nil {
		return nil, nil, err
	}
	layout := code.Layout(style)

	inner, err := code.Render(layout, RenderOptions{
		ModuleDrawer: opts.ModuleDrawer,
		ColorMask:    SolidFill{Back: style.Background, Front: style.Primary},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to render inner eyes: %w", err)
	}

	outer, err := code.Render(layout, RenderOptions{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to render outer eyes: %w", err)
	}

	var mask ColorMask = SolidFill{Back: style.Background, Front: Black}
	if opts.Gradient {
		mask = SquareGradient{Back: style.Background, Center: Black, Edge: style.MaskAccent}
	}
	final, err := code.Render(layout, RenderOptions{
		ModuleDrawer: opts.ModuleDrawer,
		ColorMask:    mask,
		Logo:         opts.Logo,
		LogoRatio:    style.LogoRatio,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to render final image: %w", err)
	}

	return code, &Variants{Inner: inner, Outer: outer, Final: final}, nil
}

// Styled renders content and merges the variants so that the finder centers come
// from the inner render and the finder rings from the plain one.
func Styled(content string, style Style, opts StyledOptions) (*image.RGBA, error) {
	code, variants, err := RenderVariants(content, style, opts)
	if err != nil {
		return nil, err
	}
	layout := code.Layout(style)

	intermediate, err := Composite(variants.Inner, variants.Final, layout.InnerEyeMask())
	if err != nil {
		return nil, err
	}
	return Composite(variants.Outer, intermediate, layout.OuterEyeMask())
}
