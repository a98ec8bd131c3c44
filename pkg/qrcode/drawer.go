package qr

import (
	"errors"
	"fmt"

	"github.com/fogleman/gg"
)

const (
	defaultGapRatio    = 0.8
	defaultShrinkRatio = 0.8
)

var ErrUnknownDrawer = errors.New("unknown module drawer")

// Cell describes a dark module being drawn and which of its neighbours are dark.
type Cell struct {
	X, Y, Size float64

	Top, Bottom, Left, Right bool
}

func (c Cell) center() (float64, float64) {
	return c.X + c.Size/2, c.Y + c.Size/2
}

// ModuleDrawer adds the shape of one dark module to the current path.
type ModuleDrawer interface {
	Draw(dc *gg.Context, cell Cell)
}

// Square fills the whole module.
type Square struct{}

func (Square) Draw(dc *gg.Context, c Cell) {
	dc.DrawRectangle(c.X, c.Y, c.Size, c.Size)
}

// GappedSquare draws a smaller square leaving a gap around each module.
type GappedSquare struct {
	Ratio float64 // side of the square relative to the module, 0.8 when unset
}

func (d GappedSquare) Draw(dc *gg.Context, c Cell) {
	ratio := d.Ratio
	if ratio <= 0 || ratio > 1 {
		ratio = defaultGapRatio
	}
	side := c.Size * ratio
	offset := (c.Size - side) / 2
	dc.DrawRectangle(c.X+offset, c.Y+offset, side, side)
}

// Circle draws every module as a dot.
type Circle struct{}

func (Circle) Draw(dc *gg.Context, c Cell) {
	cx, cy := c.center()
	dc.DrawCircle(cx, cy, c.Size/2)
}

// Rounded rounds the corners of a module whose two adjacent neighbours are both light,
// so runs of dark modules merge into blobs with soft outer corners.
type Rounded struct{}

func (Rounded) Draw(dc *gg.Context, c Cell) {
	half := c.Size / 2
	cx, cy := c.center()
	dc.DrawCircle(cx, cy, half)

	if c.Top || c.Left {
		dc.DrawRectangle(c.X, c.Y, half, half)
	}
	if c.Top || c.Right {
		dc.DrawRectangle(cx, c.Y, half, half)
	}
	if c.Bottom || c.Left {
		dc.DrawRectangle(c.X, cy, half, half)
	}
	if c.Bottom || c.Right {
		dc.DrawRectangle(cx, cy, half, half)
	}
}

// VerticalBars joins vertically adjacent modules into narrow bars with rounded ends.
type VerticalBars struct {
	Shrink float64 // bar width relative to the module, 0.8 when unset
}

func (d VerticalBars) Draw(dc *gg.Context, c Cell) {
	shrink := d.Shrink
	if shrink <= 0 || shrink > 1 {
		shrink = defaultShrinkRatio
	}
	width := c.Size * shrink
	half := c.Size / 2
	x := c.X + (c.Size-width)/2
	cx, cy := c.center()

	dc.DrawEllipse(cx, cy, width/2, half)
	if c.Top {
		dc.DrawRectangle(x, c.Y, width, half)
	}
	if c.Bottom {
		dc.DrawRectangle(x, cy, width, half)
	}
}

// DrawerByName resolves a drawer from its configuration name.
func DrawerByName(name string) (ModuleDrawer, error) {
	switch name {
	case "square":
		return Square{}, nil
	case "gapped-square":
		return GappedSquare{}, nil
	case "circle":
		return Circle{}, nil
	case "rounded":
		return Rounded{}, nil
	case "vertical-bars":
		return VerticalBars{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDrawer, name)
	}
}
