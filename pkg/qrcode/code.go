package qr

import (
	"errors"
	"fmt"

	"github.com/skip2/go-qrcode"
)

var ErrEmptyContent = errors.New("empty content")

// Code is an encoded QR symbol. The module matrix never includes the quiet zone,
// that belongs to Layout.
type Code struct {
	Content string
	Level   qrcode.RecoveryLevel
	Version int
	modules [][]bool
}

// Encode encodes content with the given recovery level
func Encode(content string, level qrcode.RecoveryLevel) (*Code, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	q, err := qrcode.New(content, level)
	if err != nil {
		return nil, fmt.Errorf("failed to encode content: %w", err)
	}

	// Bitmap is padded with the encoder's own border, strip it
	bitmap := q.Bitmap()
	size := 17 + 4*q.VersionNumber
	border := (len(bitmap) - size) / 2
	if border < 0 {
		return nil, fmt.Errorf("unexpected bitmap size %d for version %d", len(bitmap), q.VersionNumber)
	}

	modules := make([][]bool, size)
	for row := range modules {
		modules[row] = append([]bool(nil), bitmap[row+border][border:border+size]...)
	}

	return &Code{
		Content: content,
		Level:   level,
		Version: q.VersionNumber,
		modules: modules,
	}, nil
}

// Size returns the number of modules per side.
func (c *Code) Size() int {
	return len(c.modules)
}

// Dark reports whether the module is dark. Coordinates outside the symbol are light.
func (c *Code) Dark(row, col int) bool {
	if row < 0 || col < 0 || row >= len(c.modules) || col >= len(c.modules) {
		return false
	}
	return c.modules[row][col]
}

// Layout returns the pixel geometry of the code for the given style.
func (c *Code) Layout(style Style) Layout {
	return Layout{
		Modules:    c.Size(),
		ModuleSize: style.ModuleSize,
		QuietZone:  style.QuietZone,
	}
}
