package image

import (
	"errors"
	"image"
)

const (
	channelsToWrite = 3
)

var (
	ErrCursorExhausted = errors.New("no more pixels available in image")
)

// Cursor walks the pixels of an image in raster order: x increases first, then the cursor wraps to the start of the
// next row. Coordinates are relative to the image bounds.
type Cursor struct {
	X, Y          int
	width, height int
}

func NewCursor(bounds image.Rectangle) *Cursor {
	return &Cursor{
		width:  bounds.Dx(),
		height: bounds.Dy(),
	}
}

// Advance moves to the next pixel, or returns ErrCursorExhausted without moving if the cursor is on the last one.
func (c *Cursor) Advance() error {
	if c.InBoundsX(c.X + 1) {
		c.X++
		return nil
	}
	if c.InBoundsY(c.Y + 1) {
		c.X = 0
		c.Y++
		return nil
	}
	return ErrCursorExhausted
}

func (c *Cursor) InBoundsX(x int) bool {
	return x >= 0 && x < c.width
}

func (c *Cursor) InBoundsY(y int) bool {
	return y >= 0 && y < c.height
}

// Valid reports whether the cursor points at a pixel, which is only false for empty images.
func (c *Cursor) Valid() bool {
	return c.InBoundsX(c.X) && c.InBoundsY(c.Y)
}

func (c *Cursor) Dimensions() (width, height int) {
	return c.width, c.height
}

// CapacityBits is the number of LSB slots in the image, one per color channel.
func (c *Cursor) CapacityBits() int {
	return c.width * c.height * channelsToWrite
}
