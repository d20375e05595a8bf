package ui

import (
	"image"

	"arcade-snake/game/types"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// ImageCanvas renders frames into an in-memory image. Nothing is shown on screen.
type ImageCanvas struct {
	dc     *gg.Context
	frames int
}

func NewImageCanvas(width, height int) *ImageCanvas {
	return &ImageCanvas{dc: gg.NewContext(width, height)}
}

func (c *ImageCanvas) BeginFrame() {}

func (c *ImageCanvas) Clear(col types.Color) {
	c.dc.SetRGBA255(int(col.R), int(col.G), int(col.B), int(col.A))
	c.dc.Clear()
}

func (c *ImageCanvas) DrawCircle(x, y, radius float32, col types.Color) {
	c.dc.SetRGBA255(int(col.R), int(col.G), int(col.B), int(col.A))
	c.dc.DrawCircle(float64(x), float64(y), float64(radius))
	c.dc.Fill()
}

func (c *ImageCanvas) EndFrame() {
	c.frames++
}

func (c *ImageCanvas) Frames() int {
	return c.frames
}

// Image is the last rendered frame.
func (c *ImageCanvas) Image() image.Image {
	return c.dc.Image()
}

func (c *ImageCanvas) SavePNG(path string) error {
	return errors.Wrapf(c.dc.SavePNG(path), "save snapshot %s", path)
}
