package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas is the minimal drawing surface the compositor depends on, so the
// compositing layout can be tested without a real rendering backend.
type Canvas interface {
	FillRegion(rect image.Rectangle, c color.Color)
	DrawText(text string, face font.Face, at image.Point, c color.Color)
	PasteImage(img image.Image, at image.Point)
	Image() image.Image
}

// imageCanvas implements Canvas on an in-memory NRGBA image
type imageCanvas struct {
	img *image.NRGBA
}

// NewCanvas creates a white canvas of the given size
func NewCanvas(width, height int) Canvas {
	return &imageCanvas{img: imaging.New(width, height, color.White)}
}

// FillRegion fills a rectangle with a solid color
func (c *imageCanvas) FillRegion(rect image.Rectangle, col color.Color) {
	draw.Draw(c.img, rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawText draws a single line of text with its baseline at the given point
func (c *imageCanvas) DrawText(text string, face font.Face, at image.Point, col color.Color) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(at.X, at.Y),
	}
	d.DrawString(text)
}

// PasteImage pastes an image at the given position
func (c *imageCanvas) PasteImage(img image.Image, at image.Point) {
	c.img = imaging.Paste(c.img, img, at)
}

// Image returns the composed image
func (c *imageCanvas) Image() image.Image {
	return c.img
}
