package screen

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/widgets/ui"
)

var _ ui.Canvas = (*Canvas)(nil)

// Canvas draws onto the ebiten screen image of the current frame.
type Canvas struct {
	target *ebiten.Image
	images map[image.Image]*ebiten.Image
}

func NewCanvas() *Canvas {
	return &Canvas{
		images: make(map[image.Image]*ebiten.Image),
	}
}

func (c *Canvas) FillRect(bounds ui.Rectangle, clr color.Color) {
	vector.DrawFilledRect(c.target, float32(bounds.X), float32(bounds.Y),
		float32(bounds.Width), float32(bounds.Height), clr, false)
}

// Blit draws glyphs made by this package's Rasterizer. Glyphs from another
// backend are ignored.
func (c *Canvas) Blit(g ui.Glyphs, at image.Point) {
	gl, ok := g.(*Glyphs)
	if !ok || gl.text == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleWithColor(gl.color)
	text.Draw(c.target, gl.text, gl.face, op)
}

// DrawImage stretches img over bounds. Converted images are cached by
// identity; images whose type is not comparable are converted every call.
func (c *Canvas) DrawImage(img image.Image, bounds ui.Rectangle) {
	var src *ebiten.Image
	if ui.Comparable(img) {
		var ok bool
		if src, ok = c.images[img]; !ok {
			src = ebiten.NewImageFromImage(img)
			c.images[img] = src
		}
	} else {
		src = ebiten.NewImageFromImage(img)
		defer src.Deallocate()
	}
	size := src.Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Width)/float64(size.X), float64(bounds.Height)/float64(size.Y))
	op.GeoM.Translate(float64(bounds.X), float64(bounds.Y))
	op.Filter = ebiten.FilterLinear
	c.target.DrawImage(src, op)
}
