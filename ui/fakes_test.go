package ui

import (
	"errors"
	"image"
	"image/color"
)

type fakeGlyphs struct {
	text string
	font string
	size float64
}

func (g fakeGlyphs) Text() string { return g.text }

// Every rune is 6x10 pixels.
func (g fakeGlyphs) Size() image.Point {
	if g.text == "" {
		return image.Point{}
	}
	return image.Pt(6*len([]rune(g.text)), 10)
}

type fakeRasterizer struct {
	renders []string
	fail    bool
}

func (r *fakeRasterizer) RenderText(font string, size float64, text string, _ color.Color) (Glyphs, error) {
	if r.fail {
		return nil, errors.New("no such font")
	}
	r.renders = append(r.renders, text)
	return fakeGlyphs{text: text, font: font, size: size}, nil
}

type fill struct {
	bounds Rectangle
	color  color.Color
}

type blit struct {
	text string
	at   image.Point
}

type fakeCanvas struct {
	fills  []fill
	blits  []blit
	images []image.Image
}

func (c *fakeCanvas) FillRect(bounds Rectangle, clr color.Color) {
	c.fills = append(c.fills, fill{bounds: bounds, color: clr})
}

func (c *fakeCanvas) Blit(g Glyphs, at image.Point) {
	c.blits = append(c.blits, blit{text: g.Text(), at: at})
}

func (c *fakeCanvas) DrawImage(img image.Image, _ Rectangle) {
	c.images = append(c.images, img)
}

func press(buttons ...int) Buttons {
	var b Buttons
	for _, i := range buttons {
		b[i] = true
	}
	return b
}
