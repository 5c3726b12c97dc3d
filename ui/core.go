package ui

import (
	"image"
	"image/color"
)

// Widget is the capability every interactive element provides to the frame
// loop. The set of implementations is closed: Button and ImageButton.
type Widget interface {
	StoreInput(pos image.Point, pressed Buttons)
	CollidesWithPointer() bool
	ProcessInput()
	Draw(dst Canvas, force bool) error
	Bounds() Rectangle
}

// Canvas is the drawing surface a backend hands to widgets each frame.
type Canvas interface {
	FillRect(bounds Rectangle, clr color.Color)
	Blit(g Glyphs, at image.Point)
	DrawImage(img image.Image, bounds Rectangle)
}

// Rasterizer turns text into backend specific glyphs.
type Rasterizer interface {
	RenderText(font string, size float64, text string, clr color.Color) (Glyphs, error)
}

// Glyphs is rasterized text ready to be blitted onto a Canvas of the same
// backend.
type Glyphs interface {
	Text() string
	Size() image.Point
}

// Rectangle represents the bounds of a Widget in screen pixels.
type Rectangle struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether p lies inside r. All four edges count as inside.
func (r Rectangle) Contains(p image.Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Center returns the midpoint of r.
func (r Rectangle) Center() image.Point {
	return image.Pt(r.X+r.Width/2, r.Y+r.Height/2)
}

// Image converts r to an image.Rectangle.
func (r Rectangle) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// CenterIn returns the top-left offset that centers g inside bounds.
func CenterIn(g Glyphs, bounds Rectangle) image.Point {
	size := g.Size()
	c := bounds.Center()
	return image.Pt(c.X-size.X/2, c.Y-size.Y/2)
}
