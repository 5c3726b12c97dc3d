package ui

import (
	"errors"
	"fmt"
	"image"
	"reflect"
)

var _ Widget = (*ImageButton)(nil)

// ImageButton is a clickable image stretched over its bounds. While hovered
// it shows its hover image, if it has one.
type ImageButton struct {
	Element

	bounds Rectangle
	normal image.Image
	hover  image.Image

	drawn image.Image
}

// ErrImageNotComparable is returned for images whose dynamic type cannot be
// compared with ==, such as a struct value holding a slice. Images are tracked
// by identity, so pass pointer types like *image.RGBA.
var ErrImageNotComparable = errors.New("image type is not comparable")

// NewImageButton creates an image button covering width x height at (x, y).
// hover may be nil.
func NewImageButton(x, y, width, height int, normal, hover image.Image, handlers Handlers) (*ImageButton, error) {
	if normal == nil {
		return nil, errors.New("image button needs an image")
	}
	for _, img := range []image.Image{normal, hover} {
		if img != nil && !Comparable(img) {
			return nil, fmt.Errorf("%w: %T", ErrImageNotComparable, img)
		}
	}
	return &ImageButton{
		Element: NewElement(x, y, handlers),
		bounds: Rectangle{
			X:      x,
			Y:      y,
			Width:  width,
			Height: height,
		},
		normal: normal,
		hover:  hover,
	}, nil
}

// Comparable reports whether img can be used as a map key or compared with
// ==. Canvases that cache converted images by identity check this first.
func Comparable(img image.Image) bool {
	return reflect.TypeOf(img).Comparable()
}

func (b *ImageButton) Bounds() Rectangle {
	return b.bounds
}

func (b *ImageButton) CollidesWithPointer() bool {
	return b.bounds.Contains(b.Pointer())
}

// ResolveImage returns the image to show this frame.
func (b *ImageButton) ResolveImage() image.Image {
	if b.hover != nil && b.CollidesWithPointer() {
		return b.hover
	}
	return b.normal
}

func (b *ImageButton) Draw(dst Canvas, force bool) error {
	img := b.ResolveImage()
	if !force && img == b.drawn {
		return nil
	}
	dst.DrawImage(img, b.bounds)
	b.drawn = img
	return nil
}

func (b *ImageButton) ProcessInput() {
	if b.CollidesWithPointer() {
		b.dispatchClicks()
	}
}
