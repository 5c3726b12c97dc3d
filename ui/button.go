package ui

import (
	"fmt"
	"image"
	"image/color"
)

var _ Widget = (*Button)(nil)

// Defaults for ButtonStyle.
const (
	DefaultFont     = "Arial"
	DefaultFontSize = 10
)

// TextColor is the color button labels are rasterized with.
var TextColor color.Color = color.Black

// ButtonStyle describes how a Button resolves its fill and label.
type ButtonStyle struct {
	Color      Source[RGB]
	HoverScale float64
	Text       Source[string]
	Font       string
	FontSize   float64
}

// DefaultButtonStyle returns a white, unlabeled style with no hover effect.
func DefaultButtonStyle() ButtonStyle {
	return ButtonStyle{
		Color:      Static(White),
		HoverScale: 1,
		Text:       Static(""),
		Font:       DefaultFont,
		FontSize:   DefaultFontSize,
	}
}

// Button is a filled rectangle with an optional centered label.
type Button struct {
	Element

	bounds Rectangle
	style  ButtonStyle
	raster Rasterizer

	// Rasterized label and the text it was built from.
	glyphs    Glyphs
	glyphText string
	glyphAt   image.Point

	// What the last draw put on screen.
	drawn      bool
	drawnColor RGB
	drawnText  string
}

// NewButton creates a width x height button anchored at (x, y) and
// rasterizes its initial label.
func NewButton(x, y, width, height int, style ButtonStyle, handlers Handlers, raster Rasterizer) (*Button, error) {
	b := &Button{
		Element: NewElement(x, y, handlers),
		bounds: Rectangle{
			X:      x,
			Y:      y,
			Width:  width,
			Height: height,
		},
		style:  style,
		raster: raster,
	}
	if err := b.rasterize(style.Text.Default()); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Button) Bounds() Rectangle {
	return b.bounds
}

// Label returns the text the current glyphs were rasterized from.
func (b *Button) Label() string {
	return b.glyphText
}

func (b *Button) CollidesWithPointer() bool {
	return b.bounds.Contains(b.Pointer())
}

// ResolveColor returns this frame's fill: the color source, scaled by the
// hover factor while the pointer is over the button.
func (b *Button) ResolveColor() RGB {
	c := b.style.Color.Resolve()
	if b.CollidesWithPointer() {
		c = c.Scale(b.style.HoverScale)
	}
	return c
}

// ResolveText returns this frame's label.
func (b *Button) ResolveText() string {
	return b.style.Text.Resolve()
}

// SetText replaces the static label and font and rasterizes it right away.
// The next Draw repaints even if color and text look unchanged.
func (b *Button) SetText(text, font string, size float64) error {
	b.style.Text = b.style.Text.WithDefault(text)
	b.style.Font = font
	b.style.FontSize = size
	if err := b.rasterize(text); err != nil {
		return err
	}
	b.drawn = false
	return nil
}

func (b *Button) rasterize(text string) error {
	g, err := b.raster.RenderText(b.style.Font, b.style.FontSize, text, TextColor)
	if err != nil {
		return fmt.Errorf("rendering button label %q: %w", text, err)
	}
	b.glyphs = g
	b.glyphText = text
	b.glyphAt = CenterIn(g, b.bounds)
	return nil
}

// Draw paints the button when force is set or when the resolved color or
// text differs from what was last drawn.
func (b *Button) Draw(dst Canvas, force bool) error {
	text := b.ResolveText()
	fill := b.ResolveColor()

	if text != b.glyphText {
		if err := b.rasterize(text); err != nil {
			return err
		}
		// A provider that fails later falls back to this label.
		b.style.Text = b.style.Text.WithDefault(text)
	}

	if !force && b.drawn && text == b.drawnText && fill == b.drawnColor {
		return nil
	}

	dst.FillRect(b.bounds, fill)
	dst.Blit(b.glyphs, b.glyphAt)

	b.drawn = true
	b.drawnColor = fill
	b.drawnText = text
	return nil
}

// ProcessInput fires at most one click handler while the pointer is over
// the button.
func (b *Button) ProcessInput() {
	if b.CollidesWithPointer() {
		b.dispatchClicks()
	}
}
