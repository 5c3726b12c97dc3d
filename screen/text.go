package screen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/OpticalFlyer/widgets/fonts"
	"github.com/OpticalFlyer/widgets/ui"
)

var _ ui.Rasterizer = (*Rasterizer)(nil)

// Glyphs is a shaped, measured label.
type Glyphs struct {
	text  string
	face  *text.GoTextFace
	color color.Color
	size  image.Point
}

func (g *Glyphs) Text() string      { return g.text }
func (g *Glyphs) Size() image.Point { return g.size }

// Rasterizer shapes labels with ebiten's text/v2 using faces from a font
// book. Parsed faces are kept per family.
type Rasterizer struct {
	book    *fonts.Book
	sources map[string]*text.GoTextFaceSource
}

func NewRasterizer(book *fonts.Book) *Rasterizer {
	return &Rasterizer{
		book:    book,
		sources: make(map[string]*text.GoTextFaceSource),
	}
}

func (r *Rasterizer) RenderText(font string, size float64, s string, clr color.Color) (ui.Glyphs, error) {
	src, err := r.source(font)
	if err != nil {
		return nil, err
	}
	face := &text.GoTextFace{
		Source: src,
		Size:   size,
	}
	w, h := text.Measure(s, face, 0)
	return &Glyphs{
		text:  s,
		face:  face,
		color: clr,
		size:  image.Pt(int(math.Ceil(w)), int(math.Ceil(h))),
	}, nil
}

func (r *Rasterizer) source(font string) (*text.GoTextFaceSource, error) {
	family, ttf := r.book.Lookup(font)
	if src, ok := r.sources[family]; ok {
		return src, nil
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("loading font %q: %w", family, err)
	}
	r.sources[family] = src
	return src, nil
}
