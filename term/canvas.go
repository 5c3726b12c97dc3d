package term

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/draw"

	"github.com/OpticalFlyer/widgets/ui"
)

var (
	_ ui.Canvas     = (*Canvas)(nil)
	_ ui.Rasterizer = Rasterizer{}
)

// Canvas paints pixel rectangles as cell backgrounds.
type Canvas struct {
	screen tcell.Screen
}

// cells returns the cell range covered by bounds, clipped to the screen.
func (c *Canvas) cells(bounds ui.Rectangle) image.Rectangle {
	x0, y0 := PixelToCell(image.Pt(bounds.X, bounds.Y))
	x1, y1 := PixelToCell(image.Pt(bounds.X+bounds.Width-1, bounds.Y+bounds.Height-1))
	cols, rows := c.screen.Size()
	return image.Rect(x0, y0, x1+1, y1+1).Intersect(image.Rect(0, 0, cols, rows))
}

func (c *Canvas) FillRect(bounds ui.Rectangle, clr color.Color) {
	style := tcell.StyleDefault.Background(tcellColor(clr))
	r := c.cells(bounds)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Blit writes the label over whatever background the cells already have.
func (c *Canvas) Blit(g ui.Glyphs, at image.Point) {
	gl, ok := g.(Glyphs)
	if !ok {
		return
	}
	x, y := PixelToCell(at)
	cols, rows := c.screen.Size()
	if y < 0 || y >= rows {
		return
	}
	for _, r := range gl.text {
		w := runewidth.RuneWidth(r)
		if x >= 0 && x+w <= cols {
			_, _, style, _ := c.screen.GetContent(x, y)
			c.screen.SetContent(x, y, r, nil, style.Foreground(tcellColor(gl.color)))
		}
		x += w
	}
}

// DrawImage samples img down to one color per cell.
func (c *Canvas) DrawImage(img image.Image, bounds ui.Rectangle) {
	r := c.cells(bounds)
	if r.Empty() {
		return
	}
	x0, y0 := PixelToCell(image.Pt(bounds.X, bounds.Y))
	x1, y1 := PixelToCell(image.Pt(bounds.X+bounds.Width-1, bounds.Y+bounds.Height-1))
	small := image.NewRGBA(image.Rect(x0, y0, x1+1, y1+1))
	draw.ApproxBiLinear.Scale(small, small.Bounds(), img, img.Bounds(), draw.Src, nil)

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			style := tcell.StyleDefault.Background(tcellColor(small.At(x, y)))
			c.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func tcellColor(clr color.Color) tcell.Color {
	r, g, b, _ := clr.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// Glyphs is a label laid out in cells.
type Glyphs struct {
	text  string
	color color.Color
	size  image.Point
}

func (g Glyphs) Text() string      { return g.text }
func (g Glyphs) Size() image.Point { return g.size }

// Rasterizer measures labels in terminal cells. Terminals have one font, so
// the font name and size are ignored.
type Rasterizer struct{}

func (Rasterizer) RenderText(_ string, _ float64, text string, clr color.Color) (ui.Glyphs, error) {
	size := image.Point{}
	if text != "" {
		size = image.Pt(runewidth.StringWidth(text)*CellWidth, CellHeight)
	}
	return Glyphs{text: text, color: clr, size: size}, nil
}
