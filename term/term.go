// Package term runs widgets in a terminal through tcell.
//
// Widgets keep working in pixels. Each terminal cell stands for a CellWidth
// by CellHeight block of pixels, so a scene laid out for a 500x500 window
// fits a 63x32 cell terminal.
package term

import (
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/OpticalFlyer/widgets/loop"
	"github.com/OpticalFlyer/widgets/ui"
)

// Pixel size of one cell.
const (
	CellWidth  = 8
	CellHeight = 16
)

// FrameInterval paces Present.
const FrameInterval = time.Second / 60

// Config describes the terminal session.
type Config struct {
	Width  int
	Height int
}

var _ loop.Backend = (*Terminal)(nil)

// Terminal is a loop.Backend over a tcell screen.
type Terminal struct {
	screen tcell.Screen
	canvas *Canvas
	events chan tcell.Event
	quit   chan struct{}
	ticker *time.Ticker

	pointer image.Point
	buttons tcell.ButtonMask
	config  Config
}

// Open initializes the real terminal.
func Open(cfg Config) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating terminal screen: %w", err)
	}
	return OpenScreen(screen, cfg)
}

// OpenScreen takes ownership of screen, which must not be initialized yet.
func OpenScreen(screen tcell.Screen, cfg Config) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal screen: %w", err)
	}
	screen.EnableMouse()
	screen.Clear()

	t := &Terminal{
		screen:  screen,
		canvas:  &Canvas{screen: screen},
		events:  make(chan tcell.Event, 64),
		quit:    make(chan struct{}),
		ticker:  time.NewTicker(FrameInterval),
		pointer: ui.OffScreen,
		config:  cfg,
	}
	go t.forwardEvents()
	return t, nil
}

// Close restores the terminal.
func (t *Terminal) Close() {
	close(t.quit)
	t.ticker.Stop()
	t.screen.Fini()
}

// Fits reports whether the whole scene is visible in the terminal.
func (t *Terminal) Fits() bool {
	cols, rows := t.screen.Size()
	needCols, needRows := PixelToCell(image.Pt(t.config.Width-1, t.config.Height-1))
	return cols > needCols && rows > needRows
}

func (t *Terminal) forwardEvents() {
	for {
		event := t.screen.PollEvent()
		if event == nil {
			// Fini was called.
			return
		}
		select {
		case t.events <- event:
		case <-t.quit:
			return
		}
	}
}

// PollEvents drains the events received since the last frame without
// blocking.
func (t *Terminal) PollEvents() []loop.Event {
	var events []loop.Event
	for {
		select {
		case ev := <-t.events:
			if e, ok := t.handle(ev); ok {
				events = append(events, e)
			}
		default:
			return events
		}
	}
}

func (t *Terminal) handle(ev tcell.Event) (loop.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		t.pointer = CellToPixel(x, y)
		t.buttons = ev.Buttons()
		return loop.Event{}, false

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return loop.Event{Kind: loop.Quit}, true
		}
		return loop.Event{Kind: loop.Other}, true

	case *tcell.EventResize:
		t.screen.Sync()
		return loop.Event{Kind: loop.Expose}, true
	}
	return loop.Event{Kind: loop.Other}, true
}

func (t *Terminal) PointerPosition() image.Point {
	return t.pointer
}

func (t *Terminal) ButtonState() ui.Buttons {
	return ui.Buttons{
		ui.MouseLeft:   t.buttons&tcell.ButtonPrimary != 0,
		ui.MouseMiddle: t.buttons&tcell.ButtonMiddle != 0,
		ui.MouseRight:  t.buttons&tcell.ButtonSecondary != 0,
	}
}

func (t *Terminal) Canvas() ui.Canvas {
	return t.canvas
}

// Present flushes the frame and waits for the next frame tick.
func (t *Terminal) Present() error {
	t.screen.Show()
	<-t.ticker.C
	return nil
}

// CellToPixel returns the pixel at the center of cell (x, y).
func CellToPixel(x, y int) image.Point {
	return image.Pt(x*CellWidth+CellWidth/2, y*CellHeight+CellHeight/2)
}

// PixelToCell returns the cell containing pixel p.
func PixelToCell(p image.Point) (x, y int) {
	return floorDiv(p.X, CellWidth), floorDiv(p.Y, CellHeight)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
