// Package screen runs widgets in a desktop window through ebiten.
package screen

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/widgets/loop"
	"github.com/OpticalFlyer/widgets/ui"
)

// Config describes the window.
type Config struct {
	Title  string
	Width  int
	Height int
	Debug  bool
}

// Game implements ebiten.Game interface on top of a frame loop.
type Game struct {
	loop   *loop.Loop
	canvas *Canvas
	config Config
	err    error

	debugMode bool
	exposed   bool

	// Touch state
	primaryTouch ebiten.TouchID
	touching     bool
	touchIDs     []ebiten.TouchID
}

var (
	_ ebiten.Game      = (*Game)(nil)
	_ loop.EventSource = (*Game)(nil)
)

// NewGame wraps l for ebiten.
func NewGame(l *loop.Loop, cfg Config) *Game {
	return &Game{
		loop:      l,
		canvas:    NewCanvas(),
		config:    cfg,
		debugMode: cfg.Debug,
		touchIDs:  make([]ebiten.TouchID, 0, 8),
	}
}

// Update runs the input half of a frame. Once the loop has stopped, the
// next call ends the game.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if !g.loop.Running() {
		return ebiten.Termination
	}
	g.loop.Update(g)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.target = screen
	if err := g.loop.Draw(g.canvas); err != nil && g.err == nil {
		g.err = err
	}

	// Draw debug overlay if enabled
	if g.debugMode {
		vector.DrawFilledRect(screen, 0, 0, 180, 68, color.Black, false)
		x, y := ebiten.CursorPosition()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f TPS: %.2f\nPointer: %d,%d\nOver UI: %t\nFrames: %d (%s)",
			ebiten.ActualFPS(), ebiten.ActualTPS(), x, y, g.loop.Controller().IsPointerOverUI(),
			g.loop.Frames(), g.loop.State()))
	}
}

// Layout keeps the logical surface at the configured size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.Width, g.config.Height
}

// PollEvents reports window close and Escape as Quit. F1 toggles the debug
// overlay; closing it asks for a full repaint.
func (g *Game) PollEvents() []loop.Event {
	var events []loop.Event
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		events = append(events, loop.Event{Kind: loop.Quit})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debugMode = !g.debugMode
		if !g.debugMode {
			g.exposed = true
		}
	}
	if g.exposed {
		g.exposed = false
		events = append(events, loop.Event{Kind: loop.Expose})
	}
	return events
}

// PointerPosition returns the active touch, or the cursor when nothing
// touches the screen.
func (g *Game) PointerPosition() image.Point {
	g.updateTouch()
	if g.touching {
		x, y := ebiten.TouchPosition(g.primaryTouch)
		return image.Pt(x, y)
	}
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y)
}

func (g *Game) ButtonState() ui.Buttons {
	return ui.Buttons{
		ui.MouseLeft:   g.touching || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ui.MouseMiddle: ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		ui.MouseRight:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	}
}

// Run opens the window and blocks until the loop stops or fails.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.config.Width, g.config.Height)
	ebiten.SetWindowTitle(g.config.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	// Widgets only repaint what changed, so frames must accumulate.
	ebiten.SetScreenClearedEveryFrame(false)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
