package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/OpticalFlyer/widgets/fonts"
	"github.com/OpticalFlyer/widgets/loop"
	"github.com/OpticalFlyer/widgets/scene"
	"github.com/OpticalFlyer/widgets/screen"
	"github.com/OpticalFlyer/widgets/term"
	"github.com/OpticalFlyer/widgets/ui"
)

// Backends selectable with -backend
const (
	backendWindow   = "window"
	backendTerminal = "term"
)

func main() {
	backend := flag.String("backend", backendWindow, "where to draw: window or term")
	scenePath := flag.String("scene", "", "YAML scene file (default: built-in single button)")
	debug := flag.Bool("debug", false, "start with the debug overlay (window backend, F1 toggles)")
	listFonts := flag.Bool("fonts", false, "print the known font families and exit")
	book := fonts.NewBook()
	flag.Func("font", "register a TrueType font as `name=file.ttf` (repeatable)", func(v string) error {
		return registerFont(book, v)
	})
	flag.Parse()

	if *listFonts {
		fmt.Println(strings.Join(book.Families(), "\n"))
		return
	}

	s, err := loadScene(*scenePath)
	if err != nil {
		log.Fatal(err)
	}

	controller := ui.NewController()
	l := loop.New(controller)
	actions := scene.Actions{
		"stop":   func() { l.Stop("stop button clicked") },
		"toggle": l.Toggle,
		"log": func() {
			log.Printf("button clicked at frame %d", l.Frames())
		},
	}

	switch *backend {
	case backendWindow:
		err = runWindow(s, l, actions, book, *debug)
	case backendTerminal:
		err = runTerminal(s, l, actions)
	default:
		err = fmt.Errorf("unknown backend %q", *backend)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("stopped after %d frames: %s", l.Frames(), l.Reason())
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Default()
	}
	return scene.Load(path)
}

// registerFont handles one -font flag.
func registerFont(book *fonts.Book, v string) error {
	name, path, ok := strings.Cut(v, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return fmt.Errorf("want name=file.ttf, got %q", v)
	}
	ttf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := book.Register(name, ttf); err != nil {
		return fmt.Errorf("font %s: %w", name, err)
	}
	return nil
}

func runWindow(s *scene.Scene, l *loop.Loop, actions scene.Actions, book *fonts.Book, debug bool) error {
	raster := screen.NewRasterizer(book)
	if err := s.Build(l.Controller(), raster, actions); err != nil {
		return err
	}

	game := screen.NewGame(l, screen.Config{
		Title:  s.Window.Title,
		Width:  s.Window.Width,
		Height: s.Window.Height,
		Debug:  debug,
	})
	return screen.Run(game)
}

func runTerminal(s *scene.Scene, l *loop.Loop, actions scene.Actions) error {
	if err := s.Build(l.Controller(), term.Rasterizer{}, actions); err != nil {
		return err
	}

	t, err := term.Open(term.Config{Width: s.Window.Width, Height: s.Window.Height})
	if err != nil {
		return err
	}

	// The terminal belongs to tcell until Close; hold log output until then.
	var buf bytes.Buffer
	log.SetOutput(&buf)
	fits := t.Fits()
	err = l.Run(t)
	t.Close()
	log.SetOutput(os.Stderr)
	os.Stderr.Write(buf.Bytes())

	if !fits {
		log.Printf("terminal is smaller than the %dx%d scene; some widgets were clipped",
			s.Window.Width, s.Window.Height)
	}
	return err
}
