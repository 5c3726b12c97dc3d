// Package scene loads window and button descriptions from YAML.
package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/OpticalFlyer/widgets/ui"
)

//go:embed default.yaml
var defaultScene []byte

// ErrUnknownAction is returned when a button names an action that was not
// provided to Build.
var ErrUnknownAction = errors.New("unknown action")

// Scene is the parsed description of a window and its buttons.
type Scene struct {
	Window  Window   `yaml:"window"`
	Buttons []Button `yaml:"buttons"`
}

type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Button mirrors ui.ButtonStyle plus geometry and action names. Omitted
// fields take the ui defaults.
type Button struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Color      *[3]uint8 `yaml:"color"`
	HoverScale *float64  `yaml:"hover_scale"`
	Text       string    `yaml:"text"`
	Font       string    `yaml:"font"`
	FontSize   float64   `yaml:"font_size"`

	LeftClick   string `yaml:"left_click"`
	MiddleClick string `yaml:"middle_click"`
	RightClick  string `yaml:"right_click"`
}

// Default returns the built-in scene.
func Default() (*Scene, error) {
	return Parse(defaultScene)
}

// Load reads a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scene.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scene) validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", s.Window.Width, s.Window.Height)
	}
	for i, b := range s.Buttons {
		if b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("button %d: size %dx%d must be positive", i, b.Width, b.Height)
		}
		if b.FontSize < 0 {
			return fmt.Errorf("button %d: negative font size %v", i, b.FontSize)
		}
	}
	return nil
}

// Style returns the button's ui style.
func (b Button) Style() ui.ButtonStyle {
	style := ui.DefaultButtonStyle()
	if b.Color != nil {
		style.Color = ui.Static(ui.RGB{R: b.Color[0], G: b.Color[1], B: b.Color[2]})
	}
	if b.HoverScale != nil {
		style.HoverScale = *b.HoverScale
	}
	style.Text = ui.Static(b.Text)
	if b.Font != "" {
		style.Font = b.Font
	}
	if b.FontSize > 0 {
		style.FontSize = b.FontSize
	}
	return style
}

// Actions maps action names used in a scene to handlers. The empty name and
// "none" always mean no handler.
type Actions map[string]func()

func (a Actions) lookup(name string) (func(), error) {
	if name == "" || name == "none" {
		return nil, nil
	}
	fn, ok := a[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownAction, name)
	}
	return fn, nil
}

// Build creates the scene's buttons and adds them to c.
func (s *Scene) Build(c *ui.Controller, raster ui.Rasterizer, actions Actions) error {
	for i, b := range s.Buttons {
		var h ui.Handlers
		var err error
		if h.Left, err = actions.lookup(b.LeftClick); err != nil {
			return fmt.Errorf("button %d: left_click: %w", i, err)
		}
		if h.Middle, err = actions.lookup(b.MiddleClick); err != nil {
			return fmt.Errorf("button %d: middle_click: %w", i, err)
		}
		if h.Right, err = actions.lookup(b.RightClick); err != nil {
			return fmt.Errorf("button %d: right_click: %w", i, err)
		}

		btn, err := ui.NewButton(b.X, b.Y, b.Width, b.Height, b.Style(), h, raster)
		if err != nil {
			return fmt.Errorf("button %d: %w", i, err)
		}
		c.Add(btn)
	}
	return nil
}
