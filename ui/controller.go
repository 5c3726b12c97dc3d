package ui

import "image"

// Controller manages all widgets of a scene
type Controller struct {
	widgets    []Widget
	invalidate bool
}

// NewController creates a new UI controller
func NewController() *Controller {
	return &Controller{
		widgets:    make([]Widget, 0),
		invalidate: true,
	}
}

// Add appends a widget. Widgets are fed input and drawn in insertion order.
func (c *Controller) Add(w Widget) {
	c.widgets = append(c.widgets, w)
	c.invalidate = true
}

// Widgets returns the managed widgets.
func (c *Controller) Widgets() []Widget {
	return c.widgets
}

// StoreInput records this frame's pointer sample in every widget
func (c *Controller) StoreInput(pos image.Point, pressed Buttons) {
	for _, w := range c.widgets {
		w.StoreInput(pos, pressed)
	}
}

// ProcessInput lets every widget react to the stored sample
func (c *Controller) ProcessInput() {
	for _, w := range c.widgets {
		w.ProcessInput()
	}
}

// Draw draws all widgets. After Invalidate, every widget repaints once.
func (c *Controller) Draw(dst Canvas) error {
	force := c.invalidate
	c.invalidate = false
	for _, w := range c.widgets {
		if err := w.Draw(dst, force); err != nil {
			return err
		}
	}
	return nil
}

// Invalidate forces a full repaint on the next Draw.
func (c *Controller) Invalidate() {
	c.invalidate = true
}

// IsPointerOverUI returns true if any widget is under the last stored pointer
func (c *Controller) IsPointerOverUI() bool {
	for _, w := range c.widgets {
		if w.CollidesWithPointer() {
			return true
		}
	}
	return false
}
