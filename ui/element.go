package ui

import "image"

// Handlers are the optional click callbacks of an Element. A nil handler
// makes a click on that button a no-op.
type Handlers struct {
	Left   func()
	Middle func()
	Right  func()
}

// Element is the base of every widget: a fixed anchor, its own input state
// and the click handlers. On its own it occupies no area.
type Element struct {
	position image.Point
	input    InputState
	handlers Handlers
}

// NewElement creates an Element anchored at (x, y).
func NewElement(x, y int, handlers Handlers) Element {
	return Element{
		position: image.Pt(x, y),
		input:    NewInputState(),
		handlers: handlers,
	}
}

// Position returns the anchor the element was created with.
func (e *Element) Position() image.Point {
	return e.position
}

// Pointer returns the last stored pointer position.
func (e *Element) Pointer() image.Point {
	return e.input.Position
}

func (e *Element) StoreInput(pos image.Point, pressed Buttons) {
	e.input.Store(pos, pressed)
}

func (e *Element) CollidesWithPointer() bool {
	return false
}

func (e *Element) ProcessInput() {}

func (e *Element) Draw(Canvas, bool) error {
	return nil
}

func (e *Element) Bounds() Rectangle {
	return Rectangle{X: e.position.X, Y: e.position.Y}
}

func (e *Element) MouseClicked(i int) bool  { return e.input.Clicked(i) }
func (e *Element) MouseHeld(i int) bool     { return e.input.Held(i) }
func (e *Element) MouseReleased(i int) bool { return e.input.Released(i) }

// Click invokes the handler bound to button i, if any.
func (e *Element) Click(i int) {
	var h func()
	switch i {
	case MouseLeft:
		h = e.handlers.Left
	case MouseMiddle:
		h = e.handlers.Middle
	case MouseRight:
		h = e.handlers.Right
	}
	if h != nil {
		h()
	}
}

// dispatchClicks fires at most one handler for this frame, left before
// middle before right.
func (e *Element) dispatchClicks() {
	if e.MouseClicked(MouseLeft) {
		e.Click(MouseLeft)
	} else if e.MouseClicked(MouseMiddle) {
		e.Click(MouseMiddle)
	} else if e.MouseClicked(MouseRight) {
		e.Click(MouseRight)
	}
}
