package ui

import "image"

// Mouse button indices used by InputState queries and Element handlers.
const (
	MouseLeft = iota
	MouseMiddle
	MouseRight

	mouseButtonCount
)

// Buttons is one pressed flag per tracked mouse button.
type Buttons [mouseButtonCount]bool

// OffScreen is the pointer position before the first sample is stored.
var OffScreen = image.Pt(-1, -1)

// InputState holds the current and previous frame's mouse sample for a
// single element.
type InputState struct {
	Position image.Point

	pressedNew Buttons
	pressedOld Buttons
}

// NewInputState returns an InputState with the pointer off screen and
// nothing pressed.
func NewInputState() InputState {
	return InputState{Position: OffScreen}
}

// Store shifts the current sample into the previous one and records the new
// sample. It must be called exactly once per frame, before any query.
func (s *InputState) Store(pos image.Point, pressed Buttons) {
	s.pressedOld = s.pressedNew
	s.pressedNew = pressed
	s.Position = pos
}

// Clicked reports a rising edge on button i.
func (s *InputState) Clicked(i int) bool {
	if !validButton(i) {
		return false
	}
	return s.pressedNew[i] && !s.pressedOld[i]
}

// Held reports that button i was down in both samples.
func (s *InputState) Held(i int) bool {
	if !validButton(i) {
		return false
	}
	return s.pressedNew[i] && s.pressedOld[i]
}

// Released reports a falling edge on button i.
func (s *InputState) Released(i int) bool {
	if !validButton(i) {
		return false
	}
	return !s.pressedNew[i] && s.pressedOld[i]
}

func validButton(i int) bool {
	return i >= 0 && i < mouseButtonCount
}
