// Package loop drives a set of widgets one frame at a time.
//
// Every frame runs in a fixed order: drain pending events, store the pointer
// sample in every widget, let every widget process its input, draw every
// widget, present. A stop requested from a click handler takes effect at the
// top of the next frame, so the frame that requested it is still drawn.
package loop

import (
	"fmt"
	"image"

	"github.com/OpticalFlyer/widgets/ui"
)

// State of the loop.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// EventKind tags the events a backend reports.
type EventKind int

const (
	Other EventKind = iota
	Quit
	// Expose means the surface lost its contents and every widget must repaint.
	Expose
)

// Event is a window or terminal event.
type Event struct {
	Kind EventKind
}

// EventSource is the non-blocking input side of a backend.
type EventSource interface {
	PollEvents() []Event
	PointerPosition() image.Point
	ButtonState() ui.Buttons
}

// Backend is everything Run needs from a window system.
type Backend interface {
	EventSource
	Canvas() ui.Canvas
	Present() error
}

// Loop owns the widgets and the run state.
type Loop struct {
	ui     *ui.Controller
	state  State
	reason string
	frames int
}

// New creates a running loop over the controller's widgets.
func New(controller *ui.Controller) *Loop {
	return &Loop{
		ui:    controller,
		state: Running,
	}
}

// Controller returns the widgets the loop drives.
func (l *Loop) Controller() *ui.Controller {
	return l.ui
}

func (l *Loop) State() State {
	return l.state
}

// Running reports whether another frame should start.
func (l *Loop) Running() bool {
	return l.state == Running
}

// Reason describes why the loop stopped.
func (l *Loop) Reason() string {
	return l.reason
}

// Frames returns the number of frames that finished their update step.
func (l *Loop) Frames() int {
	return l.frames
}

// Stop moves the loop to Stopped. Later calls keep the first reason.
func (l *Loop) Stop(reason string) {
	if l.state == Stopped {
		return
	}
	l.state = Stopped
	l.reason = reason
}

// Toggle flips the run flag, the way the sample button's handler does. Only
// Running can flip: a stopped loop never resumes, so a toggle click in the
// same frame as a quit request leaves the loop stopped.
func (l *Loop) Toggle() {
	l.Stop("toggled")
}

// Update runs the input half of a frame: events, sampling, processing.
func (l *Loop) Update(src EventSource) {
	for _, ev := range src.PollEvents() {
		switch ev.Kind {
		case Quit:
			l.Stop("quit requested")
		case Expose:
			l.ui.Invalidate()
		}
	}

	pos, pressed := src.PointerPosition(), src.ButtonState()
	l.ui.StoreInput(pos, pressed)
	l.ui.ProcessInput()
	l.frames++
}

// Draw runs the draw step of a frame.
func (l *Loop) Draw(dst ui.Canvas) error {
	if err := l.ui.Draw(dst); err != nil {
		return fmt.Errorf("drawing frame %d: %w", l.frames, err)
	}
	return nil
}

// Run steps frames on b until the loop stops.
func (l *Loop) Run(b Backend) error {
	for l.Running() {
		l.Update(b)
		if err := l.Draw(b.Canvas()); err != nil {
			return err
		}
		if err := b.Present(); err != nil {
			return fmt.Errorf("presenting frame %d: %w", l.frames, err)
		}
	}
	return nil
}
