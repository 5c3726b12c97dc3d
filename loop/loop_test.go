package loop

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpticalFlyer/widgets/ui"
)

type step struct {
	pos     image.Point
	pressed ui.Buttons
	events  []Event
}

type fakeBackend struct {
	steps   []step
	frame   int
	log     []string
	fills   []color.Color
	present error
}

func (b *fakeBackend) current() step {
	if b.frame < len(b.steps) {
		return b.steps[b.frame]
	}
	return step{pos: ui.OffScreen, events: []Event{{Kind: Quit}}}
}

func (b *fakeBackend) PollEvents() []Event {
	b.log = append(b.log, "poll")
	return b.current().events
}

func (b *fakeBackend) PointerPosition() image.Point { return b.current().pos }
func (b *fakeBackend) ButtonState() ui.Buttons      { return b.current().pressed }
func (b *fakeBackend) Canvas() ui.Canvas            { return b }

func (b *fakeBackend) Present() error {
	b.log = append(b.log, "present")
	b.frame++
	return b.present
}

func (b *fakeBackend) FillRect(_ ui.Rectangle, clr color.Color) {
	b.log = append(b.log, "fill")
	b.fills = append(b.fills, clr)
}
func (b *fakeBackend) Blit(ui.Glyphs, image.Point)         {}
func (b *fakeBackend) DrawImage(image.Image, ui.Rectangle) {}

type glyphs string

func (g glyphs) Text() string      { return string(g) }
func (g glyphs) Size() image.Point { return image.Pt(len(g), 1) }

type raster struct{}

func (raster) RenderText(_ string, _ float64, text string, _ color.Color) (ui.Glyphs, error) {
	return glyphs(text), nil
}

func sampleScene(t *testing.T, onLeft func(*Loop)) *Loop {
	t.Helper()
	c := ui.NewController()
	l := New(c)

	style := ui.DefaultButtonStyle()
	style.Color = ui.Static(ui.RGB{R: 150, G: 0, B: 25})
	style.HoverScale = 0.5
	b, err := ui.NewButton(250, 250, 50, 50, style, ui.Handlers{
		Left: func() { onLeft(l) },
	}, raster{})
	require.NoError(t, err)
	c.Add(b)
	return l
}

func TestStopFromClickStillDrawsFrame(t *testing.T) {
	l := sampleScene(t, func(l *Loop) { l.Toggle() })
	backend := &fakeBackend{steps: []step{
		{pos: image.Pt(10, 10)},
		{pos: image.Pt(260, 260), pressed: ui.Buttons{ui.MouseLeft: true}},
		{pos: image.Pt(10, 10)},
	}}

	require.NoError(t, l.Run(backend))

	assert.Equal(t, Stopped, l.State())
	assert.Equal(t, "toggled", l.Reason())
	assert.Equal(t, 2, l.Frames())
	assert.Equal(t, 2, backend.frame)
	assert.Equal(t, []string{
		"poll", "fill", "present",
		"poll", "fill", "present",
	}, backend.log)
	assert.Equal(t, []color.Color{ui.RGB{R: 150, G: 0, B: 25}, ui.RGB{R: 75, G: 0, B: 12}}, backend.fills)
}

func TestQuitEventStopsAfterFrame(t *testing.T) {
	l := sampleScene(t, func(*Loop) {})
	backend := &fakeBackend{steps: []step{
		{pos: image.Pt(10, 10)},
		{pos: image.Pt(10, 10), events: []Event{{Kind: Other}, {Kind: Quit}}},
	}}

	require.NoError(t, l.Run(backend))

	assert.Equal(t, "quit requested", l.Reason())
	assert.Equal(t, 2, backend.frame)
	assert.Equal(t, "stopped", l.State().String())
}

func TestQuitWinsOverToggleClick(t *testing.T) {
	l := sampleScene(t, func(l *Loop) { l.Toggle() })
	backend := &fakeBackend{steps: []step{
		{pos: image.Pt(260, 260)},
		{
			pos:     image.Pt(260, 260),
			pressed: ui.Buttons{ui.MouseLeft: true},
			events:  []Event{{Kind: Quit}},
		},
		{pos: image.Pt(260, 260)},
	}}

	require.NoError(t, l.Run(backend))

	assert.Equal(t, Stopped, l.State())
	assert.Equal(t, "quit requested", l.Reason())
	assert.Equal(t, 2, l.Frames())
	assert.Equal(t, 2, backend.frame)
}

func TestExposeEventForcesRepaint(t *testing.T) {
	l := sampleScene(t, func(*Loop) {})
	backend := &fakeBackend{steps: []step{
		{pos: image.Pt(10, 10)},
		{pos: image.Pt(10, 10)},
		{pos: image.Pt(10, 10), events: []Event{{Kind: Expose}}},
	}}

	require.NoError(t, l.Run(backend))
	assert.Len(t, backend.fills, 2)
}

func TestPresentErrorStopsRun(t *testing.T) {
	l := sampleScene(t, func(*Loop) {})
	backend := &fakeBackend{
		steps:   []step{{pos: image.Pt(10, 10)}},
		present: errors.New("terminal gone"),
	}

	err := l.Run(backend)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal gone")
	assert.True(t, l.Running())
}

func TestToggle(t *testing.T) {
	l := New(ui.NewController())
	assert.True(t, l.Running())

	l.Toggle()
	assert.Equal(t, Stopped, l.State())
	l.Stop("again")
	assert.Equal(t, "toggled", l.Reason())

	l.Toggle()
	assert.Equal(t, Stopped, l.State())
	assert.Equal(t, "toggled", l.Reason())
	assert.Equal(t, "State(7)", State(7).String())
}
