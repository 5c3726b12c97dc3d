package ui

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputStateEdges(t *testing.T) {
	tests := []struct {
		name         string
		prev, cur    bool
		wantClicked  bool
		wantHeld     bool
		wantReleased bool
	}{
		{name: "idle", prev: false, cur: false},
		{name: "rising edge", prev: false, cur: true, wantClicked: true},
		{name: "sustained", prev: true, cur: true, wantHeld: true},
		{name: "falling edge", prev: true, cur: false, wantReleased: true},
	}

	for _, tt := range tests {
		for i := MouseLeft; i <= MouseRight; i++ {
			t.Run(tt.name, func(t *testing.T) {
				s := NewInputState()
				var prev, cur Buttons
				prev[i] = tt.prev
				cur[i] = tt.cur
				s.Store(image.Pt(1, 1), prev)
				s.Store(image.Pt(2, 2), cur)

				assert.Equal(t, tt.wantClicked, s.Clicked(i))
				assert.Equal(t, tt.wantHeld, s.Held(i))
				assert.Equal(t, tt.wantReleased, s.Released(i))
			})
		}
	}
}

func TestInputStateSequence(t *testing.T) {
	samples := []bool{false, true, true, false, true, false, false, true}

	s := NewInputState()
	prev := false
	for frame, pressed := range samples {
		s.Store(image.Pt(frame, frame), Buttons{MouseRight: pressed})

		assert.Equal(t, pressed && !prev, s.Clicked(MouseRight), "frame %d", frame)
		assert.Equal(t, pressed && prev, s.Held(MouseRight), "frame %d", frame)
		assert.Equal(t, !pressed && prev, s.Released(MouseRight), "frame %d", frame)

		n := 0
		for _, b := range []bool{s.Clicked(MouseRight), s.Held(MouseRight), s.Released(MouseRight)} {
			if b {
				n++
			}
		}
		assert.LessOrEqual(t, n, 1, "frame %d", frame)
		assert.False(t, s.Clicked(MouseLeft) || s.Held(MouseLeft) || s.Released(MouseLeft))
		prev = pressed
	}
}

func TestInputStateBeforeStore(t *testing.T) {
	s := NewInputState()
	assert.Equal(t, OffScreen, s.Position)
	for i := MouseLeft; i <= MouseRight; i++ {
		assert.False(t, s.Clicked(i))
		assert.False(t, s.Held(i))
		assert.False(t, s.Released(i))
	}
}

func TestInputStateOutOfRange(t *testing.T) {
	s := NewInputState()
	s.Store(image.Pt(0, 0), press(MouseLeft, MouseMiddle, MouseRight))
	assert.False(t, s.Clicked(-1))
	assert.False(t, s.Clicked(3))
	assert.False(t, s.Held(7))
	assert.False(t, s.Released(-2))
}

func TestElementDefaults(t *testing.T) {
	e := NewElement(10, 20, Handlers{})
	e.StoreInput(image.Pt(10, 20), press(MouseLeft))

	assert.Equal(t, image.Pt(10, 20), e.Position())
	assert.False(t, e.CollidesWithPointer())
	assert.True(t, e.MouseClicked(MouseLeft))
	assert.NoError(t, e.Draw(&fakeCanvas{}, true))
	assert.NotPanics(t, func() {
		e.ProcessInput()
		e.Click(MouseLeft)
		e.Click(MouseMiddle)
		e.Click(MouseRight)
	})
}
