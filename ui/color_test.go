package ui

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBScale(t *testing.T) {
	tests := []struct {
		name  string
		in    RGB
		scale float64
		want  RGB
	}{
		{name: "identity", in: RGB{150, 0, 25}, scale: 1, want: RGB{150, 0, 25}},
		{name: "darken", in: RGB{150, 0, 25}, scale: 0.5, want: RGB{75, 0, 12}},
		{name: "brighten clamps high", in: RGB{200, 100, 1}, scale: 1.5, want: RGB{255, 150, 1}},
		{name: "negative clamps low", in: RGB{200, 100, 1}, scale: -3, want: RGB{0, 0, 0}},
		{name: "zero", in: White, scale: 0, want: RGB{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Scale(tt.scale))
		})
	}
}

func TestRGBScaleMatchesClampFormula(t *testing.T) {
	for _, s := range []float64{-1, 0, 0.25, 0.5, 0.99, 1, 1.7, 4} {
		for c := 0; c <= 255; c += 15 {
			v := float64(c) * s
			want := uint8(max(0, min(255, v)))
			got := RGB{R: uint8(c)}.Scale(s).R
			assert.Equal(t, want, got, "c=%d s=%v", c, s)
		}
	}
}

func TestRGBIsOpaque(t *testing.T) {
	got := color.RGBAModel.Convert(RGB{1, 2, 3}).(color.RGBA)
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, got)
}

func TestSource(t *testing.T) {
	assert.Equal(t, "base", Static("base").Resolve())
	assert.False(t, Static(1).isDynamic())

	s := Dynamic("base", func() (string, error) { return "live", nil })
	assert.True(t, s.isDynamic())
	assert.Equal(t, "live", s.Resolve())
	assert.Equal(t, "base", s.Default())

	failing := Dynamic("base", func() (string, error) { return "", errors.New("gone") })
	assert.Equal(t, "base", failing.Resolve())

	assert.False(t, Func("x", nil).isDynamic())
	assert.Equal(t, "y", Func("x", func() string { return "y" }).Resolve())

	var zero Source[RGB]
	assert.Equal(t, RGB{}, zero.Resolve())

	assert.Equal(t, "new", s.WithDefault("new").Default())
	assert.Equal(t, "live", s.WithDefault("new").Resolve())
}
