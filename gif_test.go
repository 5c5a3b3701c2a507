package anigif

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grayPalette(n int) color.Palette {
	p := make(color.Palette, n)
	for i := range p {
		c := uint8(i * 255 / (n - 1))
		p[i] = color.RGBA{c, c, c, 0xff}
	}
	return p
}

var blackAndWhite = color.Palette{
	color.RGBA{0x00, 0x00, 0x00, 0xff},
	color.RGBA{0xff, 0xff, 0xff, 0xff},
}

func TestNew(t *testing.T) {
	tables := []struct {
		name          string
		width, height int
		palette       color.Palette
		err           error
	}{
		{"valid", 2, 2, blackAndWhite, nil},
		{"zero width", 0, 2, blackAndWhite, ErrDimensions},
		{"negative height", 2, -1, blackAndWhite, ErrDimensions},
		{"empty palette", 2, 2, color.Palette{}, ErrPalette},
		{"oversized palette", 2, 2, grayPalette(257), ErrPalette},
		{"full palette", 2, 2, grayPalette(256), nil},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			g, err := New(table.width, table.height, table.palette, 0)
			if table.err != nil {
				assert.True(t, errors.Is(err, table.err), "got %v, want %v", err, table.err)
				assert.Nil(t, g)
			} else {
				require.NoError(t, err)
				require.NotNil(t, g)
			}
		})
	}
}

func TestAddFrame(t *testing.T) {
	tables := []struct {
		name   string
		pixels []byte
		delay  int
		err    error
	}{
		{"valid", []byte{0, 1, 0, 1}, 10, nil},
		{"zero delay", []byte{0, 0, 0, 0}, 0, nil},
		{"short pixels", []byte{0, 1}, 10, ErrDimensions},
		{"long pixels", []byte{0, 1, 0, 1, 0}, 10, ErrDimensions},
		{"negative delay", []byte{0, 1, 0, 1}, -1, ErrDelay},
		{"bad index", []byte{0, 1, 2, 1}, 10, ErrIndex},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			g, err := New(2, 2, blackAndWhite, 0)
			require.NoError(t, err)

			err = g.AddFrame(table.pixels, table.delay)
			if table.err != nil {
				assert.True(t, errors.Is(err, table.err), "got %v, want %v", err, table.err)
				// A rejected frame must leave the document untouched.
				assert.Len(t, g.frames, 0)
			} else {
				require.NoError(t, err)
				require.Len(t, g.frames, 1)
			}
		})
	}
}

func TestAddFrameCopiesPixels(t *testing.T) {
	g, err := New(2, 2, blackAndWhite, 0)
	require.NoError(t, err)

	pixels := []byte{0, 1, 0, 1}
	require.NoError(t, g.AddFrame(pixels, 10))
	pixels[0] = 1

	assert.Equal(t, []byte{0, 1, 0, 1}, g.frames[0].pixels)
}

func TestMinCodeSize(t *testing.T) {
	tables := []struct {
		colors, minCodeSize int
	}{
		{2, 2},
		{3, 2},
		{4, 2},
		{5, 3},
		{16, 4},
		{17, 5},
		{200, 8},
		{256, 8},
	}

	for _, table := range tables {
		g, err := New(1, 1, grayPalette(table.colors), 0)
		require.NoError(t, err)
		assert.Equal(t, table.minCodeSize, g.minCodeSize(), "%d colors", table.colors)
	}
}
