package anigif

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, c color.Color) image.Image {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, c)
		}
	}
	return m
}

func TestFromImages(t *testing.T) {
	images := []image.Image{
		solidImage(8, 8, color.NRGBA{0xff, 0x00, 0x00, 0xff}),
		solidImage(8, 8, color.NRGBA{0xff, 0x00, 0x00, 0xff}),
	}

	g, err := FromImages(images, 5, 0)
	require.NoError(t, err)

	assert.Equal(t, 8, g.width)
	assert.Equal(t, 8, g.height)
	require.Len(t, g.frames, 2)
	assert.Equal(t, 5, g.frames[0].delay)
	assert.True(t, len(g.palette) <= maxPaletteSize)

	// The quantized palette of a solid image holds the one color.
	r, _, _, _ := g.palette[g.frames[0].pixels[0]].RGBA()
	assert.Equal(t, uint32(0xffff), r)

	b, err := g.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte(headerSignature), b[:6])
	assert.Equal(t, byte(trailer), b[len(b)-1])
}

func TestFromImagesPaletted(t *testing.T) {
	pm := image.NewPaletted(image.Rect(0, 0, 4, 4), blackAndWhite)
	for i := range pm.Pix {
		pm.Pix[i] = byte(i % 2)
	}

	g, err := FromImages([]image.Image{pm}, 10, 0)
	require.NoError(t, err)

	// An already paletted image keeps its palette and indices.
	assert.Equal(t, blackAndWhite, g.palette)
	require.Len(t, g.frames, 1)
	assert.Equal(t, pm.Pix, g.frames[0].pixels)
}

func TestFromImagesSizeMismatch(t *testing.T) {
	images := []image.Image{
		solidImage(8, 8, color.NRGBA{A: 0xff}),
		solidImage(8, 4, color.NRGBA{A: 0xff}),
	}

	_, err := FromImages(images, 5, 0)
	assert.True(t, errors.Is(err, ErrDimensions), "got %v", err)
}

func TestFromImagesEmpty(t *testing.T) {
	_, err := FromImages(nil, 5, 0)
	assert.Equal(t, ErrNoFrames, err)
}
