package anigif

import (
	"errors"
	"fmt"
	"image/color"
	"math/bits"
)

var (
	// ErrDimensions is returned for non-positive canvas dimensions or a
	// frame whose pixel count does not match the canvas.
	ErrDimensions = errors.New("anigif: invalid dimensions")

	// ErrPalette is returned for an empty palette or one with more than
	// 256 entries.
	ErrPalette = errors.New("anigif: invalid palette")

	// ErrIndex is returned when a pixel refers to a color beyond the end
	// of the palette.
	ErrIndex = errors.New("anigif: palette index out of range")

	// ErrDelay is returned for a negative frame delay.
	ErrDelay = errors.New("anigif: negative delay")

	// ErrNoFrames is returned when encoding a document without frames.
	ErrNoFrames = errors.New("anigif: no frames")
)

type frame struct {
	pixels []byte
	delay  int
}

// GIF is an animated image under construction. The canvas size and palette
// are fixed at creation; frames are appended with AddFrame and written out
// in that order.
type GIF struct {
	width, height int
	palette       color.Palette
	loop          int
	frames        []frame
}

// New returns an empty document with the given canvas size, shared palette
// and loop count. A negative loop count means loop forever. The palette
// must hold between 1 and 256 colors.
func New(width, height int, palette color.Palette, loop int) (*GIF, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	if len(palette) == 0 || len(palette) > maxPaletteSize {
		return nil, fmt.Errorf("%w: %d colors", ErrPalette, len(palette))
	}
	return &GIF{
		width:   width,
		height:  height,
		palette: palette,
		loop:    loop,
	}, nil
}

// AddFrame appends a frame given as a flat row-major sequence of palette
// indices, with a delay in hundredths of a second. The pixel data is
// copied; on error the document is left unchanged.
func (g *GIF) AddFrame(pixels []byte, delay int) error {
	if len(pixels) != g.width*g.height {
		return fmt.Errorf("%w: got %d pixels, want %d", ErrDimensions, len(pixels), g.width*g.height)
	}
	if delay < 0 {
		return fmt.Errorf("%w: %d", ErrDelay, delay)
	}
	for i, p := range pixels {
		if int(p) >= len(g.palette) {
			return fmt.Errorf("%w: index %d at pixel %d, palette has %d colors", ErrIndex, p, i, len(g.palette))
		}
	}
	g.frames = append(g.frames, frame{
		pixels: append([]byte(nil), pixels...),
		delay:  delay,
	})
	return nil
}

// minCodeSize returns the initial LZW code width for the palette; at least
// two bits even for tiny palettes, per the GIF specification.
func (g *GIF) minCodeSize() int {
	if n := bits.Len(uint(len(g.palette) - 1)); n > 2 {
		return n
	}
	return 2
}
