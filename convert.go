package anigif

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
)

// FromImages builds a document from a sequence of equally sized images,
// reducing them to a single shared palette. If the first image is already
// paletted with no more than 256 colors its palette is used as-is;
// otherwise a palette is derived from it by median-cut quantization and
// every frame is mapped through it. Each frame uses the same delay in
// hundredths of a second.
func FromImages(images []image.Image, delay, loop int) (*GIF, error) {
	if len(images) == 0 {
		return nil, ErrNoFrames
	}

	b := images[0].Bounds()

	var p color.Palette
	if pm, ok := images[0].(*image.Paletted); ok && len(pm.Palette) <= maxPaletteSize {
		p = pm.Palette
	} else {
		q := quantize.MedianCutQuantizer{}
		p = q.Quantize(make(color.Palette, 0, maxPaletteSize), images[0])
	}

	g, err := New(b.Dx(), b.Dy(), p, loop)
	if err != nil {
		return nil, err
	}

	for i, m := range images {
		if m.Bounds().Dx() != b.Dx() || m.Bounds().Dy() != b.Dy() {
			return nil, fmt.Errorf("%w: image %d is %dx%d, want %dx%d", ErrDimensions,
				i, m.Bounds().Dx(), m.Bounds().Dy(), b.Dx(), b.Dy())
		}

		pm := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), p)
		draw.Draw(pm, pm.Rect, m, m.Bounds().Min, draw.Src)

		if err := g.AddFrame(pm.Pix, delay); err != nil {
			return nil, err
		}
	}

	return g, nil
}
