package anigif

import (
	"bytes"
	"encoding/binary"
	"io"
	"io/ioutil"

	"github.com/bodgit/anigif/lzw"
)

type encoder struct {
	w io.Writer
}

func (e *encoder) writeByte(b byte) error {
	_, err := e.w.Write([]byte{b})
	return err
}

func (e *encoder) writeUint16(v int) error {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], uint16(v))
	_, err := e.w.Write(tmp[:])
	return err
}

func (e *encoder) writeHeader(g *GIF) error {
	if _, err := io.WriteString(e.w, headerSignature); err != nil {
		return err
	}
	if err := e.writeUint16(g.width); err != nil {
		return err
	}
	if err := e.writeUint16(g.height); err != nil {
		return err
	}

	// Global color table length is the smallest power of two that holds
	// the palette, with a minimum of two entries.
	pow := 1
	for 1<<pow < len(g.palette) {
		pow++
	}

	// Table present, 8-bit color resolution, unsorted, log2(length)-1.
	if _, err := e.w.Write([]byte{0xf0 | byte(pow-1), 0x00, 0x00}); err != nil {
		return err
	}

	table := make([]byte, 1<<pow*3)
	for i, c := range g.palette {
		r, gr, b, _ := c.RGBA()
		table[i*3+0] = byte(r >> 8)
		table[i*3+1] = byte(gr >> 8)
		table[i*3+2] = byte(b >> 8)
	}
	_, err := e.w.Write(table)
	return err
}

// writeLoop emits the NETSCAPE2.0 application extension. A negative loop
// count is clamped to zero, meaning loop forever; counts beyond the 16-bit
// repeat field are clamped to 65535.
func (e *encoder) writeLoop(loop int) error {
	if loop < 0 {
		loop = 0
	}
	if loop > maxLoopCount {
		loop = maxLoopCount
	}

	if _, err := e.w.Write([]byte{extensionIntroducer, applicationLabel, 0x0b}); err != nil {
		return err
	}
	if _, err := io.WriteString(e.w, netscapeAppID); err != nil {
		return err
	}
	if _, err := e.w.Write([]byte{0x03, 0x01}); err != nil {
		return err
	}
	if err := e.writeUint16(loop); err != nil {
		return err
	}
	return e.writeByte(0x00)
}

func (e *encoder) writeFrame(g *GIF, f frame) error {
	delay := f.delay
	if delay > maxDelay {
		delay = maxDelay
	}

	// Graphic control extension; no disposal method, no transparency.
	if _, err := e.w.Write([]byte{extensionIntroducer, graphicControlLabel, 0x04, 0x00}); err != nil {
		return err
	}
	if err := e.writeUint16(delay); err != nil {
		return err
	}
	if _, err := e.w.Write([]byte{0x00, 0x00}); err != nil {
		return err
	}

	// Image descriptor; frames always cover the whole canvas and carry no
	// local color table.
	if err := e.writeByte(imageSeparator); err != nil {
		return err
	}
	for _, v := range [4]int{0, 0, g.width, g.height} {
		if err := e.writeUint16(v); err != nil {
			return err
		}
	}
	if err := e.writeByte(0x00); err != nil {
		return err
	}

	// Image data; minimum code size then the compressed stream split into
	// length-prefixed sub-blocks, terminated by an empty block.
	if err := e.writeByte(byte(g.minCodeSize())); err != nil {
		return err
	}
	data := lzw.Compress(f.pixels, g.minCodeSize())
	for len(data) > 0 {
		n := len(data)
		if n > maxBlockSize {
			n = maxBlockSize
		}
		if err := e.writeByte(byte(n)); err != nil {
			return err
		}
		if _, err := e.w.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return e.writeByte(0x00)
}

// Encode writes the document g to w as an animated GIF. At least one frame
// must have been added.
func Encode(w io.Writer, g *GIF) error {
	if len(g.frames) == 0 {
		return ErrNoFrames
	}

	e := &encoder{w: w}

	if err := e.writeHeader(g); err != nil {
		return err
	}
	if err := e.writeLoop(g.loop); err != nil {
		return err
	}
	for _, f := range g.frames {
		if err := e.writeFrame(g, f); err != nil {
			return err
		}
	}
	return e.writeByte(trailer)
}

// Bytes returns the document encoded as a complete GIF byte stream.
func (g *GIF) Bytes() ([]byte, error) {
	var b bytes.Buffer
	if err := Encode(&b, g); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// SaveFile encodes the document and writes it to path in one operation.
func (g *GIF) SaveFile(path string) error {
	b, err := g.Bytes()
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, b, 0644)
}
