/*
Package anigif implements a minimal animated GIF encoder for indexed-color
frames that share a single global palette.

The file is written as a GIF89a stream; a 6 byte signature and 7 byte
logical screen descriptor, followed by a global color table holding the
palette padded with black to the next power of two, a single NETSCAPE2.0
application extension carrying the loop count, then one block per frame
consisting of a graphic control extension, an image descriptor and the
LZW-compressed pixel indices split into sub-blocks of at most 255 bytes,
and finally a one byte trailer. All multi-byte integers are little-endian.

Frames are full-canvas with no local color table, no transparency and no
interlacing; the delay between frames is expressed in hundredths of a
second. Palette quantization is left to the caller, although FromImages
can derive a shared palette from ordinary images.
*/
package anigif

const (
	headerSignature = "GIF89a"
	netscapeAppID   = "NETSCAPE2.0"

	extensionIntroducer = 0x21
	graphicControlLabel = 0xf9
	applicationLabel    = 0xff
	imageSeparator      = 0x2c
	trailer             = 0x3b

	maxPaletteSize = 256
	maxBlockSize   = 255
	maxLoopCount   = 0xffff
	maxDelay       = 0xffff
)
