/*
Package lzw implements the variable-width LZW compression used for GIF
image data.

Compression runs in two stages. Encode turns a sequence of palette indices
into integer codes under an adaptive dictionary that is cleared whenever it
fills its 4096 entries. Pack then serializes those codes least-significant
bit first, growing the code width from minCodeSize+1 up to 12 bits as the
dictionary fills. The packer never sees the dictionary; the width at any
point is a function of how many codes have been emitted since the last
clear code, so it replays the same growth rule from the code stream alone.
*/
package lzw

const (
	maxWidth  = 12
	tableSize = 1 << maxWidth
)

// codeWidth returns the bit-width used to emit the next code, given the
// next free dictionary slot. Both Encode and Pack derive their width from
// this one rule so the two stages cannot drift apart.
func codeWidth(minCodeSize, nextCode int) int {
	w := minCodeSize + 1
	for w < maxWidth && nextCode >= 1<<w {
		w++
	}
	return w
}

// Encode compresses a flat sequence of palette indices into LZW codes.
// minCodeSize is the initial code width minus one; indices must be below
// 1<<minCodeSize. The output starts with a clear code and ends with the
// end-of-information code, with a further clear code emitted every time
// the dictionary fills.
func Encode(pixels []byte, minCodeSize int) []uint16 {
	clear := uint16(1) << minCodeSize
	end := clear + 1

	// Dictionary keyed by (prefix code, next index); single-index strings
	// are their own codes and need no entries.
	dict := make(map[uint32]uint16)
	nextCode := int(end) + 1

	codes := make([]uint16, 0, len(pixels)/2+3)
	codes = append(codes, clear)

	w := -1 // code of the longest matched prefix, -1 when empty
	for _, k := range pixels {
		if w < 0 {
			w = int(k)
			continue
		}
		key := uint32(w)<<8 | uint32(k)
		if code, ok := dict[key]; ok {
			w = int(code)
			continue
		}

		codes = append(codes, uint16(w))
		dict[key] = uint16(nextCode)
		nextCode++
		w = int(k)

		if nextCode >= tableSize {
			codes = append(codes, clear)
			dict = make(map[uint32]uint16)
			nextCode = int(end) + 1
			w = -1
		}
	}
	if w >= 0 {
		codes = append(codes, uint16(w))
	}
	codes = append(codes, end)

	return codes
}

// Pack serializes LZW codes into bytes, least-significant bit first. The
// code width starts at minCodeSize+1 and is recovered from the stream
// itself: every code other than the clear and end codes accounts for one
// dictionary insertion, and a clear code rewinds the width. Any trailing
// bits are flushed as a final zero-padded byte.
func Pack(codes []uint16, minCodeSize int) []byte {
	clear := uint16(1) << minCodeSize
	end := clear + 1

	nextCode := int(end) + 1

	out := make([]byte, 0, len(codes)*3/2)
	var accum uint32
	var n int

	for _, code := range codes {
		accum |= uint32(code) << n
		n += codeWidth(minCodeSize, nextCode)
		for n >= 8 {
			out = append(out, byte(accum))
			accum >>= 8
			n -= 8
		}

		switch {
		case code == clear:
			nextCode = int(end) + 1
		case code != end:
			nextCode++
		}
	}
	if n > 0 {
		out = append(out, byte(accum))
	}

	return out
}

// Compress is the composition of Encode and Pack.
func Compress(pixels []byte, minCodeSize int) []byte {
	return Pack(Encode(pixels, minCodeSize), minCodeSize)
}
