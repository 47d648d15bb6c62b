package gvariant

import (
	"math"
	"math/bits"
)

// WordWidth returns the smallest width (1, 2, 4 or 8 bytes) able to hold
// every offset into a frame of size bytes followed by extra offset words.
//
// The table's own size depends on the width, so extra is scaled by each
// candidate width before the fits check. Pass extra = 0 when size already
// covers the whole frame, as a reader does.
func WordWidth(size, extra uint64) int {
	switch {
	case fits(size, extra, 1, math.MaxUint8):
		return 1
	case fits(size, extra, 2, math.MaxUint16):
		return 2
	case fits(size, extra, 4, math.MaxUint32):
		return 4
	}
	return 8
}

// fits reports size + extra*width <= limit without overflowing.
func fits(size, extra, width, limit uint64) bool {
	hi, scaled := bits.Mul64(extra, width)
	if hi != 0 {
		return false
	}
	sum, carry := bits.Add64(size, scaled, 0)
	return carry == 0 && sum <= limit
}

// ReadWord decodes the little-endian word of the given width at the start of b.
func ReadWord(b []byte, width int) uint64 {
	checkWord("ReadWord", b, width)
	switch width {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(Order.Uint16(b))
	case 4:
		return uint64(Order.Uint32(b))
	}
	return Order.Uint64(b)
}

// WriteWord encodes v as a little-endian word of the given width at the start of b.
// v must fit in width bytes.
func WriteWord(b []byte, width int, v uint64) {
	checkWord("WriteWord", b, width)
	if width < 8 && v>>(8*width) != 0 {
		invariant("WriteWord", "value %d does not fit in %d bytes", v, width)
	}
	switch width {
	case 1:
		b[0] = byte(v)
	case 2:
		Order.PutUint16(b, uint16(v))
	case 4:
		Order.PutUint32(b, uint32(v))
	default:
		Order.PutUint64(b, v)
	}
}

func checkWord(op string, b []byte, width int) {
	switch width {
	case 1, 2, 4, 8:
	default:
		invariant(op, "unknown word width %d", width)
	}
	if len(b) < width {
		invariant(op, "buffer of %d bytes too short for %d-byte word", len(b), width)
	}
}
