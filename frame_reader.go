package gvariant

import "fmt"

// FrameReader locates the elements of a framed array in O(1) using its
// trailing offset table.
type FrameReader struct {
	B          []byte // whole frame, offset table included
	width      int
	tableStart uint64
	n          int
	alignment  int
}

// NewFrameReader parses the offset table at the end of b. Elements are
// expected to start on alignment boundaries relative to the frame start.
func NewFrameReader(b []byte, alignment int) (*FrameReader, error) {
	if alignment < 1 {
		alignment = 1
	}
	r := &FrameReader{B: b, alignment: alignment}
	if len(b) == 0 {
		return r, nil
	}

	size := uint64(len(b))
	r.width = WordWidth(size, 0)
	if size < uint64(r.width) {
		return nil, fmt.Errorf("%w: %d bytes cannot hold a %d-byte offset", ErrMalformedFrame, size, r.width)
	}
	r.tableStart = ReadWord(b[size-uint64(r.width):], r.width)
	if r.tableStart > size-uint64(r.width) {
		return nil, fmt.Errorf("%w: table start %d beyond frame of %d bytes", ErrMalformedFrame, r.tableStart, size)
	}
	tableSize := size - r.tableStart
	if tableSize%uint64(r.width) != 0 {
		return nil, fmt.Errorf("%w: table of %d bytes is not a multiple of width %d", ErrMalformedFrame, tableSize, r.width)
	}
	r.n = int(tableSize / uint64(r.width))
	return r, nil
}

// NewFrameReaderFor parses a frame of elements of the given signature.
func NewFrameReaderFor(b []byte, elem string) (*FrameReader, error) {
	alignment, err := Alignment(elem)
	if err != nil {
		return nil, err
	}
	return NewFrameReader(b, alignment)
}

// Len returns the number of elements in the frame.
func (r *FrameReader) Len() int { return r.n }

// Width returns the word width of the offset table, 0 for an empty frame.
func (r *FrameReader) Width() int { return r.width }

// Element returns the bytes of the i-th element, without leading padding.
func (r *FrameReader) Element(i int) ([]byte, error) {
	if i < 0 || i >= r.n {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, r.n)
	}

	var start uint64
	if i > 0 {
		start = Roundup(r.offset(i-1), uint64(r.alignment))
	}
	end := r.offset(i)
	if start > end || end > r.tableStart {
		return nil, fmt.Errorf("%w: element %d spans [%d,%d) outside body of %d bytes", ErrMalformedFrame, i, start, end, r.tableStart)
	}
	return r.B[start:end], nil
}

func (r *FrameReader) offset(i int) uint64 {
	return ReadWord(r.B[r.tableStart+uint64(i*r.width):], r.width)
}
