package gvariant

import "io"

// frameOptions defines the layout of the elements inside a frame.
type frameOptions struct {
	// Alignment is the boundary each element starts on, relative to the frame start.
	Alignment int
}

// FrameWriter builds the body of an array of variable-size elements followed
// by its offset table. Every Write appends one element; the table records the
// end offset of each element.
type FrameWriter struct {
	buf     []byte
	ends    []uint64
	options *frameOptions
}

// Statically ensure that FrameWriter implements io.Writer.
var _ io.Writer = (*FrameWriter)(nil)

// NewFrameWriter creates a FrameWriter for elements aligned to alignment.
// A value of 0 or 1 means no alignment.
func NewFrameWriter(alignment int) *FrameWriter {
	if alignment < 1 {
		alignment = 1
	}
	return &FrameWriter{options: &frameOptions{Alignment: alignment}}
}

// NewFrameWriterFor creates a FrameWriter for elements of the given signature.
func NewFrameWriterFor(elem string) (*FrameWriter, error) {
	alignment, err := Alignment(elem)
	if err != nil {
		return nil, err
	}
	return NewFrameWriter(alignment), nil
}

// Write appends p as a single element, after zero padding up to the element alignment.
func (w *FrameWriter) Write(p []byte) (int, error) {
	if pad := Roundup(len(w.buf), w.options.Alignment) - len(w.buf); pad > 0 {
		w.buf = append(w.buf, make([]byte, pad)...)
	}
	w.buf = append(w.buf, p...)
	w.ends = append(w.ends, uint64(len(w.buf)))
	return len(p), nil
}

// Len returns the number of elements written.
func (w *FrameWriter) Len() int { return len(w.ends) }

// Width returns the word width the offset table will use.
func (w *FrameWriter) Width() int {
	return WordWidth(uint64(len(w.buf)), uint64(len(w.ends)))
}

// Size returns the encoded size of the frame, offset table included.
func (w *FrameWriter) Size() int {
	return len(w.buf) + len(w.ends)*w.Width()
}

// MarshalTo writes the body and offset table into p.
// It returns io.ErrShortWrite if p cannot hold the whole frame.
func (w *FrameWriter) MarshalTo(p []byte) (int, error) {
	size := w.Size()
	if len(p) < size {
		return 0, io.ErrShortWrite
	}
	n := copy(p, w.buf)
	width := w.Width()
	for _, end := range w.ends {
		WriteWord(p[n:], width, end)
		n += width
	}
	return n, nil
}

// Bytes returns a newly allocated copy of the encoded frame.
func (w *FrameWriter) Bytes() []byte {
	out := make([]byte, w.Size())
	_, _ = w.MarshalTo(out)
	return out
}

// Reset discards all elements, keeping the allocated buffers.
func (w *FrameWriter) Reset() {
	w.buf = w.buf[:0]
	w.ends = w.ends[:0]
}
