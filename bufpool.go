package gvariant

import "sync"

const (
	// A 4KB default is chosen to avoid re-allocations for common message sizes.
	defaultFrameBuf = 4096
	// Writers that grew past these capacities are left to the GC instead of
	// pinning their buffers in the pool.
	maxPooledFrameBuf  = 64 * defaultFrameBuf
	maxPooledFrameEnds = 8192
)

// framePool reuses FrameWriters to avoid reallocating element buffers and
// offset lists for every array.
var framePool = sync.Pool{
	New: func() any {
		return &FrameWriter{
			buf:     make([]byte, 0, defaultFrameBuf),
			ends:    make([]uint64, 0, 64),
			options: &frameOptions{Alignment: 1},
		}
	},
}

// AcquireFrameWriter returns an empty pooled FrameWriter for elements aligned to alignment.
func AcquireFrameWriter(alignment int) *FrameWriter {
	w := framePool.Get().(*FrameWriter)
	w.Reset()
	w.options.Alignment = max(alignment, 1)
	return w
}

// ReleaseFrameWriter returns w to the pool. w must not be used afterwards.
func ReleaseFrameWriter(w *FrameWriter) {
	if !poolable(w) {
		return
	}
	framePool.Put(w)
}

func poolable(w *FrameWriter) bool {
	return w != nil && w.options != nil &&
		cap(w.buf) <= maxPooledFrameBuf && cap(w.ends) <= maxPooledFrameEnds
}
