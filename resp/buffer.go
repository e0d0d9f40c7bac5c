package resp

// Buffer is a growable byte accumulator with a read cursor, used by the
// framing layer to assemble frames out of arbitrarily-split socket reads
// without repeated reallocation. It plays the same role as the reference
// proxy's core/codec.Buffer, generalized from a single-shot decode scratch
// into something a connection loop can Write into repeatedly.
type Buffer struct {
	buf []byte
	r   int
}

// NewBuffer wraps an existing slice as the initial buffered content.
func NewBuffer(b []byte) *Buffer {
	return &Buffer{buf: b}
}

// Write appends p to the buffer, compacting first if everything already
// read has been consumed.
func (b *Buffer) Write(p []byte) {
	if b.r > 0 && b.r == len(b.buf) {
		b.buf = b.buf[:0]
		b.r = 0
	}
	b.buf = append(b.buf, p...)
}

// Bytes returns the unread portion of the buffer.
func (b *Buffer) Bytes() []byte {
	return b.buf[b.r:]
}

// Len reports how many unread bytes remain.
func (b *Buffer) Len() int {
	return len(b.buf) - b.r
}

// Advance marks the first n unread bytes as consumed.
func (b *Buffer) Advance(n int) {
	b.r += n
	if b.r == len(b.buf) {
		b.buf = b.buf[:0]
		b.r = 0
	}
}

// Reset discards all buffered content.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.r = 0
}
