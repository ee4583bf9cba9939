package buffer

// Buffer owns a reusable block of float64 samples. Processing code works on
// raw []float64 slices; Buffer only manages their allocation and reuse so
// block loops do not churn the garbage collector.
type Buffer struct {
	samples []float64
}

// New returns a zero-filled Buffer holding length samples. Negative lengths
// yield an empty buffer.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float64, length)}
}

// Samples exposes the backing slice for processing calls.
func (b *Buffer) Samples() []float64 { return b.samples }

// Len returns the current sample count.
func (b *Buffer) Len() int { return len(b.samples) }

// Cap returns the capacity of the backing slice.
func (b *Buffer) Cap() int { return cap(b.samples) }

// Grow raises the capacity to at least n without changing the length.
// Existing samples are preserved.
func (b *Buffer) Grow(n int) {
	if n <= cap(b.samples) {
		return
	}
	grown := make([]float64, len(b.samples), n)
	copy(grown, b.samples)
	b.samples = grown
}

// Resize sets the length to n, keeping existing samples up to the new
// length. Samples exposed beyond the old length are zeroed, so capacity
// reuse never leaks stale data into a fresh block.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}

	if n > cap(b.samples) {
		grown := make([]float64, n)
		copy(grown, b.samples)
		b.samples = grown
		return
	}

	old := len(b.samples)
	b.samples = b.samples[:n]
	if n > old {
		clear(b.samples[old:])
	}
}

// Zero silences the whole buffer.
func (b *Buffer) Zero() {
	clear(b.samples)
}

// ZeroRange silences samples in [start, end), clamping both bounds.
func (b *Buffer) ZeroRange(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(b.samples) {
		end = len(b.samples)
	}
	if start < end {
		clear(b.samples[start:end])
	}
}
