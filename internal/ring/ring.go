// Package ring provides the fixed-capacity ring buffers that carry SBR
// state from one frame to the next.
package ring

// Buffer is a circular array of n slots addressed relative to a moving
// origin. Advancing the origin by a frame length keeps the tail of the
// previous frame visible at negative offsets without copying.
type Buffer[T any] struct {
	data []T
	pos  int
}

// New returns a Buffer of n zero-valued slots. n must be positive.
func New[T any](n int) *Buffer[T] {
	return &Buffer[T]{data: make([]T, n)}
}

// Len returns the capacity.
func (b *Buffer[T]) Len() int { return len(b.data) }

// Pos returns the physical index of the origin.
func (b *Buffer[T]) Pos() int { return b.pos }

// At returns a pointer to the slot i positions after the origin. i may be
// negative or larger than Len; it wraps.
func (b *Buffer[T]) At(i int) *T {
	n := len(b.data)
	j := (b.pos + i) % n
	if j < 0 {
		j += n
	}
	return &b.data[j]
}

// Advance moves the origin forward by step slots.
func (b *Buffer[T]) Advance(step int) {
	n := len(b.data)
	b.pos = ((b.pos+step)%n + n) % n
}

// Retreat moves the origin back by step slots.
func (b *Buffer[T]) Retreat(step int) {
	b.Advance(-step)
}

// Reset zeroes every slot and returns the origin to index 0.
func (b *Buffer[T]) Reset() {
	clear(b.data)
	b.pos = 0
}

// Mirror is a delay line of n samples stored twice, so that any window of
// up to n samples starting at the write position is contiguous.
type Mirror[T any] struct {
	data []T
	n    int
	pos  int
}

// NewMirror returns a Mirror holding n zero samples.
func NewMirror[T any](n int) *Mirror[T] {
	return &Mirror[T]{data: make([]T, 2*n), n: n}
}

// Len returns the delay line length.
func (m *Mirror[T]) Len() int { return m.n }

// Pos returns the current write position.
func (m *Mirror[T]) Pos() int { return m.pos }

// Put stores v at offset i from the write position, in both copies.
func (m *Mirror[T]) Put(i int, v T) {
	j := m.pos + i
	if j >= m.n {
		j -= m.n
	}
	m.data[j] = v
	m.data[j+m.n] = v
}

// View returns the n samples starting at the write position.
func (m *Mirror[T]) View() []T {
	return m.data[m.pos : m.pos+m.n]
}

// Retreat moves the write position back by step samples, wrapping to the
// top of the line.
func (m *Mirror[T]) Retreat(step int) {
	m.pos -= step
	if m.pos < 0 {
		m.pos += m.n
	}
}

// Reset zeroes the line and returns the write position to 0.
func (m *Mirror[T]) Reset() {
	clear(m.data)
	m.pos = 0
}
