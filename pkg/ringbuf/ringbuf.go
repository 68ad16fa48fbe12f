package ringbuf

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

// ------|++++++++++++++++|--------------------|
//     head              tail               capacity
// head < capacity; tail < capacity
// size counts the unread bytes starting at head, so head == tail is
// either empty (size == 0) or full (size == capacity).

// RingBuffer is a fixed capacity circular buffer of bytes. Push overwrites
// the oldest byte when full, Write refuses to. It is not safe for
// concurrent use.
type RingBuffer struct {
	buff     []byte
	capacity int
	size     int
	head     int
	tail     int
}

func New(capacity int) (*RingBuffer, error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "capacity must be positive, got %d", capacity)
	}
	return &RingBuffer{
		buff:     make([]byte, capacity),
		capacity: capacity,
	}, nil
}

// Push appends c. If the buffer is full the oldest byte is dropped.
func (rb *RingBuffer) Push(c byte) {
	rb.buff[rb.tail] = c
	rb.tail = (rb.tail + 1) % rb.capacity
	if rb.size == rb.capacity {
		rb.head = (rb.head + 1) % rb.capacity
		return
	}
	rb.size++
}

// Pop removes the oldest byte. ok is false if the buffer is empty.
func (rb *RingBuffer) Pop() (c byte, ok bool) {
	if rb.size == 0 {
		return 0, false
	}
	c = rb.buff[rb.head]
	rb.head = (rb.head + 1) % rb.capacity
	rb.size--
	return c, true
}

// Write copies all of p into the buffer, or nothing at all if p does not
// fit in the free space.
func (rb *RingBuffer) Write(p []byte) (int, error) {
	if len(p) > rb.Free() {
		return 0, errors.Wrapf(ErrCapacityExceeded, "cannot write %d bytes, %d free", len(p), rb.Free())
	}
	if len(p) == 0 {
		return 0, nil
	}

	// up to the end of the storage first, then whatever is left from 0
	n := copy(rb.buff[rb.tail:], p)
	copy(rb.buff, p[n:])

	rb.tail = (rb.tail + len(p)) % rb.capacity
	rb.size += len(p)
	return len(p), nil
}

// Read removes and returns up to n bytes. Fewer bytes, or none, are
// returned when less data is buffered.
func (rb *RingBuffer) Read(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "read length must be non-negative, got %d", n)
	}
	buf := make([]byte, min(n, rb.size))
	n = rb.peek(buf)
	rb.head = (rb.head + n) % rb.capacity
	rb.size -= n
	return buf, nil
}

// peek copies unread bytes into dst without consuming them.
func (rb *RingBuffer) peek(dst []byte) int {
	n := min(len(dst), rb.size)
	end := rb.head + n
	if end <= rb.capacity {
		copy(dst, rb.buff[rb.head:end])
	} else {
		headBytes := copy(dst, rb.buff[rb.head:])
		copy(dst[headBytes:n], rb.buff[:end-rb.capacity])
	}
	return n
}

// Bytes returns a copy of the unread bytes, oldest first.
func (rb *RingBuffer) Bytes() []byte {
	if rb.size == 0 {
		return nil
	}
	buf := make([]byte, rb.size)
	rb.peek(buf)
	return buf
}

// Reset discards all content. The storage is kept.
func (rb *RingBuffer) Reset() {
	rb.head = 0
	rb.tail = 0
	rb.size = 0
}

// Gets the number of unread bytes
func (rb *RingBuffer) Len() int {
	return rb.size
}

func (rb *RingBuffer) Cap() int {
	return rb.capacity
}

// Gets the available write space
func (rb *RingBuffer) Free() int {
	return rb.capacity - rb.size
}

func (rb *RingBuffer) IsEmpty() bool {
	return rb.size == 0
}

func (rb *RingBuffer) IsFull() bool {
	return rb.size == rb.capacity
}
