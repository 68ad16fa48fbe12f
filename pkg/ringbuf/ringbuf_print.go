package ringbuf

import (
	"fmt"
	"strconv"
)

// Counters and cursors on one line
func (rb *RingBuffer) StateString() string {
	return fmt.Sprintf("cap=%d len=%d free=%d head=%d tail=%d\n", rb.capacity, rb.size, rb.Free(), rb.head, rb.tail)
}

// List (slot index, byte, cursor marks) as strings. Slots not holding
// unread data show "-".
func (rb *RingBuffer) GetSlotsString() []string {
	res := make([]string, rb.capacity)
	for i := 0; i < rb.capacity; i++ {
		val := "-"
		if rb.isUnread(i) {
			val = strconv.QuoteToASCII(string(rb.buff[i : i+1]))
		}
		res[i] = fmt.Sprintf("%d\t%s\t%s\n", i, val, rb.cursorMarks(i))
	}
	return res
}

func (rb *RingBuffer) isUnread(slot int) bool {
	return (slot-rb.head+rb.capacity)%rb.capacity < rb.size
}

func (rb *RingBuffer) cursorMarks(slot int) string {
	switch {
	case slot == rb.head && slot == rb.tail:
		return "head,tail"
	case slot == rb.head:
		return "head"
	case slot == rb.tail:
		return "tail"
	}
	return ""
}
