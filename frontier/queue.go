// SPDX-License-Identifier: MIT

package frontier

// compactAt is the consumed-prefix length after which FIFO reclaims memory.
const compactAt = 64

// FIFO is the breadth-first frontier: Pop returns the oldest pushed record.
type FIFO struct {
	items []Record
	head  int // index of the oldest live entry
	skip  SkipFunc
}

// NewFIFO returns an empty FIFO frontier.
func NewFIFO(skip SkipFunc) *FIFO {
	return &FIFO{skip: orNever(skip)}
}

// Push appends r at the tail.
func (q *FIFO) Push(r Record) { q.items = append(q.items, r) }

// Pop removes records from the head until one survives the skip check.
func (q *FIFO) Pop() (Record, bool) {
	for q.head < len(q.items) {
		r := q.items[q.head]
		q.items[q.head] = Record{}
		q.head++
		q.compact()
		if q.skip(r.ID) {
			continue
		}

		return r, true
	}

	return Record{}, false
}

// Len returns the number of stored entries.
func (q *FIFO) Len() int { return len(q.items) - q.head }

// IsEmpty reports whether no entries are stored.
func (q *FIFO) IsEmpty() bool { return q.Len() == 0 }

// compact drops the consumed prefix once it dominates the backing array.
func (q *FIFO) compact() {
	if q.head < compactAt || q.head*2 < len(q.items) {
		return
	}
	n := copy(q.items, q.items[q.head:])
	q.items = q.items[:n]
	q.head = 0
}

// LIFO is the depth-first frontier: Pop returns the most recently pushed record.
type LIFO struct {
	items []Record
	skip  SkipFunc
}

// NewLIFO returns an empty LIFO frontier.
func NewLIFO(skip SkipFunc) *LIFO {
	return &LIFO{skip: orNever(skip)}
}

// Push places r on top of the stack.
func (s *LIFO) Push(r Record) { s.items = append(s.items, r) }

// Pop removes records from the top until one survives the skip check.
func (s *LIFO) Pop() (Record, bool) {
	for len(s.items) > 0 {
		n := len(s.items) - 1
		r := s.items[n]
		s.items = s.items[:n]
		if s.skip(r.ID) {
			continue
		}

		return r, true
	}

	return Record{}, false
}

// Len returns the number of stored entries.
func (s *LIFO) Len() int { return len(s.items) }

// IsEmpty reports whether no entries are stored.
func (s *LIFO) IsEmpty() bool { return len(s.items) == 0 }
