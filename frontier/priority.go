// SPDX-License-Identifier: MIT

package frontier

import (
	"container/heap"
)

// Key extracts the priority of a record; smaller keys pop first.
type Key func(r Record) float64

// ByCost orders records by cost-so-far (uniform-cost search).
func ByCost(r Record) float64 { return r.Cost }

// ByCostPlusEstimate orders records by cost-so-far plus heuristic estimate (A*).
func ByCostPlusEstimate(r Record) float64 { return r.Cost + r.Estimate }

// ByEstimate orders records by heuristic estimate alone (greedy best-first).
func ByEstimate(r Record) float64 { return r.Estimate }

// Priority is a min-priority frontier over Key.
//
// Equal keys pop in insertion order: every entry carries a monotonically
// increasing sequence number used as the secondary key.
type Priority struct {
	pq   entryPQ
	key  Key
	seq  uint64
	skip SkipFunc
}

// NewPriority returns an empty priority frontier ordered by key.
// A nil key falls back to ByCost.
func NewPriority(key Key, skip SkipFunc) *Priority {
	if key == nil {
		key = ByCost
	}

	return &Priority{key: key, skip: orNever(skip)}
}

// Push inserts r with priority key(r).
func (p *Priority) Push(r Record) {
	p.seq++
	heap.Push(&p.pq, entry{rec: r, prio: p.key(r), seq: p.seq})
}

// Pop removes the minimum entry, skipping stale ones.
func (p *Priority) Pop() (Record, bool) {
	for p.pq.Len() > 0 {
		e := heap.Pop(&p.pq).(entry)
		if p.skip(e.rec.ID) {
			continue
		}

		return e.rec, true
	}

	return Record{}, false
}

// Len returns the number of stored entries.
func (p *Priority) Len() int { return p.pq.Len() }

// IsEmpty reports whether no entries are stored.
func (p *Priority) IsEmpty() bool { return p.pq.Len() == 0 }

// entry is one heap slot.
type entry struct {
	rec  Record
	prio float64
	seq  uint64
}

// entryPQ is a min-heap of entries ordered by (prio, seq).
// We use the lazy-decrease-key approach: improved routes push new entries and
// the outdated ones are discarded at pop time through the skip check.
type entryPQ []entry

// Len returns the number of items in the heap.
func (pq entryPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller prio first, then older seq.
func (pq entryPQ) Less(i, j int) bool {
	if pq[i].prio != pq[j].prio {
		return pq[i].prio < pq[j].prio
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last element of the backing slice.
func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
