// SPDX-License-Identifier: MIT

package frontier

// Record is the search-time state of one discovered vertex.
//
// A Record is a value: when a cheaper route to the same vertex is found, the
// driver pushes a new Record instead of mutating the old one, and the stale
// entry is skipped when it is eventually popped.
type Record struct {
	// ID is the vertex identifier.
	ID string

	// Cost is the cumulative cost from the start vertex.
	Cost float64

	// Parent is the predecessor on the route that produced this record.
	// Meaningful only when HasParent is true.
	Parent string

	// HasParent is false only for the start record.
	HasParent bool

	// Estimate is the heuristic estimate to the goal (0 when no heuristic is used).
	Estimate float64

	// Depth is the number of arcs from the start vertex.
	Depth int
}

// Frontier is the polymorphic container of discovered-but-unexpanded records.
//
// Pop skips records whose ID the frontier's SkipFunc reports as already
// expanded (lazy deletion) and returns ok=false once nothing valid remains.
// Len counts stored entries, stale ones included.
type Frontier interface {
	Push(r Record)
	Pop() (r Record, ok bool)
	Len() int
	IsEmpty() bool
}

// SkipFunc reports whether a record for id must be discarded at pop time.
// Drivers pass their visited-set lookup here. A nil SkipFunc skips nothing.
type SkipFunc func(id string) bool

// never is the SkipFunc used when the caller passes nil.
func never(string) bool { return false }

func orNever(skip SkipFunc) SkipFunc {
	if skip == nil {
		return never
	}

	return skip
}
