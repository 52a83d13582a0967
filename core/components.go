// SPDX-License-Identifier: MIT

package core

import (
	"github.com/spakin/disjoint"
)

// Components returns the weakly connected components of the snapshot.
// Arc direction is ignored. Components are ordered by their first vertex in
// insertion order, and vertices inside a component keep insertion order.
// Complexity: O((V + E)·α(V)) on first use, cached afterwards.
func (s *Snapshot) Components() [][]string {
	s.compOnce.Do(s.buildComponents)
	out := make([][]string, s.compN)
	for i := 0; i < s.order.Len(); i++ {
		id := s.order.Get(i)
		c := s.comp[id]
		out[c] = append(out[c], id)
	}

	return out
}

// SameComponent reports whether a and b lie in one weak component.
// A path from a to b can only exist when this returns true.
// Unknown vertices are never in any component.
func (s *Snapshot) SameComponent(a, b string) bool {
	s.compOnce.Do(s.buildComponents)
	ca, okA := s.comp[a]
	cb, okB := s.comp[b]

	return okA && okB && ca == cb
}

// buildComponents runs union-find over every arc.
func (s *Snapshot) buildComponents() {
	n := s.order.Len()
	elems := make(map[string]*disjoint.Element, n)
	for i := 0; i < n; i++ {
		id := s.order.Get(i)
		e := disjoint.NewElement()
		e.Data = id
		elems[id] = e
	}
	for i := 0; i < n; i++ {
		id := s.order.Get(i)
		list, _ := s.out.Get(id)
		for j := 0; j < list.Len(); j++ {
			disjoint.Union(elems[id], elems[list.Get(j).To])
		}
	}

	s.comp = make(map[string]int, n)
	index := make(map[*disjoint.Element]int)
	for i := 0; i < n; i++ {
		id := s.order.Get(i)
		root := elems[id].Find()
		c, ok := index[root]
		if !ok {
			c = len(index)
			index[root] = c
		}
		s.comp[id] = c
	}
	s.compN = len(index)
}
