// SPDX-License-Identifier: MIT

package search

import (
	"fmt"
	"slices"
)

// ReconstructPath walks backpointers from goal to start and returns the
// start → goal sequence. parent maps each vertex to the predecessor it was
// reached from; start itself has no entry.
//
// Returns ErrBrokenChain if the walk leaves the map before reaching start or
// revisits a vertex.
func ReconstructPath(parent map[string]string, start, goal string) ([]string, error) {
	path := []string{goal}
	cur := goal
	// A well-formed chain visits each parent entry at most once.
	for steps := 0; cur != start; steps++ {
		if steps > len(parent) {
			return nil, fmt.Errorf("%w: cycle near %q", ErrBrokenChain, cur)
		}
		prev, ok := parent[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %q has no predecessor", ErrBrokenChain, cur)
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
