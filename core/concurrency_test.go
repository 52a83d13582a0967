// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe
// and every arc appears exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge("X", fmt.Sprintf("V%d", id), float64(id)))
		}(i)
	}
	wg.Wait()

	arcs, err := g.Arcs("X")
	require.NoError(t, err)
	require.Len(t, arcs, num)
	require.Equal(t, num+1, g.VertexCount())
}

// TestConcurrentSnapshotAndWrite mixes writers with snapshot readers.
// Every snapshot must be internally consistent: each arc target is a vertex.
func TestConcurrentSnapshotAndWrite(t *testing.T) {
	g := core.NewGraph(core.WithUndirected())
	require.NoError(t, g.AddVertex("Base"))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.AddEdge("Base", fmt.Sprintf("V%d", id), 1)
		}(i)

		go func() {
			defer wg.Done()
			s := g.Snapshot()
			seq, err := s.Neighbors("Base")
			require.NoError(t, err)
			for to := range seq {
				require.True(t, s.HasVertex(to), "snapshot arc to missing vertex %q", to)
			}
		}()
	}
	wg.Wait()
}
