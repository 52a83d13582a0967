package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/search"
)

// TestBridge_Straight converts the two water cells of a 1×4 strip.
func TestBridge_Straight(t *testing.T) {
	gg := build(t, [][]int{{1, 0, 0, 1}}, gridgraph.Conn4)

	path, conv, err := gg.Bridge("0,0", "3,0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "1,0", "2,0", "3,0"}, path)
	assert.Equal(t, 2, conv)
}

// TestBridge_AlreadyConnected needs no conversion.
func TestBridge_AlreadyConnected(t *testing.T) {
	gg := build(t, [][]int{{1, 1, 1}}, gridgraph.Conn4)

	path, conv, err := gg.Bridge("0,0", "2,0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "1,0", "2,0"}, path)
	assert.Zero(t, conv)
}

// TestBridge_Connectivity shows diagonals cutting the conversion count.
func TestBridge_Connectivity(t *testing.T) {
	grid := [][]int{
		{1, 0, 0},
		{0, 0, 0},
		{0, 0, 1},
	}

	path, conv, err := build(t, grid, gridgraph.Conn4).Bridge("0,0", "2,2")
	require.NoError(t, err)
	assert.Equal(t, 3, conv)
	assert.Len(t, path, 5)

	path, conv, err = build(t, grid, gridgraph.Conn8).Bridge("0,0", "2,2")
	require.NoError(t, err)
	assert.Equal(t, 1, conv)
	assert.Equal(t, []string{"0,0", "1,1", "2,2"}, path)
}

func TestBridge_Errors(t *testing.T) {
	gg := build(t, sample, gridgraph.Conn4)

	_, _, err := gg.Bridge("x", "2,2")
	assert.ErrorIs(t, err, gridgraph.ErrBadCellID)
	_, _, err = gg.Bridge("0,0", "9,9")
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, _, err = gg.Bridge("0,0", "2,2", search.WithDepthLimit(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}
