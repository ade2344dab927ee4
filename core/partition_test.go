package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netfeas/core"
)

func TestPartition_Singletons(t *testing.T) {
	p, err := core.NewPartition(4)
	require.NoError(t, err)

	assert.Equal(t, 4, p.Len())
	for i := 0; i < 4; i++ {
		r, err := p.Find(i)
		require.NoError(t, err)
		assert.Equal(t, i, r)
		rank, _ := p.Rank(i)
		assert.Equal(t, 1, rank)
	}

	_, err = core.NewPartition(-1)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
}

func TestPartition_UnionThenFind(t *testing.T) {
	p, err := core.NewPartition(6)
	require.NoError(t, err)

	pairs := [][2]int{{0, 1}, {2, 3}, {1, 3}, {4, 5}}
	for _, pr := range pairs {
		ok, err := p.Union(pr[0], pr[1])
		require.NoError(t, err)
		require.True(t, ok)

		rx, _ := p.Find(pr[0])
		ry, _ := p.Find(pr[1])
		assert.Equal(t, rx, ry)
	}

	assert.Equal(t, [][]int{{0, 1, 2, 3}, {4, 5}}, p.Groups())
	c, err := p.Connected(0, 5)
	require.NoError(t, err)
	assert.False(t, c)
}

func TestPartition_TieAttachesSecondUnderFirst(t *testing.T) {
	p, err := core.NewPartition(2)
	require.NoError(t, err)

	ok, err := p.Union(1, 0)
	require.NoError(t, err)
	require.True(t, ok)

	parent0, _ := p.Parent(0)
	rank1, _ := p.Rank(1)
	assert.Equal(t, 1, parent0)
	assert.Equal(t, 2, rank1)
}

func TestPartition_RepeatedUnionIsNoop(t *testing.T) {
	p, err := core.NewPartition(3)
	require.NoError(t, err)

	ok, err := p.Union(0, 1)
	require.NoError(t, err)
	require.True(t, ok)

	parent, rank := p.Snapshot()
	ok, err = p.Union(1, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	parentAfter, rankAfter := p.Snapshot()
	assert.Equal(t, parent, parentAfter)
	assert.Equal(t, rank, rankAfter)
}

func TestPartition_FindCompressesWholeChain(t *testing.T) {
	p, err := core.NewPartition(4)
	require.NoError(t, err)

	// (0,1) and (2,3) leave roots 0 and 2 at rank 2; (0,2) hangs 2 under 0,
	// so node 3 sits two hops below the root.
	for _, pr := range [][2]int{{0, 1}, {2, 3}, {0, 2}} {
		_, err = p.Union(pr[0], pr[1])
		require.NoError(t, err)
	}
	parent3, _ := p.Parent(3)
	require.Equal(t, 2, parent3)

	r, err := p.Find(3)
	require.NoError(t, err)
	assert.Equal(t, 0, r)

	parent3, _ = p.Parent(3)
	assert.Equal(t, 0, parent3, "find must repoint every visited node at the root")
}

func TestPartition_OutOfRange(t *testing.T) {
	p, err := core.NewPartition(2)
	require.NoError(t, err)

	_, err = p.Find(2)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
	_, err = p.Union(0, -1)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)

	parent, rank := p.Snapshot()
	assert.Equal(t, []int{0, 1}, parent)
	assert.Equal(t, []int{1, 1}, rank)
}
