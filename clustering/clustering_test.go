package clustering_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/lvlds/clustering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxSpacing_Chain(t *testing.T) {
	edges := []clustering.Edge{
		{U: 1, V: 2, Weight: 1},
		{U: 2, V: 3, Weight: 2},
		{U: 3, V: 4, Weight: 3},
		{U: 1, V: 4, Weight: 10},
	}
	res, err := clustering.MaxSpacing(4, edges, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Spacing)
	assert.Equal(t, [][]int{{1, 2, 3}, {4}}, res.Clusters)
	assert.Equal(t, edges[:2], res.Merges)
}

func TestMaxSpacing_KEqualsN(t *testing.T) {
	edges := []clustering.Edge{
		{U: 1, V: 1, Weight: 0}, // self-loop never crosses
		{U: 2, V: 3, Weight: 5},
		{U: 1, V: 3, Weight: 4},
	}
	res, err := clustering.MaxSpacing(3, edges, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Spacing)
	assert.Equal(t, [][]int{{1}, {2}, {3}}, res.Clusters)
	assert.Empty(t, res.Merges)
}

func TestMaxSpacing_SkipsRedundantEdges(t *testing.T) {
	// Triangle 1-2-3 with cheap edges plus a distant vertex 4.
	edges := []clustering.Edge{
		{U: 1, V: 2, Weight: 1},
		{U: 2, V: 3, Weight: 1},
		{U: 1, V: 3, Weight: 2}, // inside the cluster once 1-2-3 merged
		{U: 3, V: 4, Weight: 9},
	}
	res, err := clustering.MaxSpacing(4, edges, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(9), res.Spacing)
	assert.Len(t, res.Merges, 2)
}

func TestMaxSpacing_Errors(t *testing.T) {
	edges := []clustering.Edge{{U: 1, V: 2, Weight: 1}}

	_, err := clustering.MaxSpacing(2, edges, 0)
	assert.ErrorIs(t, err, clustering.ErrBadClusterCount)
	_, err = clustering.MaxSpacing(2, edges, 3)
	assert.ErrorIs(t, err, clustering.ErrBadClusterCount)

	_, err = clustering.MaxSpacing(2, []clustering.Edge{{U: 1, V: 3, Weight: 1}}, 1)
	assert.ErrorIs(t, err, clustering.ErrVertexOutOfRange)
	_, err = clustering.MaxSpacing(2, []clustering.Edge{{U: 0, V: 1, Weight: 1}}, 1)
	assert.ErrorIs(t, err, clustering.ErrVertexOutOfRange)

	_, err = clustering.MaxSpacing(3, edges, 1)
	assert.ErrorIs(t, err, clustering.ErrNotEnoughEdges)

	_, err = clustering.MaxSpacing(2, edges, 1)
	assert.ErrorIs(t, err, clustering.ErrNoSpacing, "one cluster has nothing to cross")
}

// TestMaxSpacing_MatchesBruteForce compares the spacing with the minimum
// crossing edge computed directly from the returned clusters.
func TestMaxSpacing_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	const n = 30
	var edges []clustering.Edge
	for u := 1; u <= n; u++ {
		for v := u + 1; v <= n; v++ {
			edges = append(edges, clustering.Edge{U: u, V: v, Weight: int64(r.Intn(1000))})
		}
	}

	for k := 2; k <= 6; k++ {
		res, err := clustering.MaxSpacing(n, edges, k)
		require.NoError(t, err)
		require.Len(t, res.Clusters, k)

		owner := make(map[int]int, n)
		total := 0
		for ci, c := range res.Clusters {
			require.True(t, sort.IntsAreSorted(c))
			for _, id := range c {
				owner[id] = ci
			}
			total += len(c)
		}
		require.Equal(t, n, total)

		best := int64(-1)
		for _, e := range edges {
			if owner[e.U] != owner[e.V] && (best < 0 || e.Weight < best) {
				best = e.Weight
			}
		}
		assert.Equal(t, best, res.Spacing, "k=%d", k)
	}
}
