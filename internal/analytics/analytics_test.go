//    ThemataGoEngine
//    Copyright: P Themelis 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/p-themelis/ThemataGoEngine/internal/analytics"
)

// TestTopTermsRankingAndTies verifies descending probability order with
// lexicographic tie-breaks.
func TestTopTermsRankingAndTies(t *testing.T) {
	vocab := []string{"delta", "alpha", "carrot", "banana"}
	beta := mat.NewDense(2, 4, []float64{
		0.4, 0.1, 0.25, 0.25,
		0.1, 0.4, 0.25, 0.25,
	})

	tops := analytics.TopTerms(beta, vocab, 3)
	require.Len(t, tops, 2)

	// topic 0: delta (0.4), then the 0.25 tie broken lexicographically
	assert.Equal(t, "delta", tops[0][0].Term)
	assert.Equal(t, "banana", tops[0][1].Term)
	assert.Equal(t, "carrot", tops[0][2].Term)

	assert.Equal(t, "alpha", tops[1][0].Term)
}

// TestTopTermsClampsN verifies that n larger than the vocabulary is tolerated.
func TestTopTermsClampsN(t *testing.T) {
	vocab := []string{"a", "b"}
	beta := mat.NewDense(1, 2, []float64{0.6, 0.4})

	tops := analytics.TopTerms(beta, vocab, 10)
	assert.Len(t, tops[0], 2)
}

// gamma rows with unambiguous dominant topics: docs 0-2 on topic 0, 3-4 on topic 1
func censusgamma() *mat.Dense {
	return mat.NewDense(5, 2, []float64{
		0.9, 0.1,
		0.8, 0.2,
		0.7, 0.3,
		0.2, 0.8,
		0.1, 0.9,
	})
}

// TestDominantTopicsAndCensus verifies the per-topic document counts and the
// scaled accumulated weights.
func TestDominantTopicsAndCensus(t *testing.T) {
	g := censusgamma()

	assert.Equal(t, []int{0, 0, 0, 1, 1}, analytics.DominantTopics(g))

	counter, scaled := analytics.TopicCensus(g)
	assert.Equal(t, []int{3, 2}, counter)

	// topic 0 accumulates 2.7 of the 5.0 total weight, topic 1 the other 2.3
	assert.InDelta(t, 1.0, scaled[0], 1e-12)
	assert.InDelta(t, 2.3/2.7, scaled[1], 1e-12)
}

// TestTopDocs verifies the per-topic winning documents.
func TestTopDocs(t *testing.T) {
	docs, scores := analytics.TopDocs(censusgamma())
	assert.Equal(t, []int{0, 4}, docs)
	assert.InDelta(t, 0.9, scores[0], 1e-12)
	assert.InDelta(t, 0.9, scores[1], 1e-12)
}

// two tight blobs far apart; k-means at c=2 must split them
func blobgamma() *mat.Dense {
	return mat.NewDense(6, 2, []float64{
		0.95, 0.05,
		0.94, 0.06,
		0.93, 0.07,
		0.05, 0.95,
		0.06, 0.94,
		0.07, 0.93,
	})
}

// TestKMeansSplitsBlobs verifies a clean two-cluster partition.
func TestKMeansSplitsBlobs(t *testing.T) {
	ids, err := analytics.KMeans(blobgamma(), 2, 42)
	require.NoError(t, err)
	require.Len(t, ids, 6)

	assert.Equal(t, ids[0], ids[1])
	assert.Equal(t, ids[0], ids[2])
	assert.Equal(t, ids[3], ids[4])
	assert.Equal(t, ids[3], ids[5])
	assert.NotEqual(t, ids[0], ids[3])
}

// TestKMeansDegenerateCounts covers c=1 (one shared id) and c=N (all distinct).
func TestKMeansDegenerateCounts(t *testing.T) {
	g := blobgamma()

	one, err := analytics.KMeans(g, 1, 42)
	require.NoError(t, err)
	for _, id := range one {
		assert.Equal(t, one[0], id)
	}

	n, _ := g.Dims()
	all, err := analytics.KMeans(g, n, 42)
	require.NoError(t, err)
	seen := make(map[int]bool)
	for _, id := range all {
		assert.False(t, seen[id], "every document gets its own cluster")
		seen[id] = true
	}
}

// TestKMeansDeterminism verifies seed-stable assignments.
func TestKMeansDeterminism(t *testing.T) {
	a, err := analytics.KMeans(blobgamma(), 2, 7)
	require.NoError(t, err)
	b, err := analytics.KMeans(blobgamma(), 2, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestKMeansDuplicateRows asks for more clusters than there are distinct
// rows: the seeding falls back to duplicating a centroid, and that duplicate
// must be an independent copy that later rounds cannot corrupt.
func TestKMeansDuplicateRows(t *testing.T) {
	g := mat.NewDense(4, 2, []float64{
		0.9, 0.1,
		0.9, 0.1,
		0.9, 0.1,
		0.1, 0.9,
	})

	ids, err := analytics.KMeans(g, 3, 42)
	require.NoError(t, err)
	require.Len(t, ids, 4)

	for _, id := range ids {
		assert.GreaterOrEqual(t, id, 0)
		assert.Less(t, id, 3)
	}

	// identical rows land in the same cluster, the outlier in another
	assert.Equal(t, ids[0], ids[1])
	assert.Equal(t, ids[0], ids[2])
	assert.NotEqual(t, ids[0], ids[3])

	again, err := analytics.KMeans(g, 3, 42)
	require.NoError(t, err)
	assert.Equal(t, ids, again)
}

// TestKMeansRejectsBadCounts covers the cluster-count precondition.
func TestKMeansRejectsBadCounts(t *testing.T) {
	g := blobgamma()
	for _, c := range []int{0, -1, 7} {
		_, err := analytics.KMeans(g, c, 42)
		assert.ErrorIs(t, err, analytics.ErrInvalidClusterCount, "c=%d", c)
	}
}

// TestPCA2DShapeAndCentering verifies the projection is N x 2, centered, and
// a pure function of its input.
func TestPCA2DShapeAndCentering(t *testing.T) {
	g := blobgamma()

	coords, err := analytics.PCA2D(g)
	require.NoError(t, err)

	n, c := coords.Dims()
	assert.Equal(t, 6, n)
	assert.Equal(t, 2, c)

	// standardized input keeps the projection centered
	col := make([]float64, n)
	mat.Col(col, 0, coords)
	assert.InDelta(t, 0.0, stat.Mean(col, nil), 1e-9)

	again, err := analytics.PCA2D(g)
	require.NoError(t, err)
	assert.True(t, mat.Equal(coords, again), "no randomness anywhere in PCA")
}

// TestPCA2DSeparatesBlobs verifies that the first component splits the two
// blobs with identical signs within each blob.
func TestPCA2DSeparatesBlobs(t *testing.T) {
	coords, err := analytics.PCA2D(blobgamma())
	require.NoError(t, err)

	sign := func(x float64) bool { return x > 0 }

	assert.Equal(t, sign(coords.At(0, 0)), sign(coords.At(1, 0)))
	assert.Equal(t, sign(coords.At(0, 0)), sign(coords.At(2, 0)))
	assert.Equal(t, sign(coords.At(3, 0)), sign(coords.At(4, 0)))
	assert.NotEqual(t, sign(coords.At(0, 0)), sign(coords.At(3, 0)))
}
