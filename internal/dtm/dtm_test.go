//    ThemataGoEngine
//    Copyright: P Themelis 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package dtm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p-themelis/ThemataGoEngine/internal/dtm"
)

// a small corpus with a term at every document-frequency level:
// "common" df=4, "pair" df=2, "rare" df=1
func smallcorpus() [][]string {
	return [][]string{
		{"common", "pair", "rare", "common"},
		{"common", "pair"},
		{"common"},
		{"common"},
	}
}

// TestBuildBoundsFiltering verifies that every retained column has a document
// frequency inside [min, max] and everything outside is gone.
func TestBuildBoundsFiltering(t *testing.T) {
	d, err := dtm.Build(smallcorpus(), dtm.Bounds{Min: 2, Max: 3})
	require.NoError(t, err)

	assert.Equal(t, []string{"pair"}, d.Vocab, "only df=2 'pair' sits inside [2, 3]")

	n, v := d.Dims()
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, n, "documents without 'pair' are dropped")
	assert.Equal(t, []int{0, 1}, d.DocIDs)
}

// TestBuildFractionalBounds checks that bounds in (0, 1) scale with the corpus size.
func TestBuildFractionalBounds(t *testing.T) {
	// 0.6 * 4 docs = 2.4, so only df >= 3 survives
	d, err := dtm.Build(smallcorpus(), dtm.Bounds{Min: 0.6})
	require.NoError(t, err)
	assert.Equal(t, []string{"common"}, d.Vocab)
}

// TestBuildTokenConservation confirms that matrix counts equal the
// retained-vocabulary token counts of the input.
func TestBuildTokenConservation(t *testing.T) {
	d, err := dtm.Build(smallcorpus(), dtm.Bounds{Min: 1})
	require.NoError(t, err)

	// 4 + 2 + 1 + 1 tokens, nothing filtered
	assert.InDelta(t, 8.0, d.TotalTokens(), 1e-12)

	ll := d.DocLengths()
	assert.Equal(t, []float64{4, 2, 1, 1}, ll)

	// doc 0 counted cell by cell
	assert.Equal(t, 2.0, d.M.At(0, d.Index["common"]))
	assert.Equal(t, 1.0, d.M.At(0, d.Index["pair"]))
	assert.Equal(t, 1.0, d.M.At(0, d.Index["rare"]))
}

// TestBuildDeterministicColumns verifies lexicographic column order.
func TestBuildDeterministicColumns(t *testing.T) {
	docs := [][]string{
		{"zeta", "alpha", "mu"},
		{"mu", "alpha", "zeta"},
	}
	d, err := dtm.Build(docs, dtm.Bounds{Min: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mu", "zeta"}, d.Vocab)

	for i, term := range d.Vocab {
		assert.Equal(t, i, d.Index[term])
	}
}

// TestBuildDropsEmptyDocuments checks that empty input documents are allowed
// but never become all-zero rows.
func TestBuildDropsEmptyDocuments(t *testing.T) {
	docs := [][]string{
		{"alpha", "beta"},
		nil,
		{},
		{"alpha", "beta"},
	}
	d, err := dtm.Build(docs, dtm.Bounds{Min: 1})
	require.NoError(t, err)

	n, _ := d.Dims()
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{0, 3}, d.DocIDs)

	for _, l := range d.DocLengths() {
		assert.Greater(t, l, 0.0, "every row must have at least one token")
	}
}

// TestBuildEmptyVocabulary verifies the hard stop when no term survives the bounds.
func TestBuildEmptyVocabulary(t *testing.T) {
	docs := [][]string{
		{"only", "here"},
		{"different", "words"},
	}
	_, err := dtm.Build(docs, dtm.Bounds{Min: 2})
	assert.ErrorIs(t, err, dtm.ErrEmptyVocabulary, "every term has df=1, below min=2")
}
