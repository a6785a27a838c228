//    ThemataGoEngine
//    Copyright: P Themelis 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

// Package dtm turns tokenized documents into a sparse document-term matrix.
// The linguistic work (lowercasing, stemming, stopwords, ...) is assumed to
// have happened upstream: a document arrives as an ordered slice of tokens.
package dtm

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/james-bowman/sparse"
)

// ErrEmptyVocabulary - no term survived the document-frequency bounds
var ErrEmptyVocabulary = errors.New("dtm: empty vocabulary after frequency-bound filtering")

// Bounds - document-frequency bounds for vocabulary filtering.
// A value >= 1 is an absolute document count; a value in (0, 1) is a fraction
// of the corpus size; Max == 0 means "no upper bound".
type Bounds struct {
	Min float64
	Max float64
}

// resolve - turn the bounds into absolute counts for a corpus of n documents
func (b Bounds) resolve(n int) (float64, float64) {
	lo := b.Min
	if lo > 0 && lo < 1 {
		lo = lo * float64(n)
	}
	if lo < 1 {
		lo = 1
	}

	hi := b.Max
	if hi == 0 {
		hi = math.Inf(1)
	} else if hi > 0 && hi < 1 {
		hi = hi * float64(n)
	}
	return lo, hi
}

// DTM - a sparse document-term count matrix plus the vocabulary behind its columns.
// Rows with no surviving terms are dropped; DocIDs maps a row back to the
// index of the document in the input corpus.
type DTM struct {
	M      *sparse.CSR
	Vocab  []string       // column index -> term; lexicographic
	Index  map[string]int // term -> column index
	DocIDs []int          // row -> original document index
}

// Dims - matrix dimensions: documents x terms
func (d *DTM) Dims() (int, int) {
	return d.M.Dims()
}

// DocLengths - token count per row
func (d *DTM) DocLengths() []float64 {
	n, _ := d.M.Dims()
	ll := make([]float64, n)
	d.M.DoNonZero(func(i, j int, v float64) {
		ll[i] += v
	})
	return ll
}

// TotalTokens - sum of all counts in the matrix
func (d *DTM) TotalTokens() float64 {
	var t float64
	d.M.DoNonZero(func(i, j int, v float64) {
		t += v
	})
	return t
}

// Build - derive the vocabulary and the document-term matrix from a tokenized corpus
func Build(docs [][]string, b Bounds) (*DTM, error) {
	// [a] document frequency per term

	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, t := range doc {
			if !seen[t] {
				seen[t] = true
				df[t]++
			}
		}
	}

	// [b] retain terms whose df falls within the bounds; columns in lexicographic
	// order so that identical corpora always yield identical matrices

	lo, hi := b.resolve(len(docs))

	var vocab []string
	for t, n := range df {
		if float64(n) >= lo && float64(n) <= hi {
			vocab = append(vocab, t)
		}
	}

	if len(vocab) == 0 {
		return nil, fmt.Errorf("%w: %d documents, %d distinct terms, bounds [%v, %v]",
			ErrEmptyVocabulary, len(docs), len(df), b.Min, b.Max)
	}

	sort.Strings(vocab)

	index := make(map[string]int, len(vocab))
	for i, t := range vocab {
		index[t] = i
	}

	// [c] count retained-term occurrences per document; documents that lose
	// every token are dropped rather than carried as all-zero rows

	var keep []int
	counts := make([]map[int]int, 0, len(docs))
	for i, doc := range docs {
		c := make(map[int]int)
		for _, t := range doc {
			if j, ok := index[t]; ok {
				c[j]++
			}
		}
		if len(c) > 0 {
			keep = append(keep, i)
			counts = append(counts, c)
		}
	}

	dok := sparse.NewDOK(len(keep), len(vocab))
	for r, c := range counts {
		for j, n := range c {
			dok.Set(r, j, float64(n))
		}
	}

	d := &DTM{
		M:      dok.ToCSR(),
		Vocab:  vocab,
		Index:  index,
		DocIDs: keep,
	}

	return d, nil
}
