//    ThemataGoEngine
//    Copyright: P Themelis 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

// Package analytics derives reportable structure from a fitted posterior:
// ranked terms per topic, a dominant-topic census, k-means clusters over the
// document-topic matrix, and 2D projections of it. Everything here is a pure
// function of beta/gamma; nothing re-runs the sampler.
package analytics

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// RankedTerm - a term and its probability under one topic
type RankedTerm struct {
	Term string
	Prob float64
}

// TopTerms - the n highest-probability terms for every topic row of beta.
// Ties break lexicographically so the listing is reproducible.
func TopTerms(beta *mat.Dense, vocab []string, n int) [][]RankedTerm {
	k, v := beta.Dims()

	if n > v {
		n = v
	}

	tops := make([][]RankedTerm, k)
	for t := 0; t < k; t++ {
		rr := make([]RankedTerm, v)
		for w := 0; w < v; w++ {
			rr[w] = RankedTerm{Term: vocab[w], Prob: beta.At(t, w)}
		}
		sort.Slice(rr, func(i, j int) bool {
			if rr[i].Prob != rr[j].Prob {
				return rr[i].Prob > rr[j].Prob
			}
			return rr[i].Term < rr[j].Term
		})
		tops[t] = rr[0:n]
	}

	return tops
}
