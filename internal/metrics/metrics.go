//    ThemataGoEngine
//    Copyright: P Themelis 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

// Package metrics scores candidate topic counts. Each metric is an
// independent pure function of one fitted model; the sweep in selector.go
// fits every candidate k and tabulates the curves. No ranking is imposed:
// picking the elbow/plateau belongs to whoever reads the table.
package metrics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/p-themelis/ThemataGoEngine/internal/dtm"
	"github.com/p-themelis/ThemataGoEngine/internal/lda"
)

const (
	// EPS keeps the divergences finite when a component is (numerically) zero
	EPS = 1e-12

	MetricArun2010    = "Arun2010"
	MetricCaoJuan2009 = "CaoJuan2009"
	MetricDeveaud2014 = "Deveaud2014"
)

// Arun2010 - symmetric KL divergence between the singular-value distribution
// of the topic-term matrix and the document-length-weighted topic distribution.
// Lower is better.
func Arun2010(d *dtm.DTM, post *lda.Posterior) float64 {
	k, _ := post.Beta.Dims()

	// [a] cm1: singular values of beta, as a distribution

	var svd mat.SVD
	ok := svd.Factorize(post.Beta, mat.SVDNone)
	if !ok {
		return math.NaN()
	}
	cm1 := svd.Values(nil)
	normalize(cm1)

	// [b] cm2: document lengths times gamma, as a distribution

	ll := d.DocLengths()
	cm2 := make([]float64, k)
	n, _ := post.Gamma.Dims()
	for i := 0; i < n; i++ {
		for t := 0; t < k; t++ {
			cm2[t] += ll[i] * post.Gamma.At(i, t)
		}
	}
	normalize(cm2)

	// gonum returns singular values descending; cm2 needs the same ordering
	sort.Sort(sort.Reverse(sort.Float64Slice(cm2)))

	return symmetrickl(cm1, cm2)
}

// CaoJuan2009 - average pairwise cosine similarity between topic-term rows.
// Lower (less topic overlap) is better.
func CaoJuan2009(post *lda.Posterior) float64 {
	k, v := post.Beta.Dims()

	norms := make([]float64, k)
	for t := 0; t < k; t++ {
		norms[t] = mat.Norm(post.Beta.RowView(t), 2)
	}

	var total float64
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			var dot float64
			for w := 0; w < v; w++ {
				dot += post.Beta.At(i, w) * post.Beta.At(j, w)
			}
			total += dot / (norms[i]*norms[j] + EPS)
		}
	}

	pairs := float64(k*(k-1)) / 2
	return total / pairs
}

// Deveaud2014 - average pairwise Jensen-Shannon divergence between topic-term
// rows, normalized to [0, 1]. Higher (more topic separation) is better.
func Deveaud2014(post *lda.Posterior) float64 {
	k, _ := post.Beta.Dims()

	var total float64
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			total += jensenshannon(post.Beta.RawRowView(i), post.Beta.RawRowView(j))
		}
	}

	pairs := float64(k*(k-1)) / 2
	return total / pairs
}

// normalize - scale a nonnegative vector so it sums to 1
func normalize(x []float64) {
	s := floats.Sum(x)
	if s == 0 {
		return
	}
	floats.Scale(1/s, x)
}

// symmetrickl - KL(p||q) + KL(q||p) with epsilon smoothing
func symmetrickl(p, q []float64) float64 {
	var d float64
	for i := range p {
		pi := p[i] + EPS
		qi := q[i] + EPS
		d += pi*math.Log(pi/qi) + qi*math.Log(qi/pi)
	}
	return d
}

// jensenshannon - JSD(p, q) / ln 2, so the result lives in [0, 1]
func jensenshannon(p, q []float64) float64 {
	var d float64
	for i := range p {
		pi := p[i] + EPS
		qi := q[i] + EPS
		m := (pi + qi) / 2
		d += 0.5*pi*math.Log(pi/m) + 0.5*qi*math.Log(qi/m)
	}
	return d / math.Ln2
}
