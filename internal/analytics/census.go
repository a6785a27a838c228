//    ThemataGoEngine
//    Copyright: P Themelis 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package analytics

import (
	"gonum.org/v1/gonum/mat"
)

// DominantTopics - for each document the topic its gamma row peaks on
func DominantTopics(gamma *mat.Dense) []int {
	n, k := gamma.Dims()

	winners := make([]int, n)
	for d := 0; d < n; d++ {
		max := float64(0)
		winner := 0
		for t := 0; t < k; t++ {
			if gamma.At(d, t) > max {
				winner = t
				max = gamma.At(d, t)
			}
		}
		winners[d] = winner
	}
	return winners
}

// TopicCensus - per topic: how many documents have it as their dominant
// topic, and its accumulated weight scaled against the heaviest topic
func TopicCensus(gamma *mat.Dense) ([]int, []float64) {
	n, k := gamma.Dims()

	counter := make([]int, k)
	for _, w := range DominantTopics(gamma) {
		counter[w] += 1
	}

	weight := make([]float64, k)
	for d := 0; d < n; d++ {
		for t := 0; t < k; t++ {
			weight[t] += gamma.At(d, t)
		}
	}

	high := float64(0)
	for _, w := range weight {
		if w > high {
			high = w
		}
	}

	scaled := make([]float64, k)
	for t := 0; t < k; t++ {
		scaled[t] = weight[t] / high
	}

	return counter, scaled
}

// TopDocs - for each topic the document most associated with it and the score
func TopDocs(gamma *mat.Dense) ([]int, []float64) {
	n, k := gamma.Dims()

	docs := make([]int, k)
	scores := make([]float64, k)
	for t := 0; t < k; t++ {
		max := float64(0)
		winner := 0
		for d := 0; d < n; d++ {
			if gamma.At(d, t) > max {
				winner = d
				max = gamma.At(d, t)
			}
		}
		docs[t] = winner
		scores[t] = max
	}

	return docs, scores
}
