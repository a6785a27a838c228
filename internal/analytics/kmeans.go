//    ThemataGoEngine
//    Copyright: P Themelis 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package analytics

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// ErrInvalidClusterCount - c < 1 or c > number of documents
var ErrInvalidClusterCount = errors.New("analytics: invalid cluster count")

const KMEANSMAXROUNDS = 100

// KMeans - partition the rows of gamma into c clusters via Lloyd's algorithm
// with k-means++ seeding. The generator is seeded explicitly and assignment
// ties break toward the lower centroid index, so a given (gamma, c, seed)
// always yields the same ids.
func KMeans(gamma *mat.Dense, c int, seed uint64) ([]int, error) {
	n, dim := gamma.Dims()

	if c < 1 || c > n {
		return nil, fmt.Errorf("%w: c=%d with %d documents (want 1 <= c <= %d)",
			ErrInvalidClusterCount, c, n, n)
	}

	rng := rand.New(rand.NewSource(seed))

	// [a] k-means++ seeding: spread the initial centroids out; a point already
	// chosen has zero distance and cannot be chosen twice

	centroids := make([][]float64, c)
	centroids[0] = mat.Row(nil, rng.Intn(n), gamma)

	d2 := make([]float64, n)
	for i := 1; i < c; i++ {
		var total float64
		for p := 0; p < n; p++ {
			best := math.Inf(1)
			row := gamma.RawRowView(p)
			for j := 0; j < i; j++ {
				if d := sqdist(row, centroids[j]); d < best {
					best = d
				}
			}
			d2[p] = best
			total += best
		}

		if total == 0 {
			// all remaining points coincide with a centroid; take the first
			// point not yet serving as one. The fallback is a copy, never a
			// shared backing array: Lloyd updates write through centroids
			centroids[i] = append([]float64(nil), centroids[0]...)
			for p := 0; p < n; p++ {
				if !iscentroid(gamma.RawRowView(p), centroids[:i]) {
					centroids[i] = mat.Row(nil, p, gamma)
					break
				}
			}
			continue
		}

		u := rng.Float64() * total
		var cum float64
		pick := n - 1
		for p := 0; p < n; p++ {
			cum += d2[p]
			if u < cum {
				pick = p
				break
			}
		}
		centroids[i] = mat.Row(nil, pick, gamma)
	}

	// [b] Lloyd rounds until the assignment settles

	assign := make([]int, n)
	for round := 0; round < KMEANSMAXROUNDS; round++ {
		changed := false
		for p := 0; p < n; p++ {
			row := gamma.RawRowView(p)
			best := 0
			bestd := math.Inf(1)
			for j := 0; j < c; j++ {
				if d := sqdist(row, centroids[j]); d < bestd {
					bestd = d
					best = j
				}
			}
			if assign[p] != best {
				assign[p] = best
				changed = true
			}
		}

		if !changed && round > 0 {
			break
		}

		// recompute; an emptied cluster keeps its old centroid
		sums := make([][]float64, c)
		counts := make([]int, c)
		for j := range sums {
			sums[j] = make([]float64, dim)
		}
		for p := 0; p < n; p++ {
			j := assign[p]
			row := gamma.RawRowView(p)
			for q := 0; q < dim; q++ {
				sums[j][q] += row[q]
			}
			counts[j]++
		}
		for j := 0; j < c; j++ {
			if counts[j] == 0 {
				continue
			}
			for q := 0; q < dim; q++ {
				centroids[j][q] = sums[j][q] / float64(counts[j])
			}
		}
	}

	return assign, nil
}

func sqdist(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}

func iscentroid(row []float64, centroids [][]float64) bool {
	for _, c := range centroids {
		if sqdist(row, c) == 0 {
			return true
		}
	}
	return false
}
