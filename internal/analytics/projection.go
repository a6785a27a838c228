//    ThemataGoEngine
//    Copyright: P Themelis 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package analytics

import (
	"errors"

	"github.com/danaugrs/go-tsne/tsne"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ErrProjectionFailed - the decomposition behind a projection did not converge
var ErrProjectionFailed = errors.New("analytics: projection failed")

// PCA2D - project the rows of gamma onto their top-2 principal components.
//
// Columns are standardized (zero mean, unit variance; a constant column stays
// zero) and the components come from an SVD of the standardized matrix, which
// is the eigen-decomposition of its correlation structure. No randomness: the
// coordinates are a pure function of gamma.
func PCA2D(gamma *mat.Dense) (*mat.Dense, error) {
	n, k := gamma.Dims()

	x := mat.NewDense(n, k, nil)
	col := make([]float64, n)
	for j := 0; j < k; j++ {
		mat.Col(col, j, gamma)
		mean, std := stat.MeanStdDev(col, nil)
		for i := 0; i < n; i++ {
			if std > 0 {
				x.Set(i, j, (col[i]-mean)/std)
			}
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDThin); !ok {
		return nil, ErrProjectionFailed
	}

	var v mat.Dense
	svd.VTo(&v)

	pc := mat.NewDense(k, 2, nil)
	for j := 0; j < k; j++ {
		pc.Set(j, 0, v.At(j, 0))
		pc.Set(j, 1, v.At(j, 1))
	}

	coords := mat.NewDense(n, 2, nil)
	coords.Mul(x, pc)

	return coords, nil
}

// TSNE2D - t-SNE embedding of gamma for the report graphics.
//
// Unlike PCA2D this is stochastic and carries no reproducibility guarantee;
// it exists because small clusters that PCA flattens tend to separate nicely
// under t-SNE.
func TSNE2D(gamma *mat.Dense) *mat.Dense {
	const (
		PERPLEX = 150 // default 300
		LEARNRT = 100 // default 100
		MAXITER = 150 // default 300
		VERBOSE = false
	)

	t := tsne.NewTSNE(2, PERPLEX, LEARNRT, MAXITER, VERBOSE)
	t.EmbedData(gamma, nil)
	return t.Y
}
