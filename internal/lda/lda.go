//    ThemataGoEngine
//    Copyright: P Themelis 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

// Package lda estimates a Latent Dirichlet Allocation model over a
// document-term matrix via collapsed Gibbs sampling. Every token occurrence
// carries a latent topic label; three count tables (document-topic,
// topic-term, topic-total) are maintained incrementally as labels are
// resampled. The post-burn-in sweeps are averaged into the posterior
// topic-term (beta) and document-topic (gamma) distributions.
package lda

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/p-themelis/ThemataGoEngine/internal/dtm"
	"github.com/p-themelis/ThemataGoEngine/internal/vv"
)

var (
	// ErrInvalidTopicCount - k < 2 or k > number of documents
	ErrInvalidTopicCount = errors.New("lda: invalid topic count")
	// ErrInvalidHyperparameter - non-positive priors or inconsistent sweep counts
	ErrInvalidHyperparameter = errors.New("lda: invalid hyperparameter")
	// ErrCancelled - the fit was interrupted between sweeps
	ErrCancelled = errors.New("lda: fit cancelled")
)

// Hyperparameters - everything a Gibbs fit needs besides the matrix itself
type Hyperparameters struct {
	K          int     // number of topics
	Alpha      float64 // symmetric Dirichlet prior on document-topic weights
	Eta        float64 // symmetric Dirichlet prior on topic-term weights
	Iterations int     // total sweeps over every token occurrence
	BurnIn     int     // leading sweeps discarded before averaging
	Seed       uint64
}

// Defaults - the stock hyperparameters for k topics
func Defaults(k int) Hyperparameters {
	return Hyperparameters{
		K:          k,
		Alpha:      vv.DEFAULTALPHA,
		Eta:        vv.DEFAULTETA,
		Iterations: vv.DEFAULTITERATIONS,
		BurnIn:     vv.DEFAULTBURNIN,
		Seed:       vv.DEFAULTSEED,
	}
}

// validate - reject impossible requests before any allocation happens
func (hp Hyperparameters) validate(ndocs int) error {
	if hp.K < 2 || hp.K > ndocs {
		return fmt.Errorf("%w: k=%d with %d documents (want 2 <= k <= %d)",
			ErrInvalidTopicCount, hp.K, ndocs, ndocs)
	}
	if hp.Alpha <= 0 || hp.Eta <= 0 {
		return fmt.Errorf("%w: alpha=%v eta=%v (both must be > 0)",
			ErrInvalidHyperparameter, hp.Alpha, hp.Eta)
	}
	if hp.BurnIn < 0 || hp.Iterations <= hp.BurnIn {
		return fmt.Errorf("%w: iterations=%d burnin=%d (need iterations > burnin >= 0)",
			ErrInvalidHyperparameter, hp.Iterations, hp.BurnIn)
	}
	return nil
}

// Posterior - one fit's estimate of the latent structure.
// Both matrices are row-stochastic: Beta rows are term distributions per
// topic (k x V), Gamma rows are topic distributions per document (N x k).
type Posterior struct {
	Beta          *mat.Dense
	Gamma         *mat.Dense
	LogLikelihood float64 // token-level posterior log-likelihood
	Sweeps        int     // post-burn-in sweeps behind the average
}

// sampler - the mutable count-table state owned by a single fit
type sampler struct {
	k, n, v int

	alpha, eta float64

	// one entry per token occurrence, in fixed row-major traversal order
	docs  []int
	words []int
	z     []int

	ndk []int // document-topic counts, n*k
	nkw []int // topic-term counts, k*v
	nk  []int // topic totals, k
	nd  []int // document lengths, n

	thetaacc []float64 // accumulated smoothed gamma, n*k
	phiacc   []float64 // accumulated smoothed beta, k*v

	probs []float64 // scratch for the conditional distribution
	rng   *rand.Rand
}

// Fit - run a collapsed Gibbs fit of k topics over the matrix.
//
// Identical matrix, hyperparameters and seed yield bit-identical output.
// Cancellation is cooperative and checked between sweeps: if at least one
// post-burn-in sweep has been accumulated the partial posterior is returned
// alongside ErrCancelled, otherwise the posterior is nil.
func Fit(ctx context.Context, d *dtm.DTM, hp Hyperparameters) (*Posterior, error) {
	n, _ := d.Dims()

	if err := hp.validate(n); err != nil {
		return nil, err
	}

	s := newsampler(d, hp)
	s.init()

	for sweep := 0; sweep < hp.Iterations; sweep++ {
		if err := ctx.Err(); err != nil {
			if s.sweepsaccumulated() > 0 {
				return s.posterior(d), fmt.Errorf("%w after %d of %d sweeps: %v",
					ErrCancelled, sweep, hp.Iterations, err)
			}
			return nil, fmt.Errorf("%w before burn-in completed: %v", ErrCancelled, err)
		}

		s.sweep()

		if sweep >= hp.BurnIn {
			s.accumulate()
		}
	}

	return s.posterior(d), nil
}

// newsampler - allocate the count tables and expand the matrix into token occurrences
func newsampler(d *dtm.DTM, hp Hyperparameters) *sampler {
	n, v := d.Dims()

	s := &sampler{
		k:        hp.K,
		n:        n,
		v:        v,
		alpha:    hp.Alpha,
		eta:      hp.Eta,
		ndk:      make([]int, n*hp.K),
		nkw:      make([]int, hp.K*v),
		nk:       make([]int, hp.K),
		nd:       make([]int, n),
		thetaacc: make([]float64, n*hp.K),
		phiacc:   make([]float64, hp.K*v),
		probs:    make([]float64, hp.K),
		rng:      rand.New(rand.NewSource(hp.Seed)),
	}

	// impose row-major, ascending-column order on the stored cells before
	// expanding them: the sparse library does not promise an iteration order,
	// and the traversal must be a pure function of the matrix contents
	type cell struct{ row, col, count int }
	var cells []cell
	d.M.DoNonZero(func(i, j int, val float64) {
		cells = append(cells, cell{row: i, col: j, count: int(val)})
	})
	sort.Slice(cells, func(a, b int) bool {
		if cells[a].row != cells[b].row {
			return cells[a].row < cells[b].row
		}
		return cells[a].col < cells[b].col
	})

	for _, c := range cells {
		for r := 0; r < c.count; r++ {
			s.docs = append(s.docs, c.row)
			s.words = append(s.words, c.col)
		}
	}
	s.z = make([]int, len(s.docs))

	return s
}

// init - uniformly random topic labels and count tables consistent with them
func (s *sampler) init() {
	for i := range s.z {
		t := s.rng.Intn(s.k)
		s.z[i] = t
		d := s.docs[i]
		w := s.words[i]
		s.ndk[d*s.k+t]++
		s.nkw[t*s.v+w]++
		s.nk[t]++
		s.nd[d]++
	}
}

// sweep - resample every token occurrence once
func (s *sampler) sweep() {
	veta := float64(s.v) * s.eta

	for i := range s.z {
		d := s.docs[i]
		w := s.words[i]
		t := s.z[i]

		// remove the occurrence from the tables
		s.ndk[d*s.k+t]--
		s.nkw[t*s.v+w]--
		s.nk[t]--

		// p(t) ∝ (ndk + alpha) * (nkw + eta) / (nk + V*eta)
		var total float64
		for j := 0; j < s.k; j++ {
			p := (float64(s.ndk[d*s.k+j]) + s.alpha) *
				(float64(s.nkw[j*s.v+w]) + s.eta) /
				(float64(s.nk[j]) + veta)
			total += p
			s.probs[j] = total
		}

		// draw from the categorical distribution via its cumulative weights
		u := s.rng.Float64() * total
		t = s.k - 1
		for j := 0; j < s.k; j++ {
			if u < s.probs[j] {
				t = j
				break
			}
		}

		// add it back with its new label
		s.z[i] = t
		s.ndk[d*s.k+t]++
		s.nkw[t*s.v+w]++
		s.nk[t]++
	}
}

// accumulate - fold the current count tables into the posterior average.
// Dirichlet smoothing keeps every row a proper distribution: a topic with no
// assigned tokens contributes a uniform term row rather than zeros.
func (s *sampler) accumulate() {
	kalpha := float64(s.k) * s.alpha
	veta := float64(s.v) * s.eta

	for d := 0; d < s.n; d++ {
		denom := float64(s.nd[d]) + kalpha
		for t := 0; t < s.k; t++ {
			s.thetaacc[d*s.k+t] += (float64(s.ndk[d*s.k+t]) + s.alpha) / denom
		}
	}
	for t := 0; t < s.k; t++ {
		denom := float64(s.nk[t]) + veta
		for w := 0; w < s.v; w++ {
			s.phiacc[t*s.v+w] += (float64(s.nkw[t*s.v+w]) + s.eta) / denom
		}
	}
}

func (s *sampler) sweepsaccumulated() int {
	// nd is fixed after init, so track the average via the theta accumulator:
	// each accumulated sweep adds exactly 1.0 to every document row
	if s.n == 0 || s.k == 0 {
		return 0
	}
	var rowsum float64
	for t := 0; t < s.k; t++ {
		rowsum += s.thetaacc[t]
	}
	return int(math.Round(rowsum))
}

// posterior - average the accumulated sweeps and score the result
func (s *sampler) posterior(d *dtm.DTM) *Posterior {
	sweeps := s.sweepsaccumulated()

	gamma := mat.NewDense(s.n, s.k, nil)
	for dd := 0; dd < s.n; dd++ {
		for t := 0; t < s.k; t++ {
			gamma.Set(dd, t, s.thetaacc[dd*s.k+t]/float64(sweeps))
		}
	}

	beta := mat.NewDense(s.k, s.v, nil)
	for t := 0; t < s.k; t++ {
		for w := 0; w < s.v; w++ {
			beta.Set(t, w, s.phiacc[t*s.v+w]/float64(sweeps))
		}
	}

	post := &Posterior{
		Beta:   beta,
		Gamma:  gamma,
		Sweeps: sweeps,
	}
	post.LogLikelihood = loglikelihood(d, post)

	return post
}

// loglikelihood - token-level log p(w|d) under the averaged posterior
func loglikelihood(d *dtm.DTM, post *Posterior) float64 {
	const FLOOR = 1e-300

	k, _ := post.Beta.Dims()

	var ll float64
	d.M.DoNonZero(func(i, j int, val float64) {
		var p float64
		for t := 0; t < k; t++ {
			p += post.Gamma.At(i, t) * post.Beta.At(t, j)
		}
		if p < FLOOR {
			p = FLOOR
		}
		ll += val * math.Log(p)
	})

	return ll
}
