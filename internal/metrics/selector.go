//    ThemataGoEngine
//    Copyright: P Themelis 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package metrics

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/p-themelis/ThemataGoEngine/internal/dtm"
	"github.com/p-themelis/ThemataGoEngine/internal/lda"
)

// Record - one (k, metric, score) measurement from a sweep
type Record struct {
	K      int
	Metric string
	Score  float64
}

// SweepOptions - the candidate range and which curves to compute.
// Hyper.K is ignored: each candidate overrides it.
type SweepOptions struct {
	KFloor  int
	KCeil   int
	Metrics []string
	Workers int
	Hyper   lda.Hyperparameters
}

// Sweep - fit every candidate k and score it with every requested metric.
//
// The per-k fits share only the read-only matrix and run in parallel under a
// bounded errgroup. Each fit derives its own seed from the base seed and its
// k, so the table does not depend on the worker count. Records come back
// sorted by k, with metrics in the requested order.
func Sweep(ctx context.Context, d *dtm.DTM, opt SweepOptions) ([]Record, error) {
	n, _ := d.Dims()

	if opt.KFloor < 2 || opt.KCeil < opt.KFloor || opt.KCeil > n {
		return nil, fmt.Errorf("%w: candidate range [%d, %d] with %d documents",
			lda.ErrInvalidTopicCount, opt.KFloor, opt.KCeil, n)
	}

	names := opt.Metrics
	if len(names) == 0 {
		names = []string{MetricArun2010, MetricCaoJuan2009, MetricDeveaud2014}
	}
	for _, m := range names {
		switch m {
		case MetricArun2010, MetricCaoJuan2009, MetricDeveaud2014:
			// known
		default:
			return nil, fmt.Errorf("metrics: unknown metric %q", m)
		}
	}

	workers := opt.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	candidates := opt.KCeil - opt.KFloor + 1
	perk := make([][]Record, candidates)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < candidates; i++ {
		i := i
		k := opt.KFloor + i
		g.Go(func() error {
			hp := opt.Hyper
			hp.K = k
			hp.Seed = opt.Hyper.Seed + uint64(k)

			post, err := lda.Fit(gctx, d, hp)
			if err != nil {
				return fmt.Errorf("sweep at k=%d: %w", k, err)
			}

			rr := make([]Record, 0, len(names))
			for _, m := range names {
				var score float64
				switch m {
				case MetricArun2010:
					score = Arun2010(d, post)
				case MetricCaoJuan2009:
					score = CaoJuan2009(post)
				case MetricDeveaud2014:
					score = Deveaud2014(post)
				}
				rr = append(rr, Record{K: k, Metric: m, Score: score})
			}
			perk[i] = rr
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	table := make([]Record, 0, candidates*len(names))
	for _, rr := range perk {
		table = append(table, rr...)
	}

	return table, nil
}
