//    ThemataGoEngine
//    Copyright: P Themelis 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/p-themelis/ThemataGoEngine/internal/analytics"
	"github.com/p-themelis/ThemataGoEngine/internal/dtm"
	"github.com/p-themelis/ThemataGoEngine/internal/lda"
	"github.com/p-themelis/ThemataGoEngine/internal/lnch"
	"github.com/p-themelis/ThemataGoEngine/internal/metrics"
	"github.com/p-themelis/ThemataGoEngine/internal/report"
	"github.com/p-themelis/ThemataGoEngine/internal/vv"
)

// runpipeline - tokenized corpus -> dtm -> (optional sweep) -> fit -> analytics -> report
func runpipeline(docs [][]string) {
	ctx := context.Background()

	start := time.Now()
	previous := time.Now()

	// a short tag so the artifacts of different runs do not clobber each other
	runid := strings.Split(uuid.New().String(), "-")[0]

	// [a] the matrix

	d, err := dtm.Build(docs, dtm.Bounds{Min: Config.MinDocFreq, Max: Config.MaxDocFreq})
	chke(err)

	n, v := d.Dims()
	messenger.Timer("A", fmt.Sprintf("document-term matrix built: %d rows x %d terms, %d tokens",
		n, v, int(d.TotalTokens())), start, previous)
	previous = time.Now()

	// [b] the sweep, if asked for: measurement only, the elbow is yours to pick

	if Config.Sweep {
		opt := metrics.SweepOptions{
			KFloor:  Config.KFloor,
			KCeil:   Config.KCeil,
			Metrics: Config.Metrics,
			Workers: Config.Workers,
			Hyper:   hyper(Config, 0),
		}
		table, err := metrics.Sweep(ctx, d, opt)
		chke(err)

		emit(fmt.Sprintf("metric curves for k in [%d, %d]", Config.KFloor, Config.KCeil), vv.MSGNOTE)
		report.MetricTable(os.Stdout, table)
		messenger.Timer("B", fmt.Sprintf("%d candidate fits scored", Config.KCeil-Config.KFloor+1), start, previous)
		previous = time.Now()
	}

	// [c] the final fit

	post, err := lda.Fit(ctx, d, hyper(Config, Config.KTopics))
	chke(err)
	messenger.Timer("C", fmt.Sprintf("gibbs fit at k=%d: %d sweeps averaged, log-likelihood %.2f",
		Config.KTopics, post.Sweeps, post.LogLikelihood), start, previous)
	previous = time.Now()

	// [d] posterior analytics

	tops := analytics.TopTerms(post.Beta, d.Vocab, Config.TopTerms)
	counter, scaled := analytics.TopicCensus(post.Gamma)
	dominant := analytics.DominantTopics(post.Gamma)

	clusters, err := analytics.KMeans(post.Gamma, Config.Clusters, Config.Seed)
	chke(err)

	report.TopicTable(os.Stdout, tops, counter, scaled, n)

	if Config.LogLevel >= vv.MSGFYI {
		report.ClusterTable(os.Stdout, d.DocIDs, clusters, dominant)
	}

	// [e] artifacts

	writecsv(fmt.Sprintf("%s/tge-%s-beta.csv", Config.OutDir, runid), func(f *os.File) error {
		return report.WriteBetaCSV(f, post.Beta, d.Vocab)
	})
	writecsv(fmt.Sprintf("%s/tge-%s-gamma.csv", Config.OutDir, runid), func(f *os.File) error {
		return report.WriteGammaCSV(f, post.Gamma, d.DocIDs)
	})

	if Config.Graph {
		writegraph(Config, d, post, dominant, runid)
	}

	messenger.Timer("D", "analytics and artifacts done", start, previous)
}

// hyper - translate the launch configuration into sampler hyperparameters
func hyper(cfg lnch.CurrentConfiguration, k int) lda.Hyperparameters {
	return lda.Hyperparameters{
		K:          k,
		Alpha:      cfg.Alpha,
		Eta:        cfg.Eta,
		Iterations: cfg.Iterations,
		BurnIn:     cfg.BurnIn,
		Seed:       cfg.Seed,
	}
}

// writegraph - scatter the documents in 2D, colored by dominant topic
func writegraph(cfg lnch.CurrentConfiguration, d *dtm.DTM, post *lda.Posterior, dominant []int, runid string) {
	const (
		TITLE = "topic model of %d documents (k=%d)"
	)

	var coords *mat.Dense
	var sub string
	if cfg.TSNE {
		coords = analytics.TSNE2D(post.Gamma)
		sub = "t-SNE projection of the document-topic matrix"
	} else {
		var err error
		coords, err = analytics.PCA2D(post.Gamma)
		chke(err)
		sub = "top-2 principal components of the document-topic matrix"
	}

	n, _ := d.Dims()
	name := fmt.Sprintf("%s/tge-%s-scatter.html", cfg.OutDir, runid)

	f, err := os.Create(name)
	chke(err)
	defer f.Close()

	chke(report.Scatter(f, coords, dominant, cfg.KTopics, fmt.Sprintf(TITLE, n, cfg.KTopics), sub))
	emit(fmt.Sprintf("wrote '%s'", name), vv.MSGNOTE)
}

// writecsv - create, fill, close; any failure is fatal like every other artifact
func writecsv(name string, fill func(*os.File) error) {
	f, err := os.Create(name)
	chke(err)
	defer f.Close()
	chke(fill(f))
	emit(fmt.Sprintf("wrote '%s'", name), vv.MSGNOTE)
}
