//    ThemataGoEngine
//    Copyright: P Themelis 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

// Package report renders engine output for the CLI wrapper: terminal tables,
// csv dumps of the posterior matrices, and an html scatter of the 2D
// projection. Nothing in here feeds back into the engine.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/mat"

	"github.com/p-themelis/ThemataGoEngine/internal/analytics"
	"github.com/p-themelis/ThemataGoEngine/internal/metrics"
)

// MetricTable - the (k, metric, score) curves from a sweep, one row per k
func MetricTable(w io.Writer, rr []metrics.Record) {
	names := make([]string, 0, 3)
	seen := make(map[string]bool)
	for _, r := range rr {
		if !seen[r.Metric] {
			seen[r.Metric] = true
			names = append(names, r.Metric)
		}
	}

	scores := make(map[int]map[string]float64)
	var kk []int
	for _, r := range rr {
		if _, ok := scores[r.K]; !ok {
			scores[r.K] = make(map[string]float64)
			kk = append(kk, r.K)
		}
		scores[r.K][r.Metric] = r.Score
	}

	t := tablewriter.NewWriter(w)
	t.SetHeader(append([]string{"k"}, names...))
	for _, k := range kk {
		row := []string{strconv.Itoa(k)}
		for _, m := range names {
			row = append(row, fmt.Sprintf("%.6f", scores[k][m]))
		}
		t.Append(row)
	}
	t.Render()
}

// TopicTable - top terms plus the dominant-topic census for each topic
func TopicTable(w io.Writer, tops [][]analytics.RankedTerm, counter []int, scaled []float64, ndocs int) {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"topic", "top terms", "dominant in", "scaled weight"})
	for topic := range tops {
		ww := make([]string, len(tops[topic]))
		for i, rt := range tops[topic] {
			ww[i] = rt.Term
		}
		t.Append([]string{
			strconv.Itoa(topic + 1),
			strings.Join(ww, ", "),
			fmt.Sprintf("%d (%.2f%%)", counter[topic], float64(counter[topic])/float64(ndocs)*100),
			fmt.Sprintf("%.2f%%", scaled[topic]*100),
		})
	}
	t.Render()
}

// ClusterTable - cluster id and dominant topic per document
func ClusterTable(w io.Writer, docids []int, clusters []int, dominant []int) {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"document", "cluster", "dominant topic"})
	for i := range clusters {
		t.Append([]string{
			strconv.Itoa(docids[i]),
			strconv.Itoa(clusters[i]),
			strconv.Itoa(dominant[i] + 1),
		})
	}
	t.Render()
}

// WriteBetaCSV - (topic, term, probability) rows
func WriteBetaCSV(w io.Writer, beta *mat.Dense, vocab []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"topic", "term", "probability"}); err != nil {
		return err
	}
	k, v := beta.Dims()
	for t := 0; t < k; t++ {
		for j := 0; j < v; j++ {
			r := []string{
				strconv.Itoa(t),
				vocab[j],
				strconv.FormatFloat(beta.At(t, j), 'g', -1, 64),
			}
			if err := cw.Write(r); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteGammaCSV - (document, topic, probability) rows
func WriteGammaCSV(w io.Writer, gamma *mat.Dense, docids []int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"document", "topic", "probability"}); err != nil {
		return err
	}
	n, k := gamma.Dims()
	for d := 0; d < n; d++ {
		for t := 0; t < k; t++ {
			r := []string{
				strconv.Itoa(docids[d]),
				strconv.Itoa(t),
				strconv.FormatFloat(gamma.At(d, t), 'g', -1, 64),
			}
			if err := cw.Write(r); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
