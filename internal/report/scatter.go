//    ThemataGoEngine
//    Copyright: P Themelis 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/mat"
)

// see https://echarts.apache.org/en/option.html#series-scatter

// Scatter - render the 2D projection as one scatter chart, one series per
// dominant topic so the legend doubles as a topic key
func Scatter(w io.Writer, coords *mat.Dense, dominant []int, ntopics int, title string, subtitle string) error {
	const (
		CHRTWIDTH  = "1200px"
		CHRTHEIGHT = "900px"
		SYMSIZE    = 12
		SERIESNAME = "topic %d"
	)

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: CHRTWIDTH, Height: CHRTHEIGHT, PageTitle: title}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Name: "C1", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "C2", Type: "value"}),
	)

	n, _ := coords.Dims()

	for t := 0; t < ntopics; t++ {
		var data []opts.ScatterData
		for d := 0; d < n; d++ {
			if dominant[d] != t {
				continue
			}
			data = append(data, opts.ScatterData{
				Value:      []interface{}{coords.At(d, 0), coords.At(d, 1)},
				Symbol:     "circle",
				SymbolSize: SYMSIZE,
			})
		}
		sc.AddSeries(fmt.Sprintf(SERIESNAME, t+1), data)
	}

	return sc.Render(w)
}
