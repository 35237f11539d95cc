package perf

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderComparisonChart writes an HTML line chart comparing BP-PQ, BP-CRT,
// and Fermat factorization time against reveal rate to w, replacing
// performance_test.py's matplotlib compare_algorithms plot with the
// browser-renderable equivalent go-echarts provides.
func RenderComparisonChart(w io.Writer, cmp Comparison) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "BP-PQ vs BP-CRT vs Fermat factorization",
			Subtitle: "time to recover (or fail to recover) a key, by reveal rate",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "reveal rate"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "time (ms)"}),
	)

	xAxis := make([]string, len(cmp.RevealRates))
	for i, rate := range cmp.RevealRates {
		xAxis[i] = fmt.Sprintf("%.2f", rate)
	}
	line.SetXAxis(xAxis)

	line.AddSeries("BP-PQ", toLineData(cmp.BPPQ))
	line.AddSeries("BP-CRT", toLineData(cmp.BPCRT))
	line.AddSeries("Fermat", toLineData(cmp.Fermat))

	return line.Render(w)
}

// toLineData converts timed Results to go-echarts line-data points, in
// milliseconds for chart readability.
func toLineData(results []Result) []opts.LineData {
	out := make([]opts.LineData, len(results))
	for i, r := range results {
		out[i] = opts.LineData{Value: float64(r.Elapsed.Microseconds()) / 1000.0}
	}

	return out
}
