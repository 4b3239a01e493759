// Package charts builds the portfolio figures (allocation donut, top-holdings
// bar, broker treemap, concentration curve) with go-echarts. Builders are
// pure functions from a computed fenn.Portfolio to a renderable figure;
// writing the HTML and opening a browser is a separate step (html.go).
package charts

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"fenn"
)

// Figure is anything go-echarts can render to HTML.
type Figure interface {
	Render(w io.Writer) error
}

// Allocation builds the donut chart of the topN highest-value holdings, the
// rest summed into the "Other Holdings" slice.
func Allocation(p *fenn.Portfolio, topN int) Figure {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Portfolio Allocation - Top %d Holdings + Other", topN),
			Subtitle: fmt.Sprintf("Total: %s", p.TotalValue),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Orient: "vertical", Right: "0"}),
	)

	items := make([]opts.PieData, 0, topN+1)
	for _, slice := range fenn.TopN(p, topN) {
		items = append(items, opts.PieData{Name: slice.Label, Value: slice.Value.AsFloat()})
	}
	pie.AddSeries("Holdings", items).SetSeriesOptions(
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "70%"}}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {d}%"}),
	)
	return pie
}

// TopHoldings builds the bar chart of the limit highest-value holdings.
func TopHoldings(p *fenn.Portfolio, limit int) Figure {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Top %d Holdings by Value", limit)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Value"}),
	)

	rows := fenn.AllocationView(p, 0)
	if len(rows) > limit {
		rows = rows[:limit]
	}
	labels := make([]string, 0, len(rows))
	items := make([]opts.BarData, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, row.Symbol)
		items = append(items, opts.BarData{
			Value:   row.Value.AsFloat(),
			Tooltip: &opts.Tooltip{Show: opts.Bool(true)},
		})
	}
	bar.SetXAxis(labels).AddSeries("Value", items)
	return bar
}

// BrokerTreemap builds the Portfolio -> broker -> symbol treemap using the
// equal-split broker distribution.
func BrokerTreemap(p *fenn.Portfolio) Figure {
	tm := charts.NewTreeMap()
	tm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Portfolio Distribution by Broker",
			Subtitle: fmt.Sprintf("Total: %s", p.TotalValue),
		}),
	)

	buckets := fenn.BrokerDistribution(p)
	nodes := make([]opts.TreeMapNode, 0, len(buckets))
	for _, bucket := range buckets {
		children := make([]opts.TreeMapNode, 0, len(bucket.Shares))
		for _, share := range bucket.Shares {
			children = append(children, opts.TreeMapNode{
				Name:  share.Symbol,
				Value: int(share.Value.AsFloat()),
			})
		}
		nodes = append(nodes, opts.TreeMapNode{
			Name:     bucket.Name,
			Value:    int(bucket.Total.AsFloat()),
			Children: children,
		})
	}
	tm.AddSeries("Portfolio", nodes).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}"}),
	)
	return tm
}

// Concentration builds the concentration curve: cumulative percent of
// portfolio value against the number of top holdings included.
func Concentration(p *fenn.Portfolio) Figure {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Portfolio Concentration Curve"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Holdings"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Cumulative %", Max: 105}),
	)

	points := fenn.ConcentrationCurve(p)
	ranks := make([]int, 0, len(points))
	items := make([]opts.LineData, 0, len(points))
	for _, pt := range points {
		ranks = append(ranks, pt.Rank)
		items = append(items, opts.LineData{Value: float64(pt.Cumulative), Name: pt.Symbol})
	}
	line.SetXAxis(ranks).AddSeries("Cumulative Allocation", items).SetSeriesOptions(
		charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(0.2)}),
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false)}),
	)
	return line
}
