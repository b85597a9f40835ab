package viz

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/navfield/planner"
)

// viridisRamp colours low potentials dark and high ones bright, so the
// goal sits in the darkest well of the map.
var viridisRamp = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// PotentialHeatmap builds an HTML heatmap of the reached potential field.
// Unreached cells (and obstacles) are left blank. The Y axis is flipped so
// the chart matches grid orientation: y grows downward in the grid,
// upward on screen.
// Complexity: O(W×H).
func PotentialHeatmap(p *planner.Planner, title string) *charts.HeatMap {
	w, h := p.Width(), p.Height()
	st := p.PotentialStats()

	data := make([]opts.HeatMapData, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := p.Potential(x, y)
			if v >= planner.PotHigh {
				continue
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{x, h - 1 - y, v}})
		}
	}

	xs := make([]string, w)
	for i := range xs {
		xs[i] = strconv.Itoa(i)
	}
	ys := make([]string, h)
	for i := range ys {
		ys[i] = strconv.Itoa(h - 1 - i)
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: xs}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: ys}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(st.Max),
			InRange:    &opts.VisualMapInRange{Color: viridisRamp},
		}),
	)
	hm.SetXAxis(xs).AddSeries("potential", data)

	return hm
}

// PathScatter builds an XY scatter of the last extracted path, in cell
// units with the Y axis flipped to match PotentialHeatmap.
func PathScatter(p *planner.Planner, title string) *charts.Scatter {
	h := p.Height()
	path := p.Path()

	data := make([]opts.ScatterData, 0, len(path))
	for _, pt := range path {
		data = append(data, opts.ScatterData{Value: []interface{}{pt.X, float32(h-1) - pt.Y}})
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0, Max: p.Width() - 1, Name: "x (cells)"}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: h - 1, Name: "y (cells)"}),
	)
	sc.AddSeries("path", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))

	return sc
}

// RenderHeatmap renders the potential heatmap page to w.
func RenderHeatmap(p *planner.Planner, title string, w io.Writer) error {
	return PotentialHeatmap(p, title).Render(w)
}
