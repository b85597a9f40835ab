package viz

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/navfield/planner"
)

// SavePotentialProfile plots the potential along grid row y as a line and
// saves it as a PNG. Unreached cells leave gaps in the x range. Useful for
// eyeballing the quadratic update: a uniform-cost row should show a
// near-linear ramp away from the goal column.
func SavePotentialProfile(p *planner.Planner, y int, filename string) error {
	if y < 0 || y >= p.Height() {
		return fmt.Errorf("viz: row %d outside grid of height %d", y, p.Height())
	}

	pts := make(plotter.XYs, 0, p.Width())
	for x := 0; x < p.Width(); x++ {
		v := p.Potential(x, y)
		if v >= planner.PotHigh {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(x), Y: float64(v)})
	}

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("potential along row %d", y)
	pl.X.Label.Text = "x (cells)"
	pl.Y.Label.Text = "potential"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("viz: build profile line: %w", err)
	}
	line.Width = vg.Points(1)
	pl.Add(line, plotter.NewGrid())

	if err := pl.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("viz: save %s: %w", filename, err)
	}

	return nil
}
