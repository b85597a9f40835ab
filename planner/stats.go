package planner

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FieldStats summarises the reached portion of the potential field.
type FieldStats struct {
	// Reached is the number of cells with a finite potential.
	Reached int
	// Min, Max and Mean are taken over reached cells only. For a
	// successful run Min is 0 at the goal.
	Min, Max, Mean float64
}

// PotentialStats scans the field once and returns summary statistics of
// all reached cells. Visualisers use Max to scale colour ramps; tests use
// Min and Reached as field invariants. Returns the zero FieldStats when
// nothing was reached.
// Complexity: O(W×H).
func (p *Planner) PotentialStats() FieldStats {
	vals := make([]float64, 0, p.size)
	for _, v := range p.pot {
		if v < PotHigh {
			vals = append(vals, float64(v))
		}
	}
	if len(vals) == 0 {
		return FieldStats{}
	}

	return FieldStats{
		Reached: len(vals),
		Min:     floats.Min(vals),
		Max:     floats.Max(vals),
		Mean:    stat.Mean(vals, nil),
	}
}
