package planner

import (
	"math"

	"github.com/katalvlaran/navfield/costmap"
)

// gradCell computes the unit downhill gradient at cell n, caching it in
// gradx/grady. Positive components point right and down. Returns the
// pre-normalisation magnitude: 0 for border rows or a flat cell, 1 for an
// already-cached cell.
//
// An unreached cell (potential at PotHigh, typically hugging an obstacle)
// gets a synthetic gradient of magnitude CostObstacle toward whichever
// axis neighbour is reachable, left and up taking precedence. Reached
// cells accumulate centred differences over their finite neighbours.
func (p *Planner) gradCell(n int) float32 {
	if p.gradx[n] != 0 || p.grady[n] != 0 { // already computed
		return 1
	}

	if n < p.width || n >= p.size-p.width { // border row, no stencil
		return 0
	}

	cv := p.pot[n]
	var dx, dy float32

	if cv >= PotHigh { // in an unreached pocket, point at reachable space
		if p.pot[n-1] < PotHigh {
			dx = -costmap.CostObstacle
		} else if p.pot[n+1] < PotHigh {
			dx = costmap.CostObstacle
		}
		if p.pot[n-p.width] < PotHigh {
			dy = -costmap.CostObstacle
		} else if p.pot[n+p.width] < PotHigh {
			dy = costmap.CostObstacle
		}
	} else { // centred differences, each side only if reached
		if p.pot[n-1] < PotHigh {
			dx += p.pot[n-1] - cv
		}
		if p.pot[n+1] < PotHigh {
			dx += cv - p.pot[n+1]
		}
		if p.pot[n-p.width] < PotHigh {
			dy += p.pot[n-p.width] - cv
		}
		if p.pot[n+p.width] < PotHigh {
			dy += cv - p.pot[n+p.width]
		}
	}

	norm := float32(math.Hypot(float64(dx), float64(dy)))
	if norm > 0 {
		inv := 1 / norm
		p.gradx[n] = inv * dx
		p.grady[n] = inv * dy
	}

	return norm
}
