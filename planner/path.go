package planner

import (
	"math"

	"github.com/katalvlaran/navfield/costmap"
)

// extractPath traces a polyline from the start cell down the potential
// field for at most limit steps, filling pathx/pathy. Returns the number
// of waypoints, or 0 on failure (sealed border hit, flat gradient,
// unreached 3×3 pocket, or step budget exhausted).
//
// The tracer keeps an integer cell stc — the upper-left corner of a 2×2
// interpolation stencil — plus a sub-cell offset (dx,dy) in [−1,1]²;
// whole-cell overshoots are carried into stc.
// Each step either descends the bilinearly interpolated gradient by
// pathStep cells, or, when high potentials crowd the 3×3 window or the
// path oscillates, falls back to hopping onto the cheapest of the nine
// surrounding cells.
func (p *Planner) extractPath(limit int) int {
	if cap(p.pathx) < limit {
		p.pathx = make([]float32, 0, limit)
		p.pathy = make([]float32, 0, limit)
	}
	p.pathx = p.pathx[:0]
	p.pathy = p.pathy[:0]

	stc := p.startY*p.width + p.startX
	var dx, dy float32

	for i := 0; i < limit; i++ {
		// near-goal test: potential below one neutral step means the goal
		// cell is adjacent; snap to it and finish
		nearest := stc + int(math.Round(float64(dx))) + p.width*int(math.Round(float64(dy)))
		if nearest < 0 {
			nearest = 0
		}
		if nearest > p.size-1 {
			nearest = p.size - 1
		}
		if p.pot[nearest] < costmap.CostNeutral {
			p.pathx = append(p.pathx, float32(p.goalX))
			p.pathy = append(p.pathy, float32(p.goalY))

			return len(p.pathx)
		}

		// sealed-border abort. The bound is one cell tighter than the
		// sealed ring itself so the 3×3 window and the 2×2 stencil below
		// stay in range.
		if stc < p.width+1 || stc > p.size-p.width-2 {
			return 0
		}

		p.pathx = append(p.pathx, float32(stc%p.width)+dx)
		p.pathy = append(p.pathy, float32(stc/p.width)+dy)

		// oscillation: same sub-cell position two steps apart
		oscillation := false
		np := len(p.pathx)
		if np > 2 &&
			p.pathx[np-1] == p.pathx[np-3] &&
			p.pathy[np-1] == p.pathy[np-3] {
			oscillation = true
		}

		stcnx := stc + p.width
		stcpx := stc - p.width

		if p.pot[stc] >= PotHigh ||
			p.pot[stc+1] >= PotHigh ||
			p.pot[stc-1] >= PotHigh ||
			p.pot[stcnx] >= PotHigh ||
			p.pot[stcnx+1] >= PotHigh ||
			p.pot[stcnx-1] >= PotHigh ||
			p.pot[stcpx] >= PotHigh ||
			p.pot[stcpx+1] >= PotHigh ||
			p.pot[stcpx-1] >= PotHigh ||
			oscillation {
			// grid-following fallback: hop onto the cheapest of the 3×3
			p.stats.GridFallbacks++
			minc := stc
			minp := p.pot[stc]
			for _, c := range [8]int{stcpx - 1, stcpx, stcpx + 1, stc - 1, stc + 1, stcnx - 1, stcnx, stcnx + 1} {
				if p.pot[c] < minp {
					minp = p.pot[c]
					minc = c
				}
			}
			stc = minc
			dx, dy = 0, 0

			if p.pot[stc] >= PotHigh { // whole window unreached
				return 0
			}

			continue
		}

		// good gradient: interpolate over the 2×2 stencil
		p.gradCell(stc)
		p.gradCell(stc + 1)
		p.gradCell(stcnx)
		p.gradCell(stcnx + 1)

		x1 := (1-dx)*p.gradx[stc] + dx*p.gradx[stc+1]
		x2 := (1-dx)*p.gradx[stcnx] + dx*p.gradx[stcnx+1]
		x := (1-dy)*x1 + dy*x2
		y1 := (1-dx)*p.grady[stc] + dx*p.grady[stc+1]
		y2 := (1-dx)*p.grady[stcnx] + dx*p.grady[stcnx+1]
		y := (1-dy)*y1 + dy*y2

		if x == 0 && y == 0 { // flat field away from the goal
			return 0
		}

		// advance pathStep cells along the gradient
		ss := p.pathStep / float32(math.Hypot(float64(x), float64(y)))
		dx += x * ss
		dy += y * ss

		// carry sub-cell overflow into the stencil corner
		if dx > 1 {
			stc++
			dx -= 1
		}
		if dx < -1 {
			stc--
			dx += 1
		}
		if dy > 1 {
			stc += p.width
			dy -= 1
		}
		if dy < -1 {
			stc -= p.width
			dy += 1
		}
	}

	return 0 // out of steps
}
