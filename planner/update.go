package planner

import (
	"math"

	"github.com/katalvlaran/navfield/costmap"
)

// updateCell recomputes the potential of interior cell n from its four
// axis neighbours and, if the value improved, queues any neighbour whose
// potential could still drop. No bounds checks: the sealed frame keeps n
// interior and lethal cells never reach the buckets.
//
// The new potential solves a discrete eikonal equation from the two
// lowest perpendicular neighbours. When their difference dc exceeds the
// local cost hf, the wavefront is nearly axis-parallel and a one-neighbour
// update ta+hf applies. Otherwise a quadratic in d = dc/hf approximates
// the exact two-neighbour solution (1+√(2−d²))/2 to within ≈0.003:
//
//	v = −0.2301·d² + 0.5307·d + 0.7040
func (p *Planner) updateCell(n int) {
	l := p.pot[n-1]
	r := p.pot[n+1]
	u := p.pot[n-p.width]
	d := p.pot[n+p.width]

	// lowest neighbour per axis
	var ta, tc float32
	if l < r {
		tc = l
	} else {
		tc = r
	}
	if u < d {
		ta = u
	} else {
		ta = d
	}

	if p.cost.Cells[n] >= costmap.CostObstacle {
		return // don't propagate into obstacles
	}
	hf := float32(p.cost.Cells[n])

	dc := tc - ta
	if dc < 0 { // ta is lowest
		dc = -dc
		ta = tc
	}

	var pot float32
	if dc >= hf { // wavefront almost axis-parallel, one-neighbour update
		pot = ta + hf
	} else { // two-neighbour quadratic interpolation
		dd := dc / hf
		v := -0.2301*dd*dd + 0.5307*dd + 0.7040
		pot = ta + hf*v
	}

	if pot >= p.pot[n] {
		return
	}

	// conservative per-neighbour relaxation margins
	le := invSqrt2 * float32(p.cost.Cells[n-1])
	re := invSqrt2 * float32(p.cost.Cells[n+1])
	ue := invSqrt2 * float32(p.cost.Cells[n-p.width])
	de := invSqrt2 * float32(p.cost.Cells[n+p.width])

	p.pot[n] = pot
	if pot < p.curT { // low-cost block
		if l > pot+le {
			p.push(n-1, &p.nextP)
		}
		if r > pot+re {
			p.push(n+1, &p.nextP)
		}
		if u > pot+ue {
			p.push(n-p.width, &p.nextP)
		}
		if d > pot+de {
			p.push(n+p.width, &p.nextP)
		}
	} else { // overflow block
		if l > pot+le {
			p.push(n-1, &p.overP)
		}
		if r > pot+re {
			p.push(n+1, &p.overP)
		}
		if u > pot+ue {
			p.push(n-p.width, &p.overP)
		}
		if d > pot+de {
			p.push(n+p.width, &p.overP)
		}
	}
}

// updateCellAstar is updateCell with one change: the bucket decision
// compares pot + h(n) against the threshold, where h(n) is the Euclidean
// distance to the start scaled by CostNeutral. The stored potential stays
// unbiased — the heuristic steers scheduling toward the start, never the
// field itself.
func (p *Planner) updateCellAstar(n int) {
	l := p.pot[n-1]
	r := p.pot[n+1]
	u := p.pot[n-p.width]
	d := p.pot[n+p.width]

	var ta, tc float32
	if l < r {
		tc = l
	} else {
		tc = r
	}
	if u < d {
		ta = u
	} else {
		ta = d
	}

	if p.cost.Cells[n] >= costmap.CostObstacle {
		return
	}
	hf := float32(p.cost.Cells[n])

	dc := tc - ta
	if dc < 0 {
		dc = -dc
		ta = tc
	}

	var pot float32
	if dc >= hf {
		pot = ta + hf
	} else {
		dd := dc / hf
		v := -0.2301*dd*dd + 0.5307*dd + 0.7040
		pot = ta + hf*v
	}

	if pot >= p.pot[n] {
		return
	}

	le := invSqrt2 * float32(p.cost.Cells[n-1])
	re := invSqrt2 * float32(p.cost.Cells[n+1])
	ue := invSqrt2 * float32(p.cost.Cells[n-p.width])
	de := invSqrt2 * float32(p.cost.Cells[n+p.width])

	// Euclidean bias toward the start, scheduling only
	x := n % p.width
	y := n / p.width
	dist := float32(math.Hypot(float64(x-p.startX), float64(y-p.startY))) * costmap.CostNeutral

	p.pot[n] = pot
	pot += dist
	if pot < p.curT {
		if l > pot+le {
			p.push(n-1, &p.nextP)
		}
		if r > pot+re {
			p.push(n+1, &p.nextP)
		}
		if u > pot+ue {
			p.push(n-p.width, &p.nextP)
		}
		if d > pot+de {
			p.push(n+p.width, &p.nextP)
		}
	} else {
		if l > pot+le {
			p.push(n-1, &p.overP)
		}
		if r > pot+re {
			p.push(n+1, &p.overP)
		}
		if u > pot+ue {
			p.push(n-p.width, &p.overP)
		}
		if d > pot+de {
			p.push(n+p.width, &p.overP)
		}
	}
}
