package planner

import (
	"math"

	"github.com/katalvlaran/navfield/costmap"
)

// propagateDijkstra runs wavefront propagation breadth-first for at most
// cycles scheduler rotations, or until the buckets drain, or — when
// atStart is set — until the start cell acquires a finite potential.
// Reports whether propagation finished within the cycle budget.
//
// Per cycle: clear pending on the current bucket (its cells may be
// re-enqueued by their own neighbours), drain it through updateCell, swap
// current with next, and when the new current is empty advance the
// threshold and promote the overflow bucket.
func (p *Planner) propagateDijkstra(cycles int, atStart bool) bool {
	var (
		nwv int // max bucket fill
		nc  int // cells drained
	)
	startCell := p.startY*p.width + p.startX

	cycle := 0
	for ; cycle < cycles; cycle++ {
		if len(p.curP) == 0 && len(p.nextP) == 0 {
			break // priority blocks empty
		}

		nc += len(p.curP)
		if len(p.curP) > nwv {
			nwv = len(p.curP)
		}

		for _, n := range p.curP {
			p.pending[n] = false
		}
		for _, n := range p.curP {
			p.updateCell(n)
		}

		// rotate: current <-> next
		p.curP, p.nextP = p.nextP, p.curP[:0]

		if len(p.curP) == 0 { // done with this priority level
			p.curT += p.priInc
			p.curP, p.overP = p.overP, p.curP[:0]
		}

		if atStart && p.pot[startCell] < PotHigh {
			break
		}
	}

	p.stats.Cycles = cycle
	p.stats.CellsVisited = nc
	p.stats.MaxBucketFill = nwv

	return cycle < cycles
}

// propagateAstar runs wavefront propagation best-first for at most cycles
// rotations, always terminating early once the start cell is reached.
// The threshold is pre-seeded with the start-goal Euclidean distance so
// the first priority level already admits the heuristic-optimal corridor.
// Reports whether the start cell holds a finite potential on exit.
func (p *Planner) propagateAstar(cycles int) bool {
	var (
		nwv int
		nc  int
	)

	dist := float32(math.Hypot(float64(p.goalX-p.startX), float64(p.goalY-p.startY))) * costmap.CostNeutral
	p.curT += dist

	startCell := p.startY*p.width + p.startX

	cycle := 0
	for ; cycle < cycles; cycle++ {
		if len(p.curP) == 0 && len(p.nextP) == 0 {
			break
		}

		nc += len(p.curP)
		if len(p.curP) > nwv {
			nwv = len(p.curP)
		}

		for _, n := range p.curP {
			p.pending[n] = false
		}
		for _, n := range p.curP {
			p.updateCellAstar(n)
		}

		p.curP, p.nextP = p.nextP, p.curP[:0]

		if len(p.curP) == 0 {
			p.curT += p.priInc
			p.curP, p.overP = p.overP, p.curP[:0]
		}

		if p.pot[startCell] < PotHigh {
			break
		}
	}

	p.lastPathCost = p.pot[startCell]
	p.stats.Cycles = cycle
	p.stats.CellsVisited = nc
	p.stats.MaxBucketFill = nwv

	return p.pot[startCell] < PotHigh
}

// maxCycles is the propagation budget for a W×H grid.
func maxCycles(w, h int) int {
	c := w * h / 20
	if wh := w + h; wh > c {
		c = wh
	}

	return c
}
