package planner

import "github.com/katalvlaran/navfield/costmap"

// push enqueues cell n into the given bucket, guarded by bounds, the
// pending flag, and lethality. A full bucket drops the enqueue silently:
// the dropped cell is revisited when one of its neighbours is re-relaxed,
// so propagation still converges.
//
// The three buckets share this single entry point; callers pass &p.curP,
// &p.nextP or &p.overP.
func (p *Planner) push(n int, bucket *[]int) {
	if n < 0 || n >= p.size {
		return
	}
	if p.pending[n] || p.cost.Cells[n] >= costmap.CostObstacle {
		return
	}
	if len(*bucket) == cap(*bucket) {
		return
	}
	*bucket = append(*bucket, n)
	p.pending[n] = true
}
