package planner

// CalcDijkstra computes the navigation function breadth-first and extracts
// a path from start to goal. When stopAtStart is set, propagation halts as
// soon as the start cell is reached; otherwise the whole reachable field
// is filled (useful when many starts will share one goal field).
// Reports whether a path was extracted.
// Complexity: O(W×H) propagation, O(path) extraction.
func (p *Planner) CalcDijkstra(stopAtStart bool) bool {
	p.setup()

	p.propagateDijkstra(maxCycles(p.width, p.height), stopAtStart)

	return p.extractPath(p.size/2) > 0
}

// CalcAstar computes the navigation function best-first, biased toward the
// start, and extracts a path. Reports whether a path was extracted;
// LastPathCost then holds the start cell's potential.
// Complexity: O(corridor) propagation in the typical case, O(path)
// extraction.
func (p *Planner) CalcAstar() bool {
	p.setup()

	p.propagateAstar(maxCycles(p.width, p.height))

	return p.extractPath(4*p.width) > 0
}

// PlanAstar is a one-shot convenience: it allocates a planner, ingests a
// structured cost field, plans with CalcAstar, and returns the waypoints.
// Each call owns its buffers — callers that replan repeatedly on one grid
// size should hold a Planner instead.
//
// Returns ErrUnreachableGoal when propagation never reaches the start, and
// ErrNoPath when the field was computed but no path could be traced.
func PlanAstar(src []uint8, w, h int, goal, start [2]int, opts ...Option) ([]Point, error) {
	p, err := New(w, h, opts...)
	if err != nil {
		return nil, err
	}
	if err = p.SetCostmap(src, true, true); err != nil {
		return nil, err
	}
	if err = p.SetGoal(goal[0], goal[1]); err != nil {
		return nil, err
	}
	if err = p.SetStart(start[0], start[1]); err != nil {
		return nil, err
	}

	if p.CalcAstar() {
		return p.Path(), nil
	}
	if p.lastPathCost >= PotHigh {
		return nil, ErrUnreachableGoal
	}

	return nil, ErrNoPath
}
