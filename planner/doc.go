// Package planner computes a navigation function — a scalar cost-to-goal
// potential field — over a sealed cost grid, and extracts a smooth
// sub-cell path from start to goal by gradient descent on that field.
//
// What:
//
//   - Planner owns all working buffers for one grid size and reuses its
//     potential, gradient, pending and bucket buffers across runs. Each
//     SetCostmap or SetCostGrid call builds a new cost grid.
//   - CalcDijkstra propagates the wavefront breadth-first; CalcAstar
//     biases expansion toward the start with a Euclidean heuristic.
//   - Path returns the extracted waypoints; LastPathCost reports the
//     potential at the start after the last A* run.
//   - PlanAstar is a one-shot convenience wrapping construction,
//     ingestion, planning and extraction.
//
// Why:
//
//   - A potential field gives every traversable cell its estimated cost
//     to the goal, so path following degrades gracefully: wherever the
//     robot ends up, descending the field still leads home.
//   - The quadratic two-neighbour update solves a discrete eikonal
//     equation, trading exact grid-shortest paths for a smooth wavefront
//     that gradient descent can follow between cells.
//
// Scheduling:
//
// Instead of a general priority heap, three index buckets (current, next,
// overflow) and a rising threshold approximate best-first order. A cell
// whose new priority stays under the threshold goes into next; one that
// overshoots goes into overflow and is processed after the threshold
// advances. One update can raise a neighbour's priority only by a bounded
// amount, which keeps the approximation tight. Bucket overflow drops the
// enqueue silently; dropped cells are re-relaxed via their neighbours.
//
// Complexity:
//
//   - Propagation: O(W×H) expansions in practice, each O(1); cycle budget
//     max(W×H/20, W+H).
//   - Path extraction: O(L) for a path of L waypoints, each step O(1).
//   - Memory: O(W×H), all owned by the Planner instance.
//
// Concurrency:
//
// A Planner is single-threaded state; concurrent planning requires one
// instance per goroutine, each owning its buffers.
//
// Errors:
//
//   - ErrBadDimensions, ErrOutOfBounds, ErrSizeMismatch: invalid setup.
//   - ErrUnreachableGoal, ErrNoPath: returned by PlanAstar; the Calc
//     methods report the same conditions as a false return.
package planner
