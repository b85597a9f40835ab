// Package navfield computes navigation functions over 2D cost grids and
// extracts smooth sub-cell paths from them.
//
// 🚀 What is navfield?
//
//	A focused, allocation-conscious planning library that brings together:
//		• Costmap ingestion: translate foreign cost fields or raw images into sealed grids
//		• Potential propagation: wavefront (eikonal) cost-to-goal fields, Dijkstra or A* ordered
//		• Bucket scheduling: approximate best-first expansion without a general heap
//		• Path extraction: bilinear gradient descent with oscillation recovery
//		• Visualisation: PGM dumps, HTML heatmaps, PNG potential profiles
//
// ✨ Why choose navfield?
//
//   - Buffer reuse – a planner instance keeps its potential, gradient and scheduler buffers across runs
//   - Predictable costs – O(W×H) propagation, O(path) extraction, no hidden queues
//   - Pure Go core – propagation and path extraction use only the standard library; field statistics use gonum
//   - Honest failure modes – unreachable goals and degenerate fields surface as values, not panics
//
// Everything is organized under three subpackages:
//
//	costmap/ — cost-grid construction, translation and sealing
//	planner/ — potential-field propagation and gradient-descent path extraction
//	viz/     — debug artefacts: map dumps, heatmaps, profiles
//
// Quick ASCII example, goal G and start S on a sealed grid:
//
//	####################
//	#..................#
//	#..S.....##........#
//	#........##...G....#
//	#..................#
//	####################
//
// The planner propagates a cost-to-goal potential outward from G, then
// follows the interpolated negative gradient from S down to G, producing
// sub-cell waypoints suitable for smooth robot motion.
//
// See costmap, planner and viz package docs for details.
package navfield
