// Package viz renders debug artefacts for navfield planners.
//
// What:
//
//   - SaveMap writes the classic dump pair: <name>.txt with the goal and
//     start cells, and <name>.pgm (binary P5) of the raw cost bytes.
//   - PotentialHeatmap / RenderHeatmap build an HTML heatmap of the
//     reached potential field (go-echarts).
//   - PathScatter overlays the extracted waypoints as an XY scatter.
//   - SavePotentialProfile plots the potential along one grid row to a
//     PNG (gonum/plot).
//
// Why:
//
//   - A potential field is hard to judge from numbers; a heatmap shows
//     wavefront shape, unreached pockets, and interpolation artefacts at
//     a glance.
//   - The PGM dump matches the format emitted by classic planner
//     debugging tools, so existing viewers keep working.
//
// Everything here is synchronous, off the planning hot path, and safe to
// call only between planning runs (it reads planner buffers).
package viz
