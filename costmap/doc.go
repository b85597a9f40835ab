// Package costmap builds and maintains the traversal-cost grids consumed by
// the potential-field planner.
//
// What:
//
//   - Grid wraps a rectangular, row-major []uint8 cost field.
//   - FromCostField translates a structured navigation cost field
//     (0–255, with reserved obstacle/unknown codes) into planner costs.
//   - FromImage translates a raw monochrome image, forcing a wide lethal
//     frame so noisy image borders never admit a wavefront.
//   - Seal forces the outer one-cell ring lethal, so four-neighbour reads
//     inside the grid never need bounds checks.
//
// Why:
//
//   - The planner's hot loops index neighbours as n±1 and n±W with no
//     bounds checks; a sealed frame makes that safe.
//   - Incoming cost conventions differ (inflated costmaps vs. plain
//     images); translation normalises both into one scale where
//     CostNeutral is free space and CostObstacle is lethal.
//
// Translation, for each input value v:
//
//   - v < CostObstacleInflated: cost = min(CostNeutral + CostFactor·v, CostObstacle−1)
//   - v == CostUnknown (raw image input, or structured input with unknown allowed): CostObstacle−1
//   - otherwise: CostObstacle
//
// Complexity:
//
//   - FromCostField / FromImage: O(W×H) time, O(W×H) memory.
//   - Seal: O(W+H) time, O(1) memory.
//   - CountLethal: O(W×H) time, O(1) memory.
//   - At, Set, Index, Coordinate, InBounds: O(1).
//
// Errors:
//
//   - ErrBadDimensions: a grid needs at least 3×3 cells to hold a sealed
//     frame around any interior.
//   - ErrSizeMismatch: source slice length differs from W×H.
package costmap
