// Package planner defines the planner type, configuration options, and
// sentinel errors for navigation-function planning.
package planner

import (
	"errors"

	"github.com/katalvlaran/navfield/costmap"
)

// PotHigh is the sentinel potential of an unreached cell. Any finite
// cost-to-goal is far below it.
const PotHigh float32 = 1.0e10

// DefaultPriorityBufSize is the capacity of each of the three scheduler
// buckets. An enqueue into a full bucket is silently dropped; the dropped
// cell is revisited when a neighbour is re-relaxed.
const DefaultPriorityBufSize = 10000

// DefaultPathStep is the gradient-descent step size in cells. Half a cell
// keeps the interpolation stencil from jumping past a potential minimum.
const DefaultPathStep float32 = 0.5

// invSqrt2 scales a neighbour's cost into a conservative estimate of how
// much its potential could still drop after a relaxation.
const invSqrt2 = 0.70710678118654752440

// Sentinel errors returned by planner construction, setters and PlanAstar.
var (
	// ErrBadDimensions indicates a planner smaller than 3×3.
	ErrBadDimensions = errors.New("planner: grid must be at least 3x3")
	// ErrOutOfBounds indicates a goal or start cell outside the grid.
	ErrOutOfBounds = errors.New("planner: cell outside grid bounds")
	// ErrSizeMismatch indicates a cost source whose dimensions differ from the planner's.
	ErrSizeMismatch = errors.New("planner: cost source does not match planner dimensions")
	// ErrUnreachableGoal indicates propagation ended with the start cell unreached.
	ErrUnreachableGoal = errors.New("planner: goal unreachable from start")
	// ErrNoPath indicates the potential field was computed but gradient
	// descent could not trace a path (flat field, sealed border, or an
	// unreached pocket around the tracer).
	ErrNoPath = errors.New("planner: no path extracted from potential field")
)

// Point is one sub-cell path waypoint, in cell units. X grows rightward,
// Y grows downward, origin at cell (0,0).
type Point struct {
	X, Y float32
}

// Stats reports diagnostics of the most recent propagation and extraction.
type Stats struct {
	// Cycles is the number of scheduler rotations performed.
	Cycles int
	// CellsVisited counts cells drained from the current bucket, including
	// re-expansions.
	CellsVisited int
	// MaxBucketFill is the largest current-bucket size observed.
	MaxBucketFill int
	// LethalCells is the obstacle count of the sealed grid.
	LethalCells int
	// GridFallbacks counts path-extraction steps that fell back to
	// grid-following (high potential nearby or oscillation detected).
	GridFallbacks int
}

// Options configures a Planner at construction time.
//
// PriorityIncrement – per-rotation threshold advance of the bucket
// scheduler. Larger values admit more cells per level (faster, less
// ordered); the default 2·CostNeutral matches one free-space step in each
// axis direction.
//
// PathStep – gradient-descent step size in cells, in (0, 1].
//
// PriorityBufSize – capacity of each scheduler bucket.
type Options struct {
	PriorityIncrement float32
	PathStep          float32
	PriorityBufSize   int
}

// Option is a functional option for configuring a Planner.
type Option func(*Options)

// WithPriorityIncrement sets the scheduler threshold increment.
// Non-positive values are ignored and the default is kept.
func WithPriorityIncrement(inc float32) Option {
	return func(o *Options) {
		if inc > 0 {
			o.PriorityIncrement = inc
		}
	}
}

// WithPathStep sets the gradient-descent step size in cells.
// Values outside (0, 1] are ignored and the default is kept.
func WithPathStep(step float32) Option {
	return func(o *Options) {
		if step > 0 && step <= 1 {
			o.PathStep = step
		}
	}
}

// WithPriorityBufSize sets the scheduler bucket capacity.
// Values below 1 are ignored and the default is kept.
func WithPriorityBufSize(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.PriorityBufSize = n
		}
	}
}

// DefaultOptions returns the option set used when no Option overrides it:
// PriorityIncrement 2·CostNeutral, PathStep 0.5, PriorityBufSize 10000.
func DefaultOptions() Options {
	return Options{
		PriorityIncrement: 2 * costmap.CostNeutral,
		PathStep:          DefaultPathStep,
		PriorityBufSize:   DefaultPriorityBufSize,
	}
}
