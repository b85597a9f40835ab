package planner

import (
	"github.com/katalvlaran/navfield/costmap"
)

// Planner owns every buffer needed to compute a navigation function over
// a fixed-size grid and trace a path down it. Construct with New, feed
// costs with SetCostmap or SetCostGrid, record endpoints with SetGoal and
// SetStart, then run CalcDijkstra or CalcAstar and read Path.
//
// A Planner is not safe for concurrent use.
type Planner struct {
	width, height, size int

	cost    *costmap.Grid
	pot     []float32 // estimated cost-to-goal; PotHigh = unreached
	pending []bool    // true iff the cell sits in some bucket
	gradx   []float32 // unit gradient; (0,0) = uncomputed
	grady   []float32

	// bucket scheduler
	curP, nextP, overP []int
	curT               float32 // priority threshold separating next from overflow
	priInc             float32 // per-rotation threshold increment

	goalX, goalY   int
	startX, startY int

	// path extraction
	pathx, pathy []float32
	pathStep     float32

	lastPathCost float32
	nobs         int
	stats        Stats
}

// New allocates a planner for a W×H grid. All buffers are sized here;
// replanning reuses them. Returns ErrBadDimensions if either dimension is
// below 3.
// Complexity: O(W×H) time and memory.
func New(w, h int, opts ...Option) (*Planner, error) {
	if w < 3 || h < 3 {
		return nil, ErrBadDimensions
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Planner{
		priInc:   cfg.PriorityIncrement,
		pathStep: cfg.PathStep,
		curP:     make([]int, 0, cfg.PriorityBufSize),
		nextP:    make([]int, 0, cfg.PriorityBufSize),
		overP:    make([]int, 0, cfg.PriorityBufSize),
	}
	p.alloc(w, h)

	return p, nil
}

// alloc (re)creates the per-cell arrays for the given dimensions.
func (p *Planner) alloc(w, h int) {
	p.width, p.height = w, h
	p.size = w * h
	p.cost = &costmap.Grid{Width: w, Height: h, Cells: make([]uint8, p.size)}
	for i := range p.cost.Cells {
		p.cost.Cells[i] = costmap.CostNeutral
	}
	p.cost.Seal()
	p.pot = make([]float32, p.size)
	p.pending = make([]bool, p.size)
	p.gradx = make([]float32, p.size)
	p.grady = make([]float32, p.size)
}

// Resize reallocates the cell arrays for new dimensions. The scheduler
// buckets and path buffers persist. Goal and start are reset to (0,0) and
// must be set again. Returns ErrBadDimensions if either dimension is
// below 3.
// Complexity: O(W×H).
func (p *Planner) Resize(w, h int) error {
	if w < 3 || h < 3 {
		return ErrBadDimensions
	}
	p.alloc(w, h)
	p.goalX, p.goalY = 0, 0
	p.startX, p.startY = 0, 0

	return nil
}

// SetCostmap translates a foreign W×H byte grid into the planner's cost
// grid. structured selects the structured-cost-field translation; false
// selects the raw-image translation (wide lethal frame, unknown always
// traversable). allowUnknown only applies to structured input.
// Returns ErrSizeMismatch if len(src) ≠ W×H.
// Complexity: O(W×H).
func (p *Planner) SetCostmap(src []uint8, structured, allowUnknown bool) error {
	if len(src) != p.size {
		return ErrSizeMismatch
	}
	var (
		g   *costmap.Grid
		err error
	)
	if structured {
		g, err = costmap.FromCostField(src, p.width, p.height, allowUnknown)
	} else {
		g, err = costmap.FromImage(src, p.width, p.height)
	}
	if err != nil {
		return err
	}
	p.cost = g

	return nil
}

// SetCostGrid copies an already-prepared grid into the planner. The input
// is deep-copied so the caller's grid stays untouched by re-sealing.
// Returns ErrSizeMismatch on dimension mismatch.
// Complexity: O(W×H).
func (p *Planner) SetCostGrid(g *costmap.Grid) error {
	if g.Width != p.width || g.Height != p.height {
		return ErrSizeMismatch
	}
	p.cost = g.Clone()

	return nil
}

// SetGoal records the goal cell. The potential field gives cost to reach
// this cell, so it is the wavefront origin.
// Returns ErrOutOfBounds if (x,y) lies outside the grid.
func (p *Planner) SetGoal(x, y int) error {
	if !p.cost.InBounds(x, y) {
		return ErrOutOfBounds
	}
	p.goalX, p.goalY = x, y

	return nil
}

// SetStart records the start cell, where path extraction begins.
// Returns ErrOutOfBounds if (x,y) lies outside the grid.
func (p *Planner) SetStart(x, y int) error {
	if !p.cost.InBounds(x, y) {
		return ErrOutOfBounds
	}
	p.startX, p.startY = x, y

	return nil
}

// setup resets all propagation state for a fresh run: potentials to
// PotHigh, gradients and pending flags to zero, cost frame re-sealed,
// buckets emptied with the threshold at CostObstacle, and the goal seeded
// at zero potential with its four axis neighbours queued.
func (p *Planner) setup() {
	for i := range p.pot {
		p.pot[i] = PotHigh
	}
	for i := range p.gradx {
		p.gradx[i] = 0
		p.grady[i] = 0
		p.pending[i] = false
	}

	p.cost.Seal()

	p.curP = p.curP[:0]
	p.nextP = p.nextP[:0]
	p.overP = p.overP[:0]
	p.curT = costmap.CostObstacle

	k := p.goalY*p.width + p.goalX
	p.pot[k] = 0
	p.push(k+1, &p.curP)
	p.push(k-1, &p.curP)
	p.push(k-p.width, &p.curP)
	p.push(k+p.width, &p.curP)

	p.nobs = p.cost.CountLethal()
	p.stats = Stats{LethalCells: p.nobs}
}

// Width returns the grid width in cells.
func (p *Planner) Width() int { return p.width }

// Height returns the grid height in cells.
func (p *Planner) Height() int { return p.height }

// Goal returns the recorded goal cell.
func (p *Planner) Goal() (x, y int) { return p.goalX, p.goalY }

// Start returns the recorded start cell.
func (p *Planner) Start() (x, y int) { return p.startX, p.startY }

// Cost exposes the planner's prepared cost grid. Treat it as read-only;
// mutating it between runs is allowed, but the outer ring is re-sealed on
// every Calc.
func (p *Planner) Cost() *costmap.Grid { return p.cost }

// Potential returns the cost-to-goal of cell (x,y) after the last run.
// PotHigh means unreached.
func (p *Planner) Potential(x, y int) float32 {
	return p.pot[y*p.width+x]
}

// Path returns the waypoints of the last extraction, in cell units. After
// a failed extraction it holds the partial trace up to the point of
// failure. The slice is freshly allocated; the caller may keep it.
func (p *Planner) Path() []Point {
	pts := make([]Point, len(p.pathx))
	for i := range p.pathx {
		pts[i] = Point{X: p.pathx[i], Y: p.pathy[i]}
	}

	return pts
}

// PathX returns the X coordinates of the last extracted path, in cell
// units. The slice is freshly allocated; the caller may keep it.
func (p *Planner) PathX() []float32 {
	out := make([]float32, len(p.pathx))
	copy(out, p.pathx)

	return out
}

// PathY returns the Y coordinates of the last extracted path, in cell
// units. The slice is freshly allocated; the caller may keep it.
func (p *Planner) PathY() []float32 {
	out := make([]float32, len(p.pathy))
	copy(out, p.pathy)

	return out
}

// PathLen returns the number of waypoints in the last extracted path.
func (p *Planner) PathLen() int { return len(p.pathx) }

// LastPathCost returns the potential at the start cell when the last A*
// propagation terminated. PotHigh means the start was never reached.
func (p *Planner) LastPathCost() float32 { return p.lastPathCost }

// LethalCount returns the obstacle count of the sealed grid at the last
// setup.
func (p *Planner) LethalCount() int { return p.nobs }

// Stats returns diagnostics of the most recent planning run.
func (p *Planner) Stats() Stats { return p.stats }
