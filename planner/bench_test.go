package planner_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/navfield/costmap"
	"github.com/katalvlaran/navfield/planner"
)

// benchMap builds a deterministic 200×200 source grid with scattered
// obstacles and free endpoint neighbourhoods.
func benchMap(w, h int) []uint8 {
	rng := rand.New(rand.NewSource(42))
	src := make([]uint8, w*h)
	for i := range src {
		if rng.Intn(25) == 0 {
			src[i] = costmap.CostObstacle
		}
	}
	for _, c := range [][2]int{{5, 5}, {w - 6, h - 6}} {
		for dy := -2; dy <= 2; dy++ {
			for dx := -2; dx <= 2; dx++ {
				src[(c[1]+dy)*w+c[0]+dx] = 0
			}
		}
	}

	return src
}

// BenchmarkCalcDijkstra measures full-field propagation plus extraction
// on a 200×200 grid, reusing one planner across iterations the way a
// navigation loop would.
func BenchmarkCalcDijkstra(b *testing.B) {
	const w, h = 200, 200
	p, err := planner.New(w, h)
	if err != nil {
		b.Fatal(err)
	}
	if err := p.SetCostmap(benchMap(w, h), true, true); err != nil {
		b.Fatal(err)
	}
	_ = p.SetGoal(w-6, h-6)
	_ = p.SetStart(5, 5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !p.CalcDijkstra(true) {
			b.Fatal("no path on benchmark map")
		}
	}
}

// BenchmarkCalcAstar measures heuristic-guided propagation on the same map.
func BenchmarkCalcAstar(b *testing.B) {
	const w, h = 200, 200
	p, err := planner.New(w, h)
	if err != nil {
		b.Fatal(err)
	}
	if err := p.SetCostmap(benchMap(w, h), true, true); err != nil {
		b.Fatal(err)
	}
	_ = p.SetGoal(w-6, h-6)
	_ = p.SetStart(5, 5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !p.CalcAstar() {
			b.Fatal("no path on benchmark map")
		}
	}
}
