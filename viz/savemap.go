package viz

import (
	"fmt"
	"os"

	"github.com/katalvlaran/navfield/planner"
)

// SaveMap dumps the planner's cost grid and endpoints for offline
// inspection: <name>.txt holds two lines "Goal: gx gy" and "Start: sx sy",
// <name>.pgm holds the cost bytes as a binary P5 image with maxval 255.
// Complexity: O(W×H).
func SaveMap(p *planner.Planner, name string) error {
	gx, gy := p.Goal()
	sx, sy := p.Start()

	txt, err := os.Create(name + ".txt")
	if err != nil {
		return fmt.Errorf("viz: create %s.txt: %w", name, err)
	}
	_, err = fmt.Fprintf(txt, "Goal: %d %d\nStart: %d %d\n", gx, gy, sx, sy)
	if cerr := txt.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("viz: write %s.txt: %w", name, err)
	}

	g := p.Cost()
	pgm, err := os.Create(name + ".pgm")
	if err != nil {
		return fmt.Errorf("viz: create %s.pgm: %w", name, err)
	}
	_, err = fmt.Fprintf(pgm, "P5\n%d\n%d\n%d\n", g.Width, g.Height, 0xff)
	if err == nil {
		_, err = pgm.Write(g.Cells)
	}
	if cerr := pgm.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("viz: write %s.pgm: %w", name, err)
	}

	return nil
}
