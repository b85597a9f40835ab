// Package costmap_test verifies cost translation, sealing, and the grid
// helpers.
package costmap_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navfield/costmap"
)

//----------------------------------------------------------------------------//
// Construction and validation
//----------------------------------------------------------------------------//

func TestNew_Errors(t *testing.T) {
	cases := [][2]int{{0, 0}, {2, 3}, {3, 2}}
	for _, wh := range cases {
		if _, err := costmap.New(wh[0], wh[1]); !errors.Is(err, costmap.ErrBadDimensions) {
			t.Errorf("New(%d,%d) error = %v; want ErrBadDimensions", wh[0], wh[1], err)
		}
	}
}

func TestNew_NeutralAndSealed(t *testing.T) {
	g, err := costmap.New(5, 4)
	require.NoError(t, err)

	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			want := uint8(costmap.CostNeutral)
			if x == 0 || x == 4 || y == 0 || y == 3 {
				want = costmap.CostObstacle
			}
			require.Equal(t, want, g.At(x, y), "cell (%d,%d)", x, y)
		}
	}
}

func TestFromCostField_Errors(t *testing.T) {
	_, err := costmap.FromCostField(make([]uint8, 4), 2, 2, true)
	require.ErrorIs(t, err, costmap.ErrBadDimensions)

	_, err = costmap.FromCostField(make([]uint8, 10), 4, 4, true)
	require.ErrorIs(t, err, costmap.ErrSizeMismatch)
}

//----------------------------------------------------------------------------//
// Translation rules
//----------------------------------------------------------------------------//

func TestFromCostField_Translation(t *testing.T) {
	const w, h = 10, 10
	src := make([]uint8, w*h)
	// all interior probes sit away from the sealed frame
	src[3*w+3] = 0   // free space
	src[3*w+4] = 100 // mid-range cost
	src[3*w+5] = 252 // highest translatable value
	src[3*w+6] = 253 // inflated obstacle
	src[3*w+7] = 254 // lethal obstacle
	src[4*w+3] = 255 // unknown

	g, err := costmap.FromCostField(src, w, h, true)
	require.NoError(t, err)

	require.EqualValues(t, 50, g.At(3, 3))
	require.EqualValues(t, 130, g.At(4, 3)) // 50 + 0.8·100
	require.EqualValues(t, 251, g.At(5, 3)) // 50 + 0.8·252, truncated
	require.EqualValues(t, costmap.CostObstacle, g.At(6, 3))
	require.EqualValues(t, costmap.CostObstacle, g.At(7, 3))
	require.EqualValues(t, costmap.CostObstacle-1, g.At(3, 4), "unknown must stay traversable")

	// with unknown disallowed, 255 turns lethal
	g, err = costmap.FromCostField(src, w, h, false)
	require.NoError(t, err)
	require.EqualValues(t, costmap.CostObstacle, g.At(3, 4))
}

func TestFromCostField_Sealed(t *testing.T) {
	const w, h = 8, 6
	g, err := costmap.FromCostField(make([]uint8, w*h), w, h, true)
	require.NoError(t, err)

	for x := 0; x < w; x++ {
		require.EqualValues(t, costmap.CostObstacle, g.At(x, 0))
		require.EqualValues(t, costmap.CostObstacle, g.At(x, h-1))
	}
	for y := 0; y < h; y++ {
		require.EqualValues(t, costmap.CostObstacle, g.At(0, y))
		require.EqualValues(t, costmap.CostObstacle, g.At(w-1, y))
	}
}

func TestFromImage_WideBorder(t *testing.T) {
	const w, h = 20, 20
	src := make([]uint8, w*h)
	src[10*w+10] = 100

	g, err := costmap.FromImage(src, w, h)
	require.NoError(t, err)

	// the 7-cell frame is lethal even where the source is free
	require.EqualValues(t, costmap.CostObstacle, g.At(3, 3))
	require.EqualValues(t, costmap.CostObstacle, g.At(6, 10))
	require.EqualValues(t, costmap.CostObstacle, g.At(13, 10))
	require.EqualValues(t, costmap.CostObstacle, g.At(10, 13))

	// the interior translates normally
	require.EqualValues(t, 50, g.At(7, 7))
	require.EqualValues(t, 130, g.At(10, 10))
	require.EqualValues(t, 50, g.At(12, 12))
}

func TestFromImage_UnknownAlwaysTraversable(t *testing.T) {
	const w, h = 20, 20
	src := make([]uint8, w*h)
	src[10*w+10] = 255

	g, err := costmap.FromImage(src, w, h)
	require.NoError(t, err)
	require.EqualValues(t, costmap.CostObstacle-1, g.At(10, 10))
}

//----------------------------------------------------------------------------//
// Helpers
//----------------------------------------------------------------------------//

func TestIndexCoordinateRoundTrip(t *testing.T) {
	g, err := costmap.New(7, 5)
	require.NoError(t, err)

	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			idx := g.Index(x, y)
			gx, gy := g.Coordinate(idx)
			require.Equal(t, x, gx)
			require.Equal(t, y, gy)
		}
	}
}

func TestInBounds(t *testing.T) {
	g, err := costmap.New(7, 5)
	require.NoError(t, err)

	require.True(t, g.InBounds(0, 0))
	require.True(t, g.InBounds(6, 4))
	require.False(t, g.InBounds(7, 0))
	require.False(t, g.InBounds(0, 5))
	require.False(t, g.InBounds(-1, 2))
}

func TestCountLethal(t *testing.T) {
	g, err := costmap.New(6, 6)
	require.NoError(t, err)
	// sealed frame of a 6×6 grid: 2·6 + 2·4 cells
	require.Equal(t, 20, g.CountLethal())

	g.Set(2, 2, costmap.CostObstacle)
	require.Equal(t, 21, g.CountLethal())
}

func TestClone_Independent(t *testing.T) {
	g, err := costmap.New(5, 5)
	require.NoError(t, err)
	c := g.Clone()

	g.Set(2, 2, 200)
	require.EqualValues(t, costmap.CostNeutral, c.At(2, 2))
	require.Equal(t, g.Width, c.Width)
	require.Equal(t, g.Height, c.Height)
}
