package decompose_test

import (
	"context"
	"fmt"

	"github.com/Stone-Red-Code/LargeGridPathfinding/decompose"
	"github.com/Stone-Red-Code/LargeGridPathfinding/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FillGrid
////////////////////////////////////////////////////////////////////////////////

// ExampleDecomposer_FillGrid packs an empty 10×10 grid. With the default
// growth cap the whole grid fits in a single maximal rectangle.
func ExampleDecomposer_FillGrid() {
	g, _ := grid.New(10, 10)
	d, _ := decompose.New(g)

	_ = d.FillGrid(context.Background(), decompose.Progress{})

	fmt.Println("zones:", g.Registry().Len())
	// Output:
	// zones: 1
}

////////////////////////////////////////////////////////////////////////////////
// Example: incremental obstacle editing
////////////////////////////////////////////////////////////////////////////////

// ExampleEditor_PlaceObstacle drops an obstacle into a packed grid. Only the
// disturbed neighborhood is re-packed; the zone count grows because the free
// space around the obstacle no longer fits one rectangle.
func ExampleEditor_PlaceObstacle() {
	g, _ := grid.New(10, 10)
	d, _ := decompose.New(g)
	e, _ := decompose.NewEditor(g, d)
	ctx := context.Background()

	_ = d.FillGrid(ctx, decompose.Progress{})
	id, _ := e.PlaceObstacle(ctx, grid.Rect{X: 4, Y: 4, Width: 2, Height: 2}, decompose.Progress{})

	fmt.Println("obstacle id:", id)
	fmt.Println("multiple zones:", g.Registry().Len() > 1)
	// Output:
	// obstacle id: -1
	// multiple zones: true
}
