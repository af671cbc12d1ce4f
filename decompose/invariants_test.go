// Shared structural-invariant checks used by the decomposition and editor
// tests: zones pairwise non-overlapping, and every cell exactly one of
// {free, one registered zone, one obstacle}.
package decompose_test

import (
	"testing"

	"github.com/Stone-Red-Code/LargeGridPathfinding/grid"
)

// checkInvariants fails the test if the grid violates the no-overlap or
// partition invariants.
func checkInvariants(t *testing.T, g *grid.Grid) {
	t.Helper()

	zones := g.Registry().Snapshot()

	// No-overlap: pairwise empty intersection of registered zones.
	for a, ra := range zones {
		for b, rb := range zones {
			if a != b && ra.Intersects(rb) {
				t.Fatalf("zones %d (%+v) and %d (%+v) overlap", a, ra, b, rb)
			}
		}
	}

	// Each registered zone exactly covers its cells.
	for id, r := range zones {
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				if got := g.Label(x, y); got != id {
					t.Fatalf("cell (%d,%d) = %d; want zone %d", x, y, got, id)
				}
			}
		}
	}

	// Partition: every positive label refers to a registered zone containing
	// the cell; negative labels are obstacles; 0 is free.
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			id := g.Label(x, y)
			if id <= 0 {
				continue
			}
			r, ok := zones[id]
			if !ok {
				t.Fatalf("cell (%d,%d) carries unregistered zone id %d", x, y, id)
			}
			if !r.Contains(x, y) {
				t.Fatalf("cell (%d,%d) labeled %d outside zone rect %+v", x, y, id, r)
			}
		}
	}
}

// countLabel counts grid cells for which pred holds.
func countLabel(g *grid.Grid, pred func(int32) bool) int {
	n := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if pred(g.Label(x, y)) {
				n++
			}
		}
	}

	return n
}
