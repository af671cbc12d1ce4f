package zonepath_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Stone-Red-Code/LargeGridPathfinding/grid"
	"github.com/Stone-Red-Code/LargeGridPathfinding/zonegraph"
	"github.com/Stone-Red-Code/LargeGridPathfinding/zonepath"
)

// stampZones registers hand-built zones on a fresh grid.
func stampZones(t *testing.T, w, h int, rects ...grid.Rect) (*grid.Grid, *zonegraph.Graph) {
	t.Helper()
	g, err := grid.New(w, h)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	for _, r := range rects {
		id := g.AllocZoneID()
		g.Stamp(r, id)
		g.Registry().Insert(id, r)
	}
	zg := zonegraph.New()
	zg.Rebuild(g.Registry().Snapshot())

	return g, zg
}

// TestWaypoints_MiddleOfRun: without a lookahead zone, the transition sits
// in the middle of the shared border run.
func TestWaypoints_MiddleOfRun(t *testing.T) {
	g, zg := stampZones(t, 8, 4,
		grid.Rect{X: 0, Y: 0, Width: 4, Height: 4}, // zone 1
		grid.Rect{X: 4, Y: 0, Width: 4, Height: 4}, // zone 2
	)
	f := zonepath.NewFinder(g, zg)

	route := f.FindPath(context.Background(), grid.Point{X: 0, Y: 0}, grid.Point{X: 7, Y: 3})
	if !route.Found {
		t.Fatalf("Found = false (%s)", route.Reason)
	}
	want := []grid.Point{{X: 3, Y: 2}, {X: 4, Y: 2}}
	if diff := cmp.Diff(want, route.Waypoints); diff != "" {
		t.Errorf("waypoints mismatch (-want +got):\n%s", diff)
	}
}

// TestWaypoints_LookaheadSmoothing: with a third zone known, the transition
// slides along the border run toward it.
func TestWaypoints_LookaheadSmoothing(t *testing.T) {
	g, zg := stampZones(t, 12, 8,
		grid.Rect{X: 0, Y: 0, Width: 4, Height: 8}, // zone 1
		grid.Rect{X: 4, Y: 0, Width: 4, Height: 8}, // zone 2
		grid.Rect{X: 8, Y: 6, Width: 4, Height: 2}, // zone 3, bottom right
	)
	f := zonepath.NewFinder(g, zg)

	route := f.FindPath(context.Background(), grid.Point{X: 0, Y: 0}, grid.Point{X: 9, Y: 7})
	if !route.Found {
		t.Fatalf("Found = false (%s)", route.Reason)
	}
	// 1→2 smooths toward zone 3 (y=6, the top of its closest edge) instead
	// of the middle of the 8-cell run (y=4); 2→3 takes the run middle.
	want := []grid.Point{{X: 3, Y: 6}, {X: 4, Y: 6}, {X: 7, Y: 7}, {X: 8, Y: 7}}
	if diff := cmp.Diff(want, route.Waypoints); diff != "" {
		t.Errorf("waypoints mismatch (-want +got):\n%s", diff)
	}
}

// TestRoute_ValidSentinel: a route carrying the sentinel is reported
// unusable by Valid.
func TestRoute_ValidSentinel(t *testing.T) {
	ok := zonepath.Route{Found: true, Waypoints: []grid.Point{{X: 1, Y: 1}}}
	if !ok.Valid() {
		t.Error("route without sentinel must be valid")
	}
	bad := zonepath.Route{Found: true, Waypoints: []grid.Point{{X: 1, Y: 1}, zonepath.InvalidPoint}}
	if bad.Valid() {
		t.Error("route with sentinel must be invalid")
	}
	missing := zonepath.Route{Found: false}
	if missing.Valid() {
		t.Error("unfound route must be invalid")
	}
}
