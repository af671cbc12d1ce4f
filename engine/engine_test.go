package engine_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Stone-Red-Code/LargeGridPathfinding/decompose"
	"github.com/Stone-Red-Code/LargeGridPathfinding/engine"
	"github.com/Stone-Red-Code/LargeGridPathfinding/grid"
)

func mustEngine(t *testing.T, w, h int, obstacles []grid.Rect, opts ...engine.Option) *engine.Engine {
	t.Helper()
	e, err := engine.New(w, h, obstacles, opts...)
	require.NoError(t, err, "engine.New")

	return e
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func TestNew_Validation(t *testing.T) {
	_, err := engine.New(0, 10, nil)
	require.ErrorIs(t, err, grid.ErrBadDimensions)

	_, err = engine.New(10, 10, []grid.Rect{{}})
	require.ErrorIs(t, err, grid.ErrEmptyRect)

	_, err = engine.New(10, 10, []grid.Rect{{X: 8, Y: 8, Width: 4, Height: 4}})
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestNew_ReadyForQueries(t *testing.T) {
	e := mustEngine(t, 20, 20, []grid.Rect{{X: 10, Y: 10, Width: 1, Height: 1}})

	w, h := e.Size()
	require.Equal(t, 20, w)
	require.Equal(t, 20, h)
	require.Greater(t, len(e.Zones()), 1, "initial decomposition must have run")
	require.False(t, e.Graph().Dirty(), "initial rebuild must have run")

	labels := e.Labels()
	require.Len(t, labels, 400)
	require.Negative(t, labels[e.Grid().Index(10, 10)], "initial obstacle must be stamped")
}

//----------------------------------------------------------------------------//
// Queries
//----------------------------------------------------------------------------//

// TestFindPath_BracketsWaypoints: the engine completes the transition points
// with the literal start and goal cells.
func TestFindPath_BracketsWaypoints(t *testing.T) {
	e := mustEngine(t, 20, 20, []grid.Rect{{X: 10, Y: 10, Width: 1, Height: 1}})
	start := grid.Point{X: 0, Y: 0}
	goal := grid.Point{X: 19, Y: 19}

	route := e.FindPath(context.Background(), start, goal)
	require.True(t, route.Found, "reason: %s", route.Reason)
	require.True(t, route.Valid())
	require.GreaterOrEqual(t, len(route.Waypoints), 2)
	require.Equal(t, start, route.Waypoints[0])
	require.Equal(t, goal, route.Waypoints[len(route.Waypoints)-1])
}

// TestFindPath_SameZone: a trivial route still carries start and goal.
func TestFindPath_SameZone(t *testing.T) {
	e := mustEngine(t, 10, 10, nil)
	start := grid.Point{X: 1, Y: 1}
	goal := grid.Point{X: 8, Y: 8}

	route := e.FindPath(context.Background(), start, goal)
	require.True(t, route.Found, "reason: %s", route.Reason)
	require.Equal(t, []grid.Point{start, goal}, route.Waypoints)
}

//----------------------------------------------------------------------------//
// Edit protocol
//----------------------------------------------------------------------------//

// TestEditRebuildProtocol: placing a wall severs the route once Rebuild runs;
// removing it restores the route.
func TestEditRebuildProtocol(t *testing.T) {
	e := mustEngine(t, 20, 20, nil)
	ctx := context.Background()
	start := grid.Point{X: 0, Y: 0}
	goal := grid.Point{X: 19, Y: 19}

	require.True(t, e.FindPath(ctx, start, goal).Found)

	wall := grid.Rect{X: 10, Y: 0, Width: 1, Height: 20}
	_, err := e.PlaceObstacle(ctx, wall, decompose.Progress{})
	require.NoError(t, err)
	require.True(t, e.Graph().Dirty(), "edit must mark the graph dirty")

	e.Rebuild()
	require.False(t, e.Graph().Dirty())

	route := e.FindPath(ctx, start, goal)
	require.False(t, route.Found, "route across a full wall: %v", route.Zones)
	require.Contains(t, route.Reason, "no path")

	require.NoError(t, e.RemoveObstacle(ctx, wall, decompose.Progress{}))
	e.Rebuild()

	route = e.FindPath(ctx, start, goal)
	require.True(t, route.Found, "reason: %s", route.Reason)
	require.True(t, route.Valid())
}

func TestFindPath_UnresolvableStart(t *testing.T) {
	e := mustEngine(t, 10, 10, []grid.Rect{{X: 4, Y: 4, Width: 2, Height: 2}})

	route := e.FindPath(context.Background(), grid.Point{X: 4, Y: 4}, grid.Point{X: 0, Y: 0})
	require.False(t, route.Found)
	require.True(t, strings.HasPrefix(route.Reason, "start:"), "reason: %s", route.Reason)
}

//----------------------------------------------------------------------------//
// Maintenance loop
//----------------------------------------------------------------------------//

// TestRun_ResolvesAgentRoutes: the maintenance loop picks up pending agent
// requests and resolves them without explicit Rebuild calls.
func TestRun_ResolvesAgentRoutes(t *testing.T) {
	e := mustEngine(t, 20, 20, []grid.Rect{{X: 10, Y: 10, Width: 1, Height: 1}},
		engine.WithInterval(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go e.Run(ctx)

	e.SetGoal("scout", grid.Point{X: 0, Y: 0}, grid.Point{X: 19, Y: 19})
	e.SetGoal("blocked", grid.Point{X: 10, Y: 10}, grid.Point{X: 0, Y: 0})

	waitRoute := func(id string) engineRoute {
		t.Helper()
		deadline := time.Now().Add(2 * time.Second)
		for time.Now().Before(deadline) {
			if r, ok := e.Route(id); ok {
				return engineRoute{r.Found, r.Reason, r.Waypoints}
			}
			time.Sleep(2 * time.Millisecond)
		}
		t.Fatalf("agent %q never resolved", id)

		return engineRoute{}
	}

	scout := waitRoute("scout")
	require.True(t, scout.found, "reason: %s", scout.reason)
	require.Equal(t, grid.Point{X: 0, Y: 0}, scout.waypoints[0])
	require.Equal(t, grid.Point{X: 19, Y: 19}, scout.waypoints[len(scout.waypoints)-1])

	blocked := waitRoute("blocked")
	require.False(t, blocked.found)
	require.True(t, strings.HasPrefix(blocked.reason, "start:"), "reason: %s", blocked.reason)

	// A new goal flips the agent back to pending until the next tick.
	e.SetGoal("scout", grid.Point{X: 1, Y: 1}, grid.Point{X: 18, Y: 18})
	again := waitRoute("scout")
	require.True(t, again.found, "reason: %s", again.reason)
	require.Equal(t, grid.Point{X: 1, Y: 1}, again.waypoints[0])

	e.RemoveAgent("scout")
	_, ok := e.Route("scout")
	require.False(t, ok, "removed agent must not report a route")
}

type engineRoute struct {
	found     bool
	reason    string
	waypoints []grid.Point
}

// TestRun_RebuildsDirtyGraph: an edit made while the loop runs is folded into
// the graph by a subsequent tick.
func TestRun_RebuildsDirtyGraph(t *testing.T) {
	e := mustEngine(t, 20, 20, nil, engine.WithInterval(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go e.Run(ctx)

	_, err := e.PlaceObstacle(ctx, grid.Rect{X: 10, Y: 0, Width: 1, Height: 20}, decompose.Progress{})
	require.NoError(t, err)

	deadline := time.Now().Add(2 * time.Second)
	for e.Graph().Dirty() && time.Now().Before(deadline) {
		time.Sleep(2 * time.Millisecond)
	}
	require.False(t, e.Graph().Dirty(), "loop never rebuilt the dirty graph")

	route := e.FindPath(ctx, grid.Point{X: 0, Y: 0}, grid.Point{X: 19, Y: 19})
	require.False(t, route.Found, "wall must sever the route after the loop's rebuild")
}
