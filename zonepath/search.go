package zonepath

import (
	"container/heap"
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Stone-Red-Code/LargeGridPathfinding/grid"
	"github.com/Stone-Red-Code/LargeGridPathfinding/zonegraph"
)

// Finder runs path queries for one grid/graph pair. Finders are cheap and
// ephemeral; create one per query or per agent batch. A Finder only reads:
// it must not run concurrently with a graph rebuild or a grid mutation.
type Finder struct {
	g     *grid.Grid
	graph *zonegraph.Graph
	opts  Options
	rng   *rand.Rand
}

// NewFinder constructs a Finder over g and graph.
func NewFinder(g *grid.Grid, graph *zonegraph.Graph, opts ...Option) *Finder {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	f := &Finder{g: g, graph: graph, opts: o}
	if o.Jitter {
		seed := o.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		f.rng = rand.New(rand.NewSource(seed))
	}

	return f
}

// FindPath searches for a zone path from start to goal and resolves it into
// transition waypoints. See Route for what the result carries; no-path and
// unresolvable endpoints come back as Found=false, never as an error.
//
// ctx is checked once per zone expansion; cancellation yields Found=false
// with the context error as the Reason.
func (f *Finder) FindPath(ctx context.Context, start, goal grid.Point) Route {
	zones := f.g.Registry().Snapshot()

	startZone, reason := f.resolveZone(start, zones)
	if reason != "" {
		return noRoute("start: " + reason)
	}
	goalZone, reason := f.resolveZone(goal, zones)
	if reason != "" {
		return noRoute("goal: " + reason)
	}

	// Same zone: a path with zero intermediate transitions.
	if startZone == goalZone {
		return Route{Zones: []int32{startZone}, Found: true}
	}

	dist := map[int32]float64{startZone: 0}
	prev := make(map[int32]int32)
	visited := make(map[int32]bool)

	pq := make(nodePQ, 0, 16)
	heap.Push(&pq, &nodeItem{id: startZone})

	reached := false
	for pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return noRoute(fmt.Sprintf("search canceled: %v", err))
		}

		cur := heap.Pop(&pq).(*nodeItem)
		if visited[cur.id] {
			continue // stale duplicate from lazy decrease-key
		}
		visited[cur.id] = true

		if cur.id == goalZone {
			reached = true
			break
		}

		for _, nb := range f.graph.Neighbors(cur.id) {
			if visited[nb] {
				continue
			}
			next := cur.cost + f.stepCost(nb, zones)
			if best, ok := dist[nb]; ok && next >= best {
				continue
			}
			dist[nb] = next
			prev[nb] = cur.id
			heap.Push(&pq, &nodeItem{id: nb, cost: next})
		}
	}

	if !reached {
		return noRoute(fmt.Sprintf("no path between zone %d and zone %d", startZone, goalZone))
	}

	path := reconstruct(prev, startZone, goalZone)

	return Route{
		Zones:     path,
		Waypoints: f.resolveWaypoints(path, zones),
		Cost:      dist[goalZone],
		Found:     true,
	}
}

// resolveZone maps a cell to its registered zone id, or explains why it
// cannot be used as a query endpoint.
func (f *Finder) resolveZone(p grid.Point, zones map[int32]grid.Rect) (int32, string) {
	if !f.g.InBounds(p.X, p.Y) {
		return 0, fmt.Sprintf("cell (%d,%d) is outside the grid", p.X, p.Y)
	}
	id := f.g.Label(p.X, p.Y)
	if id < 0 {
		return 0, fmt.Sprintf("cell (%d,%d) is covered by obstacle %d", p.X, p.Y, id)
	}
	if id == grid.Free {
		return 0, fmt.Sprintf("cell (%d,%d) is not covered by any zone", p.X, p.Y)
	}
	if _, ok := zones[id]; !ok {
		return 0, fmt.Sprintf("cell (%d,%d) carries stale zone id %d", p.X, p.Y, id)
	}

	return id, ""
}

// stepCost prices the transition into destination zone nb:
// 1, plus the destination's stretch penalty max(w,h)/min(w,h) if enabled,
// plus jitter in {-1,0,1} if enabled. Floors at 0 so accumulated costs stay
// non-negative.
func (f *Finder) stepCost(nb int32, zones map[int32]grid.Rect) float64 {
	cost := 1.0
	if f.opts.StretchPenalty {
		r := zones[nb]
		long, short := r.Width, r.Height
		if short > long {
			long, short = short, long
		}
		if short > 0 {
			cost += float64(long) / float64(short)
		}
	}
	if f.rng != nil {
		cost += float64(f.rng.Intn(3) - 1)
	}
	if cost < 0 {
		cost = 0
	}

	return cost
}

// reconstruct walks the predecessor map back from goal to start.
func reconstruct(prev map[int32]int32, start, goal int32) []int32 {
	var path []int32
	for at := goal; ; at = prev[at] {
		path = append(path, at)
		if at == start {
			break
		}
	}
	// Reverse in place: prev links run goal → start.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
