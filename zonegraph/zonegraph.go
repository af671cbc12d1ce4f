package zonegraph

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/Stone-Red-Code/LargeGridPathfinding/grid"
)

// Graph is the zone adjacency graph. The zero value is not ready for use;
// call New. A Graph starts dirty so the first Rebuild is never skipped.
type Graph struct {
	mu    sync.RWMutex
	adj   map[int32]map[int32]struct{}
	dirty atomic.Bool
}

// New returns an empty Graph, marked dirty.
func New() *Graph {
	g := &Graph{adj: make(map[int32]map[int32]struct{})}
	g.dirty.Store(true)

	return g
}

// MarkDirty records that the grid changed and the graph must be rebuilt
// before being trusted for search. Callers flip this after an edit batch;
// the graph never patches itself incrementally.
func (g *Graph) MarkDirty() { g.dirty.Store(true) }

// Dirty reports whether a rebuild is pending.
func (g *Graph) Dirty() bool { return g.dirty.Load() }

// Rebuild replaces the whole adjacency map from a registry snapshot and
// clears the dirty flag. Complexity: O(Z²) over the zone count.
func (g *Graph) Rebuild(zones map[int32]grid.Rect) {
	adj := make(map[int32]map[int32]struct{}, len(zones))
	for id := range zones {
		adj[id] = make(map[int32]struct{})
	}
	for a, ra := range zones {
		for b, rb := range zones {
			if a == b {
				continue
			}
			if Touching(ra, rb) {
				adj[a][b] = struct{}{}
			}
		}
	}

	g.mu.Lock()
	g.adj = adj
	g.mu.Unlock()
	g.dirty.Store(false)
}

// Touching reports whether two zone rectangles share an edge segment of at
// least one cell. Horizontal adjacency: one rectangle's right edge coincides
// with the other's left edge and the Y-ranges overlap by ≥1 row. Vertical
// adjacency is the symmetric test on X-ranges and top/bottom edges.
func Touching(a, b grid.Rect) bool {
	if a.Right() == b.X || b.Right() == a.X {
		if overlap(a.Y, a.Bottom(), b.Y, b.Bottom()) >= 1 {
			return true
		}
	}
	if a.Bottom() == b.Y || b.Bottom() == a.Y {
		if overlap(a.X, a.Right(), b.X, b.Right()) >= 1 {
			return true
		}
	}

	return false
}

// overlap returns the length of the intersection of [a1,a2) and [b1,b2).
func overlap(a1, a2, b1, b2 int) int {
	lo := a1
	if b1 > lo {
		lo = b1
	}
	hi := a2
	if b2 < hi {
		hi = b2
	}

	return hi - lo
}

// Neighbors returns the ids adjacent to id, sorted ascending so traversal
// order (and therefore search behavior) is deterministic. Returns nil for an
// unknown id.
func (g *Graph) Neighbors(id int32) []int32 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	set, ok := g.adj[id]
	if !ok {
		return nil
	}
	out := make([]int32, 0, len(set))
	for nb := range set {
		out = append(out, nb)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Adjacent reports whether a and b share an edge in the current graph.
func (g *Graph) Adjacent(a, b int32) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[a][b]

	return ok
}

// Len returns the number of zones in the graph.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}
