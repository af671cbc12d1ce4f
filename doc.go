// Package largegridpathfinding turns a huge 2D grid with movable rectangular
// obstacles into a compact zone graph and answers path queries over it.
//
// What it does:
//
//   - Packs free space into non-overlapping maximal rectangles ("zones")
//     with a greedy, multi-pass decomposition (parallel candidate scan,
//     sequential placement).
//   - Keeps decomposition cost local: placing or removing an obstacle only
//     re-packs the disturbed neighborhood, never the whole grid.
//   - Maintains an adjacency graph over the current zones and resolves
//     start→goal queries into concrete waypoint coordinates with a weighted
//     best-first search plus border-transition smoothing.
//
// Why zones instead of per-cell search?
//
//   - A 1000×1000 grid has a million cells but typically only a few hundred
//     zones; searching the zone graph is orders of magnitude cheaper than
//     cell-level A* and scales with map clutter, not map size.
//   - Many agents can share one graph snapshot: batch path recomputation is
//     embarrassingly parallel.
//
// Packages:
//
//	grid/      - cell-label array, zone registry, monotonic id counters
//	decompose/ - maximal-rectangle packing + incremental obstacle editing
//	zonegraph/ - zone adjacency graph, rebuilt wholesale on demand
//	zonepath/  - best-first zone search and waypoint resolution
//	engine/    - facade: single-writer edits, background maintenance loop,
//	             batched agent path recomputation
//
// Quick ASCII example (4 zones around one obstacle, # = obstacle):
//
//	1 1 1 1 1
//	2 2 # 3 3
//	2 2 4 3 3
//
// A path from zone 2 to zone 3 routes through zone 4 below the obstacle.
//
//	go get github.com/Stone-Red-Code/LargeGridPathfinding
package largegridpathfinding
