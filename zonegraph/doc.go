// Package zonegraph maintains the adjacency graph over the current zones.
//
// What:
//
//   - Graph.Rebuild consumes a registry snapshot and tests every ordered pair
//     of distinct zones for edge adjacency: two rectangles are neighbors when
//     one's right edge coincides with the other's left edge and their Y-ranges
//     overlap by at least one row, or the symmetric test on X-ranges and
//     top/bottom edges. Corner-only contact is not adjacency.
//   - Because both ordered pairs are scanned, the graph is symmetric by
//     construction: B ∈ Neighbors(A) ⟺ A ∈ Neighbors(B).
//
// Why rebuild wholesale:
//
//   - Z (zone count) is typically far smaller than the cell count, so the
//     O(Z²) rebuild is cheap, and rebuilds are infrequent: the caller flips a
//     dirty flag after an edit batch and a maintenance tick rebuilds once.
//     Incremental patching would buy little and risk asymmetry bugs.
//
// Concurrency: Rebuild swaps the adjacency map under a write lock; Neighbors
// and Adjacent read under a read lock. Searches must not overlap a rebuild
// (the engine enforces rebuild-then-many-readers ordering).
package zonegraph
