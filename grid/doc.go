// Package grid owns the mutable world state of the engine: a width×height
// array of cell labels, a registry of zone rectangles, and the two monotonic
// id counters that label the cells.
//
// What:
//
//   - Grid wraps a row-major []int32 of cell labels.
//     Label 0 = free, >0 = id of the zone covering the cell, <0 = id of the
//     obstacle covering the cell.
//   - Registry maps zone id → Rect under a sync.RWMutex so the decomposer can
//     insert/remove while renderers and searches iterate a snapshot.
//   - Zone ids count up from 1 and obstacle ids count down from -1; ids are
//     never reused, even after removal, so a stale id can never alias a newer
//     zone across rebuilds.
//
// Concurrency:
//
//   - Registry is safe for concurrent use.
//   - The raw label array follows a single-writer discipline: grid mutations
//     (decomposition, obstacle edits) must be externally serialized. Readers
//     may observe a transiently inconsistent array mid-fill; that is
//     acceptable for rendering, never for correctness decisions.
//
// Invariants (whenever no mutation is in flight):
//
//  1. Registered zones are pairwise non-overlapping.
//  2. Every cell is exactly one of free / one zone / one obstacle.
//
// Complexity: all Grid accessors are O(1); Registry.Snapshot is O(Z).
package grid
