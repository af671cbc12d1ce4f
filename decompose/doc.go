// Package decompose packs the free space of a grid into non-overlapping
// maximal rectangles ("zones") and keeps that packing up to date as
// rectangular obstacles are placed and removed.
//
// What:
//
//   - Decomposer.FillRegion runs the greedy multi-pass packing over a target
//     region: a parallel candidate scan grows a capped maximal rectangle from
//     every free cell, candidates are sorted by area descending, then placed
//     sequentially with a free-at-placement-time re-check. Passes repeat until
//     a scan yields zero candidates.
//   - Editor.PlaceObstacle / Editor.RemoveObstacle apply an edit, evict every
//     zone touching the one-cell influence region around it, and re-pack only
//     the bounding box of the disturbance. Edit cost is bounded by the size of
//     the disturbance, not the grid.
//
// Why greedy, why multi-pass:
//
//   - Candidate growth is capped at max((W+H)/20, 100), so one pass can leave
//     gaps; later passes fill them. The cap keeps single zones from spanning
//     the whole map and keeps candidate scans cheap.
//   - Placement is sequential because an earlier placement invalidates later
//     candidates; the re-check keeps zones pairwise non-overlapping by
//     construction.
//
// The packing is a heuristic: each zone is maximal at the moment of its
// placement, not globally optimal, and the total zone count is not minimal.
//
// Concurrency: the candidate scan is parallelized by row range with no shared
// mutable state (per-worker slices merged after the scan). Grid mutation is
// single-writer; two FillRegion or Editor calls must not run concurrently.
//
// Complexity: one pass is O(R × s²) where R is the region area and s the
// growth cap; pass count is bounded by MaxPasses (default 64).
package decompose
