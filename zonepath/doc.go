// Package zonepath answers start→goal path queries over the zone graph and
// resolves the coarse zone path into concrete waypoint coordinates.
//
// What:
//
//   - Finder.FindPath maps both cells to their zones by direct grid lookup,
//     runs a weighted best-first search over the adjacency graph (priority
//     queue ordered by accumulated cost, visited set, lazy decrease-key),
//     then converts the zone-id sequence into transition waypoints along the
//     shared borders of consecutive zones.
//   - Edge cost is 1 per transition, optionally plus the destination zone's
//     stretch penalty max(w,h)/min(w,h), optionally plus symmetric jitter in
//     {-1,0,1}. Jitter deliberately makes paths non-deterministic so many
//     agents sharing a map spread over different routes.
//
// The result is zone-graph-optimal under the heuristic edge cost, not a
// geometrically shortest path.
//
// Waypoint selection: for each consecutive zone pair the contiguous run of
// cell-aligned border positions is enumerated; when the next zone after the
// pair is known, the position whose entry point minimizes squared distance
// to that zone's closest edge is chosen (one-step lookahead smoothing),
// otherwise the middle of the run. When two zones share a border split by a
// perpendicular obstacle, only the single merged run per adjacency direction
// is considered, never multiple disjoint segments.
//
// No-path and unresolvable endpoints are expected conditions, not errors:
// FindPath returns a Route with Found=false and a diagnostic Reason. The
// caller owns prepending the literal start cell and appending the literal
// goal cell; FindPath only returns zone-to-zone transition points.
//
// A Finder is ephemeral, intended to be created per query or per batch; it
// reads a registry snapshot taken at FindPath entry and must not overlap a
// graph rebuild.
package zonepath
