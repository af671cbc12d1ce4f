// Package engine ties the grid, decomposer, zone graph and path search into
// one facade with the concurrency discipline the parts require:
//
//   - Grid mutations (obstacle edits, fills) are serialized under a write
//     lock (single-writer discipline). Every edit marks the graph dirty.
//   - Path searches take a read lock, so a batch of agents can search in
//     parallel against a consistent graph/registry snapshot, but never
//     overlap a rebuild or an edit.
//   - Run drives the background maintenance loop: on a fixed interval it
//     rebuilds the graph if dirty, then recomputes routes for all agents
//     with a pending request, in parallel. A panic or failure in one tick is
//     logged and the loop continues on the next tick; a single bad iteration
//     must not halt ongoing service.
//
// Protocol note: edits become visible to searches only after the next
// rebuild. The maintenance loop handles this automatically; callers driving
// the engine manually must call Rebuild after an edit batch before trusting
// FindPath results.
//
// FindPath returns complete waypoint sequences: the engine prepends the
// literal start cell and appends the literal goal cell around the
// zone-transition points produced by the search.
package engine
