package zonepath

// nodeItem is one priority-queue entry: a zone and its accumulated cost.
type nodeItem struct {
	id   int32
	cost float64
}

// nodePQ is a min-heap of *nodeItem ordered by cost, ties by zone id so the
// pop order is deterministic. Shorter costs may be pushed as duplicates
// ("lazy decrease-key"); stale entries are skipped via the visited set.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
