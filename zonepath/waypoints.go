package zonepath

import (
	"github.com/Stone-Red-Code/LargeGridPathfinding/grid"
)

// resolveWaypoints converts a zone-id path into transition coordinates: for
// each consecutive pair, the exit cell of the current zone and the entry
// cell of the next, chosen along their shared border. When the zone after
// the pair is known, the border position minimizing squared distance from
// the entry cell to that zone is chosen (one-step lookahead smoothing);
// otherwise the middle of the contiguous border run. A pair with no valid
// border run yields a single InvalidPoint sentinel.
func (f *Finder) resolveWaypoints(path []int32, zones map[int32]grid.Rect) []grid.Point {
	if len(path) < 2 {
		return nil
	}
	out := make([]grid.Point, 0, 2*(len(path)-1))
	for i := 0; i+1 < len(path); i++ {
		a := zones[path[i]]
		b := zones[path[i+1]]
		var next *grid.Rect
		if i+2 < len(path) {
			r := zones[path[i+2]]
			next = &r
		}
		exit, entry, ok := transition(a, b, next)
		if !ok {
			out = append(out, InvalidPoint)
			continue
		}
		out = append(out, exit, entry)
	}

	return out
}

// transition picks the crossing cells between adjacent zones a → b.
// ok is false when the rectangles share no border segment of ≥1 cell,
// which cannot happen for a valid adjacency edge (defensive case).
func transition(a, b grid.Rect, next *grid.Rect) (exit, entry grid.Point, ok bool) {
	// Horizontal crossing: b to the right of a, or b to the left of a.
	if a.Right() == b.X || b.Right() == a.X {
		lo := max(a.Y, b.Y)
		hi := min(a.Bottom(), b.Bottom())
		if hi > lo {
			exitX, entryX := a.Right()-1, b.X
			if b.Right() == a.X {
				exitX, entryX = a.X, a.X-1
			}
			y := pickAlongRun(lo, hi, next, func(v int) grid.Point {
				return grid.Point{X: entryX, Y: v}
			})

			return grid.Point{X: exitX, Y: y}, grid.Point{X: entryX, Y: y}, true
		}
	}
	// Vertical crossing: b below a, or b above a.
	if a.Bottom() == b.Y || b.Bottom() == a.Y {
		lo := max(a.X, b.X)
		hi := min(a.Right(), b.Right())
		if hi > lo {
			exitY, entryY := a.Bottom()-1, b.Y
			if b.Bottom() == a.Y {
				exitY, entryY = a.Y, a.Y-1
			}
			x := pickAlongRun(lo, hi, next, func(v int) grid.Point {
				return grid.Point{X: v, Y: entryY}
			})

			return grid.Point{X: x, Y: exitY}, grid.Point{X: x, Y: entryY}, true
		}
	}

	return InvalidPoint, InvalidPoint, false
}

// pickAlongRun selects a position in the border run [lo,hi). With a known
// next zone it minimizes squared distance from the candidate entry cell to
// the closest edge of next; without one it takes the middle of the run.
func pickAlongRun(lo, hi int, next *grid.Rect, at func(int) grid.Point) int {
	if next == nil {
		return lo + (hi-lo)/2
	}
	best, bestDist := lo, -1
	for v := lo; v < hi; v++ {
		d := sqDistToRect(at(v), *next)
		if bestDist < 0 || d < bestDist {
			best, bestDist = v, d
		}
	}

	return best
}

// sqDistToRect returns the squared distance from cell p to the nearest cell
// of r.
func sqDistToRect(p grid.Point, r grid.Rect) int {
	dx := axisDist(p.X, r.X, r.Right()-1)
	dy := axisDist(p.Y, r.Y, r.Bottom()-1)

	return dx*dx + dy*dy
}

// axisDist returns the distance from v to the interval [lo,hi], 0 if inside.
func axisDist(v, lo, hi int) int {
	if v < lo {
		return lo - v
	}
	if v > hi {
		return v - hi
	}

	return 0
}
