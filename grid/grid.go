package grid

import "sync"

// Grid is the width×height cell-label array plus the zone registry and the
// two monotonic id counters. See the package documentation for the label
// convention and the single-writer discipline on the label array.
type Grid struct {
	width, height int
	labels        []int32
	registry      *Registry

	idMu       sync.Mutex
	nextZone   int32 // next positive zone id, starts at 1
	nextObstcl int32 // next negative obstacle id, starts at -1
}

// New constructs an all-free Grid with the given dimensions.
// Returns ErrBadDimensions if width or height is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	g := &Grid{
		width:      width,
		height:     height,
		labels:     make([]int32, width*height),
		registry:   NewRegistry(),
		nextZone:   1,
		nextObstcl: -1,
	}

	return g, nil
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// Bounds returns the full grid as a Rect.
func (g *Grid) Bounds() Rect {
	return Rect{Width: g.width, Height: g.height}
}

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps (x,y) to its row-major index: y*Width + x.
func (g *Grid) Index(x, y int) int { return y*g.width + x }

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// Label returns the label of cell (x,y). The caller must ensure the cell is
// in bounds; see InBounds.
func (g *Grid) Label(x, y int) int32 {
	return g.labels[y*g.width+x]
}

// SetLabel stores label at cell (x,y). Writers must be externally serialized.
func (g *Grid) SetLabel(x, y int, label int32) {
	g.labels[y*g.width+x] = label
}

// Stamp writes label into every cell of r. r must lie within the grid.
// Complexity: O(area of r).
func (g *Grid) Stamp(r Rect, label int32) {
	for y := r.Y; y < r.Bottom(); y++ {
		row := g.labels[y*g.width : y*g.width+g.width]
		for x := r.X; x < r.Right(); x++ {
			row[x] = label
		}
	}
}

// RectFree reports whether every cell of r is currently free.
func (g *Grid) RectFree(r Rect) bool {
	for y := r.Y; y < r.Bottom(); y++ {
		row := g.labels[y*g.width : y*g.width+g.width]
		for x := r.X; x < r.Right(); x++ {
			if row[x] != Free {
				return false
			}
		}
	}

	return true
}

// Registry returns the zone registry backing this grid.
func (g *Grid) Registry() *Registry { return g.registry }

// AllocZoneID returns the next zone id. Ids increase monotonically from 1
// and are never reused, even after the zone is evicted.
func (g *Grid) AllocZoneID() int32 {
	g.idMu.Lock()
	defer g.idMu.Unlock()
	id := g.nextZone
	g.nextZone++

	return id
}

// AllocObstacleID returns the next obstacle id. Ids decrease monotonically
// from -1 and are never reused, even after the obstacle is removed.
func (g *Grid) AllocObstacleID() int32 {
	g.idMu.Lock()
	defer g.idMu.Unlock()
	id := g.nextObstcl
	g.nextObstcl--

	return id
}

// Labels returns a copy of the label array in row-major order, for rendering.
// The copy may capture a transiently inconsistent state if taken mid-fill.
func (g *Grid) Labels() []int32 {
	out := make([]int32, len(g.labels))
	copy(out, g.labels)

	return out
}
