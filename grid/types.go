package grid

import "errors"

// Sentinel errors for grid construction and region validation.
var (
	// ErrBadDimensions indicates a non-positive grid width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
	// ErrOutOfBounds indicates a cell or rectangle outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
	// ErrEmptyRect indicates a rectangle with non-positive width or height.
	ErrEmptyRect = errors.New("grid: rectangle must have positive width and height")
)

// Free is the label of a cell covered by neither a zone nor an obstacle.
const Free int32 = 0

// Point is a single cell coordinate.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle in integer grid coordinates.
// X,Y is the top-left cell; Width and Height are in cells.
// Right and Bottom bounds are exclusive.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right returns the exclusive right bound (X + Width).
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom bound (Y + Height).
func (r Rect) Bottom() int { return r.Y + r.Height }

// Area returns Width × Height.
func (r Rect) Area() int { return r.Width * r.Height }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether cell (x,y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersects reports whether r and o share at least one cell.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x1 := min(r.X, o.X)
	y1 := min(r.Y, o.Y)
	x2 := max(r.Right(), o.Right())
	y2 := max(r.Bottom(), o.Bottom())

	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Expand grows the rectangle by n cells on every side.
func (r Rect) Expand(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, Width: r.Width + 2*n, Height: r.Height + 2*n}
}

// Clamp trims the rectangle to the w×h grid. The result may be Empty.
func (r Rect) Clamp(w, h int) Rect {
	x1 := max(r.X, 0)
	y1 := max(r.Y, 0)
	x2 := min(r.Right(), w)
	y2 := min(r.Bottom(), h)

	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}
