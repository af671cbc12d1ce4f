package decompose

import (
	"context"

	"github.com/Stone-Red-Code/LargeGridPathfinding/grid"
)

// Editor applies obstacle placement and removal incrementally. Every edit
// evicts the zones around the obstacle and re-packs only the bounding box of
// the disturbance, so edit cost scales with the disturbance, not the grid.
//
// Editor calls mutate the grid and must be externally serialized with each
// other and with Decomposer fills. After any batch of edits the caller must
// mark the zone graph dirty and rebuild it before trusting search results.
type Editor struct {
	g   *grid.Grid
	dec *Decomposer
}

// NewEditor constructs an Editor driving dec over its grid.
func NewEditor(g *grid.Grid, dec *Decomposer) (*Editor, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if dec == nil {
		return nil, ErrNilDecomposer
	}

	return &Editor{g: g, dec: dec}, nil
}

// PlaceObstacle stamps rect with a fresh obstacle id and re-packs the
// disturbed neighborhood. Only free or zone-covered cells are overwritten;
// cells already covered by another obstacle keep their label.
// Returns the new obstacle id.
//
// rect must be non-empty and lie entirely within the grid (ErrBadRegion).
func (e *Editor) PlaceObstacle(ctx context.Context, rect grid.Rect, prog Progress) (int32, error) {
	if err := e.validate(rect); err != nil {
		return 0, err
	}

	influence, evicted := e.evictAround(rect)

	id := e.g.AllocObstacleID()
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			if e.g.Label(x, y) >= 0 {
				e.g.SetLabel(x, y, id)
			}
		}
	}

	return id, e.refill(ctx, influence, evicted, prog)
}

// RemoveObstacle clears every obstacle-covered cell of rect back to free and
// re-packs the disturbed neighborhood. Only cells with an obstacle label are
// cleared; free and zone-covered cells keep their label. The obstacle id is
// not recycled.
func (e *Editor) RemoveObstacle(ctx context.Context, rect grid.Rect, prog Progress) error {
	if err := e.validate(rect); err != nil {
		return err
	}

	influence, evicted := e.evictAround(rect)

	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			if e.g.Label(x, y) < 0 {
				e.g.SetLabel(x, y, grid.Free)
			}
		}
	}

	return e.refill(ctx, influence, evicted, prog)
}

// validate rejects empty rectangles and rectangles leaving the grid.
func (e *Editor) validate(rect grid.Rect) error {
	if rect.Empty() {
		return grid.ErrEmptyRect
	}
	if rect != rect.Clamp(e.g.Width(), e.g.Height()) {
		return ErrBadRegion
	}

	return nil
}

// evictAround computes the influence region (rect expanded by one cell,
// clamped) and evicts every zone with at least one cell inside it. Partial
// overlap forces full-zone eviction: the whole zone is deregistered and all
// of its cells reset to free, even the cells outside the influence region.
func (e *Editor) evictAround(rect grid.Rect) (influence grid.Rect, evicted []grid.Rect) {
	influence = rect.Expand(1).Clamp(e.g.Width(), e.g.Height())

	reg := e.g.Registry()
	seen := make(map[int32]struct{})
	for y := influence.Y; y < influence.Bottom(); y++ {
		for x := influence.X; x < influence.Right(); x++ {
			id := e.g.Label(x, y)
			if id <= 0 {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			zr, ok := reg.Get(id)
			if !ok {
				// Stale label with no registry entry; reset just the cell.
				e.g.SetLabel(x, y, grid.Free)
				continue
			}
			reg.Remove(id)
			e.g.Stamp(zr, grid.Free)
			evicted = append(evicted, zr)
		}
	}

	return influence, evicted
}

// refill re-packs the bounding box of the influence region and every evicted
// zone rectangle. This box is what bounds edit cost to the disturbance.
func (e *Editor) refill(ctx context.Context, influence grid.Rect, evicted []grid.Rect, prog Progress) error {
	box := influence
	for _, zr := range evicted {
		box = box.Union(zr)
	}
	box = box.Clamp(e.g.Width(), e.g.Height())

	return e.dec.FillRegion(ctx, box, false, prog)
}
