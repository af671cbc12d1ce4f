package decompose

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/Stone-Red-Code/LargeGridPathfinding/grid"
)

// Decomposer packs the free space of a single Grid. It holds no per-call
// state; the same Decomposer serves every FillRegion call for its grid.
// Calls must be externally serialized (single-writer discipline).
type Decomposer struct {
	g    *grid.Grid
	opts Options
}

// New constructs a Decomposer for g. Returns ErrNilGrid if g is nil.
func New(g *grid.Grid, opts ...Option) (*Decomposer, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Decomposer{g: g, opts: o}, nil
}

// MaxZoneSize returns the effective candidate growth cap:
// the configured override, or max((W+H)/20, 100).
func (d *Decomposer) MaxZoneSize() int {
	if d.opts.MaxZoneSize > 0 {
		return d.opts.MaxZoneSize
	}
	s := (d.g.Width() + d.g.Height()) / 20
	if s < 100 {
		s = 100
	}

	return s
}

// workers returns the effective scan parallelism.
func (d *Decomposer) workers() int {
	if d.opts.Workers > 0 {
		return d.opts.Workers
	}

	return runtime.GOMAXPROCS(0)
}

// FillGrid packs the entire grid, clearing all existing zones first.
func (d *Decomposer) FillGrid(ctx context.Context, prog Progress) error {
	return d.FillRegion(ctx, d.g.Bounds(), true, prog)
}

// FillRegion packs the free cells of region with maximal rectangles.
// If fillAll, every zone label in the whole grid (not obstacles) is cleared
// first and the registry is emptied: a full repack.
//
// The three Progress channels each progress monotonically in [0,1] and
// receive exactly 1.0 once, when the fill completes without error.
//
// Returns ErrBadRegion for a region empty after clamping, ctx.Err() on
// cancellation, ErrPassBudget or ErrStalled if the scan/place loop fails to
// make progress (implementation-bug guards, see package doc).
func (d *Decomposer) FillRegion(ctx context.Context, region grid.Rect, fillAll bool, prog Progress) error {
	region = region.Clamp(d.g.Width(), d.g.Height())
	if region.Empty() {
		return ErrBadRegion
	}

	if fillAll {
		d.clearZones()
	}

	fill := newChannel(prog.Fill)
	scan := newChannel(prog.Scan)
	place := newChannel(prog.Place)

	fillable := d.countFree(region)
	filled := 0

	for pass := 0; fillable > 0; pass++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		cands, err := d.scanRegion(ctx, region, scan)
		if err != nil {
			return err
		}
		if len(cands) == 0 {
			break
		}
		if pass >= d.opts.MaxPasses {
			return fmt.Errorf("%w: %d passes over %dx%d region", ErrPassBudget, pass, region.Width, region.Height)
		}
		sortCandidates(cands)

		placed := d.placeAll(cands, fillable, &filled, fill, place)
		if placed == 0 {
			return fmt.Errorf("%w: %d candidates, pass %d", ErrStalled, len(cands), pass)
		}
	}

	fill.finish()
	scan.finish()
	place.finish()

	return nil
}

// clearZones resets every zone label in the whole grid and empties the
// registry. Obstacle labels are untouched.
func (d *Decomposer) clearZones() {
	for y := 0; y < d.g.Height(); y++ {
		for x := 0; x < d.g.Width(); x++ {
			if d.g.Label(x, y) > 0 {
				d.g.SetLabel(x, y, grid.Free)
			}
		}
	}
	d.g.Registry().Clear()
}

// countFree counts the free cells of region.
func (d *Decomposer) countFree(region grid.Rect) int {
	n := 0
	for y := region.Y; y < region.Bottom(); y++ {
		for x := region.X; x < region.Right(); x++ {
			if d.g.Label(x, y) == grid.Free {
				n++
			}
		}
	}

	return n
}

// scanRegion runs one parallel candidate scan over region. Row ranges are
// split across workers; each worker appends to its own slice and the slices
// are merged after Wait, so the workers share no mutable state.
func (d *Decomposer) scanRegion(ctx context.Context, region grid.Rect, scan *channel) ([]grid.Rect, error) {
	rows := region.Height
	workers := d.workers()
	if workers > rows {
		workers = rows
	}
	chunk := (rows + workers - 1) / workers

	results := make([][]grid.Rect, workers)
	var rowsDone atomic.Int64

	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		y0 := region.Y + w*chunk
		y1 := y0 + chunk
		if y1 > region.Bottom() {
			y1 = region.Bottom()
		}
		if y0 >= y1 {
			continue
		}
		eg.Go(func() error {
			local := make([]grid.Rect, 0, 32)
			for y := y0; y < y1; y++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				d.scanRow(region, y, &local)
				scan.report(float64(rowsDone.Add(1)) / float64(rows))
			}
			results[w] = local

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var out []grid.Rect
	for _, r := range results {
		out = append(out, r...)
	}

	return out, nil
}

// scanRow grows one candidate from every free cell of row y inside region.
func (d *Decomposer) scanRow(region grid.Rect, y int, out *[]grid.Rect) {
	maxSize := d.MaxZoneSize()
	for x := region.X; x < region.Right(); x++ {
		if d.g.Label(x, y) != grid.Free {
			continue
		}
		// Extend width along the row while cells stay free.
		w := 1
		for x+w < region.Right() && w < maxSize && d.g.Label(x+w, y) == grid.Free {
			w++
		}
		// Extend height while the full width segment stays free in each row.
		h := 1
		for y+h < region.Bottom() && h < maxSize && d.segmentFree(x, y+h, w) {
			h++
		}
		*out = append(*out, grid.Rect{X: x, Y: y, Width: w, Height: h})

		if w == maxSize && h == maxSize {
			// Cap reached in both dimensions; no later cell in this row can
			// yield a larger candidate this pass.
			break
		}
	}
}

// segmentFree reports whether cells (x..x+w-1, y) are all free.
func (d *Decomposer) segmentFree(x, y, w int) bool {
	for i := 0; i < w; i++ {
		if d.g.Label(x+i, y) != grid.Free {
			return false
		}
	}

	return true
}

// sortCandidates orders candidates by area descending, ties by (y,x) so a
// given free-space shape always packs the same way.
func sortCandidates(c []grid.Rect) {
	sort.Slice(c, func(i, j int) bool {
		ai, aj := c[i].Area(), c[j].Area()
		if ai != aj {
			return ai > aj
		}
		if c[i].Y != c[j].Y {
			return c[i].Y < c[j].Y
		}

		return c[i].X < c[j].X
	})
}

// placeAll places candidates in order, skipping any whose area is no longer
// entirely free, and returns the total area placed. Placement is sequential:
// each stamp can invalidate later candidates, so this must not parallelize.
func (d *Decomposer) placeAll(cands []grid.Rect, fillable int, filled *int, fill, place *channel) int {
	placed := 0
	for i, c := range cands {
		if d.g.RectFree(c) {
			id := d.g.AllocZoneID()
			d.g.Stamp(c, id)
			d.g.Registry().Insert(id, c)
			placed += c.Area()
			*filled += c.Area()
			fill.report(float64(*filled) / float64(fillable))
		}
		place.report(float64(i+1) / float64(len(cands)))
	}

	return placed
}
