package engine

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Stone-Red-Code/LargeGridPathfinding/decompose"
	"github.com/Stone-Red-Code/LargeGridPathfinding/grid"
	"github.com/Stone-Red-Code/LargeGridPathfinding/zonegraph"
	"github.com/Stone-Red-Code/LargeGridPathfinding/zonepath"
)

// DefaultInterval is the default maintenance-loop tick period.
const DefaultInterval = 250 * time.Millisecond

// Options configures an Engine.
type Options struct {
	Logger        *slog.Logger
	Interval      time.Duration
	SearchOpts    []zonepath.Option
	DecomposeOpts []decompose.Option
}

// Option is a functional option for configuring an Engine.
type Option func(*Options)

// WithLogger sets the structured logger used by the maintenance loop.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithInterval sets the maintenance tick period. Values ≤ 0 are ignored.
func WithInterval(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.Interval = d
		}
	}
}

// WithSearchOptions sets the zonepath options applied to every FindPath.
func WithSearchOptions(opts ...zonepath.Option) Option {
	return func(o *Options) { o.SearchOpts = append(o.SearchOpts, opts...) }
}

// WithDecomposeOptions sets the decompose options for the engine's packer.
func WithDecomposeOptions(opts ...decompose.Option) Option {
	return func(o *Options) { o.DecomposeOpts = append(o.DecomposeOpts, opts...) }
}

// agentState tracks one agent's current path request and last result.
type agentState struct {
	start, goal grid.Point
	route       zonepath.Route
	pending     bool
	resolved    bool
}

// Engine is the top-level facade over the decomposition and pathfinding
// subsystems. See the package documentation for the locking discipline.
type Engine struct {
	mu     sync.RWMutex // write: edits + rebuilds; read: searches and views
	g      *grid.Grid
	dec    *decompose.Decomposer
	editor *decompose.Editor
	graph  *zonegraph.Graph

	log        *slog.Logger
	interval   time.Duration
	searchOpts []zonepath.Option

	agentMu sync.Mutex
	agents  map[string]*agentState
}

// New builds the grid, stamps the initial obstacles, runs the initial full
// decomposition and the first graph rebuild. The returned Engine is ready
// for queries without any further setup.
func New(width, height int, obstacles []grid.Rect, opts ...Option) (*Engine, error) {
	o := Options{Logger: slog.Default(), Interval: DefaultInterval}
	for _, opt := range opts {
		opt(&o)
	}

	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	for _, r := range obstacles {
		if r.Empty() {
			return nil, grid.ErrEmptyRect
		}
		if r != r.Clamp(width, height) {
			return nil, grid.ErrOutOfBounds
		}
		g.Stamp(r, g.AllocObstacleID())
	}

	dec, err := decompose.New(g, o.DecomposeOpts...)
	if err != nil {
		return nil, err
	}
	editor, err := decompose.NewEditor(g, dec)
	if err != nil {
		return nil, err
	}
	if err := dec.FillGrid(context.Background(), decompose.Progress{}); err != nil {
		return nil, err
	}

	graph := zonegraph.New()
	graph.Rebuild(g.Registry().Snapshot())

	e := &Engine{
		g:          g,
		dec:        dec,
		editor:     editor,
		graph:      graph,
		log:        o.Logger,
		interval:   o.Interval,
		searchOpts: o.SearchOpts,
		agents:     make(map[string]*agentState),
	}

	return e, nil
}

// PlaceObstacle applies an obstacle edit under the write lock and marks the
// graph dirty. Returns the new obstacle id.
func (e *Engine) PlaceObstacle(ctx context.Context, rect grid.Rect, prog decompose.Progress) (int32, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	id, err := e.editor.PlaceObstacle(ctx, rect, prog)
	e.graph.MarkDirty()

	return id, err
}

// RemoveObstacle applies an obstacle removal under the write lock and marks
// the graph dirty.
func (e *Engine) RemoveObstacle(ctx context.Context, rect grid.Rect, prog decompose.Progress) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	err := e.editor.RemoveObstacle(ctx, rect, prog)
	e.graph.MarkDirty()

	return err
}

// Rebuild rebuilds the zone graph from the current registry under the write
// lock. Callers driving the engine without Run must call this after an edit
// batch and before trusting FindPath results.
func (e *Engine) Rebuild() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.graph.Rebuild(e.g.Registry().Snapshot())
}

// FindPath answers one query under the read lock. On success the waypoint
// sequence is completed with the literal start and goal cells around the
// zone-transition points.
func (e *Engine) FindPath(ctx context.Context, start, goal grid.Point) zonepath.Route {
	e.mu.RLock()
	defer e.mu.RUnlock()

	f := zonepath.NewFinder(e.g, e.graph, e.searchOpts...)
	route := f.FindPath(ctx, start, goal)
	if route.Found && route.Valid() {
		wps := make([]grid.Point, 0, len(route.Waypoints)+2)
		wps = append(wps, start)
		wps = append(wps, route.Waypoints...)
		wps = append(wps, goal)
		route.Waypoints = wps
	}

	return route
}

// SetGoal records a path request for an agent. The route is computed by the
// next maintenance tick; read it back with Route.
func (e *Engine) SetGoal(agentID string, start, goal grid.Point) {
	e.agentMu.Lock()
	defer e.agentMu.Unlock()
	e.agents[agentID] = &agentState{start: start, goal: goal, pending: true}
}

// Route returns the last computed route for an agent. ok is false while the
// request is still pending or the agent is unknown.
func (e *Engine) Route(agentID string) (zonepath.Route, bool) {
	e.agentMu.Lock()
	defer e.agentMu.Unlock()
	a, known := e.agents[agentID]
	if !known || !a.resolved {
		return zonepath.Route{}, false
	}

	return a.route, true
}

// RemoveAgent drops an agent's request and route.
func (e *Engine) RemoveAgent(agentID string) {
	e.agentMu.Lock()
	defer e.agentMu.Unlock()
	delete(e.agents, agentID)
}

// Run drives the maintenance loop until ctx is canceled: each tick rebuilds
// the graph if dirty, then recomputes all pending agent routes in parallel.
// Faults in one tick are logged and do not stop the loop.
func (e *Engine) Run(ctx context.Context) {
	t := time.NewTicker(e.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			e.tick(ctx)
		}
	}
}

// tick is one maintenance iteration, isolated so a panic cannot kill Run.
func (e *Engine) tick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("maintenance tick panicked", "panic", r)
		}
	}()

	if e.graph.Dirty() {
		e.Rebuild()
		e.log.Debug("zone graph rebuilt", "zones", e.graph.Len())
	}
	e.recomputeRoutes(ctx)
}

// recomputeRoutes answers every pending agent request in parallel. Searches
// are read-only over the rebuilt graph; parallelism is bounded by the CPU
// count.
func (e *Engine) recomputeRoutes(ctx context.Context) {
	type job struct {
		id          string
		start, goal grid.Point
	}

	e.agentMu.Lock()
	jobs := make([]job, 0, len(e.agents))
	for id, a := range e.agents {
		if a.pending {
			jobs = append(jobs, job{id: id, start: a.start, goal: a.goal})
		}
	}
	e.agentMu.Unlock()
	if len(jobs) == 0 {
		return
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for _, j := range jobs {
		j := j
		eg.Go(func() error {
			route := e.FindPath(ctx, j.start, j.goal)

			e.agentMu.Lock()
			if a, ok := e.agents[j.id]; ok && a.pending && a.start == j.start && a.goal == j.goal {
				a.route = route
				a.pending = false
				a.resolved = true
			}
			e.agentMu.Unlock()

			if !route.Found {
				e.log.Debug("agent route not found", "agent", j.id, "reason", route.Reason)
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		e.log.Warn("route batch aborted", "err", err)
	}
}

// Labels returns a copy of the grid's label array for rendering.
func (e *Engine) Labels() []int32 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.g.Labels()
}

// Zones returns a detached snapshot of the zone registry for rendering.
func (e *Engine) Zones() map[int32]grid.Rect {
	return e.g.Registry().Snapshot()
}

// Size returns the grid dimensions.
func (e *Engine) Size() (width, height int) {
	return e.g.Width(), e.g.Height()
}

// Grid exposes the underlying grid for read-only integration (rendering,
// tests). Mutating it directly bypasses the engine's locking.
func (e *Engine) Grid() *grid.Grid { return e.g }

// Graph exposes the zone graph for read-only integration.
func (e *Engine) Graph() *zonegraph.Graph { return e.graph }
