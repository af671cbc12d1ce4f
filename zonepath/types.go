package zonepath

import (
	"github.com/Stone-Red-Code/LargeGridPathfinding/grid"
)

// InvalidPoint is the sentinel emitted for a transition whose zones share no
// valid border segment. It cannot occur for a well-formed adjacency edge but
// is kept as a defensive case; a Route containing it must be discarded.
var InvalidPoint = grid.Point{X: -1, Y: -1}

// Options configures a Finder.
//
// StretchPenalty - add max(w,h)/min(w,h) of the destination zone to each edge
// cost, discouraging long thin corridors.
// Jitter         - add symmetric noise in {-1,0,1} to each edge cost, making
// paths non-deterministic (traffic diversification).
// Seed           - seed for the jitter RNG; 0 selects a time-based seed.
type Options struct {
	StretchPenalty bool
	Jitter         bool
	Seed           int64
}

// Option is a functional option for configuring a Finder.
type Option func(*Options)

// WithStretchPenalty enables the destination-zone stretch penalty.
func WithStretchPenalty() Option {
	return func(o *Options) { o.StretchPenalty = true }
}

// WithJitter enables edge-cost jitter. seed 0 selects a time-based seed;
// any other value makes the jitter sequence reproducible.
func WithJitter(seed int64) Option {
	return func(o *Options) {
		o.Jitter = true
		o.Seed = seed
	}
}

// DefaultOptions returns the default Finder configuration: both stretch
// penalty and jitter disabled, which makes repeated searches on an unchanged
// graph fully deterministic.
func DefaultOptions() Options {
	return Options{}
}

// Route is the outcome of one FindPath query.
//
// Zones holds the zone-id sequence from start zone to goal zone inclusive.
// Waypoints holds the zone-to-zone transition coordinates, two per
// transition (exit cell of the current zone, entry cell of the next); the
// literal start and goal cells are NOT included; the caller prepends and
// appends them.
//
// Found=false with a Reason is the expected outcome for unreachable goals
// and for cells not covered by a registered zone; it is not an error.
type Route struct {
	Zones     []int32
	Waypoints []grid.Point
	Cost      float64
	Found     bool
	Reason    string
}

// Valid reports whether the route is usable: found and free of the
// InvalidPoint sentinel.
func (r Route) Valid() bool {
	if !r.Found {
		return false
	}
	for _, p := range r.Waypoints {
		if p == InvalidPoint {
			return false
		}
	}

	return true
}

// noRoute builds a Found=false Route with a diagnostic.
func noRoute(reason string) Route {
	return Route{Reason: reason}
}
