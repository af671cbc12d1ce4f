package decompose

import (
	"errors"
	"sync"
)

// Sentinel errors for decomposition operations.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to New or NewEditor.
	ErrNilGrid = errors.New("decompose: grid is nil")
	// ErrNilDecomposer indicates a nil *Decomposer was passed to NewEditor.
	ErrNilDecomposer = errors.New("decompose: decomposer is nil")
	// ErrBadRegion indicates a fill region that is empty after clamping to
	// the grid, or an obstacle rectangle outside the grid.
	ErrBadRegion = errors.New("decompose: region is empty or out of bounds")
	// ErrPassBudget indicates the scan/place loop exceeded MaxPasses without
	// the scan running dry. This signals an implementation bug, not a
	// recoverable condition.
	ErrPassBudget = errors.New("decompose: pass budget exhausted")
	// ErrStalled indicates a pass produced candidates but placed zero area,
	// which would loop forever. This signals an implementation bug.
	ErrStalled = errors.New("decompose: pass placed no area")
)

// DefaultMaxPasses bounds the outer scan/place loop of one FillRegion call.
const DefaultMaxPasses = 64

// Options configures a Decomposer.
//
// MaxZoneSize - cap on candidate width and height. Zero selects the default
// max((W+H)/20, 100) for a W×H grid.
// Workers     - goroutines used by the candidate scan. Zero selects
// runtime.GOMAXPROCS(0).
// MaxPasses   - defensive cap on scan/place passes per FillRegion call.
type Options struct {
	MaxZoneSize int
	Workers     int
	MaxPasses   int
}

// Option is a functional option for configuring a Decomposer.
type Option func(*Options)

// WithMaxZoneSize overrides the candidate growth cap. Values < 1 are ignored.
func WithMaxZoneSize(size int) Option {
	return func(o *Options) {
		if size >= 1 {
			o.MaxZoneSize = size
		}
	}
}

// WithWorkers sets the number of scan goroutines. Values < 1 are ignored.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Workers = n
		}
	}
}

// WithPassCap overrides the defensive pass budget. Values < 1 are ignored.
func WithPassCap(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.MaxPasses = n
		}
	}
}

// DefaultOptions returns the default Decomposer configuration.
func DefaultOptions() Options {
	return Options{MaxPasses: DefaultMaxPasses}
}

// Progress carries the three independent progress channels of a fill:
// overall area-filled fraction, candidate-scan fraction and placement
// fraction. Nil fields are ignored. Each channel receives a monotonically
// non-decreasing value in [0,1] and receives exactly 1.0 once, when the fill
// completes. A caller that cannot estimate duration may simply leave a
// channel nil and treat it as indeterminate.
type Progress struct {
	Fill  func(float64)
	Scan  func(float64)
	Place func(float64)
}

// channel wraps one progress callback with the monotonicity and
// terminal-1.0 guarantees. Safe for concurrent report calls (the scan
// workers share the Scan channel).
type channel struct {
	mu   sync.Mutex
	fn   func(float64)
	last float64
	done bool
}

func newChannel(fn func(float64)) *channel {
	return &channel{fn: fn}
}

// report emits v if it advances the channel. Values ≥ 1 are withheld so that
// 1.0 is only ever emitted by finish.
func (c *channel) report(v float64) {
	if c == nil || c.fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done || v <= c.last || v >= 1 {
		return
	}
	c.last = v
	c.fn(v)
}

// finish emits the terminal 1.0 exactly once.
func (c *channel) finish() {
	if c == nil || c.fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done {
		return
	}
	c.done = true
	c.last = 1
	c.fn(1)
}
