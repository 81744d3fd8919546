// control.go — Control, the driver entry point's configuration record, and
// its functional options. The required search parameters (Minimize,
// NSearches, NSteps, NNeighs, MutSD, StagnateMax) are plain fields set by
// NewControl's positional arguments, since none of them has a meaningful
// default the driver could silently assume; the ambient extras (logging,
// metrics, RNG seed) follow the usual functional-options idiom instead,
// since they're genuinely optional.
package hillclimb

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Control configures a Run invocation.
type Control struct {
	// Minimize selects the objective orientation; false means maximize.
	Minimize bool
	// NSearches is the number of parallel walks. >= 1.
	NSearches int
	// NSteps is the iteration budget. >= 0.
	NSteps int
	// NNeighs is the number of neighbors generated per walk per step. >= 1.
	NNeighs int
	// MutSD is the Gaussian standard deviation used for Real/Int mutation. > 0.
	MutSD float64
	// StagnateMax is the number of consecutive non-improving steps after
	// which a walk restarts. >= 1.
	StagnateMax int
	// Seed seeds the scoped RNG for this Run. Zero means "use the shared
	// process-wide stream" (see rng.go) rather than a fresh deterministic
	// source — pass a nonzero Seed for reproducible, repeatable runs.
	Seed int64

	logger  zerolog.Logger
	metrics *Metrics
}

// Option customizes a Control built by NewControl.
type Option func(*Control)

// WithSeed sets Control.Seed.
func WithSeed(seed int64) Option {
	return func(c *Control) { c.Seed = seed }
}

// WithLogger attaches a zerolog.Logger that Run emits debug-level
// operational events to (search start/end, restarts, termination). The
// default is zerolog.Nop(), which discards everything at zero cost.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Control) { c.logger = l }
}

// WithMetrics attaches a Metrics collector. The default is nil, under which
// every metrics update is a no-op guarded by a nil check.
func WithMetrics(m *Metrics) Option {
	return func(c *Control) { c.metrics = m }
}

// NewControl builds a Control from the required search parameters plus any
// Options.
func NewControl(minimize bool, nSearches, nSteps, nNeighs int, mutSD float64, stagnateMax int, opts ...Option) Control {
	c := Control{
		Minimize:    minimize,
		NSearches:   nSearches,
		NSteps:      nSteps,
		NNeighs:     nNeighs,
		MutSD:       mutSD,
		StagnateMax: stagnateMax,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// validate checks the required fields' documented constraints.
func (c Control) validate() error {
	switch {
	case c.NSearches < 1:
		return fmt.Errorf("%w: NSearches=%d, want >= 1", ErrInvalidControl, c.NSearches)
	case c.NSteps < 0:
		return fmt.Errorf("%w: NSteps=%d, want >= 0", ErrInvalidControl, c.NSteps)
	case c.NNeighs < 1:
		return fmt.Errorf("%w: NNeighs=%d, want >= 1", ErrInvalidControl, c.NNeighs)
	case c.MutSD <= 0:
		return fmt.Errorf("%w: MutSD=%g, want > 0", ErrInvalidControl, c.MutSD)
	case c.StagnateMax < 1:
		return fmt.Errorf("%w: StagnateMax=%d, want >= 1", ErrInvalidControl, c.StagnateMax)
	default:
		return nil
	}
}
