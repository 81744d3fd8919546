package objective

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lsopt/candidate"
)

// ErrTerminated is the sentinel an objective Func returns (optionally
// wrapped, e.g. via fmt.Errorf("%w: budget exhausted", objective.ErrTerminated))
// to request a graceful stop. It is not treated as a failure: the bridge
// reports Terminated, and the hill-climb driver returns the best result
// seen so far rather than propagating an error to its own caller.
var ErrTerminated = errors.New("objective: terminated")

// Func is the external objective callable. It receives a batch of rows
// matching a core.SearchSpace's schema and returns one finite real score per
// row, in the caller's own objective orientation (neither minimize nor
// maximize is assumed here — that sign convention is applied by Bridge).
type Func func(ctx context.Context, batch *candidate.Table) ([]float64, error)

// Outcome is the result of one Bridge.Evaluate call.
type Outcome int

const (
	// Ok indicates scoresOut was filled in and evaluation may continue.
	Ok Outcome = iota
	// Terminated indicates the objective requested a graceful stop.
	Terminated
)

// Bridge invokes an objective Func and converts its result to the
// minimize-orientation score convention the hill-climb driver works in
// internally.
type Bridge struct {
	fn       Func
	objSign  float64
}

// NewBridge builds a Bridge for fn. When minimize is false, every score the
// objective returns is sign-flipped so that the rest of the driver can
// always assume minimization internally, regardless of which orientation
// the caller's objective was written in.
func NewBridge(fn Func, minimize bool) *Bridge {
	sign := 1.0
	if !minimize {
		sign = -1.0
	}
	return &Bridge{fn: fn, objSign: sign}
}

// Sign returns the +1/-1 multiplier this Bridge applies to raw objective
// scores to reach minimize orientation.
func (b *Bridge) Sign() float64 { return b.objSign }

// Evaluate invokes the objective on batch and writes minimize-oriented
// scores into scoresOut, which must have length batch.NRows(). If the
// objective's error satisfies errors.Is(err, ErrTerminated), Evaluate
// returns (Terminated, nil); any other error is returned unmodified as the
// second value, with Outcome meaningless in that case. A context
// cancellation observed by fn is expected to surface as ctx.Err() and is
// treated like any other non-termination error — it propagates rather than
// being folded into Terminated, since only the objective itself knows
// whether a cancellation was a graceful stop or an interruption mid-batch.
func (b *Bridge) Evaluate(ctx context.Context, batch *candidate.Table, scoresOut []float64) (Outcome, error) {
	if len(scoresOut) != batch.NRows() {
		return Ok, fmt.Errorf("objective: scoresOut length %d != batch rows %d", len(scoresOut), batch.NRows())
	}

	raw, err := b.fn(ctx, batch)
	if err != nil {
		if errors.Is(err, ErrTerminated) {
			return Terminated, nil
		}
		return Ok, err
	}
	if len(raw) != batch.NRows() {
		return Ok, fmt.Errorf("objective: result length %d != batch rows %d", len(raw), batch.NRows())
	}

	for i, y := range raw {
		scoresOut[i] = y * b.objSign
	}
	return Ok, nil
}
