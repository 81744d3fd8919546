// driver.go — the elitist per-walk hill-climb loop.
package hillclimb

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/lsopt/candidate"
	"github.com/katalvlaran/lsopt/core"
	"github.com/katalvlaran/lsopt/neighbor"
	"github.com/katalvlaran/lsopt/objective"
	"github.com/katalvlaran/lsopt/repair"
)

// Run executes the local search described by ctrl against ss, starting from
// initial (exactly ctrl.NSearches rows, already satisfying the repair
// invariant — Run does not re-repair initial rows, that is the caller's
// responsibility) and scoring candidates with obj. It returns the best row
// seen, in the caller's original objective orientation, and any hard error
// the objective raised.
//
// A termination signal from obj is not an error: Run stops the loop and
// returns the best-so-far result with a nil error. A context cancellation
// observed between steps is returned as the error (ctx.Err()); the RNG and
// any attached metrics/logging are still released/flushed before Run
// returns, on every exit path.
func Run(ctx context.Context, obj objective.Func, ss *core.SearchSpace, ctrl Control, initial *candidate.Table) (Best, error) {
	if err := ctrl.validate(); err != nil {
		return Best{}, err
	}
	if initial.NRows() != ctrl.NSearches {
		return Best{}, fmt.Errorf("%w: initial has %d rows, want NSearches=%d", ErrSchemaViolation, initial.NRows(), ctrl.NSearches)
	}
	if err := initial.MatchesSchema(ss); err != nil {
		return Best{}, fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}

	rng, release := acquireRNG(ctrl.Seed)
	defer release()

	runID := uuid.New()
	logger := ctrl.logger.With().Str("run_id", runID.String()).Logger()
	logger.Debug().
		Bool("minimize", ctrl.Minimize).
		Int("n_searches", ctrl.NSearches).
		Int("n_steps", ctrl.NSteps).
		Int("n_neighs", ctrl.NNeighs).
		Msg("hillclimb: search start")

	bridge := objective.NewBridge(obj, ctrl.Minimize)

	pop := candidate.NewPopulation(candidate.NewTable(ss, ctrl.NSearches))
	for i := 0; i < ctrl.NSearches; i++ {
		pop.CopyRow(i, initial, i)
	}

	best := Best{Row: candidate.NewTable(ss, 1).RowAt(0), Y: math.Inf(1) * bridge.Sign()}

	outcome, err := bridge.Evaluate(ctx, pop.Table, pop.PopY)
	ctrl.metrics.incEvaluations()
	if err != nil {
		return best, err
	}
	if outcome == objective.Terminated {
		logger.Debug().Msg("hillclimb: terminated during initial evaluation")
		return best, nil
	}

	bestY := math.Inf(1)
	for i := 0; i < ctrl.NSearches; i++ {
		if pop.PopY[i] < bestY {
			bestY = pop.PopY[i]
			best.Row = pop.RowAt(i)
		}
	}
	ctrl.metrics.setGlobalBest(bestY * bridge.Sign())

	neighs := candidate.NewTable(ss, ctrl.NSearches*ctrl.NNeighs)
	neighsY := make([]float64, ctrl.NSearches*ctrl.NNeighs)

	for step := 0; step < ctrl.NSteps; step++ {
		select {
		case <-ctx.Done():
			return finish(best, bestY, bridge), ctx.Err()
		default:
		}

		for i := 0; i < ctrl.NSearches; i++ {
			if !restartIfStagnated(ss, pop, i, ctrl, rng) {
				continue
			}
			ctrl.metrics.incRestarts()
			logger.Debug().Int("step", step).Int("walk", i).Msg("hillclimb: restart")
		}

		neighbor.Generate(ss, pop, neighs, ctrl.NNeighs, ctrl.MutSD, rng)

		outcome, err := bridge.Evaluate(ctx, neighs, neighsY)
		ctrl.metrics.incEvaluations()
		if err != nil {
			return finish(best, bestY, bridge), err
		}
		if outcome == objective.Terminated {
			logger.Debug().Int("step", step).Msg("hillclimb: terminated")
			break
		}

		for i := 0; i < ctrl.NSearches; i++ {
			lo, hi := neighbor.BlockStart(i, ctrl.NNeighs), neighbor.BlockEnd(i, ctrl.NNeighs)
			bestNeighRow, bestNeighY := lo, neighsY[lo]
			for r := lo + 1; r < hi; r++ {
				if neighsY[r] < bestNeighY {
					bestNeighY, bestNeighRow = neighsY[r], r
				}
			}

			if bestNeighY < pop.PopY[i] {
				pop.CopyRow(i, neighs, bestNeighRow)
				pop.PopY[i] = bestNeighY
				pop.Stagnate[i] = 0
				if bestNeighY < bestY {
					bestY = bestNeighY
					best.Row = neighs.RowAt(bestNeighRow)
					ctrl.metrics.setGlobalBest(bestY * bridge.Sign())
				}
			} else {
				pop.Stagnate[i]++
			}
		}

		ctrl.metrics.incSteps()
	}

	result := finish(best, bestY, bridge)
	logger.Debug().Float64("global_best_y", result.Y).Msg("hillclimb: search end")
	return result, nil
}

// finish converts the minimize-oriented bestY back to the caller's original
// objective orientation.
func finish(best Best, bestY float64, bridge *objective.Bridge) Best {
	best.Y = bestY * bridge.Sign()
	return best
}

// restartIfStagnated resets walk i to a fresh random, repaired row once it
// has gone StagnateMax consecutive steps without improving, discarding its
// current score (PopY[i] goes back to +Inf so the walk competes for
// elitist replacement from scratch on the next evaluation). Reports
// whether a restart happened.
func restartIfStagnated(ss *core.SearchSpace, pop *candidate.Population, i int, ctrl Control, rng *rand.Rand) bool {
	if int(pop.Stagnate[i]) < ctrl.StagnateMax {
		return false
	}
	pop.SetRandomRow(i, rng)
	repair.Row(ss, pop.Table, i, rng)
	pop.PopY[i] = math.Inf(1)
	pop.Stagnate[i] = 0
	return true
}
