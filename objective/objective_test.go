package objective_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsopt/candidate"
	"github.com/katalvlaran/lsopt/core"
	"github.com/katalvlaran/lsopt/objective"
)

func twoRowBatch(t *testing.T) *candidate.Table {
	t.Helper()
	ss, err := core.NewSearchSpace([]core.Parameter{{Name: "x", Kind: core.Real, Lower: 0, Upper: 1}}, nil)
	require.NoError(t, err)
	return candidate.NewTable(ss, 2)
}

func TestBridge_MinimizeIsIdentity(t *testing.T) {
	batch := twoRowBatch(t)
	b := objective.NewBridge(func(ctx context.Context, tbl *candidate.Table) ([]float64, error) {
		return []float64{1.0, 2.0}, nil
	}, true)

	out := make([]float64, 2)
	outcome, err := b.Evaluate(context.Background(), batch, out)
	require.NoError(t, err)
	assert.Equal(t, objective.Ok, outcome)
	assert.Equal(t, []float64{1.0, 2.0}, out)
}

func TestBridge_MaximizeFlipsSign(t *testing.T) {
	batch := twoRowBatch(t)
	b := objective.NewBridge(func(ctx context.Context, tbl *candidate.Table) ([]float64, error) {
		return []float64{1.0, 2.0}, nil
	}, false)

	out := make([]float64, 2)
	_, err := b.Evaluate(context.Background(), batch, out)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1.0, -2.0}, out)
}

func TestBridge_Terminated(t *testing.T) {
	batch := twoRowBatch(t)
	b := objective.NewBridge(func(ctx context.Context, tbl *candidate.Table) ([]float64, error) {
		return nil, fmt.Errorf("stop: %w", objective.ErrTerminated)
	}, true)

	outcome, err := b.Evaluate(context.Background(), batch, make([]float64, 2))
	require.NoError(t, err)
	assert.Equal(t, objective.Terminated, outcome)
}

func TestBridge_HardErrorPropagates(t *testing.T) {
	batch := twoRowBatch(t)
	boom := errors.New("boom")
	b := objective.NewBridge(func(ctx context.Context, tbl *candidate.Table) ([]float64, error) {
		return nil, boom
	}, true)

	_, err := b.Evaluate(context.Background(), batch, make([]float64, 2))
	assert.ErrorIs(t, err, boom)
}

func TestBridge_ResultLengthMismatch(t *testing.T) {
	batch := twoRowBatch(t)
	b := objective.NewBridge(func(ctx context.Context, tbl *candidate.Table) ([]float64, error) {
		return []float64{1.0}, nil
	}, true)

	_, err := b.Evaluate(context.Background(), batch, make([]float64, 2))
	assert.Error(t, err)
}
