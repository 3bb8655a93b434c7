package solver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/napolitain/solver-geode/internal/models"
	"github.com/napolitain/solver-geode/internal/solver/geode"
)

// SolveAll solves every blueprint for the same horizon, up to workers at a
// time (0 means one per CPU). Results keep the order of blueprints. The
// first failure stops blueprints that have not started yet.
func SolveAll(
	ctx context.Context,
	blueprints []*models.Blueprint,
	horizon int,
	opts geode.Options,
	workers int,
) ([]*geode.Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*geode.Result, len(blueprints))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, bp := range blueprints {
		i, bp := i, bp // per-iteration copies (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := geode.NewSolver(bp, opts).Solve(horizon)
			if err != nil {
				return fmt.Errorf("blueprint %d: %w", blueprintID(bp), err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// QualityLevel returns the sum of blueprint id times geodes
func QualityLevel(results []*geode.Result) int {
	total := 0
	for _, r := range results {
		total += r.BlueprintID * r.Geodes
	}
	return total
}

// GeodeProduct multiplies the geodes of every result; 0 for no results
func GeodeProduct(results []*geode.Result) int {
	if len(results) == 0 {
		return 0
	}
	product := 1
	for _, r := range results {
		product *= r.Geodes
	}
	return product
}

// FirstN returns at most the first n blueprints
func FirstN(blueprints []*models.Blueprint, n int) []*models.Blueprint {
	if n < 0 || n >= len(blueprints) {
		return blueprints
	}
	return blueprints[:n]
}

func blueprintID(bp *models.Blueprint) int {
	if bp == nil {
		return 0
	}
	return bp.ID
}
