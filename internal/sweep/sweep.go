package sweep

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lightcalc/lightcalc/internal/engine"
)

// Grid describes a one-parameter sweep.
type Grid struct {
	// Param is the canonical parameter name (see engine.FieldNames).
	Param string

	// From and To are the inclusive endpoints.
	From float64
	To   float64

	// Steps is the number of grid points, endpoints included. Minimum 2.
	Steps int

	// Log switches to logarithmic spacing; endpoints must then be positive.
	Log bool
}

// Point pairs one grid value with the engine result it produced.
type Point struct {
	Value  float64
	Result *engine.Result
}

func (g Grid) validate() error {
	names := engine.FieldNames()
	found := false
	for _, n := range names {
		if n == g.Param {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("sweep: unknown parameter %q (valid: %s)", g.Param, strings.Join(names, ", "))
	}
	if g.Steps < 2 {
		return fmt.Errorf("sweep: steps must be at least 2, got %d", g.Steps)
	}
	for _, v := range []float64{g.From, g.To} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("sweep: endpoints must be finite")
		}
	}
	if g.Log && (g.From <= 0 || g.To <= 0) {
		return fmt.Errorf("sweep: log spacing requires positive endpoints, got [%g, %g]", g.From, g.To)
	}
	return nil
}

// values returns the grid points in order. The last point is pinned to To so
// floating-point accumulation never drifts the endpoint.
func (g Grid) values() []float64 {
	vals := make([]float64, g.Steps)
	n := float64(g.Steps - 1)
	if g.Log {
		ratio := math.Log(g.To / g.From)
		for i := range vals {
			vals[i] = g.From * math.Exp(ratio*float64(i)/n)
		}
	} else {
		for i := range vals {
			vals[i] = g.From + (g.To-g.From)*float64(i)/n
		}
	}
	vals[g.Steps-1] = g.To
	return vals
}

// Run evaluates base with g.Param set to each grid value, at most
// parallelism evaluations in flight (defaults to GOMAXPROCS when ≤ 0).
// Results come back in grid order regardless of completion order. The first
// validation error aborts the sweep.
func Run(ctx context.Context, base engine.Params, g Grid, parallelism int) ([]Point, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	vals := g.values()
	points := make([]Point, len(vals))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(parallelism)
	for i, v := range vals {
		i, v := i, v
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p := base
			if err := engine.SetField(&p, g.Param, v); err != nil {
				return err
			}
			res, err := engine.Compute(p)
			if err != nil {
				return fmt.Errorf("sweep: %s=%g: %w", g.Param, v, err)
			}
			points[i] = Point{Value: v, Result: res}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}
