package sand

import (
	"context"

	"sand-ca/internal/core"
)

// Run pours grains from source into a private copy of the field's occupancy
// until the policy's stop condition is met.
func Run(field core.Terrain, source core.Coord, policy core.Policy) (Result, error) {
	return RunContext(context.Background(), field, Config{Source: source, Policy: policy})
}

// RunContext is Run with a configuration and a context that is checked
// between grains.
func RunContext(ctx context.Context, field core.Terrain, cfg Config) (Result, error) {
	w, err := NewWithConfig(field, cfg)
	if err != nil {
		return Result{}, err
	}
	err = core.Run(ctx, w)
	return w.Result(), err
}

// Simulate returns the number of grains that settle. Inputs that Run rejects
// settle nothing and yield 0.
func Simulate(field core.Terrain, source core.Coord, policy core.Policy) int {
	res, err := Run(field, source, policy)
	if err != nil {
		return 0
	}
	return res.Settled
}

// RunAll runs every policy concurrently, each against its own occupancy
// copy, and returns the results in argument order. The first failure cancels
// the remaining runs.
func RunAll(ctx context.Context, field core.Terrain, source core.Coord, policies ...core.Policy) ([]Result, error) {
	worlds := make([]*World, len(policies))
	sims := make([]core.Sim, len(policies))
	for i, p := range policies {
		w, err := NewWithConfig(field, Config{Source: source, Policy: p})
		if err != nil {
			return nil, err
		}
		worlds[i], sims[i] = w, w
	}
	if err := core.RunAll(ctx, sims...); err != nil {
		return nil, err
	}
	results := make([]Result, len(worlds))
	for i, w := range worlds {
		results[i] = w.Result()
	}
	return results, nil
}

func init() {
	core.Register("sand", func(t core.Terrain, cfg map[string]string) (core.Sim, error) {
		if err := ValidateMap(cfg); err != nil {
			return nil, err
		}
		w, err := NewWithConfig(t, FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return w, nil
	})
}
