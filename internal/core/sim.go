package core

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Outcome is the terminal state of a single grain.
type Outcome uint8

const (
	// Settled means the grain came to rest and joined the occupancy set.
	Settled Outcome = iota
	// Escaped means the grain fell past the lowest rock into the abyss.
	Escaped
)

func (o Outcome) String() string {
	if o == Escaped {
		return "escaped"
	}
	return "settled"
}

var (
	// ErrUnknownSim is returned when no factory is registered under a name.
	ErrUnknownSim = errors.New("core: unknown simulation")
	// ErrInvalidSetting indicates a key/value setting a factory cannot apply.
	ErrInvalidSetting = errors.New("core: invalid simulation setting")
)

// Terrain is the immutable obstacle layout a simulation starts from.
type Terrain interface {
	Bottom() int
	Contains(c Coord) bool
	// Occupancy returns a fresh mutable copy of the obstacles.
	Occupancy() *CoordSet
}

// Sim defines the minimal contract a grain simulation must implement.
type Sim interface {
	Name() string
	Reset()
	Step() (Coord, Outcome)
	Done() bool
	Settled() int
}

// Factory constructs a Sim over t using a flag-style configuration map.
type Factory func(t Terrain, cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := sims[name]
	if !ok {
		names := make([]string, 0, len(sims))
		for n := range sims {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownSim, name, names)
	}
	return f, nil
}

// Run steps sim until it is done, checking ctx between grains.
func Run(ctx context.Context, sim Sim) error {
	for !sim.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		sim.Step()
	}
	return nil
}

// RunAll runs every sim in its own goroutine. The sims must not share
// mutable state. The first failure cancels the others.
func RunAll(ctx context.Context, all ...Sim) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, s := range all {
		s := s
		g.Go(func() error { return Run(ctx, s) })
	}
	return g.Wait()
}
