package sand

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"sand-ca/internal/core"
)

// Result summarizes a finished (or interrupted) run.
type Result struct {
	Policy core.Policy
	Source core.Coord

	// Settled counts grains that came to rest. Under the closed policy it
	// includes the grain that finally blocks the source.
	Settled int
	// Occupied is the final size of the occupancy set, rocks included.
	Occupied int
	// Last is the resting cell of the most recent settled grain.
	Last core.Coord
	// SourceBlocked is set once a grain rests on the source.
	SourceBlocked bool
}

// World owns one occupancy set and drops grains into it one at a time.
type World struct {
	cfg   Config
	field core.Terrain
	occ   *core.CoordSet

	settled int
	last    core.Coord
	exit    core.Coord
	done    bool
	blocked bool

	log logrus.FieldLogger
}

// NewWithConfig returns a World over field configured from cfg. It rejects
// sources that are rock or that sit inside the closed floor.
func NewWithConfig(field core.Terrain, cfg Config) (*World, error) {
	if !cfg.Policy.Valid() {
		return nil, fmt.Errorf("%w: %v", core.ErrUnknownPolicy, cfg.Policy)
	}
	if field.Contains(cfg.Source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceBlocked, cfg.Source)
	}
	if cfg.Policy == core.ClosedFloor && cfg.Source.Y >= Floor(field.Bottom()) {
		return nil, fmt.Errorf("%w: source %v, floor at y=%d", ErrSourceBelowFloor, cfg.Source, Floor(field.Bottom()))
	}
	w := &World{cfg: cfg, field: field, log: discardLogger()}
	w.Reset()
	return w, nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// SetLogger routes end-of-run debug output to l.
func (w *World) SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = discardLogger()
	}
	w.log = l
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand/" + w.cfg.Policy.String() }

// Reset discards every settled grain and reseeds occupancy from the rocks.
func (w *World) Reset() {
	w.occ = w.field.Occupancy()
	w.settled = 0
	w.last = core.Coord{}
	w.exit = core.Coord{}
	w.done = false
	w.blocked = false
}

// Step drops a single grain. Once the run is over further calls are no-ops
// that report the terminal grain again.
func (w *World) Step() (core.Coord, Outcome) {
	if w.done {
		if w.blocked {
			return w.last, Settled
		}
		return w.exit, Escaped
	}

	rest, out := Fall(w.occ, w.field.Bottom(), w.cfg.Source, w.cfg.Policy)
	if out == Escaped {
		w.exit = rest
		w.finish()
		return rest, Escaped
	}

	w.occ.Insert(rest)
	w.settled++
	w.last = rest
	if rest == w.cfg.Source {
		w.blocked = true
		w.finish()
	}
	return rest, Settled
}

func (w *World) finish() {
	w.done = true
	w.log.WithFields(logrus.Fields{
		"policy":   w.cfg.Policy.String(),
		"settled":  w.settled,
		"occupied": w.occ.Len(),
	}).Debug("sand run finished")
}

// Done reports whether the run has terminated.
func (w *World) Done() bool { return w.done }

// Settled returns the number of grains at rest so far.
func (w *World) Settled() int { return w.settled }

// Occupied returns the current size of the occupancy set.
func (w *World) Occupied() int { return w.occ.Len() }

// Result snapshots the run's counters.
func (w *World) Result() Result {
	return Result{
		Policy:        w.cfg.Policy,
		Source:        w.cfg.Source,
		Settled:       w.settled,
		Occupied:      w.occ.Len(),
		Last:          w.last,
		SourceBlocked: w.blocked,
	}
}
