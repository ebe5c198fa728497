package config

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/src-d/go-billy.v4"
	"gopkg.in/yaml.v3"

	"sand-ca/internal/core"
)

// ErrNoPolicies indicates a run file that selects no policy at all.
var ErrNoPolicies = errors.New("config: at least one policy is required")

// Point is a lattice coordinate as written in a run file.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Run describes one invocation of the simulator.
//
// Example:
//
//	source: {x: 500, y: 0}
//	policies: [abyss, floor]
//	parallel: true
//	logLevel: debug
type Run struct {
	Source   Point    `yaml:"source"`
	Policies []string `yaml:"policies"`
	Parallel bool     `yaml:"parallel"`
	LogLevel string   `yaml:"logLevel"`
}

// Default returns the run settings used when no file is given.
func Default() Run {
	return Run{
		Source:   Point{X: 500, Y: 0},
		Policies: []string{core.OpenAbyss.String(), core.ClosedFloor.String()},
		Parallel: true,
		LogLevel: logrus.InfoLevel.String(),
	}
}

// Load reads a YAML run file from fs. Keys missing from the file keep their
// defaults.
func Load(fs billy.Filesystem, path string) (Run, error) {
	f, err := fs.Open(path)
	if err != nil {
		return Run{}, fmt.Errorf("failed to open run config: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Run{}, fmt.Errorf("failed to read run config: %w", err)
	}

	run := Default()
	if err := yaml.Unmarshal(data, &run); err != nil {
		return Run{}, fmt.Errorf("failed to parse run config: %w", err)
	}
	if err := run.Validate(); err != nil {
		return Run{}, fmt.Errorf("invalid run config: %w", err)
	}
	return run, nil
}

// Validate checks policy names and the log level.
func (r Run) Validate() error {
	if len(r.Policies) == 0 {
		return ErrNoPolicies
	}
	if _, err := r.ParsedPolicies(); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(r.LogLevel); err != nil {
		return fmt.Errorf("config: log level: %w", err)
	}
	return nil
}

// ParsedPolicies resolves the policy names in order, dropping duplicates.
func (r Run) ParsedPolicies() ([]core.Policy, error) {
	seen := map[core.Policy]bool{}
	out := make([]core.Policy, 0, len(r.Policies))
	for _, name := range r.Policies {
		p, err := core.ParsePolicy(name)
		if err != nil {
			return nil, err
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out, nil
}

// Level returns the configured log level, falling back to info.
func (r Run) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(r.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Overrides renders the run's simulation settings in the key=value form
// accepted by sand.FromMap.
func (r Run) Overrides() map[string]string {
	return map[string]string{
		"source_x": strconv.Itoa(r.Source.X),
		"source_y": strconv.Itoa(r.Source.Y),
	}
}
