package sand

import (
	"fmt"
	"strconv"

	"sand-ca/internal/core"
)

// Config controls where grains spawn and how the lattice is bounded.
type Config struct {
	Source core.Coord
	Policy core.Policy
}

// DefaultConfig returns the standard configuration: grains pour in at
// (500, 0) onto a closed floor.
func DefaultConfig() Config {
	return Config{
		Source: core.Coord{X: 500, Y: 0},
		Policy: core.ClosedFloor,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["source_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Source.X = parsed
		}
	}
	if v, ok := cfg["source_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Source.Y = parsed
		}
	}
	if v, ok := cfg["policy"]; ok {
		if parsed, err := core.ParsePolicy(v); err == nil {
			c.Policy = parsed
		}
	}
	return c
}

// ValidateMap reports the first key FromMap would ignore or fail to parse.
func ValidateMap(cfg map[string]string) error {
	for k, v := range cfg {
		switch k {
		case "source_x", "source_y":
			if _, err := strconv.Atoi(v); err != nil {
				return fmt.Errorf("%w: %s=%q is not an integer", core.ErrInvalidSetting, k, v)
			}
		case "policy":
			if _, err := core.ParsePolicy(v); err != nil {
				return fmt.Errorf("%w: %w", core.ErrInvalidSetting, err)
			}
		default:
			return fmt.Errorf("%w: unknown key %q", core.ErrInvalidSetting, k)
		}
	}
	return nil
}
