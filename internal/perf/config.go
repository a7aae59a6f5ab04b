package perf

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidConfig is returned by NewRunner for unusable settings.
	ErrInvalidConfig = errors.New("perf: invalid config")

	// ErrCheckFailed is returned by Run when a structure gives a wrong answer.
	ErrCheckFailed = errors.New("perf: check failed")
)

// Config holds the settings of a run.
type Config struct {
	Ops     int      // operations per scenario
	Seed    int64    // seed of the data generator
	Buckets int      // hash table bucket count
	Skip    []string // scenario names to leave out
}

func DefaultConfig() Config {
	return Config{
		Ops:     100_000,
		Seed:    1234567890,
		Buckets: 1024,
	}
}

func (c Config) validate() error {
	if c.Ops <= 0 {
		return fmt.Errorf("%w: ops must be positive, got %d", ErrInvalidConfig, c.Ops)
	}
	if c.Buckets <= 0 {
		return fmt.Errorf("%w: buckets must be positive, got %d", ErrInvalidConfig, c.Buckets)
	}

	for _, name := range c.Skip {
		if !knownScenario(name) {
			return fmt.Errorf("%w: unknown scenario %q (known: %s)",
				ErrInvalidConfig, name, strings.Join(ScenarioNames(), ","))
		}
	}

	return nil
}

func (c Config) skips(name string) bool {
	for _, skip := range c.Skip {
		if skip == name {
			return true
		}
	}
	return false
}

func (c Config) String() string {
	return fmt.Sprintf("ops=%d seed=%d buckets=%d skip=[%s]",
		c.Ops, c.Seed, c.Buckets, strings.Join(c.Skip, ","))
}
