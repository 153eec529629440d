package forestfire

import "strconv"

// Params holds the probabilities driving the forest-fire rules.
type Params struct {
	// Growth is f, the chance an Empty cell grows a Tree.
	Growth float64
	// Ignite is p, the chance a Tree with no burning neighbour catches fire.
	Ignite float64
	// TreeDensity is the share of cells seeded as Tree on reset.
	TreeDensity float64
}

// Config controls the forest-fire simulation dimensions and rules.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  64,
		Height: 32,
		Seed:   1337,
		Params: Params{
			Growth:      0.05,
			Ignite:      0.001,
			TreeDensity: 0.3,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparsable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	parseProbability(cfg, "f", &c.Params.Growth)
	parseProbability(cfg, "p", &c.Params.Ignite)
	parseProbability(cfg, "density", &c.Params.TreeDensity)
	return c
}

func parseProbability(cfg map[string]string, key string, dst *float64) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil || !validProbability(parsed) {
		return
	}
	*dst = parsed
}
