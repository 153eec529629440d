package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string
	Seed  int64
	Steps int
	TPS   int
	TUI   bool
	Clear bool

	// Params holds sim-specific flag values keyed the way the sim's
	// FromMap expects. Only flags given on the command line appear here.
	Params map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "forestfire", Seed: 42, Steps: 100, TPS: 10, Params: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Steps, "steps", c.Steps, "frames to print in text mode")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second (0 runs unpaced in text mode)")
	fs.BoolVar(&c.TUI, "tui", c.TUI, "run the interactive terminal view")
	fs.BoolVar(&c.Clear, "clear", c.Clear, "clear the terminal before each text frame")
	c.bindParam(fs, "w", "grid width")
	c.bindParam(fs, "h", "grid height")
	c.bindParam(fs, "f", "tree growth probability per step")
	c.bindParam(fs, "p", "spontaneous ignition probability per step")
	c.bindParam(fs, "density", "share of cells seeded as trees")
}

func (c *Config) bindParam(fs *flag.FlagSet, key, usage string) {
	fs.Func(key, usage, func(v string) error {
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return err
		}
		c.Params[key] = v
		return nil
	})
}

// SimParams returns the map handed to the sim factory.
func (c *Config) SimParams() map[string]string {
	out := make(map[string]string, len(c.Params)+1)
	for k, v := range c.Params {
		out[k] = v
	}
	out["seed"] = strconv.FormatInt(c.Seed, 10)
	return out
}
