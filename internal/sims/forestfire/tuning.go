package forestfire

// RunStats summarises one headless run of the automaton.
type RunStats struct {
	Steps int
	// MeanTreeDensity averages the tree share over the second half of the run.
	MeanTreeDensity float64
	PeakBurning     float64
	// Extinct is set when a step left no trees and nothing burning.
	Extinct bool
}

// Measure seeds a sim from cfg and runs it for steps generations.
func Measure(cfg Config, seed int64, steps int) (RunStats, error) {
	sim, err := NewSim(cfg)
	if err != nil {
		return RunStats{}, err
	}
	sim.Reset(seed)

	stats := RunStats{Steps: steps}
	settle := steps / 2
	var sum float64
	var samples int
	for step := 0; step < steps; step++ {
		sim.Step()
		c := sim.Census()
		if b := c.BurningDensity(); b > stats.PeakBurning {
			stats.PeakBurning = b
		}
		if c.Tree == 0 && c.Burning == 0 {
			stats.Extinct = true
		}
		if step >= settle {
			sum += c.TreeDensity()
			samples++
		}
	}
	if samples > 0 {
		stats.MeanTreeDensity = sum / float64(samples)
	}
	return stats, nil
}
