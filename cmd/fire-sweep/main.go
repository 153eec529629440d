package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"forest-fire/internal/sims/forestfire"

	"github.com/cheggaaa/pb/v3"
)

type paramSet struct {
	growth float64
	ignite float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("f=%.3f p=%.4f", p.growth, p.ignite)
}

type scenarioResult struct {
	params      paramSet
	meanTrees   float64
	peakBurning float64
	extinctRuns int
	err         error
}

func main() {
	width := flag.Int("w", 96, "grid width")
	height := flag.Int("h", 96, "grid height")
	steps := flag.Int("steps", 400, "ticks to simulate per run")
	seeds := flag.Int("seeds", 4, "runs per parameter set")
	density := flag.Float64("density", 0.3, "initial tree density")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	if *workers <= 0 {
		*workers = 1
	}

	baseCfg := forestfire.DefaultConfig()
	baseCfg.Width = *width
	baseCfg.Height = *height
	baseCfg.Params.TreeDensity = *density

	growthOptions := []float64{0.01, 0.02, 0.05, 0.1, 0.2}
	igniteOptions := []float64{0.00001, 0.0001, 0.001, 0.01}

	var sets []paramSet
	for _, growth := range growthOptions {
		for _, ignite := range igniteOptions {
			sets = append(sets, paramSet{growth: growth, ignite: ignite})
		}
	}

	log.Printf("Sweeping %d parameter sets (%d workers, %d steps, %d seeds)", len(sets), *workers, *steps, *seeds)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(baseCfg, params, *steps, *seeds)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	bar := pb.StartNew(len(sets))
	var all []scenarioResult
	for res := range results {
		bar.Increment()
		if res.err != nil {
			log.Printf("%s: %v", res.params, res.err)
			continue
		}
		all = append(all, res)
	}
	bar.Finish()

	sort.Slice(all, func(i, j int) bool { return all[i].meanTrees > all[j].meanTrees })

	fmt.Printf("\nResults by mean tree density (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for i, res := range all {
		fmt.Printf("%2d) trees=%.3f peakBurning=%.3f extinct=%d/%d %s\n",
			i+1, res.meanTrees, res.peakBurning, res.extinctRuns, *seeds, res.params)
	}
}

func runScenario(base forestfire.Config, params paramSet, steps, seeds int) scenarioResult {
	cfg := base
	cfg.Params.Growth = params.growth
	cfg.Params.Ignite = params.ignite

	res := scenarioResult{params: params}
	if seeds <= 0 {
		return res
	}
	var sum float64
	for seed := 1; seed <= seeds; seed++ {
		stats, err := forestfire.Measure(cfg, int64(seed), steps)
		if err != nil {
			res.err = err
			return res
		}
		sum += stats.MeanTreeDensity
		if stats.PeakBurning > res.peakBurning {
			res.peakBurning = stats.PeakBurning
		}
		if stats.Extinct {
			res.extinctRuns++
		}
	}
	res.meanTrees = sum / float64(seeds)
	return res
}
