// Command flockbench runs the simulation core headless for a fixed number of
// ticks and reports throughput. Useful for sizing agent counts and comparing
// the spatial index implementations without a window.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

func main() {
	agents := flag.Int("agents", 1000, "number of agents to simulate")
	ticks := flag.Int("ticks", 1000, "number of ticks to run")
	workers := flag.Int("workers", 0, "worker goroutines, 0 = number of CPUs")
	index := flag.String("index", "kdtree", "spatial index: kdtree or grid")
	seek := flag.Bool("seek", false, "enable the goal-seek term toward the world center")
	flag.Parse()

	cfg := flock.DefaultConfig()
	cfg.AgentCount = *agents
	cfg.WorkerCount = *workers
	cfg.SpatialIndex = flock.IndexKind(*index)

	f, err := flock.New(cfg)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	var target *geometry.Vector2D
	if *seek {
		target = &geometry.Vector2D{X: cfg.WorldWidth / 2, Y: cfg.WorldHeight / 2}
	}

	log.Printf("running %d ticks with %d agents on the %s index...", *ticks, *agents, cfg.SpatialIndex)
	start := time.Now()
	for i := 0; i < *ticks; i++ {
		f.Step(target)
	}
	elapsed := time.Since(start)

	perTick := elapsed / time.Duration(*ticks)
	log.Printf("done in %v: %.1f ticks/sec, %v/tick",
		elapsed.Round(time.Millisecond),
		float64(*ticks)/elapsed.Seconds(),
		perTick.Round(time.Microsecond))
}
